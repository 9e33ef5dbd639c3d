// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package chunkcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/dolthub/swiss"
	"github.com/gammazero/deque"

	"github.com/maypok86/chunkcache/internal/candidate"
	"github.com/maypok86/chunkcache/internal/stats"
	"github.com/maypok86/chunkcache/internal/xmath"
)

const initialChunkCount = 64

// Cache stores the chunks a client received from the remote authority.
//
// It keeps three containers with separate invariants:
//   - primary maps a packed coordinate to its chunk and is the only source
//     Provide reads from;
//   - candidates holds every chunk passed to Unload that has not been
//     evicted yet. It is only scanned to pick a victim and membership does
//     not remove a chunk from primary;
//   - listing is the iterable list of loaded chunks reported by
//     LoadedCount. Nothing in this package appends to it.
//
// All operations are serialized by one mutex.
type Cache struct {
	mu          sync.Mutex
	primary     *swiss.Map[int64, *Chunk]
	candidates  *candidate.Set[Coord, *Chunk]
	listing     *deque.Deque[*Chunk]
	placeholder *Chunk
	viewer      Viewer
	logger      Logger
	unloadHooks []func(*Chunk)
	stats       *stats.Stats
	threshold   int
}

// New returns a cache configured by opts or an error if an option is invalid.
func New(opts ...Option) (*Cache, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		primary:     swiss.NewMap[int64, *Chunk](initialChunkCount),
		candidates: candidate.New[Coord, *Chunk](
			candidate.WithHasher[Coord](coordHash),
			candidate.WithBucketCount[Coord](o.threshold+1),
		),
		listing:     deque.New[*Chunk](),
		placeholder: newPlaceholder(),
		viewer:      o.viewer,
		logger:      o.logger,
		unloadHooks: o.unloadHooks,
		threshold:   o.threshold,
	}
	if o.statsEnabled {
		c.stats = stats.New()
	}

	return c, nil
}

// Must is like New but panics on invalid options.
func Must(opts ...Option) *Cache {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Exists always reports true: a coordinate without a chunk resolves to the
// placeholder, so no coordinate is invalid for the caller.
func (c *Cache) Exists(x, z int32) bool {
	return true
}

// Load creates an empty chunk at (x, z), stores it and returns it.
// A chunk already stored at (x, z) is replaced.
func (c *Cache) Load(x, z int32) *Chunk {
	ch := newChunk(x, z)
	ch.loaded.Store(true)

	c.mu.Lock()
	c.primary.Put(PackXZ(x, z), ch)
	c.mu.Unlock()

	c.stats.IncLoads()
	return ch
}

// Provide returns the chunk stored at (x, z) or the placeholder.
func (c *Cache) Provide(x, z int32) *Chunk {
	c.mu.Lock()
	ch, ok := c.primary.Get(PackXZ(x, z))
	c.mu.Unlock()

	if !ok {
		c.stats.IncMisses()
		return c.placeholder
	}

	c.stats.IncHits()
	return ch
}

// Unload marks the chunk at (x, z) as an eviction candidate. Once there
// are more candidates than the threshold, the candidate farthest from the
// viewer is evicted.
//
// A coordinate that already is a candidate keeps its first chunk. An absent
// coordinate resolves to the placeholder, which then becomes a candidate
// under the placeholder's own coordinate unless a real chunk holds it.
func (c *Cache) Unload(x, z int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.IncUnloads()

	ch, ok := c.primary.Get(PackXZ(x, z))
	if !ok {
		ch = c.placeholder
	}
	c.candidates.Add(ch.Coord(), ch)

	if c.candidates.Len() <= c.threshold {
		return
	}

	if victim, distance, found := c.farthest(); found {
		c.evict(victim, distance)
	}
}

// farthest scans every candidate for the one with the greatest squared
// distance from the viewer. The first candidate seen wins a tie.
func (c *Cache) farthest() (victim *Chunk, distance float64, found bool) {
	px, pz := chunkPosition(c.viewer)
	distance = -1
	c.candidates.Range(func(coord Coord, ch *Chunk) bool {
		d := xmath.SquaredDistance(float64(coord.X()), float64(coord.Z()), px, pz)
		if d > distance {
			victim, distance, found = ch, d, true
		}
		return true
	})
	return victim, distance, found
}

func (c *Cache) evict(victim *Chunk, distance float64) {
	ctx := context.Background()
	coord := victim.Coord()

	if victim.IsEmpty() {
		// the placeholder is never stored, so its coordinate keeps whatever
		// real chunk sits at the origin.
		c.logger.Warn(ctx, "chunkcache: evicting a placeholder candidate", ErrPlaceholderVictim)
	} else {
		victim.unload(c.unloadHooks)
		c.primary.Delete(coord.Packed())
	}
	if i := c.listing.Index(func(ch *Chunk) bool { return ch == victim }); i >= 0 {
		c.listing.Remove(i)
	}
	c.candidates.Remove(coord)

	c.stats.IncEvictions()
	c.logger.Debug(ctx, "chunkcache: evicted chunk",
		"x", coord.X(), "z", coord.Z(), "squared_distance", distance)
}

// LoadedCount returns the length of the chunk listing, not the number of
// stored chunks. See Len for the latter.
func (c *Cache) LoadedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.listing.Len()
}

// Len returns the number of chunks in the primary store.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.primary.Count()
}

// Candidates returns the number of eviction candidates.
func (c *Cache) Candidates() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.candidates.Len()
}

// IsCandidate reports whether the chunk at (x, z) waits for eviction.
func (c *Cache) IsCandidate(x, z int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.candidates.Contains(NewCoord(x, z))
}

func (c *Cache) Threshold() int {
	return c.threshold
}

// Placeholder returns the chunk handed out for coordinates without data.
func (c *Cache) Placeholder() *Chunk {
	return c.placeholder
}

// Stats returns a snapshot of the cache counters. All counters are zero
// unless the cache was created WithStatsEnabled.
func (c *Cache) Stats() Stats {
	return Stats{
		hits:      c.stats.Hits(),
		misses:    c.stats.Misses(),
		loads:     c.stats.Loads(),
		unloads:   c.stats.Unloads(),
		evictions: c.stats.Evictions(),
	}
}

// Clear drops every chunk and candidate without running unload hooks and
// resets the statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.primary.Clear()
	c.candidates.Clear()
	c.listing.Clear()
	c.mu.Unlock()

	c.stats.Clear()
}

// String summarizes the primary store occupancy.
func (c *Cache) String() string {
	return fmt.Sprintf("ChunkCache: %d", c.Len())
}
