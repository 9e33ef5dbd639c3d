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
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

// ChunkSize is the number of world units along one side of a chunk.
const ChunkSize = 16

// Chunk is the data stored for one chunk-grid coordinate.
//
// Payloads come from the remote authority; the cache never computes them.
// The loaded flag may be read while another goroutine unloads the chunk;
// the payload is not safe for concurrent mutation.
type Chunk struct {
	coord    Coord
	empty    bool
	loaded   atomic.Bool
	data     []byte
	checksum uint64
}

func newChunk(x, z int32) *Chunk {
	return &Chunk{coord: NewCoord(x, z)}
}

func newPlaceholder() *Chunk {
	return &Chunk{coord: NewCoord(0, 0), empty: true, checksum: xxh3.Hash(nil)}
}

func (c *Chunk) X() int32 {
	return c.coord.x
}

func (c *Chunk) Z() int32 {
	return c.coord.z
}

func (c *Chunk) Coord() Coord {
	return c.coord
}

// IsEmpty reports whether c is the placeholder handed out for coordinates
// that hold no chunk.
func (c *Chunk) IsEmpty() bool {
	return c.empty
}

// IsLoaded reports whether c is stored and has not been evicted yet.
func (c *Chunk) IsLoaded() bool {
	return c.loaded.Load()
}

// Data returns the payload. The slice must not be modified.
func (c *Chunk) Data() []byte {
	return c.data
}

// SetData stores a copy of b as the payload and updates the checksum.
func (c *Chunk) SetData(b []byte) error {
	if c.empty {
		return ErrImmutablePlaceholder
	}

	c.data = append(c.data[:0], b...)
	c.checksum = xxh3.Hash(c.data)
	return nil
}

// Checksum returns the xxh3 hash of the payload.
func (c *Chunk) Checksum() uint64 {
	return c.checksum
}

// Verify reports whether the payload hashes to sum.
func (c *Chunk) Verify(sum uint64) bool {
	return c.checksum == sum
}

func (c *Chunk) unload(hooks []func(*Chunk)) {
	c.loaded.Store(false)
	for _, hook := range hooks {
		hook(c)
	}
}
