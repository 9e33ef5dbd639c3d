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

// Provider is the chunk source contract a client world talks to. Cache
// implements it without persistence, generation or structure lookup: a
// client only ever receives chunks.
type Provider interface {
	Exists(x, z int32) bool
	Load(x, z int32) *Chunk
	Provide(x, z int32) *Chunk
	Unload(x, z int32)
	SaveAll(all bool, progress ProgressFunc) bool
	UnloadQueued() bool
	CanSave() bool
	Populate(source Provider, x, z int32)
	PossibleCreatures(kind CreatureKind, x, y, z int32) []SpawnEntry
	FindClosestStructure(name string, x, y, z int32) (Position, bool)
	LoadedCount() int
	RecreateStructures(x, z int32)
	String() string
}

var _ Provider = (*Cache)(nil)

// ProgressFunc receives save progress as a fraction in [0, 1].
type ProgressFunc func(done float64)

// CreatureKind classifies spawnable creatures.
type CreatureKind uint8

const (
	CreatureMonster CreatureKind = iota
	CreatureCreature
	CreatureWater
	CreatureAmbient
)

// SpawnEntry describes a creature that may spawn at a location.
type SpawnEntry struct {
	Name     string
	Weight   int
	MinGroup int
	MaxGroup int
}

// Position is a block position in world units.
type Position struct {
	X, Y, Z int32
}

// SaveAll reports that everything is saved: the cache holds nothing to persist.
func (c *Cache) SaveAll(all bool, progress ProgressFunc) bool {
	return true
}

// UnloadQueued reports that no queued unloads remain.
func (c *Cache) UnloadQueued() bool {
	return false
}

func (c *Cache) CanSave() bool {
	return false
}

// Populate is a no-op: population belongs to world generation.
func (c *Cache) Populate(source Provider, x, z int32) {}

// RecreateStructures is a no-op: structures belong to world generation.
func (c *Cache) RecreateStructures(x, z int32) {}

func (c *Cache) PossibleCreatures(kind CreatureKind, x, y, z int32) []SpawnEntry {
	return nil
}

func (c *Cache) FindClosestStructure(name string, x, y, z int32) (Position, bool) {
	return Position{}, false
}
