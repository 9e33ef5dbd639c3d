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

import "fmt"

const (
	coordHashSeed       int32 = 17
	coordHashMultiplier int32 = 37
)

// Coord is an immutable chunk-grid coordinate with value equality.
//
// The hash is computed once by NewCoord, so == and Equal agree for coords
// built by it. The zero Coord carries no hash; do not use it as a key.
type Coord struct {
	x    int32
	z    int32
	hash int32
}

// NewCoord returns the coordinate (x, z) with its hash precomputed.
func NewCoord(x, z int32) Coord {
	h := coordHashSeed
	h = coordHashMultiplier*h + x
	h = coordHashMultiplier*h + z
	return Coord{x: x, z: z, hash: h}
}

func (c Coord) X() int32 {
	return c.x
}

func (c Coord) Z() int32 {
	return c.z
}

// Hash returns the hash computed at construction.
func (c Coord) Hash() int32 {
	return c.hash
}

// Equal reports whether both coordinates match.
func (c Coord) Equal(other Coord) bool {
	return c.x == other.x && c.z == other.z
}

// Packed returns the primary-store key of the coordinate.
func (c Coord) Packed() int64 {
	return PackXZ(c.x, c.z)
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.x, c.z)
}

// PackXZ packs a coordinate pair into one key: x in the low 32 bits, z in
// the high 32 bits. Every int32 pair maps to a distinct key.
func PackXZ(x, z int32) int64 {
	return int64(uint32(x)) | int64(uint32(z))<<32
}

func coordHash(c Coord) uint64 {
	return uint64(uint32(c.hash))
}
