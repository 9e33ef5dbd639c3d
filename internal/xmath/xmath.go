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

package xmath

// SquaredDistance returns the squared planar distance between (ax, az) and (bx, bz).
//
// The square root is omitted: it is strictly monotonic, so comparing squared
// distances orders points exactly like comparing euclidean ones.
func SquaredDistance(ax, az, bx, bz float64) float64 {
	dx := ax - bx
	dz := az - bz
	return dx*dx + dz*dz
}
