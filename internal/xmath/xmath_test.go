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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquaredDistance(t *testing.T) {
	t.Parallel()

	require.Equal(t, 25.0, SquaredDistance(3, 4, 0, 0))
	require.Equal(t, 25.0, SquaredDistance(0, 0, -3, -4))
	require.Equal(t, 0.0, SquaredDistance(1.5, -2.5, 1.5, -2.5))
	require.Equal(t, 0.5, SquaredDistance(1, 1, 0.5, 0.5))
}

func TestSquaredDistance_OrderMatchesEuclidean(t *testing.T) {
	t.Parallel()

	points := [][2]float64{{1, 1}, {5, 0}, {3, 4.1}, {-2, 4}, {0.5, -4.9}, {-3.9, -3.1}}
	for i := range points {
		for j := range points {
			a, b := points[i], points[j]
			sa := SquaredDistance(a[0], a[1], 0.25, -0.75)
			sb := SquaredDistance(b[0], b[1], 0.25, -0.75)
			ea := math.Hypot(a[0]-0.25, a[1]+0.75)
			eb := math.Hypot(b[0]-0.25, b[1]+0.75)
			require.Equal(t, sa > sb, ea > eb, "points %v and %v", a, b)
		}
	}
}
