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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_ProviderStubs(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	ch := c.Load(2, 2)
	require.NoError(t, ch.SetData([]byte{7}))

	var p Provider = c
	called := false
	require.True(t, p.SaveAll(true, func(float64) { called = true }))
	require.True(t, p.SaveAll(false, nil))
	require.False(t, called, "nothing is saved, so no progress is reported")
	require.False(t, p.UnloadQueued())
	require.False(t, p.CanSave())
	require.Nil(t, p.PossibleCreatures(CreatureMonster, 0, 64, 0))

	pos, ok := p.FindClosestStructure("Stronghold", 10, 64, 10)
	require.False(t, ok)
	require.Equal(t, Position{}, pos)

	require.NotPanics(t, func() {
		p.Populate(p, 2, 2)
		p.RecreateStructures(2, 2)
	})
	require.Same(t, ch, c.Provide(2, 2))
	require.Equal(t, []byte{7}, ch.Data())
	require.Equal(t, 1, c.Len())
}
