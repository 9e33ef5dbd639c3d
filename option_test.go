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

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		err  error
	}{
		{name: "zero threshold", opts: []Option{WithThreshold(0)}, err: ErrIllegalThreshold},
		{name: "negative threshold", opts: []Option{WithThreshold(-10)}, err: ErrIllegalThreshold},
		{name: "nil viewer", opts: []Option{WithViewer(nil)}, err: ErrNilViewer},
		{name: "nil logger", opts: []Option{WithLogger(nil)}, err: ErrNilLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts...)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, c)
			require.Panics(t, func() {
				Must(tt.opts...)
			})
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)
	require.Equal(t, defaultThreshold, c.Threshold())
	require.Nil(t, c.stats)
	require.IsType(t, &defaultLogger{}, c.logger)

	x, z := chunkPosition(c.viewer)
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, z)
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	logger := &NoopLogger{}
	c := Must(
		WithThreshold(32),
		WithStatsEnabled(true),
		WithLogger(logger),
		WithViewer(ViewerFunc(func() (float64, float64) { return 32, -48 })),
		WithUnloadHook(func(*Chunk) {}),
	)

	require.Equal(t, 32, c.Threshold())
	require.NotNil(t, c.stats)
	require.Same(t, logger, c.logger)
	require.Len(t, c.unloadHooks, 1)

	x, z := chunkPosition(c.viewer)
	require.Equal(t, 2.0, x)
	require.Equal(t, -3.0, z)
}
