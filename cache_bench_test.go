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
)

var benchmarkCases = []struct {
	name      string
	threshold int
}{
	{"threshold=100", 100},
	{"threshold=800", 800},
	{"threshold=3200", 3200},
}

func BenchmarkCache_Provide(b *testing.B) {
	c := Must(WithLogger(&NoopLogger{}))
	for x := int32(0); x < 32; x++ {
		for z := int32(0); z < 32; z++ {
			c.Load(x, z)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := int32(0)
		for pb.Next() {
			c.Provide(i&63, (i>>6)&63)
			i++
		}
	})
}

func BenchmarkCache_UnloadEvicting(b *testing.B) {
	for _, bc := range benchmarkCases {
		b.Run(bc.name, func(b *testing.B) {
			c := Must(WithThreshold(bc.threshold), WithLogger(&NoopLogger{}))
			for i := 0; i < bc.threshold; i++ {
				c.Load(int32(i), 0)
				c.Unload(int32(i), 0)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x := int32(bc.threshold + i)
				c.Load(x, 1)
				c.Unload(x, 1)
			}
		})
	}
}
