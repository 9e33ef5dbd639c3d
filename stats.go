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

// Stats is a snapshot of cache statistics.
type Stats struct {
	hits      int64
	misses    int64
	loads     int64
	unloads   int64
	evictions int64
}

// Hits returns the number of Provide calls that found a stored chunk.
func (s Stats) Hits() int64 {
	return s.hits
}

// Misses returns the number of Provide calls answered with the placeholder.
func (s Stats) Misses() int64 {
	return s.misses
}

// Loads returns the number of Load calls.
func (s Stats) Loads() int64 {
	return s.loads
}

// Unloads returns the number of Unload calls.
func (s Stats) Unloads() int64 {
	return s.unloads
}

// Evictions returns the number of evicted candidates.
func (s Stats) Evictions() int64 {
	return s.evictions
}

// Ratio returns the hit ratio of Provide calls.
func (s Stats) Ratio() float64 {
	requests := s.hits + s.misses
	if requests == 0 {
		return 0.0
	}
	return float64(s.hits) / float64(requests)
}
