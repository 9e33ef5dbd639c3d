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

// Viewer supplies the reference point of eviction: the position of the
// local viewer in world units.
type Viewer interface {
	Position() (x, z float64)
}

// ViewerFunc adapts a function to a Viewer.
type ViewerFunc func() (x, z float64)

func (f ViewerFunc) Position() (x, z float64) {
	return f()
}

type originViewer struct{}

func (originViewer) Position() (x, z float64) {
	return 0, 0
}

// chunkPosition converts the viewer position to chunk-grid units.
func chunkPosition(v Viewer) (x, z float64) {
	x, z = v.Position()
	return x / ChunkSize, z / ChunkSize
}
