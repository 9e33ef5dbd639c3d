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
// Package candidate implements the unordered set a chunk cache scans to
// pick an eviction victim.
//
// Elements are bucketed by a caller supplied hash and compared with ==
// inside a bucket, so a weak hash only costs speed, never correctness.
package candidate

import (
	"github.com/dolthub/swiss"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Set is not safe for concurrent use.
type Set[K comparable, V any] struct {
	buckets *swiss.Map[uint64, []entry[K, V]]
	hasher  func(K) uint64
	size    int
}

func New[K comparable, V any](opts ...Option[K]) *Set[K, V] {
	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(o)
	}

	return &Set[K, V]{
		buckets: swiss.NewMap[uint64, []entry[K, V]](uint32(o.initBucketCount)),
		hasher:  o.hasher,
	}
}

// Add inserts key with value. If an equal key is already present the set
// is left unchanged and Add reports false.
func (s *Set[K, V]) Add(key K, value V) bool {
	h := s.hasher(key)
	b, _ := s.buckets.Get(h)
	for i := range b {
		if b[i].key == key {
			return false
		}
	}

	s.buckets.Put(h, append(b, entry[K, V]{key: key, value: value}))
	s.size++
	return true
}

func (s *Set[K, V]) Get(key K) (V, bool) {
	b, _ := s.buckets.Get(s.hasher(key))
	for i := range b {
		if b[i].key == key {
			return b[i].value, true
		}
	}

	var zero V
	return zero, false
}

func (s *Set[K, V]) Contains(key K) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Set[K, V]) Remove(key K) bool {
	h := s.hasher(key)
	b, ok := s.buckets.Get(h)
	if !ok {
		return false
	}

	for i := range b {
		if b[i].key != key {
			continue
		}

		last := len(b) - 1
		b[i] = b[last]
		b[last] = entry[K, V]{}
		b = b[:last]
		if len(b) == 0 {
			s.buckets.Delete(h)
		} else {
			s.buckets.Put(h, b)
		}
		s.size--
		return true
	}

	return false
}

// Cap returns how many more buckets fit before the bucket map grows.
func (s *Set[K, V]) Cap() int {
	return s.buckets.Capacity()
}

func (s *Set[K, V]) Len() int {
	return s.size
}

// Range calls f for every element until f returns false. The order is
// unspecified and may differ between calls.
func (s *Set[K, V]) Range(f func(key K, value V) bool) {
	s.buckets.Iter(func(_ uint64, b []entry[K, V]) (stop bool) {
		for i := range b {
			if !f(b[i].key, b[i].value) {
				return true
			}
		}
		return false
	})
}

func (s *Set[K, V]) Clear() {
	s.buckets.Clear()
	s.size = 0
}
