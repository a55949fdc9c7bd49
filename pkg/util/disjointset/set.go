// Copyright 2026 Natobits, Inc.
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

// Package disjointset implements disjoint-set (union-find) forests with
// path compression.
package disjointset

// Set is the universal implementation of a disjoint set.
// It is designed for sparse cases or non-integer types. If you are dealing
// with continuous integers, use IntSet instead to avoid the cost of a
// hashmap.
//
// Elements are registered lazily: the first time an operation sees a value
// it becomes a singleton set, so every value of T is a valid element and no
// operation can fail. Not safe for concurrent use.
type Set[T comparable] struct {
	parent  []int
	rank    []int
	val2Idx map[T]int
}

// NewSet returns a new disjoint set. size is a capacity hint for the number
// of distinct elements.
func NewSet[T comparable](size int) *Set[T] {
	return &Set[T]{
		parent:  make([]int, 0, size),
		rank:    make([]int, 0, size),
		val2Idx: make(map[T]int, size),
	}
}

// FindRoot returns the slot of the representative of the set containing a,
// registering a as a singleton if it was never seen. Two values are in the
// same set if and only if their roots are equal; a slot stays a valid id for
// its group until a later Union merges the group into another one.
func (s *Set[T]) FindRoot(a T) int {
	idx, ok := s.val2Idx[a]
	if !ok {
		idx = len(s.parent)
		s.parent = append(s.parent, idx)
		s.rank = append(s.rank, 0)
		s.val2Idx[a] = idx
		return idx
	}
	return s.findRoot(idx)
}

func (s *Set[T]) findRoot(a int) int {
	if a == s.parent[a] {
		return a
	}
	s.parent[a] = s.findRoot(s.parent[a])
	return s.parent[a]
}

// InSameGroup checks whether a and b belong to the same set.
func (s *Set[T]) InSameGroup(a, b T) bool {
	return s.FindRoot(a) == s.FindRoot(b)
}

// Union merges the sets containing a and b, attaching the shallower tree
// under the deeper one. Uniting a value with itself, or two values already
// in one set, is a no-op.
func (s *Set[T]) Union(a, b T) {
	x := s.FindRoot(a)
	y := s.FindRoot(b)
	if x == y {
		return
	}
	switch {
	case s.rank[x] < s.rank[y]:
		s.parent[x] = y
	case s.rank[x] > s.rank[y]:
		s.parent[y] = x
	default:
		s.parent[y] = x
		s.rank[x]++
	}
}

// Count returns the number of registered elements.
func (s *Set[T]) Count() int {
	return len(s.parent)
}
