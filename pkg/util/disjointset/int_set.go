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

package disjointset

// IntSet is the int disjoint set.
// It is designed for a dense universe of elements in [0, size).
type IntSet struct {
	parent []int
}

// NewIntSet returns a new int disjoint set with elements 0..size-1, each in
// its own set.
func NewIntSet(size int) *IntSet {
	p := make([]int, size)
	for i := range p {
		p[i] = i
	}
	return &IntSet{parent: p}
}

// GrowNewIntSet grows the universe to the given size. Each new element
// starts in its own set; existing sets are left untouched.
func (m *IntSet) GrowNewIntSet(size int) {
	for i := len(m.parent); i < size; i++ {
		m.parent = append(m.parent, i)
	}
}

// Union unions two sets in int disjoint set.
func (m *IntSet) Union(a int, b int) {
	m.parent[m.FindRoot(a)] = m.FindRoot(b)
}

// FindRoot finds the representative element of the set that `a` belongs to.
// It compresses the walked path, so amortized cost is near constant.
func (m *IntSet) FindRoot(a int) int {
	if a == m.parent[a] {
		return a
	}
	m.parent[a] = m.FindRoot(m.parent[a])
	return m.parent[a]
}

// InSameGroup checks whether a and b belong to the same set.
func (m *IntSet) InSameGroup(a, b int) bool {
	return m.FindRoot(a) == m.FindRoot(b)
}
