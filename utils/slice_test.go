// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	assert.Empty(t, Filter([]int{1, 3}, func(i int) bool { return i%2 == 0 }))
}

func TestUniqueBy(t *testing.T) {
	type edge struct{ intentID, reference string }

	edges := []edge{
		{"INT-001", "A.5.15"},
		{"INT-001", "A.5.15"},
		{"INT-001", "A.8.12"},
	}

	unique := UniqueBy(edges, func(e edge) string { return e.intentID + "/" + e.reference })
	assert.Len(t, unique, 2)
	// first occurrence wins, order is preserved
	assert.Equal(t, "A.5.15", unique[0].reference)
	assert.Equal(t, "A.8.12", unique[1].reference)
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"a!", "b!"}, Map([]string{"a", "b"}, func(s string) string { return s + "!" }))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}
