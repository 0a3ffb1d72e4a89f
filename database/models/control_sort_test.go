package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlIDLess(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"6.1.1", "6.10"},
		{"6.2", "6.10"},
		{"A.8.9", "A.8.12"},
		{"A.5.15", "A.8.12"},
		{"CC2.1", "CC10.1"},
		{"GV.OC-01", "GV.OC-02"},
		{"4.1", "A.5.1"}, // clauses precede annexes
		{"A.5", "A.5.1"}, // prefix sorts first
	}

	for _, c := range cases {
		assert.True(t, ControlIDLess(c.a, c.b), "%s < %s", c.a, c.b)
		assert.False(t, ControlIDLess(c.b, c.a), "%s not < %s", c.b, c.a)
	}
}

func TestControlIDLessIgnoresTenantSuffix(t *testing.T) {
	assert.True(t, ControlIDLess("A.8.9#acme", "A.8.12"))
	assert.False(t, ControlIDLess("A.8.12", "A.8.9#acme"))
}

func TestSortControls(t *testing.T) {
	controls := []Control{
		{ControlID: "A.8.12"},
		{ControlID: "6.10"},
		{ControlID: "A.8.9#acme"},
		{ControlID: "6.1.1"},
		{ControlID: "CC10.1"},
		{ControlID: "CC2.1"},
	}

	SortControls(controls)

	got := make([]string, len(controls))
	for i, c := range controls {
		got[i] = c.ControlID
	}
	assert.Equal(t, []string{"6.1.1", "6.10", "A.8.9#acme", "A.8.12", "CC2.1", "CC10.1"}, got)
}
