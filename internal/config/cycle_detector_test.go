package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		target   string
		expected int
	}{
		{name: "found at beginning", slice: []string{"a", "b", "c"}, target: "a", expected: 0},
		{name: "found at end", slice: []string{"a", "b", "c"}, target: "c", expected: 2},
		{name: "not found", slice: []string{"a", "b", "c"}, target: "d", expected: -1},
		{name: "empty slice", slice: []string{}, target: "a", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, indexOf(tt.slice, tt.target))
		})
	}
}

func TestDetectCycle_NoCycle(t *testing.T) {
	parents := map[string]string{
		"base":     "",
		"dark":     "base",
		"midnight": "dark",
	}

	assert.Nil(t, detectCycle(parents))
}

func TestDetectCycle_DirectCycle(t *testing.T) {
	parents := map[string]string{
		"a": "b",
		"b": "a",
	}

	cycle := detectCycle(parents)
	require.NotNil(t, cycle)
	assert.Equal(t, []string{"a", "b", "a"}, cycle)
}

func TestDetectCycle_IndirectCycle(t *testing.T) {
	parents := map[string]string{
		"a": "b",
		"b": "c",
		"c": "a",
	}

	cycle := detectCycle(parents)
	require.NotNil(t, cycle)
	assert.Len(t, cycle, 4) // a->b->c->a
	assert.Contains(t, cycle, "a")
	assert.Contains(t, cycle, "b")
	assert.Contains(t, cycle, "c")
}

func TestDetectCycle_SelfCycle(t *testing.T) {
	cycle := detectCycle(map[string]string{"a": "a"})
	require.NotNil(t, cycle)
	assert.Equal(t, []string{"a", "a"}, cycle)
}

func TestDetectCycle_ParentOutsideGraph(t *testing.T) {
	parents := map[string]string{
		"ocean": "default",
	}

	assert.Nil(t, detectCycle(parents))
}

func TestDetectCycle_CycleInOneChain(t *testing.T) {
	parents := map[string]string{
		"a": "",
		"b": "a",
		"d": "e",
		"e": "d",
	}

	cycle := detectCycle(parents)
	require.NotNil(t, cycle)
	assert.Contains(t, cycle, "d")
	assert.Contains(t, cycle, "e")
}

func TestDetectCycle_Empty(t *testing.T) {
	assert.Nil(t, detectCycle(map[string]string{}))
}
