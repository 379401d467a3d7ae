package theming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeLookup(t *testing.T) {
	t.Parallel()

	tree := Tree{
		"primaryColor": "#1e88e5",
		"alert":        Tree{"success": Tree{"background": "#2e7d32"}},
		"spacing":      map[string]any{"padding": 2},
		"ratio":        1.5,
	}

	value, ok := tree.Lookup("alert.success.background")
	require.True(t, ok)
	assert.Equal(t, "#2e7d32", value)

	_, ok = tree.Lookup("alert.missing")
	assert.False(t, ok)

	_, ok = tree.Lookup("primaryColor.deeper")
	assert.False(t, ok)

	_, ok = tree.Lookup("")
	assert.False(t, ok)

	assert.Equal(t, "#1e88e5", tree.String("primaryColor"))
	assert.Equal(t, "", tree.String("alert"))
	assert.Equal(t, "1.5", tree.String("ratio"))

	padding, ok := tree.Int("spacing.padding")
	require.True(t, ok)
	assert.Equal(t, 2, padding)

	_, ok = tree.Int("primaryColor")
	assert.False(t, ok)
}

func TestTreeKeysSorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, Tree{"c": 1, "a": 2, "b": 3}.Keys())
	assert.Empty(t, Tree(nil).Keys())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	decoded := map[string]any{
		"outer": map[any]any{"inner": 1, 2: "two"},
		"list":  []any{map[string]any{"k": "v"}},
	}

	tree, ok := Normalize(decoded)
	require.True(t, ok)
	assert.Equal(t, Tree{
		"outer": Tree{"inner": 1, "2": "two"},
		"list":  []any{Tree{"k": "v"}},
	}, tree)

	_, ok = Normalize("scalar")
	assert.False(t, ok)
}

func TestCloneOfNilIsEmpty(t *testing.T) {
	t.Parallel()

	clone := Tree(nil).Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone)
}
