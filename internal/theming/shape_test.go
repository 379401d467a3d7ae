package theming

import (
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestCheckShape(t *testing.T) {
	t.Parallel()

	shape := Tree{
		"a": 1,
		"b": "text",
		"c": Tree{"d": true, "e": []any{"x"}},
	}

	cases := []struct {
		name     string
		override Tree
		wantPath string
	}{
		{name: "partial top level", override: Tree{"a": 2}},
		{name: "partial nested", override: Tree{"c": Tree{"e": []any{"test"}}}},
		{name: "empty nested", override: Tree{"c": Tree{}}},
		{name: "empty override", override: Tree{}},
		{name: "unknown top level", override: Tree{"bar": "extra property"}, wantPath: "bar"},
		{name: "unknown nested", override: Tree{"c": Tree{"z": 1}}, wantPath: "c.z"},
		{name: "mapping for leaf", override: Tree{"a": Tree{"x": 1}}, wantPath: "a"},
		{name: "first sorted path reported", override: Tree{"zz": 1, "aa": 1}, wantPath: "aa"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckShape(shape, tc.override)
			if tc.wantPath == "" {
				require.NoError(t, err)
				return
			}

			var shapeErr *themeerrors.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			require.Equal(t, tc.wantPath, shapeErr.Path)
		})
	}
}

func TestMergeIgnoresShape(t *testing.T) {
	t.Parallel()

	shape := Tree{"foo": "x"}
	override := Tree{"bar": "extra property"}

	require.Error(t, CheckShape(shape, override))
	require.Equal(t, Tree{"foo": "x", "bar": "extra property"}, Merge(shape, override))
}
