package theming

import (
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// CheckShape reports whether override only uses keys that exist in shape.
// Keys are visited in sorted order and the first offending path is returned
// as a *errors.ShapeError. Merge never calls this; it accepts unknown keys.
func CheckShape(shape, override Tree) error {
	return checkShape(shape, override, "")
}

func checkShape(shape, override Tree, prefix string) error {
	for _, key := range override.Keys() {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		existing, ok := shape[key]
		if !ok {
			return themeerrors.NewShapeError(path, "key is not part of the theme")
		}

		overNode, overIsTree := asTree(override[key])
		if !overIsTree {
			continue
		}
		shapeNode, shapeIsTree := asTree(existing)
		if !shapeIsTree {
			return themeerrors.NewShapeError(path, "mapping supplied for a leaf value")
		}
		if err := checkShape(shapeNode, overNode, path); err != nil {
			return err
		}
	}
	return nil
}
