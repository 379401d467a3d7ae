package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("themes.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themes.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: themes.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("override.yaml", 0, fmt.Errorf("document is not a mapping"))
	require.Equal(t, "parse error: override.yaml: document is not a mapping", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("themes[1].extends", "references unknown theme", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "themes[1].extends", validationErr.Field)
	require.Contains(t, err.Error(), "references unknown theme")
}

func TestShapeErrorIncludesPath(t *testing.T) {
	t.Parallel()

	err := NewShapeError("alert.border", "key is not part of the theme")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "alert.border", shapeErr.Path)
	require.Equal(t, "shape error: alert.border: key is not part of the theme", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	require.Equal(t, `theme not found: "solarized"`, NewNotFoundError("theme", "solarized").Error())
	require.Equal(t, `not found: "x"`, NewNotFoundError("", "x").Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var shapeErr *ShapeError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Empty(t, shapeErr.Error())
}
