package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// Names of the built-in themes.
const (
	NameDefault = "default"
	NameDark    = "dark"
)

// Default returns the light application theme. It defines the full shape
// every override is checked against.
func Default() theming.Tree {
	return theming.Tree{
		"primaryColor":    "#1e88e5",
		"accentColor":     "#ff4081",
		"backgroundColor": "#ffffff",
		"textColor":       "#212121",
		"secondaryColor":  "#757575",
		"alert": theming.Tree{
			"success": "#2e7d32",
			"danger":  "#c62828",
			"info":    "#0277bd",
			"light":   "#eceff1",
			"dark":    "#263238",
		},
		"spacing": theming.Tree{
			"padding": 1,
			"margin":  0,
		},
		"border": "rounded",
	}
}

// Dark returns the dark application theme.
func Dark() theming.Tree {
	return theming.Merge(Default(), theming.Tree{
		"primaryColor":    "#90caf9",
		"backgroundColor": "#121212",
		"textColor":       "#eeeeee",
		"secondaryColor":  "#b0bec5",
		"alert": theming.Tree{
			"light": "#37474f",
			"dark":  "#eceff1",
		},
	})
}

// Builtin returns the built-in themes keyed by name.
func Builtin() map[string]theming.Tree {
	return map[string]theming.Tree{
		NameDefault: Default(),
		NameDark:    Dark(),
	}
}

// Mode selects between the light and dark themes.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// String returns "light" or "dark".
func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("unknown theme mode %q", value)
	}
}

// ThemeFor returns the built-in theme for m.
func ThemeFor(m Mode) theming.Tree {
	if m == ModeDark {
		return Dark()
	}
	return Default()
}
