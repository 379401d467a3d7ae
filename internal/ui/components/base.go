package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// StyleFunc applies styling to a lipgloss.Style using values read from a
// resolved theme.
type StyleFunc func(lipgloss.Style, theming.Tree) lipgloss.Style

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme theming.Tree) lipgloss.Style
}

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme theming.Tree) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent provides the style plumbing shared by all components.
// Embed it and call ComputeStyle with the theme received in props.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the component style with every applier run against
// theme, in the order they were added.
func (b *BaseComponent) ComputeStyle(theme theming.Tree) lipgloss.Style {
	return NewCompositeStrategy(b.appliers...).Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// ColorAt reads a colour leaf from the theme. Missing keys yield the empty
// colour, which lipgloss treats as "no colour".
func ColorAt(theme theming.Tree, path string) lipgloss.Color {
	return lipgloss.Color(theme.String(path))
}

// IntAt reads an integer leaf, falling back when absent.
func IntAt(theme theming.Tree, path string, fallback int) int {
	if value, ok := theme.Int(path); ok {
		return value
	}
	return fallback
}

// BorderNamed maps a theme border name to a lipgloss border.
func BorderNamed(name string) (lipgloss.Border, bool) {
	switch name {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

// Foreground sets the text colour from the theme key.
func Foreground(key string) StyleFunc {
	return func(base lipgloss.Style, theme theming.Tree) lipgloss.Style {
		if c := ColorAt(theme, key); c != "" {
			return base.Foreground(c)
		}
		return base
	}
}

// Background sets the background colour from the theme key.
func Background(key string) StyleFunc {
	return func(base lipgloss.Style, theme theming.Tree) lipgloss.Style {
		if c := ColorAt(theme, key); c != "" {
			return base.Background(c)
		}
		return base
	}
}

// PaddingX applies the theme's horizontal padding.
func PaddingX() StyleFunc {
	return func(base lipgloss.Style, theme theming.Tree) lipgloss.Style {
		value := IntAt(theme, "spacing.padding", 0)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// ThemeBorder applies the border named by the theme's "border" key, tinted
// with the colour at colorKey.
func ThemeBorder(colorKey string) StyleFunc {
	return func(base lipgloss.Style, theme theming.Tree) lipgloss.Style {
		border, ok := BorderNamed(theme.String("border"))
		if !ok {
			return base
		}
		base = base.Border(border)
		if c := ColorAt(theme, colorKey); c != "" {
			base = base.BorderForeground(c)
		}
		return base
	}
}
