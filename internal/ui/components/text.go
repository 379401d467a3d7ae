package components

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component in the theme's text colour.
func NewText(content string) *Text {
	t := &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
	t.AddAppliers(Foreground("textColor"))
	return t
}

// MutedText creates a text component in the theme's secondary colour.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground("secondaryColor"))
}

// Render draws the text with its styling.
func (t *Text) Render(_ context.Context, props theming.Props) string {
	return t.ComputeStyle(props.Theme).Render(t.content)
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}
