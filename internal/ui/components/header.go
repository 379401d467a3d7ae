package components

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// DefaultHeaderTitle is shown when neither the header nor its props name a title.
const DefaultHeaderTitle = "themekit"

// Header renders a title bar in the theme's text and background colours.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.AddAppliers(
		Foreground("textColor"),
		Background("backgroundColor"),
		PaddingX(),
	)
	return h
}

// Render draws the header. A "title" attribute replaces the configured
// title. The header exposes itself through props.Ref.
func (h *Header) Render(_ context.Context, props theming.Props) string {
	props.Ref.Set(h)

	title := h.title
	if override := props.StringAttr("title"); override != "" {
		title = override
	}
	if title == "" {
		title = DefaultHeaderTitle
	}

	style := h.ComputeStyle(props.Theme).Bold(true)
	if h.subtitle == "" {
		return style.Render(title)
	}

	subtitleStyle := h.ComputeStyle(props.Theme).
		Bold(false).
		Foreground(ColorAt(props.Theme, "secondaryColor"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(title),
		subtitleStyle.Render(h.subtitle),
	)
}

// DisplayName names the component in diagnostics.
func (h *Header) DisplayName() string {
	return "Header"
}

// Statics exposes the header defaults.
func (h *Header) Statics() theming.Statics {
	return theming.Statics{"defaultTitle": DefaultHeaderTitle}
}

// WithSubtitle adds a secondary line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithStyle sets the header style.
func (h *Header) WithStyle(style lipgloss.Style) *Header {
	h.SetStyle(style)
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}
