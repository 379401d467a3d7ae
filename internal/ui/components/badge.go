package components

import (
	"context"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// BadgeVariant specifies which theme colour a badge is drawn in.
type BadgeVariant string

const (
	BadgePrimary   BadgeVariant = "primaryColor"
	BadgeAccent    BadgeVariant = "accentColor"
	BadgeSecondary BadgeVariant = "secondaryColor"
)

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a primary badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgePrimary,
	}
}

// Render draws the badge on the variant colour.
func (b *Badge) Render(_ context.Context, props theming.Props) string {
	style := b.ComputeStyle(props.Theme).
		Padding(0, 1).
		Foreground(ColorAt(props.Theme, "backgroundColor"))
	if c := ColorAt(props.Theme, string(b.variant)); c != "" {
		style = style.Background(c)
	}
	return style.Render(b.text)
}

// Statics lists the supported variants.
func (b *Badge) Statics() theming.Statics {
	return theming.Statics{
		"variants": []BadgeVariant{BadgePrimary, BadgeAccent, BadgeSecondary},
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
