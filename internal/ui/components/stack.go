package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges props.Children in a single direction.
type Stack struct {
	BaseComponent
	direction Direction
	gap       int
}

// VStack creates a vertical stack.
func VStack() *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack() *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), direction: DirectionHorizontal}
}

// WithGap sets the number of blank lines (vertical) or spaces (horizontal)
// between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// Render renders the children in ctx and joins them.
func (s *Stack) Render(ctx context.Context, props theming.Props) string {
	views := make([]string, 0, len(props.Children)*2)
	for _, child := range props.Children {
		if child == nil {
			continue
		}
		if len(views) > 0 && s.gap > 0 {
			views = append(views, s.spacer())
		}
		views = append(views, child.Render(ctx))
	}
	if len(views) == 0 {
		return ""
	}

	var joined string
	if s.direction == DirectionHorizontal {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	} else {
		joined = lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return s.ComputeStyle(props.Theme).Render(joined)
}

func (s *Stack) spacer() string {
	if s.direction == DirectionHorizontal {
		return strings.Repeat(" ", s.gap)
	}
	return strings.Repeat("\n", s.gap-1)
}
