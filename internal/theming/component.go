package theming

import (
	"context"

	"github.com/charmbracelet/lipgloss"
)

// Node is anything that renders to a string within a context.
type Node interface {
	Render(ctx context.Context) string
}

// Component renders a set of props. The resolved theme, the handle and the
// children all travel through Props.
type Component interface {
	Render(ctx context.Context, props Props) string
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(ctx context.Context, props Props) string

// Render calls f.
func (f ComponentFunc) Render(ctx context.Context, props Props) string {
	return f(ctx, props)
}

// Props carries everything a component is rendered with.
type Props struct {
	// Theme holds an override when passed to a wrapper and the resolved
	// theme when received by a wrapped component.
	Theme    Tree
	Ref      *Ref
	Children []Node
	Attrs    map[string]any
}

// Attr returns the named attribute or nil.
func (p Props) Attr(name string) any {
	return p.Attrs[name]
}

// StringAttr returns the named attribute when it is a string.
func (p Props) StringAttr(name string) string {
	s, _ := p.Attrs[name].(string)
	return s
}

// Ref is a handle a caller attaches to a component. The component decides
// what it exposes through it.
type Ref struct {
	current any
}

// NewRef returns an empty handle.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the exposed value. Setting a nil Ref is a no-op.
func (r *Ref) Set(value any) {
	if r == nil {
		return
	}
	r.current = value
}

// Current returns the exposed value, or nil.
func (r *Ref) Current() any {
	if r == nil {
		return nil
	}
	return r.current
}

// Element binds a component to the props it renders with.
type Element struct {
	Component Component
	Props     Props
}

// Elem creates an element for c.
func Elem(c Component, props Props) Element {
	return Element{Component: c, Props: props}
}

// Render renders the component with the element's props.
func (e Element) Render(ctx context.Context) string {
	return e.Component.Render(ctx, e.Props)
}

// RenderChildren renders nodes in order and stacks the output vertically.
func RenderChildren(ctx context.Context, children []Node) string {
	if len(children) == 0 {
		return ""
	}
	parts := make([]string, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		parts = append(parts, child.Render(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
