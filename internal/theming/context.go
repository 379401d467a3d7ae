package theming

import "context"

// Context is the propagation slot of one theming namespace. A provider
// publishes its merged theme into a context.Context under the slot's key and
// consumers below it read the value back. Slots from different registries
// never see each other's values.
type Context struct {
	defaults Tree
}

type slotKey struct {
	slot *Context
}

// NewContext creates a slot that falls back to defaultTheme when no provider
// has published a value.
func NewContext(defaultTheme Tree) *Context {
	return &Context{defaults: defaultTheme.Clone()}
}

// Default returns a copy of the slot's default theme.
func (c *Context) Default() Tree {
	return c.defaults.Clone()
}

// Value returns the theme published by the nearest enclosing provider. The
// second result is false when no provider of this slot is present; the
// default theme is never reported here. The returned tree must not be
// modified.
func (c *Context) Value(ctx context.Context) (Tree, bool) {
	if ctx == nil {
		return nil, false
	}
	tree, ok := ctx.Value(slotKey{slot: c}).(Tree)
	return tree, ok
}

// Provide returns a child context carrying the enclosing theme (or the
// default) merged with override.
func (c *Context) Provide(ctx context.Context, override Tree) context.Context {
	return context.WithValue(ctx, slotKey{slot: c}, c.Resolve(ctx, override))
}

// Resolve returns the theme a component should render with: the enclosing
// provider's value, or the default when there is none, merged with override.
func (c *Context) Resolve(ctx context.Context, override Tree) Tree {
	base, ok := c.Value(ctx)
	if !ok {
		base = c.defaults
	}
	return Merge(base, override)
}
