package theming

import "context"

// Registry is one theming namespace: a default theme, the slot it is
// propagated through, and the provider, wrapper and resolver bound to that
// slot. Registries are immutable and safe for concurrent use.
type Registry struct {
	slot      *Context
	provider  func(theme Tree, children ...Node) *Provider
	withTheme func(Component) *Themed
}

// New creates a theming namespace around defaultTheme. Each call yields an
// independent namespace, even for identical defaults.
func New(defaultTheme Tree) *Registry {
	slot := NewContext(defaultTheme)
	return &Registry{
		slot:      slot,
		provider:  NewProvider(slot),
		withTheme: NewWithTheme(slot),
	}
}

// Context returns the registry's propagation slot.
func (r *Registry) Context() *Context {
	return r.slot
}

// Default returns a copy of the default theme.
func (r *Registry) Default() Tree {
	return r.slot.Default()
}

// Provider creates a provider node merging theme over the enclosing value.
func (r *Registry) Provider(theme Tree, children ...Node) *Provider {
	return r.provider(theme, children...)
}

// WithTheme wraps c so it renders with the theme resolved from its props.
func (r *Registry) WithTheme(c Component) *Themed {
	return r.withTheme(c)
}

// UseTheme resolves the theme visible at ctx with override applied on top.
func (r *Registry) UseTheme(ctx context.Context, override Tree) Tree {
	return r.slot.Resolve(ctx, override)
}

// Provide publishes theme for everything rendered with the returned
// context. It is the functional form of Provider.
func (r *Registry) Provide(ctx context.Context, theme Tree) context.Context {
	return r.slot.Provide(ctx, theme)
}
