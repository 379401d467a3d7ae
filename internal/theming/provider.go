package theming

import "context"

// Provider is a subtree boundary. Its Theme is merged on top of whatever the
// enclosing provider resolved to (or the default) and the result is visible
// to every node in Children.
type Provider struct {
	slot     *Context
	Theme    Tree
	Children []Node
}

// NewProvider returns a constructor for providers bound to slot.
func NewProvider(slot *Context) func(theme Tree, children ...Node) *Provider {
	return func(theme Tree, children ...Node) *Provider {
		return &Provider{slot: slot, Theme: theme, Children: children}
	}
}

// Render publishes the merged theme and renders the children with it.
func (p *Provider) Render(ctx context.Context) string {
	return RenderChildren(p.slot.Provide(ctx, p.Theme), p.Children)
}

// Scope returns the context the provider's children render in.
func (p *Provider) Scope(ctx context.Context) context.Context {
	return p.slot.Provide(ctx, p.Theme)
}
