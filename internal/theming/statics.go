package theming

import "context"

// Statics is metadata attached to a component, such as a default size or a
// variant table, that callers read off the component itself.
type Statics map[string]any

// StaticHolder is implemented by components that carry statics.
type StaticHolder interface {
	Statics() Statics
}

// Named is implemented by components with an explicit display name.
type Named interface {
	DisplayName() string
}

var reservedStatics = map[string]struct{}{
	"displayName": {},
	"name":        {},
	"type":        {},
}

// HoistStatics copies the non-reserved statics of source. Components without
// statics yield an empty set.
func HoistStatics(source Component) Statics {
	out := Statics{}
	holder, ok := source.(StaticHolder)
	if !ok {
		return out
	}
	for key, value := range holder.Statics() {
		if _, reserved := reservedStatics[key]; reserved {
			continue
		}
		out[key] = value
	}
	return out
}

// Definition is a named render function with attached statics.
type Definition struct {
	name    string
	render  ComponentFunc
	statics Statics
}

// Define creates a component called name.
func Define(name string, render ComponentFunc, statics Statics) *Definition {
	copied := make(Statics, len(statics))
	for key, value := range statics {
		copied[key] = value
	}
	return &Definition{name: name, render: render, statics: copied}
}

// Render calls the render function.
func (d *Definition) Render(ctx context.Context, props Props) string {
	return d.render(ctx, props)
}

// DisplayName returns the defined name.
func (d *Definition) DisplayName() string {
	return d.name
}

// Statics returns a copy of the attached statics.
func (d *Definition) Statics() Statics {
	out := make(Statics, len(d.statics))
	for key, value := range d.statics {
		out[key] = value
	}
	return out
}
