// Package theming propagates a theme value through a tree of string-rendered
// components.
//
// # Namespaces
//
// New creates a theming namespace from a default theme:
//
//	reg := theming.New(theming.Tree{"color": "blue", "size": 10})
//
// Every namespace owns one propagation slot. Providers, wrappers and
// resolvers from the same namespace see each other; those from another
// namespace do not.
//
// # Providers
//
// A Provider merges its Theme on top of the theme visible from the enclosing
// provider, or the default when there is none, and publishes the result to
// its children through context.Context:
//
//	page := reg.Provider(theming.Tree{"color": "red"},
//		reg.Provider(theming.Tree{"size": 20}, theming.Elem(header, theming.Props{})),
//	)
//	out := page.Render(context.Background())
//
// Code that works with contexts directly can use Registry.Provide and
// Registry.UseTheme instead of nodes.
//
// # Wrapping components
//
// WithTheme wraps a Component so it receives the resolved theme in
// props.Theme. Whatever the caller passes as props.Theme is applied as a
// local override. The wrapper hoists the wrapped component's statics, passes
// props.Ref through untouched and reports "withTheme(Name)" as its display
// name.
//
// # Merging
//
// Merge is a structural merge over Tree values: mappings merge recursively,
// everything else is replaced. It is permissive about keys the default
// theme does not define. CheckShape offers the strict check for callers that
// want it, and Typed expresses the same contract through a struct type.
package theming
