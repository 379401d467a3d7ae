// Package components provides theme-aware presentation components for
// terminal output, built on lipgloss.
//
// Every component implements theming.Component and reads leaf values
// (colours, spacing, border name) from props.Theme. Components never resolve
// themes themselves; wrap them with a registry's WithTheme so the resolved
// theme arrives as a prop:
//
//	reg := theming.New(theme.Default())
//	header := reg.WithTheme(components.NewHeader("Contacts"))
//	out := reg.Provider(theme.Dark(), theming.Elem(header, theming.Props{})).Render(ctx)
//
// Rendered unwrapped, a component sees whatever props.Theme the caller
// passed, and missing keys simply render without colour.
package components
