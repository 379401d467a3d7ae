package config

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/theming"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Catalog is a resolved set of named themes. It is immutable once built and
// safe for concurrent readers.
type Catalog struct {
	themes      map[string]theming.Tree
	modes       map[string]theme.Mode
	names       []string
	defaultName string
}

// Builtin returns a catalog holding only the built-in themes.
func Builtin() *Catalog {
	c := &Catalog{
		themes:      theme.Builtin(),
		modes:       map[string]theme.Mode{theme.NameDefault: theme.ModeLight, theme.NameDark: theme.ModeDark},
		defaultName: theme.NameDefault,
	}
	c.names = sortedNames(c.themes)
	return c
}

// newCatalog validates doc and resolves every theme on top of the built-in
// ones. Document themes shadow built-ins of the same name. A theme without
// extends is merged over the built-in default theme.
func newCatalog(doc *Document, opts Options) (*Catalog, error) {
	base := Builtin()
	known := make(map[string]bool, len(base.themes))
	for name := range base.themes {
		known[name] = true
	}

	if err := ValidateDocument(doc, known); err != nil {
		return nil, err
	}

	specs := make(map[string]ThemeSpec, len(doc.Themes))
	for i, spec := range doc.Themes {
		values := theming.MergeValue(nil, spec.Values)
		if opts.Strict {
			if err := theming.CheckShape(theme.Default(), values); err != nil {
				return nil, fmt.Errorf("%s: %w", fieldForTheme(i, "values"), err)
			}
		}
		spec.Values = values
		specs[spec.Name] = spec
	}

	r := &resolver{specs: specs, builtin: base, themes: map[string]theming.Tree{}, modes: map[string]theme.Mode{}}
	for _, spec := range doc.Themes {
		if err := r.resolve(spec.Name); err != nil {
			return nil, err
		}
	}

	for name, resolved := range base.themes {
		if _, ok := r.themes[name]; !ok {
			r.themes[name] = resolved
			r.modes[name] = base.modes[name]
		}
	}

	c := &Catalog{
		themes:      r.themes,
		modes:       r.modes,
		names:       sortedNames(r.themes),
		defaultName: doc.Default,
	}
	if c.defaultName == "" {
		c.defaultName = doc.Themes[0].Name
	}
	return c, nil
}

type resolver struct {
	specs   map[string]ThemeSpec
	builtin *Catalog
	themes  map[string]theming.Tree
	modes   map[string]theme.Mode
}

// resolve merges a theme over its resolved parent. Cycles are rejected by
// validation before resolve runs.
func (r *resolver) resolve(name string) error {
	if _, done := r.themes[name]; done {
		return nil
	}

	spec, ok := r.specs[name]
	if !ok {
		parent, ok := r.builtin.themes[name]
		if !ok {
			return themeerrors.NewNotFoundError("theme", name)
		}
		r.themes[name] = parent
		r.modes[name] = r.builtin.modes[name]
		return nil
	}

	parentTheme := theme.Default()
	parentMode := theme.ModeLight
	if spec.Extends != "" {
		if err := r.resolve(spec.Extends); err != nil {
			return err
		}
		parentTheme = r.themes[spec.Extends]
		parentMode = r.modes[spec.Extends]
	}

	mode := parentMode
	if spec.Mode != "" {
		parsed, err := theme.ParseMode(spec.Mode)
		if err != nil {
			return themeerrors.NewValidationError("mode", err.Error(), err)
		}
		mode = parsed
	}

	r.themes[name] = theming.MergeValue(parentTheme, spec.Values)
	r.modes[name] = mode
	return nil
}

// Theme returns a copy of the resolved theme called name.
func (c *Catalog) Theme(name string) (theming.Tree, error) {
	resolved, ok := c.themes[name]
	if !ok {
		return nil, themeerrors.NewNotFoundError("theme", name)
	}
	return resolved.Clone(), nil
}

// Mode reports whether the named theme is a light or dark theme.
func (c *Catalog) Mode(name string) (theme.Mode, error) {
	mode, ok := c.modes[name]
	if !ok {
		return theme.ModeLight, themeerrors.NewNotFoundError("theme", name)
	}
	return mode, nil
}

// Names lists the catalog's themes in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// DefaultName is the theme used when none is requested.
func (c *Catalog) DefaultName() string {
	return c.defaultName
}

// Registry creates a theming registry whose default is the named theme.
func (c *Catalog) Registry(name string) (*theming.Registry, error) {
	resolved, err := c.Theme(name)
	if err != nil {
		return nil, err
	}
	return theming.New(resolved), nil
}

// ThemeForMode returns the first theme, by name, with the given mode,
// preferring the catalog default.
func (c *Catalog) ThemeForMode(mode theme.Mode) (string, bool) {
	if c.modes[c.defaultName] == mode {
		return c.defaultName, true
	}
	for _, name := range c.names {
		if c.modes[name] == mode {
			return name, true
		}
	}
	return "", false
}

func sortedNames(themes map[string]theming.Tree) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
