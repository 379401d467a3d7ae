package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

type resolveOptions struct {
	themeName string
	overrides []string
	strict    bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print a theme after applying override files",
		Long: `Resolve a catalog theme and print it as YAML.

Each --override file is applied as a nested provider, in the order given, so
later files win over earlier ones key by key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.themeName, "theme", "t", "", "Theme to resolve (defaults to the catalog default)")
	cmd.Flags().StringArrayVarP(&opts.overrides, "override", "o", nil, "Override file to apply (repeatable)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject keys the theme does not define")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions) error {
	log := commandLogger(cmd, rootFlags, "resolve")

	catalog, err := loadCatalog(rootFlags, config.Options{Strict: opts.strict, Logger: log})
	if err != nil {
		return newCommandError("resolve", "loading theme catalog", err, "Check the catalog file with 'themekit list --catalog <file>'.")
	}

	name := opts.themeName
	if name == "" {
		name = catalog.DefaultName()
	}

	reg, err := catalog.Registry(name)
	if err != nil {
		return newCommandError("resolve", "selecting theme", err, "Run 'themekit list' to see the available themes.")
	}

	overrides := make([]theming.Tree, 0, len(opts.overrides))
	for _, path := range opts.overrides {
		if err := validateFilePath(path); err != nil {
			return newCommandError("resolve", "reading override "+path, err, "")
		}
		override, err := config.ParseOverride(path)
		if err != nil {
			return newCommandError("resolve", "reading override "+path, err, "")
		}
		if opts.strict {
			if err := theming.CheckShape(reg.Default(), override); err != nil {
				return newCommandError("resolve", "checking override "+path, err, "Remove the key or drop --strict.")
			}
		}
		log.Debug("override loaded", "path", path, "keys", len(override))
		overrides = append(overrides, override)
	}

	resolved := resolveThrough(commandContext(cmd), reg, overrides)

	out, err := yaml.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// resolveThrough nests one provider per override, outermost first, and
// returns the theme a wrapped component sees at the innermost level.
func resolveThrough(ctx context.Context, reg *theming.Registry, overrides []theming.Tree) theming.Tree {
	var resolved theming.Tree
	probe := reg.WithTheme(theming.ComponentFunc(func(_ context.Context, props theming.Props) string {
		resolved = props.Theme
		return ""
	}))

	var node theming.Node = theming.Elem(probe, theming.Props{})
	for i := len(overrides) - 1; i >= 0; i-- {
		node = reg.Provider(overrides[i], node)
	}
	node.Render(ctx)

	return resolved
}
