package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/alert"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/theming"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

type renderOptions struct {
	themeName string
	title     string
	overrides []string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render sample components with a theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.themeName, "theme", "t", "", "Theme to render with (defaults to the catalog default)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Header title")
	cmd.Flags().StringArrayVarP(&opts.overrides, "override", "o", nil, "Override file to apply (repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	log := commandLogger(cmd, rootFlags, "render")

	catalog, err := loadCatalog(rootFlags, config.Options{Logger: log})
	if err != nil {
		return newCommandError("render", "loading theme catalog", err, "Check the catalog file with 'themekit list --catalog <file>'.")
	}

	name := opts.themeName
	if name == "" {
		name = catalog.DefaultName()
	}
	reg, err := catalog.Registry(name)
	if err != nil {
		return newCommandError("render", "selecting theme", err, "Run 'themekit list' to see the available themes.")
	}

	override := theming.Tree{}
	for _, path := range opts.overrides {
		if err := validateFilePath(path); err != nil {
			return newCommandError("render", "reading override "+path, err, "")
		}
		next, err := config.ParseOverride(path)
		if err != nil {
			return newCommandError("render", "reading override "+path, err, "")
		}
		override = theming.Merge(override, next)
	}

	header := reg.WithTheme(components.NewHeader(opts.title).WithSubtitle("theme: " + name))
	badges := theming.Elem(components.HStack().WithGap(1), theming.Props{Children: []theming.Node{
		theming.Elem(reg.WithTheme(components.NewBadge("primary")), theming.Props{}),
		theming.Elem(reg.WithTheme(components.NewBadge("accent").WithVariant(components.BadgeAccent)), theming.Props{}),
		theming.Elem(reg.WithTheme(components.NewBadge("secondary").WithVariant(components.BadgeSecondary)), theming.Props{}),
	}})

	page := reg.Provider(override,
		theming.Elem(components.VStack().WithGap(1), theming.Props{Children: []theming.Node{
			theming.Elem(header, theming.Props{}),
			badges,
			alert.List(reg, sampleAlerts()),
		}}),
	)

	log.Debug("rendering sample", "theme", name, "overrides", len(opts.overrides))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), page.Render(commandContext(cmd)))
	return err
}

func sampleAlerts() []alert.Alert {
	kinds := []string{
		components.AlertSuccess,
		components.AlertDanger,
		components.AlertInfo,
		components.AlertLight,
		components.AlertDark,
	}

	alerts := make([]alert.Alert, 0, len(kinds))
	for i, kind := range kinds {
		alerts = append(alerts, alert.Alert{
			ID:   fmt.Sprint(i + 1),
			Msg:  fmt.Sprintf("%s alert", kind),
			Type: kind,
		})
	}
	return alerts
}
