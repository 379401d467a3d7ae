package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <theme> <theme>",
		Short: "Show how two resolved themes differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, args[0], args[1])
		},
	}

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, before, after string) error {
	log := commandLogger(cmd, rootFlags, "diff")

	catalog, err := loadCatalog(rootFlags, config.Options{Logger: log})
	if err != nil {
		return newCommandError("diff", "loading theme catalog", err, "Check the catalog file with 'themekit list --catalog <file>'.")
	}

	beforeYAML, err := themeYAML(catalog, before)
	if err != nil {
		return newCommandError("diff", "resolving "+before, err, "Run 'themekit list' to see the available themes.")
	}
	afterYAML, err := themeYAML(catalog, after)
	if err != nil {
		return newCommandError("diff", "resolving "+after, err, "Run 'themekit list' to see the available themes.")
	}

	out := diff.Unified(beforeYAML, afterYAML, before, after)
	if out == "" {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are identical\n", before, after)
		return err
	}

	inserted, deleted := diff.Stat(beforeYAML, afterYAML)
	log.Debug("themes compared", "before", before, "after", after, "inserted", inserted, "deleted", deleted)
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func themeYAML(catalog *config.Catalog, name string) ([]byte, error) {
	resolved, err := catalog.Theme(name)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(resolved)
}
