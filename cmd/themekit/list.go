package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
)

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the themes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags) error {
	log := commandLogger(cmd, rootFlags, "list")

	catalog, err := loadCatalog(rootFlags, config.Options{Logger: log})
	if err != nil {
		return newCommandError("list", "loading theme catalog", err, "Fix the reported field and try again.")
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tMODE\tDEFAULT")

	for _, name := range catalog.Names() {
		mode, err := catalog.Mode(name)
		if err != nil {
			return err
		}
		marker := ""
		if name == catalog.DefaultName() {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", name, mode, marker)
	}

	return writer.Flush()
}
