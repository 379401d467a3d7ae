package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

type rootFlags struct {
	verbose     bool
	catalogPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit resolves, renders and previews terminal themes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.catalogPath, "catalog", "c", "", "Theme catalog file (defaults to the built-in themes)")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// commandLogger builds the logger for one command invocation. Output goes to
// the command's stderr so it never mixes with rendered results.
func commandLogger(cmd *cobra.Command, flags *rootFlags, component string) *logger.Logger {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
	if err != nil {
		return logger.Nop()
	}
	return log
}

// loadCatalog reads the catalog named by --catalog, or returns the built-in
// themes when the flag is unset.
func loadCatalog(flags *rootFlags, opts config.Options) (*config.Catalog, error) {
	if flags.catalogPath == "" {
		return config.Builtin(), nil
	}
	if err := validateFilePath(flags.catalogPath); err != nil {
		return nil, err
	}
	return config.ParseCatalog(flags.catalogPath, opts)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
