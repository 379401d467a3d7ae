package main

import (
	"errors"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui/preview"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type previewOptions struct {
	mode         string
	alertTimeout time.Duration
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Launch the interactive theme preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "light", "Initial mode (light or dark)")
	cmd.Flags().DurationVar(&opts.alertTimeout, "alert-timeout", 0, "How long sample alerts stay visible")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("preview", "starting the preview", errNotTerminal, "Run 'themekit render' for non-interactive output.")
	}

	mode, err := theme.ParseMode(opts.mode)
	if err != nil {
		return newCommandError("preview", "parsing --mode", err, "Use --mode light or --mode dark.")
	}

	log := commandLogger(cmd, rootFlags, "preview")
	catalog, err := loadCatalog(rootFlags, config.Options{Logger: log})
	if err != nil {
		return newCommandError("preview", "loading theme catalog", err, "Check the catalog file with 'themekit list --catalog <file>'.")
	}

	model := preview.NewModel(preview.Options{
		Catalog:      catalog,
		Mode:         mode,
		AlertTimeout: opts.alertTimeout,
		Logger:       log,
	})

	log.Info("launching preview", "mode", mode.String())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(commandContext(cmd)))
	if _, err := program.Run(); err != nil {
		log.Error(err, "preview failed")
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
