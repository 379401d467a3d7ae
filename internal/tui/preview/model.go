// Package preview is an interactive bubbletea view of a theme catalog. It
// renders a themed header, a badge and the alert list inside a provider for
// the current light/dark mode.
package preview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/alert"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// sample alerts cycled through by the add key
var samples = []alert.Alert{
	{Msg: "Contact added", Type: "success"},
	{Msg: "Please fill in all fields", Type: "danger"},
	{Msg: "Contact updated", Type: "info"},
	{Msg: "Filter cleared", Type: "light"},
	{Msg: "Logged out", Type: "dark"},
}

// Options configure the preview.
type Options struct {
	Catalog      *config.Catalog
	Mode         theme.Mode
	AlertTimeout time.Duration
	Logger       *logger.Logger
}

// Model is the preview state.
type Model struct {
	catalog  *config.Catalog
	registry *theming.Registry
	store    *alert.Store
	log      *logger.Logger

	mode    theme.Mode
	next    int
	timeout time.Duration

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a preview model. A nil catalog uses the built-in themes.
func NewModel(opts Options) Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = config.Builtin()
	}

	timeout := opts.AlertTimeout
	if timeout <= 0 {
		timeout = alert.DefaultTimeout
	}

	return Model{
		catalog:  catalog,
		registry: theming.New(theme.Default()),
		store:    alert.NewStore(alert.WithLogger(opts.Logger)),
		log:      opts.Logger,
		mode:     opts.Mode,
		timeout:  timeout,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current light/dark mode.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// ThemeName returns the catalog theme shown for the current mode, or "" when
// the catalog has none and the built-in theme is used.
func (m Model) ThemeName() string {
	name, _ := m.catalog.ThemeForMode(m.mode)
	return name
}

// Alerts returns the visible alerts, oldest first.
func (m Model) Alerts() []alert.Alert {
	return m.store.Alerts()
}

// currentTheme resolves the tree published by the top-level provider.
func (m Model) currentTheme() theming.Tree {
	if name, ok := m.catalog.ThemeForMode(m.mode); ok {
		if resolved, err := m.catalog.Theme(name); err == nil {
			return resolved
		}
	}
	return theme.ThemeFor(m.mode)
}

func (m Model) renderContext() context.Context {
	return context.Background()
}
