package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case alertExpiredMsg:
		m.store.Remove(msg.ID)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.mode = m.mode.Toggle()
		m.log.Debug("mode toggled", "mode", m.mode.String(), "theme", m.ThemeName())
		return m, nil

	case key.Matches(msg, m.keys.Add):
		sample := samples[m.next%len(samples)]
		m.next++
		a := m.store.Set(sample.Msg, sample.Type, m.timeout)
		return m, expireAlertCmd(a.ID, m.timeout)

	case key.Matches(msg, m.keys.Dismiss):
		if alerts := m.store.Alerts(); len(alerts) > 0 {
			m.store.Remove(alerts[0].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}
