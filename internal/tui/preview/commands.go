package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// expireAlertCmd removes the alert once its timeout elapses.
func expireAlertCmd(id string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return alertExpiredMsg{ID: id}
	})
}
