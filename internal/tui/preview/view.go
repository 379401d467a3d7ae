package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/alert"
	"github.com/alexisbeaulieu97/themekit/internal/theming"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	alerts := m.store.Alerts()

	subtitle := fmt.Sprintf("mode: %s", m.mode)
	if name := m.ThemeName(); name != "" {
		subtitle = fmt.Sprintf("mode: %s  theme: %s", m.mode, name)
	}

	header := m.registry.WithTheme(components.NewHeader("themekit preview").WithSubtitle(subtitle))
	badge := m.registry.WithTheme(components.NewBadge(fmt.Sprintf("%d alerts", len(alerts))).WithVariant(components.BadgeAccent))

	children := []theming.Node{
		theming.Elem(header, theming.Props{}),
		theming.Elem(badge, theming.Props{}),
	}
	if len(alerts) > 0 {
		children = append(children, alert.List(m.registry, alerts))
	} else {
		empty := m.registry.WithTheme(components.MutedText("No alerts. Press a to add one."))
		children = append(children, theming.Elem(empty, theming.Props{}))
	}

	body := m.registry.Provider(m.currentTheme(),
		theming.Elem(components.VStack().WithGap(1), theming.Props{Children: children}),
	).Render(m.renderContext())

	var content strings.Builder
	content.WriteString(body)
	content.WriteString("\n\n")
	content.WriteString(m.help.View(m.keys))
	return content.String()
}
