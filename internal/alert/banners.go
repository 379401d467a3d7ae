package alert

import (
	"github.com/alexisbeaulieu97/themekit/internal/theming"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// Banners builds one element per alert, all drawn by banner. Pass a
// banner wrapped with a registry's WithTheme so the elements pick up the
// surrounding provider.
func Banners(banner theming.Component, alerts []Alert) []theming.Node {
	nodes := make([]theming.Node, 0, len(alerts))
	for _, a := range alerts {
		nodes = append(nodes, theming.Elem(banner, theming.Props{
			Attrs: map[string]any{"msg": a.Msg, "type": a.Type, "id": a.ID},
		}))
	}
	return nodes
}

// List renders alerts as a vertical stack of themed banners inside reg's
// theme. An empty list renders nothing.
func List(reg *theming.Registry, alerts []Alert) theming.Node {
	banner := reg.WithTheme(components.NewAlertBanner())
	return theming.Elem(components.VStack(), theming.Props{Children: Banners(banner, alerts)})
}
