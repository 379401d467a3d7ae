package components

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theming"
)

// Alert types understood by AlertBanner. Each maps to "alert.<type>" in the
// theme.
const (
	AlertSuccess = "success"
	AlertDanger  = "danger"
	AlertInfo    = "info"
	AlertLight   = "light"
	AlertDark    = "dark"
)

var alertIcons = map[string]string{
	AlertSuccess: "✓",
	AlertDanger:  "✗",
	AlertInfo:    "ℹ",
	AlertLight:   "•",
	AlertDark:    "•",
}

// AlertBanner renders one notification. It is stateless: the message and
// type arrive as the "msg" and "type" attributes so a single wrapped banner
// can render every alert in a list.
type AlertBanner struct {
	BaseComponent
}

// NewAlertBanner creates an alert banner.
func NewAlertBanner() *AlertBanner {
	a := &AlertBanner{BaseComponent: NewBaseComponent()}
	a.AddAppliers(PaddingX())
	return a
}

// Render draws the banner. Unknown types render as info. The banner exposes
// itself through props.Ref.
func (a *AlertBanner) Render(_ context.Context, props theming.Props) string {
	props.Ref.Set(a)

	kind := props.StringAttr("type")
	icon, ok := alertIcons[kind]
	if !ok {
		kind = AlertInfo
		icon = alertIcons[AlertInfo]
	}

	accent := ColorAt(props.Theme, "alert."+kind)
	style := a.ComputeStyle(props.Theme).
		Foreground(ColorAt(props.Theme, "textColor"))
	if border, ok := BorderNamed(props.Theme.String("border")); ok {
		style = style.Border(border, false, false, false, true).BorderForeground(accent)
	}

	iconStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	return style.Render(iconStyle.Render(icon) + " " + props.StringAttr("msg"))
}

// DisplayName names the component in diagnostics.
func (a *AlertBanner) DisplayName() string {
	return "AlertBanner"
}

// Statics exposes the icon table.
func (a *AlertBanner) Statics() theming.Statics {
	icons := make(map[string]string, len(alertIcons))
	for kind, icon := range alertIcons {
		icons[kind] = icon
	}
	return theming.Statics{"icons": icons}
}

// AlertIcon returns the icon used for an alert type.
func AlertIcon(kind string) string {
	if icon, ok := alertIcons[kind]; ok {
		return icon
	}
	return alertIcons[AlertInfo]
}
