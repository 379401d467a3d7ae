// Package alert keeps the list of transient notifications shown to the user
// and renders it as themed banners.
package alert

// Alert is one notification. Type selects the banner colour ("success",
// "danger", "info", "light" or "dark").
type Alert struct {
	ID   string `yaml:"id"`
	Msg  string `yaml:"msg"`
	Type string `yaml:"type"`
}

// ActionType names a state transition.
type ActionType string

const (
	SetAlert    ActionType = "SET_ALERT"
	RemoveAlert ActionType = "REMOVE_ALERT"
)

// Action is dispatched to Reduce. SetAlert carries Alert; RemoveAlert
// carries ID.
type Action struct {
	Type  ActionType
	Alert Alert
	ID    string
}

// Reduce returns the state after applying action. The input slice is never
// modified. A nil state reduces as an empty list; unknown actions and
// removals of missing IDs return the state unchanged.
func Reduce(state []Alert, action Action) []Alert {
	switch action.Type {
	case SetAlert:
		next := make([]Alert, 0, len(state)+1)
		next = append(next, state...)
		return append(next, action.Alert)
	case RemoveAlert:
		next := make([]Alert, 0, len(state))
		for _, a := range state {
			if a.ID != action.ID {
				next = append(next, a)
			}
		}
		if len(next) == len(state) {
			return orEmpty(state)
		}
		return next
	default:
		return orEmpty(state)
	}
}

func orEmpty(state []Alert) []Alert {
	if state == nil {
		return []Alert{}
	}
	return state
}
