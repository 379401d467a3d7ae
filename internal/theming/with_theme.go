package theming

import (
	"context"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

const anonymousName = "Component"

var closureSuffix = regexp.MustCompile(`^(func)?\d+$`)

// Themed wraps a component so that it always receives a resolved theme.
// It carries the wrapped component's statics and is otherwise transparent:
// the Ref, Children and Attrs of the caller reach the wrapped component
// unchanged.
type Themed struct {
	slot    *Context
	wrapped Component
	statics Statics
	name    string
}

// NewWithTheme returns the wrapper factory for slot.
func NewWithTheme(slot *Context) func(Component) *Themed {
	return func(c Component) *Themed {
		return &Themed{
			slot:    slot,
			wrapped: c,
			statics: HoistStatics(c),
			name:    "withTheme(" + componentName(c) + ")",
		}
	}
}

// Render resolves props.Theme against the enclosing provider and renders the
// wrapped component with the result.
func (t *Themed) Render(ctx context.Context, props Props) string {
	props.Theme = t.slot.Resolve(ctx, props.Theme)
	return t.wrapped.Render(ctx, props)
}

// DisplayName returns "withTheme(<wrapped name>)".
func (t *Themed) DisplayName() string {
	return t.name
}

// Statics returns a copy of the statics hoisted from the wrapped component.
func (t *Themed) Statics() Statics {
	out := make(Statics, len(t.statics))
	for key, value := range t.statics {
		out[key] = value
	}
	return out
}

// Static looks up a single hoisted static.
func (t *Themed) Static(key string) (any, bool) {
	value, ok := t.statics[key]
	return value, ok
}

// Unwrap returns the wrapped component.
func (t *Themed) Unwrap() Component {
	return t.wrapped
}

func componentName(c Component) string {
	if c == nil {
		return anonymousName
	}
	if named, ok := c.(Named); ok {
		if name := named.DisplayName(); name != "" {
			return name
		}
	}
	if fn, ok := c.(ComponentFunc); ok {
		if name := funcName(fn); name != "" {
			return name
		}
		return anonymousName
	}

	typ := reflect.TypeOf(c)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if name := typ.Name(); name != "" {
		return name
	}
	return anonymousName
}

// funcName reports the declared name of fn, or "" for closures.
func funcName(fn ComponentFunc) string {
	if fn == nil {
		return ""
	}
	info := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if info == nil {
		return ""
	}
	full := info.Name()
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	parts := strings.Split(full, ".")
	last := parts[len(parts)-1]
	if len(parts) < 2 || closureSuffix.MatchString(last) {
		return ""
	}
	return strings.Trim(last, "()*")
}
