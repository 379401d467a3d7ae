package theming

import (
	"fmt"
	"sort"
	"strings"
)

// Tree is a theme value: a mapping from key to either a scalar, a slice or
// a nested Tree. Nothing about its shape is enforced; the default theme of a
// registry defines the full shape by convention.
type Tree map[string]any

// Clone returns a deep copy of the tree. Nested mappings are converted to
// Tree and slices are copied element by element.
func (t Tree) Clone() Tree {
	if t == nil {
		return Tree{}
	}
	out := make(Tree, len(t))
	for key, value := range t {
		out[key] = cloneValue(value)
	}
	return out
}

// Keys returns the top-level keys in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup walks a dotted path such as "alert.success.background".
func (t Tree) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var current any = t
	for _, segment := range strings.Split(path, ".") {
		node, ok := asTree(current)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String returns the leaf at path formatted as a string, or "" when the path
// is missing or points at a nested tree.
func (t Tree) String(path string) string {
	value, ok := t.Lookup(path)
	if !ok || value == nil {
		return ""
	}
	if _, nested := asTree(value); nested {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Int returns the leaf at path as an int. Floats are truncated.
func (t Tree) Int(path string) (int, bool) {
	value, ok := t.Lookup(path)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Normalize converts decoded values into the canonical tree representation:
// every mapping becomes a Tree with string keys. Values that are not
// mappings yield false.
func Normalize(value any) (Tree, bool) {
	if _, ok := asTree(value); !ok {
		return nil, false
	}
	tree, _ := cloneValue(value).(Tree)
	return tree, true
}

func asTree(value any) (Tree, bool) {
	switch v := value.(type) {
	case Tree:
		return v, true
	case map[string]any:
		return Tree(v), true
	case map[any]any:
		out := make(Tree, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func cloneValue(value any) any {
	if node, ok := asTree(value); ok {
		out := make(Tree, len(node))
		for key, item := range node {
			out[key] = cloneValue(item)
		}
		return out
	}
	if items, ok := value.([]any); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = cloneValue(item)
		}
		return out
	}
	return value
}
