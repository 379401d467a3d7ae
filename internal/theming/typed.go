package theming

import (
	"context"
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// Typed is a theming namespace over a Go struct. The struct type fixes the
// shape: an override is a value of the same type whose zero-valued fields
// count as omitted, so keys outside the theme cannot be expressed at all.
// A field cannot be overridden back to its zero value.
type Typed[T any] struct {
	defaults T
}

type typedKey[T any] struct {
	registry *Typed[T]
}

// NewTyped creates a typed namespace. T must be a struct type.
func NewTyped[T any](defaultTheme T) (*Typed[T], error) {
	typ := reflect.TypeOf(defaultTheme)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("typed theme must be a struct, got %v", typ)
	}
	return &Typed[T]{defaults: defaultTheme}, nil
}

// Default returns the default theme.
func (t *Typed[T]) Default() T {
	return t.defaults
}

// Value returns the theme published by the nearest enclosing provider.
func (t *Typed[T]) Value(ctx context.Context) (T, bool) {
	var zero T
	if ctx == nil {
		return zero, false
	}
	value, ok := ctx.Value(typedKey[T]{registry: t}).(T)
	return value, ok
}

// Use resolves the theme visible at ctx with override merged on top.
func (t *Typed[T]) Use(ctx context.Context, override T) T {
	base, ok := t.Value(ctx)
	if !ok {
		base = t.defaults
	}
	return mergeTyped(base, override)
}

// Provide publishes the merged theme to the returned context.
func (t *Typed[T]) Provide(ctx context.Context, override T) context.Context {
	return context.WithValue(ctx, typedKey[T]{registry: t}, t.Use(ctx, override))
}

func mergeTyped[T any](base, override T) T {
	merged := base
	if err := mergo.Merge(&merged, override, mergo.WithOverride); err != nil {
		return base
	}
	return merged
}
