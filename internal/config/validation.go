package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// ValidateDocument performs structural and cross-reference validation of a
// catalog document. known lists theme names that exist outside the document
// (the built-in themes) and may be referenced by extends and default.
func ValidateDocument(doc *Document, known map[string]bool) error {
	if doc == nil {
		return themeerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	index := make(map[string]int, len(doc.Themes))
	for i, spec := range doc.Themes {
		if _, exists := index[spec.Name]; exists {
			return themeerrors.NewValidationError(fieldForTheme(i, "name"), fmt.Sprintf("duplicate theme name %q", spec.Name), nil)
		}
		index[spec.Name] = i
	}

	parents := make(map[string]string, len(doc.Themes))
	for i, spec := range doc.Themes {
		if spec.Extends == "" {
			continue
		}
		if _, ok := index[spec.Extends]; !ok && !known[spec.Extends] {
			return themeerrors.NewValidationError(fieldForTheme(i, "extends"), fmt.Sprintf("references unknown theme %q", spec.Extends), nil)
		}
		parents[spec.Name] = spec.Extends
	}

	if cycle := detectCycle(parents); len(cycle) > 0 {
		return themeerrors.NewValidationError("themes", fmt.Sprintf("extends cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	if doc.Default != "" {
		if _, ok := index[doc.Default]; !ok && !known[doc.Default] {
			return themeerrors.NewValidationError("default", fmt.Sprintf("references unknown theme %q", doc.Default), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into catalog validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName drops the root struct name and lowercases the rest, so
// "Document.Themes[0].Name" becomes "themes[0].name".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForTheme(index int, field string) string {
	return fmt.Sprintf("themes[%d].%s", index, field)
}
