package config

// Document is the on-disk form of a theme catalog.
type Document struct {
	Version string      `yaml:"version" validate:"required,schema_version"`
	Default string      `yaml:"default,omitempty" validate:"omitempty,theme_name"`
	Themes  []ThemeSpec `yaml:"themes" validate:"required,min=1,dive"`
}

// ThemeSpec declares one named theme. A theme that extends another is
// merged on top of its parent, so Values only needs the keys that differ.
type ThemeSpec struct {
	Name    string         `yaml:"name" validate:"required,theme_name"`
	Mode    string         `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark"`
	Extends string         `yaml:"extends,omitempty" validate:"omitempty,theme_name"`
	Values  map[string]any `yaml:"values"`
}
