package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theming"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Options tune catalog loading.
type Options struct {
	// Strict rejects theme values using keys the built-in default theme
	// does not define.
	Strict bool
	Logger *logger.Logger
}

// ParseCatalog loads a catalog file from disk, validates it, and resolves
// every theme it declares.
func ParseCatalog(path string, opts Options) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return LoadCatalog(path, data, opts)
}

// LoadCatalog decodes catalog YAML held in memory. source names the data in
// errors.
func LoadCatalog(source string, data []byte, opts Options) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, themeerrors.NewParseError(source, extractLine(err), err)
	}

	catalog, err := newCatalog(&doc, opts)
	if err != nil {
		opts.Logger.Error(err, "catalog rejected", "source", source)
		return nil, err
	}

	opts.Logger.Debug("catalog loaded",
		"source", source,
		"themes", len(catalog.names),
		"default", catalog.defaultName,
	)
	return catalog, nil
}

// ParseOverride loads a theme override file. An empty document yields an
// empty override; any document that is not a mapping is a ParseError.
func ParseOverride(path string) (theming.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return DecodeOverride(path, bytes.NewReader(data))
}

// DecodeOverride reads a theme override from r. source names the data in
// errors.
func DecodeOverride(source string, r io.Reader) (theming.Tree, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return theming.Tree{}, nil
		}
		return nil, themeerrors.NewParseError(source, extractLine(err), err)
	}
	if raw == nil {
		return theming.Tree{}, nil
	}

	override, ok := theming.Normalize(raw)
	if !ok {
		return nil, themeerrors.NewParseError(source, 0, fmt.Errorf("override must be a mapping, got %T", raw))
	}
	return override, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
