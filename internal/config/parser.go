package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a gallery file from disk and validates it. An empty path yields
// DefaultGallery.
func Load(path string) (*Gallery, error) {
	if path == "" {
		return DefaultGallery(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fluenterrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes a gallery document and validates it. Path is only used to
// label errors. Fields the document leaves out keep their DefaultGallery
// values, except sliders, colours and commands, which are replaced wholesale
// when present.
func Parse(path string, data []byte) (*Gallery, error) {
	g := DefaultGallery()
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fluenterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// Marshal encodes g as YAML.
func Marshal(g *Gallery) ([]byte, error) {
	if g == nil {
		return nil, fluenterrors.NewValidationError("gallery", "gallery is nil", nil)
	}
	data, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode gallery: %w", err)
	}
	return data, nil
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
