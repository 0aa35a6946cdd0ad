// Package routefile loads route tables from YAML or JSON documents of the
// form {name, routes: [...]}.
package routefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// Supported document formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FormatOf returns the document format implied by the file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", types.ErrUnknownFormat, path)
	}
}

// Load reads a route table file. A table without a name takes the file
// name without extension. Every load gets a fresh Version.
func Load(path string) (types.RouteTable, error) {
	format, err := FormatOf(path)
	if err != nil {
		return types.RouteTable{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RouteTable{}, fmt.Errorf("reading %s: %w", path, err)
	}
	table, err := Parse(data, format)
	if err != nil {
		return types.RouteTable{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if table.Name == "" {
		table.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return table, nil
}

// Parse decodes a route table document in the given format and assigns a
// fresh Version.
func Parse(data []byte, format string) (types.RouteTable, error) {
	var table types.RouteTable
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &table); err != nil {
			return types.RouteTable{}, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &table); err != nil {
			return types.RouteTable{}, err
		}
	default:
		return types.RouteTable{}, fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
	table.Version = NewVersion()
	return table, nil
}

// NewVersion returns a fresh table version, a UUID v7 so versions sort by
// creation time.
func NewVersion() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
