// Package manifest loads style manifests: YAML or TOML documents that declare
// named component instances and their (possibly responsive) props.
package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Manifest is a decoded style manifest.
type Manifest struct {
	Version     string          `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string          `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string          `yaml:"description,omitempty" toml:"description,omitempty"`
	Theme       ThemeSpec       `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Components  []ComponentSpec `yaml:"components" toml:"components" validate:"required,min=1,dive"`
}

// ComponentSpec declares one component instance.
type ComponentSpec struct {
	ID    string         `yaml:"id" toml:"id" validate:"required,component_id"`
	Kind  string         `yaml:"kind" toml:"kind" validate:"required,oneof=card container flex input"`
	Props map[string]any `yaml:"props,omitempty" toml:"props,omitempty"`
}

// Format identifies a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", stylekiterrors.NewValidationError("path", fmt.Sprintf("unsupported manifest extension %q", ext), nil)
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Decode parses and validates a manifest. source names the document in errors.
func Decode(data []byte, format Format, source string) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, stylekiterrors.NewParseError(source, extractYAMLLine(err), err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, stylekiterrors.NewParseError(source, extractTOMLLine(err), err)
		}
	default:
		return nil, stylekiterrors.NewValidationError("format", fmt.Sprintf("unsupported manifest format %q", format), nil)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func extractYAMLLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func extractTOMLLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		row, _ := strictErr.Errors[0].Position()
		return row
	}
	return 0
}

// Loader reads manifests from disk.
type Loader struct {
	logger *logger.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log.WithComponent("manifest")}
}

// Load reads, decodes and validates the manifest at path.
func (l *Loader) Load(ctx context.Context, path string) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("loading manifest", "path", path, "format", string(format))

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error(err, "failed to read manifest", "path", path)
		return nil, stylekiterrors.NewParseError(path, 0, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}

	m, err := Decode(data, format, path)
	if err != nil {
		l.logger.Error(err, "manifest rejected", "path", path)
		return nil, err
	}

	l.logger.Info("manifest loaded", "path", path, "name", m.Name, "components", len(m.Components))
	return m, nil
}
