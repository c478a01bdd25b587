package manifest

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// ThemeSpec overrides entries of the default component theme. Keys are
// domain values, values are the class fragments to emit.
type ThemeSpec struct {
	Padding        map[string]string                `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Radius         map[string]string                `yaml:"radius,omitempty" toml:"radius,omitempty"`
	BorderWidth    map[string]string                `yaml:"border_width,omitempty" toml:"border_width,omitempty"`
	ContainerWidth map[string]string                `yaml:"container_width,omitempty" toml:"container_width,omitempty"`
	InputSize      map[string]components.InputScale `yaml:"input_size,omitempty" toml:"input_size,omitempty"`
}

func (t ThemeSpec) validate() error {
	_, err := t.Theme()
	return err
}

// Theme converts the overrides into a full component theme.
func (t ThemeSpec) Theme() (components.Theme, error) {
	var override components.Theme
	var err error

	if override.Padding, err = themeTable[style.Padding]("theme.padding", t.Padding, false); err != nil {
		return components.Theme{}, err
	}
	if override.Radius, err = themeTable[style.Radius]("theme.radius", t.Radius, false); err != nil {
		return components.Theme{}, err
	}
	if override.BorderWidth, err = themeTable[style.BorderWidth]("theme.border_width", t.BorderWidth, true); err != nil {
		return components.Theme{}, err
	}
	if override.ContainerWidth, err = themeTable[style.ContainerSize]("theme.container_width", t.ContainerWidth, false); err != nil {
		return components.Theme{}, err
	}

	override.InputSize = make(map[style.InputSize]components.InputScale, len(t.InputSize))
	for _, key := range sortedKeys(t.InputSize) {
		size := style.InputSize(key)
		if err := enumCheck("theme.input_size."+key, size); err != nil {
			return components.Theme{}, err
		}
		scale := t.InputSize[key]
		if scale.PX == "" && scale.PY == "" && scale.Text == "" {
			return components.Theme{}, stylekiterrors.NewValidationError("theme.input_size."+key, "set at least one of px, py or text", nil)
		}
		fields := []struct{ name, fragment string }{{"px", scale.PX}, {"py", scale.PY}, {"text", scale.Text}}
		for _, f := range fields {
			if _, err := checkFragment("theme.input_size."+key+"."+f.name, f.fragment, true); err != nil {
				return components.Theme{}, err
			}
		}
		override.InputSize[size] = scale
	}

	return components.DefaultTheme().Merge(override), nil
}

// themeTable converts one override table. Border fragments carry their own
// separator, so allowEmpty lets "" stand for the bare class.
func themeTable[T style.Enum[T]](field string, raw map[string]string, allowEmpty bool) (map[T]string, error) {
	table := make(map[T]string, len(raw))
	for _, key := range sortedKeys(raw) {
		v := T(key)
		if err := enumCheck(field+"."+key, v); err != nil {
			return nil, err
		}
		fragment, err := checkFragment(field+"."+key, raw[key], allowEmpty)
		if err != nil {
			return nil, err
		}
		table[v] = fragment
	}
	return table, nil
}

func checkFragment(field, fragment string, allowEmpty bool) (string, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" && !allowEmpty {
		return "", stylekiterrors.NewValidationError(field, "class fragment must not be empty", nil)
	}
	if strings.ContainsAny(fragment, " \t\n") {
		return "", stylekiterrors.NewValidationError(field, fmt.Sprintf("class fragment %q must not contain whitespace", fragment), nil)
	}
	return fragment, nil
}
