package components

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// InputScale is the class fragments an input size expands to.
type InputScale struct {
	PX   string `yaml:"px" toml:"px"`
	PY   string `yaml:"py" toml:"py"`
	Text string `yaml:"text" toml:"text"`
}

// Theme maps semantic domain values to the class fragments components emit.
// Missing entries fall back to the default theme.
type Theme struct {
	Padding        map[style.Padding]string
	Radius         map[style.Radius]string
	BorderWidth    map[style.BorderWidth]string
	ContainerWidth map[style.ContainerSize]string
	InputSize      map[style.InputSize]InputScale
}

// DefaultTheme returns the storefront's default scales.
func DefaultTheme() Theme {
	return Theme{
		Padding: map[style.Padding]string{
			style.PaddingNone: "0",
			style.PaddingXS:   "2",
			style.PaddingSM:   "3",
			style.PaddingMD:   "4",
			style.PaddingLG:   "6",
			style.PaddingXL:   "8",
		},
		Radius: map[style.Radius]string{
			style.RadiusNone: "none",
			style.RadiusXS:   "sm",
			style.RadiusSM:   "md",
			style.RadiusMD:   "lg",
			style.RadiusLG:   "xl",
			style.RadiusXL:   "2xl",
			style.RadiusFull: "full",
		},
		// border widths are appended to a bare "border" prefix, so the
		// separator is part of the fragment
		BorderWidth: map[style.BorderWidth]string{
			style.BorderNone:   "-0",
			style.BorderThin:   "",
			style.BorderMedium: "-2",
			style.BorderThick:  "-4",
		},
		ContainerWidth: map[style.ContainerSize]string{
			style.ContainerSM:    "screen-sm",
			style.ContainerMD:    "screen-md",
			style.ContainerLG:    "screen-lg",
			style.ContainerXL:    "screen-xl",
			style.Container2XL:   "screen-2xl",
			style.ContainerFull:  "full",
			style.ContainerProse: "prose",
		},
		InputSize: map[style.InputSize]InputScale{
			style.InputSM: {PX: "2", PY: "1", Text: "sm"},
			style.InputMD: {PX: "3", PY: "2", Text: "base"},
			style.InputLG: {PX: "4", PY: "3", Text: "lg"},
		},
	}
}

// Merge returns t with every entry of override applied on top. Input scales
// merge field by field.
func (t Theme) Merge(override Theme) Theme {
	return Theme{
		Padding:        mergeTable(t.Padding, override.Padding),
		Radius:         mergeTable(t.Radius, override.Radius),
		BorderWidth:    mergeTable(t.BorderWidth, override.BorderWidth),
		ContainerWidth: mergeTable(t.ContainerWidth, override.ContainerWidth),
		InputSize:      mergeInputScales(t.InputSize, override.InputSize),
	}
}

func normalizeTheme(t Theme) Theme {
	return DefaultTheme().Merge(t)
}

func mergeTable[K comparable, V any](base, override map[K]V) map[K]V {
	merged := make(map[K]V, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// mergeInputScales applies overrides field by field; empty fields keep the
// base scale.
func mergeInputScales(base, override map[style.InputSize]InputScale) map[style.InputSize]InputScale {
	merged := mergeTable(base, nil)
	for size, scale := range override {
		current := merged[size]
		if scale.PX != "" {
			current.PX = scale.PX
		}
		if scale.PY != "" {
			current.PY = scale.PY
		}
		if scale.Text != "" {
			current.Text = scale.Text
		}
		merged[size] = current
	}
	return merged
}

func lookup[K ~string](table map[K]string, key K) string {
	if v, ok := table[key]; ok {
		return v
	}
	return string(key)
}

// PaddingClass maps a padding value to its spacing-scale fragment.
func (t Theme) PaddingClass(v style.Padding) string { return lookup(t.Padding, v) }

// RadiusClass maps a radius value to its rounded-* fragment.
func (t Theme) RadiusClass(v style.Radius) string { return lookup(t.Radius, v) }

// BorderClass maps a border width to the suffix of the "border" class.
func (t Theme) BorderClass(v style.BorderWidth) string {
	if s, ok := t.BorderWidth[v]; ok {
		return s
	}
	return "-" + string(v)
}

// ContainerClass maps a container size to its max-w-* fragment.
func (t Theme) ContainerClass(v style.ContainerSize) string { return lookup(t.ContainerWidth, v) }

func (t Theme) inputScale(v style.InputSize) InputScale {
	if s, ok := t.InputSize[v]; ok {
		return s
	}
	return DefaultTheme().InputSize[style.InputMD]
}
