package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/resolve"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// InputProps configures an Input.
type InputProps struct {
	Size      style.Responsive[style.InputSize]
	Radius    style.Responsive[style.Radius]
	FullWidth bool
	Invalid   bool
	resolve.MarginProps
}

// At collapses every responsive prop to the value in effect at bp.
func (p InputProps) At(bp style.Breakpoint) InputProps {
	return InputProps{
		Size:        p.Size.Collapse(bp),
		Radius:      p.Radius.Collapse(bp),
		FullWidth:   p.FullWidth,
		Invalid:     p.Invalid,
		MarginProps: p.MarginProps.At(bp),
	}
}

// Input is a single-line form control such as the search box.
type Input struct {
	props InputProps
	theme Theme
}

// NewInput creates an input with the default theme.
func NewInput(props InputProps) *Input {
	return &Input{props: props, theme: DefaultTheme()}
}

// WithTheme replaces the theme used to map prop values.
func (i *Input) WithTheme(theme Theme) *Input {
	i.theme = normalizeTheme(theme)
	return i
}

// Props returns the input's props.
func (i *Input) Props() InputProps {
	return i.props
}

// Kind implements Component.
func (i *Input) Kind() string {
	return KindInput
}

// Classes implements Component.
func (i *Input) Classes() string {
	return inputClasses(i.props, i.theme)
}

// ClassesAt implements Component.
func (i *Input) ClassesAt(bp style.Breakpoint) string {
	return inputClasses(i.props.At(bp), i.theme)
}

func inputClasses(p InputProps, theme Theme) string {
	size := p.Size
	if _, ok := size.Value(style.Base); !ok {
		size = size.With(style.Base, style.InputMD)
	}

	border := "border-gray-300"
	if p.Invalid {
		border = "border-red-500"
	}

	// each size expands to three utility families, each qualified separately
	return resolve.Join(
		"border",
		border,
		resolve.Responsive(size, "px-", func(v style.InputSize) string { return theme.inputScale(v).PX }),
		resolve.Responsive(size, "py-", func(v style.InputSize) string { return theme.inputScale(v).PY }),
		resolve.Responsive(size, "text-", func(v style.InputSize) string { return theme.inputScale(v).Text }),
		resolve.Responsive(p.Radius, "rounded-", theme.RadiusClass),
		resolve.Static(p.FullWidth, "w-full"),
		resolve.Margins(p.MarginProps),
	)
}
