package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/resolve"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// FlexProps configures a Flex layout.
type FlexProps struct {
	// Display overrides the flex display mode, e.g. to hide the row on mobile.
	// Without a base value the layout starts as "flex", or "inline-flex" if
	// Inline is true.
	Display style.Responsive[style.Display]
	Inline  bool
	resolve.FlexProps
	resolve.SpacingProps
}

// At collapses every responsive prop to the value in effect at bp.
func (p FlexProps) At(bp style.Breakpoint) FlexProps {
	return FlexProps{
		Display:      p.Display.Collapse(bp),
		Inline:       p.Inline,
		FlexProps:    p.FlexProps.At(bp),
		SpacingProps: p.SpacingProps.At(bp),
	}
}

// Flex arranges its children along one axis.
type Flex struct {
	props FlexProps
}

// NewFlex creates a flex layout.
func NewFlex(props FlexProps) *Flex {
	return &Flex{props: props}
}

// Props returns the layout's props.
func (f *Flex) Props() FlexProps {
	return f.props
}

// Kind implements Component.
func (f *Flex) Kind() string {
	return KindFlex
}

// Classes implements Component.
func (f *Flex) Classes() string {
	return flexClasses(f.props)
}

// ClassesAt implements Component.
func (f *Flex) ClassesAt(bp style.Breakpoint) string {
	return flexClasses(f.props.At(bp))
}

func flexClasses(p FlexProps) string {
	// a base-less display still starts out as a flex container
	display := p.Display
	if _, ok := display.Value(style.Base); !ok {
		mode := style.DisplayFlex
		if p.Inline {
			mode = style.DisplayInlineFlex
		}
		display = display.With(style.Base, mode)
	}

	return resolve.Join(
		resolve.Display(display),
		resolve.Flex(p.FlexProps),
		resolve.Spacing(p.SpacingProps),
	)
}
