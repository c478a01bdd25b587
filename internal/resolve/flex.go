package resolve

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// FlexProps are the flex-container properties.
type FlexProps struct {
	Direction style.Responsive[style.FlexDirection]
	Justify   style.Responsive[style.JustifyContent]
	Align     style.Responsive[style.AlignItems]
	Wrap      style.Responsive[style.FlexWrap]
	Gap       style.Responsive[style.Gap]
}

// At collapses every flex property to the value in effect at bp.
func (f FlexProps) At(bp style.Breakpoint) FlexProps {
	return FlexProps{
		Direction: f.Direction.Collapse(bp),
		Justify:   f.Justify.Collapse(bp),
		Align:     f.Align.Collapse(bp),
		Wrap:      f.Wrap.Collapse(bp),
		Gap:       f.Gap.Collapse(bp),
	}
}

// Flex resolves flex-container properties, each through its own value map:
// direction, justify, align, wrap, then gap.
func Flex(f FlexProps) string {
	return Join(
		Hyphenated(f.Direction, "flex", FlexDirectionClass),
		Hyphenated(f.Justify, "justify", JustifyClass),
		Hyphenated(f.Align, "items", AlignClass),
		Hyphenated(f.Wrap, "flex", FlexWrapClass),
		Hyphenated(f.Gap, "gap", nil),
	)
}

// FlexDirectionClass maps a direction to its class fragment.
func FlexDirectionClass(v style.FlexDirection) string {
	switch v {
	case style.DirectionRow:
		return "row"
	case style.DirectionColumn:
		return "col"
	case style.DirectionRowReverse:
		return "row-reverse"
	case style.DirectionColumnReverse:
		return "col-reverse"
	default:
		return string(v)
	}
}

// JustifyClass maps a justify-content value to its class fragment.
func JustifyClass(v style.JustifyContent) string {
	switch v {
	case style.JustifyStart:
		return "start"
	case style.JustifyEnd:
		return "end"
	case style.JustifyCenter:
		return "center"
	case style.JustifySpaceBetween:
		return "between"
	case style.JustifySpaceAround:
		return "around"
	case style.JustifySpaceEvenly:
		return "evenly"
	default:
		return string(v)
	}
}

// AlignClass maps an align-items value to its class fragment.
func AlignClass(v style.AlignItems) string {
	switch v {
	case style.AlignStart:
		return "start"
	case style.AlignEnd:
		return "end"
	case style.AlignCenter:
		return "center"
	case style.AlignBaseline:
		return "baseline"
	case style.AlignStretch:
		return "stretch"
	default:
		return string(v)
	}
}

// FlexWrapClass maps a flex-wrap value to its class fragment.
func FlexWrapClass(v style.FlexWrap) string {
	switch v {
	case style.Wrap:
		return "wrap"
	case style.NoWrap:
		return "nowrap"
	case style.WrapReverse:
		return "wrap-reverse"
	default:
		return string(v)
	}
}
