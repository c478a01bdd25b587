package resolve

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// MarginProps carries the seven directional margin properties.
type MarginProps struct {
	M  style.Responsive[style.Margin]
	MX style.Responsive[style.Margin]
	MY style.Responsive[style.Margin]
	MT style.Responsive[style.Margin]
	MR style.Responsive[style.Margin]
	MB style.Responsive[style.Margin]
	ML style.Responsive[style.Margin]
}

// PaddingProps carries the seven directional padding properties.
type PaddingProps struct {
	P  style.Responsive[style.Padding]
	PX style.Responsive[style.Padding]
	PY style.Responsive[style.Padding]
	PT style.Responsive[style.Padding]
	PR style.Responsive[style.Padding]
	PB style.Responsive[style.Padding]
	PL style.Responsive[style.Padding]
}

// SpacingProps groups margins and paddings.
type SpacingProps struct {
	MarginProps
	PaddingProps
}

// MarginFields lists margin properties in emission order.
var MarginFields = []Field{
	{Name: "m", Prefix: "m"},
	{Name: "mx", Prefix: "mx"},
	{Name: "my", Prefix: "my"},
	{Name: "mt", Prefix: "mt"},
	{Name: "mr", Prefix: "mr"},
	{Name: "mb", Prefix: "mb"},
	{Name: "ml", Prefix: "ml"},
}

// PaddingFields lists padding properties in emission order.
var PaddingFields = []Field{
	{Name: "p", Prefix: "p"},
	{Name: "px", Prefix: "px"},
	{Name: "py", Prefix: "py"},
	{Name: "pt", Prefix: "pt"},
	{Name: "pr", Prefix: "pr"},
	{Name: "pb", Prefix: "pb"},
	{Name: "pl", Prefix: "pl"},
}

// ByName returns the margins keyed by field name.
func (m MarginProps) ByName() map[string]style.Responsive[style.Margin] {
	return map[string]style.Responsive[style.Margin]{
		"m": m.M, "mx": m.MX, "my": m.MY,
		"mt": m.MT, "mr": m.MR, "mb": m.MB, "ml": m.ML,
	}
}

// ByName returns the paddings keyed by field name.
func (p PaddingProps) ByName() map[string]style.Responsive[style.Padding] {
	return map[string]style.Responsive[style.Padding]{
		"p": p.P, "px": p.PX, "py": p.PY,
		"pt": p.PT, "pr": p.PR, "pb": p.PB, "pl": p.PL,
	}
}

// At collapses every margin to the value in effect at bp.
func (m MarginProps) At(bp style.Breakpoint) MarginProps {
	return MarginProps{
		M: m.M.Collapse(bp), MX: m.MX.Collapse(bp), MY: m.MY.Collapse(bp),
		MT: m.MT.Collapse(bp), MR: m.MR.Collapse(bp), MB: m.MB.Collapse(bp), ML: m.ML.Collapse(bp),
	}
}

// At collapses every padding to the value in effect at bp.
func (p PaddingProps) At(bp style.Breakpoint) PaddingProps {
	return PaddingProps{
		P: p.P.Collapse(bp), PX: p.PX.Collapse(bp), PY: p.PY.Collapse(bp),
		PT: p.PT.Collapse(bp), PR: p.PR.Collapse(bp), PB: p.PB.Collapse(bp), PL: p.PL.Collapse(bp),
	}
}

// At collapses every spacing property to the value in effect at bp.
func (s SpacingProps) At(bp style.Breakpoint) SpacingProps {
	return SpacingProps{MarginProps: s.MarginProps.At(bp), PaddingProps: s.PaddingProps.At(bp)}
}

// Margins resolves margin properties to tokens such as "mt-md lg:mx-auto".
func Margins(m MarginProps) string {
	return Group(m.ByName(), MarginFields, nil)
}

// Paddings resolves padding properties to tokens such as "p-sm md:px-lg".
func Paddings(p PaddingProps) string {
	return Group(p.ByName(), PaddingFields, nil)
}

// Spacing resolves all fourteen spacing properties, margins first.
func Spacing(s SpacingProps) string {
	return Join(Margins(s.MarginProps), Paddings(s.PaddingProps))
}
