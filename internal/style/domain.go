package style

import "slices"

// Padding is the spacing scale shared by padding-like properties.
type Padding string

const (
	PaddingNone Padding = "none"
	PaddingXS   Padding = "xs"
	PaddingSM   Padding = "sm"
	PaddingMD   Padding = "md"
	PaddingLG   Padding = "lg"
	PaddingXL   Padding = "xl"
)

var paddingValues = []Padding{PaddingNone, PaddingXS, PaddingSM, PaddingMD, PaddingLG, PaddingXL}

// Margin is the padding scale plus "auto".
type Margin string

const (
	MarginNone Margin = "none"
	MarginXS   Margin = "xs"
	MarginSM   Margin = "sm"
	MarginMD   Margin = "md"
	MarginLG   Margin = "lg"
	MarginXL   Margin = "xl"
	MarginAuto Margin = "auto"
)

var marginValues = []Margin{MarginNone, MarginXS, MarginSM, MarginMD, MarginLG, MarginXL, MarginAuto}

// Radius is the padding scale plus "full".
type Radius string

const (
	RadiusNone Radius = "none"
	RadiusXS   Radius = "xs"
	RadiusSM   Radius = "sm"
	RadiusMD   Radius = "md"
	RadiusLG   Radius = "lg"
	RadiusXL   Radius = "xl"
	RadiusFull Radius = "full"
)

var radiusValues = []Radius{RadiusNone, RadiusXS, RadiusSM, RadiusMD, RadiusLG, RadiusXL, RadiusFull}

// BorderWidth selects a border thickness.
type BorderWidth string

const (
	BorderNone   BorderWidth = "none"
	BorderThin   BorderWidth = "thin"
	BorderMedium BorderWidth = "medium"
	BorderThick  BorderWidth = "thick"
)

var borderWidthValues = []BorderWidth{BorderNone, BorderThin, BorderMedium, BorderThick}

// Display is the CSS display mode.
type Display string

const (
	DisplayNone        Display = "none"
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
	DisplayFlex        Display = "flex"
	DisplayInlineFlex  Display = "inline-flex"
	DisplayGrid        Display = "grid"
)

var displayValues = []Display{DisplayNone, DisplayBlock, DisplayInline, DisplayInlineBlock, DisplayFlex, DisplayInlineFlex, DisplayGrid}

// FlexDirection is the main axis of a flex container.
type FlexDirection string

const (
	DirectionRow           FlexDirection = "row"
	DirectionColumn        FlexDirection = "column"
	DirectionRowReverse    FlexDirection = "row-reverse"
	DirectionColumnReverse FlexDirection = "column-reverse"
)

var flexDirectionValues = []FlexDirection{DirectionRow, DirectionColumn, DirectionRowReverse, DirectionColumnReverse}

// JustifyContent distributes children along the main axis.
type JustifyContent string

const (
	JustifyStart        JustifyContent = "flex-start"
	JustifyEnd          JustifyContent = "flex-end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
)

var justifyValues = []JustifyContent{JustifyStart, JustifyEnd, JustifyCenter, JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly}

// AlignItems aligns children along the cross axis.
type AlignItems string

const (
	AlignStart    AlignItems = "flex-start"
	AlignEnd      AlignItems = "flex-end"
	AlignCenter   AlignItems = "center"
	AlignBaseline AlignItems = "baseline"
	AlignStretch  AlignItems = "stretch"
)

var alignValues = []AlignItems{AlignStart, AlignEnd, AlignCenter, AlignBaseline, AlignStretch}

// FlexWrap controls whether flex children wrap.
type FlexWrap string

const (
	Wrap        FlexWrap = "wrap"
	NoWrap      FlexWrap = "nowrap"
	WrapReverse FlexWrap = "wrap-reverse"
)

var flexWrapValues = []FlexWrap{Wrap, NoWrap, WrapReverse}

// Gap is a free-form gap value passed through unchanged ("4", "px", "2.5").
type Gap string

// ContainerSize is the max-width tier of a container.
type ContainerSize string

const (
	ContainerSM    ContainerSize = "sm"
	ContainerMD    ContainerSize = "md"
	ContainerLG    ContainerSize = "lg"
	ContainerXL    ContainerSize = "xl"
	Container2XL   ContainerSize = "2xl"
	ContainerFull  ContainerSize = "full"
	ContainerProse ContainerSize = "prose"
)

var containerSizeValues = []ContainerSize{ContainerSM, ContainerMD, ContainerLG, ContainerXL, Container2XL, ContainerFull, ContainerProse}

// InputSize is the control size of a form input.
type InputSize string

const (
	InputSM InputSize = "sm"
	InputMD InputSize = "md"
	InputLG InputSize = "lg"
)

var inputSizeValues = []InputSize{InputSM, InputMD, InputLG}

func (v Padding) Valid() bool        { return slices.Contains(paddingValues, v) }
func (v Margin) Valid() bool         { return slices.Contains(marginValues, v) }
func (v Radius) Valid() bool         { return slices.Contains(radiusValues, v) }
func (v BorderWidth) Valid() bool    { return slices.Contains(borderWidthValues, v) }
func (v Display) Valid() bool        { return slices.Contains(displayValues, v) }
func (v FlexDirection) Valid() bool  { return slices.Contains(flexDirectionValues, v) }
func (v JustifyContent) Valid() bool { return slices.Contains(justifyValues, v) }
func (v AlignItems) Valid() bool     { return slices.Contains(alignValues, v) }
func (v FlexWrap) Valid() bool       { return slices.Contains(flexWrapValues, v) }
func (v ContainerSize) Valid() bool  { return slices.Contains(containerSizeValues, v) }
func (v InputSize) Valid() bool      { return slices.Contains(inputSizeValues, v) }

// Valid reports whether the gap is non-empty; any other string passes through.
func (v Gap) Valid() bool { return v != "" }

func (Padding) Values() []Padding               { return slices.Clone(paddingValues) }
func (Margin) Values() []Margin                 { return slices.Clone(marginValues) }
func (Radius) Values() []Radius                 { return slices.Clone(radiusValues) }
func (BorderWidth) Values() []BorderWidth       { return slices.Clone(borderWidthValues) }
func (Display) Values() []Display               { return slices.Clone(displayValues) }
func (FlexDirection) Values() []FlexDirection   { return slices.Clone(flexDirectionValues) }
func (JustifyContent) Values() []JustifyContent { return slices.Clone(justifyValues) }
func (AlignItems) Values() []AlignItems         { return slices.Clone(alignValues) }
func (FlexWrap) Values() []FlexWrap             { return slices.Clone(flexWrapValues) }
func (ContainerSize) Values() []ContainerSize   { return slices.Clone(containerSizeValues) }
func (InputSize) Values() []InputSize           { return slices.Clone(inputSizeValues) }

// Enum is implemented by every enumerated property domain.
type Enum[T ~string] interface {
	~string
	Valid() bool
	Values() []T
}

// Names returns the string form of every member of an enumerated domain.
func Names[T Enum[T]]() []string {
	var zero T
	values := zero.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return names
}
