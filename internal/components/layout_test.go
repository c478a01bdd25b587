package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/stylekit/internal/resolve"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

func TestContainerClasses(t *testing.T) {
	container := NewContainer(ContainerProps{
		MaxWidth: style.ByBreakpoint(map[style.Breakpoint]style.ContainerSize{style.Base: style.ContainerFull, style.XL: style.ContainerXL}),
		Padding:  style.Scalar(style.PaddingSM),
		Centered: true,
		MarginProps: resolve.MarginProps{
			MB: style.Scalar(style.MarginLG),
		},
	})

	assert.Equal(t, KindContainer, container.Kind())
	assert.Equal(t, "w-full max-w-full xl:max-w-screen-xl px-3 mx-auto mb-lg", container.Classes())
	assert.Equal(t, "w-full max-w-full px-3 mx-auto mb-lg", container.ClassesAt(style.LG))
}

func TestFlexDefaultsToFlexDisplay(t *testing.T) {
	assert.Equal(t, "flex", NewFlex(FlexProps{}).Classes())
	assert.Equal(t, "inline-flex", NewFlex(FlexProps{Inline: true}).Classes())
}

func TestFlexClasses(t *testing.T) {
	flex := NewFlex(FlexProps{
		Display: style.ByBreakpoint(map[style.Breakpoint]style.Display{style.Base: style.DisplayNone, style.MD: style.DisplayFlex}),
		FlexProps: resolve.FlexProps{
			Direction: style.ByBreakpoint(map[style.Breakpoint]style.FlexDirection{style.Base: style.DirectionColumn, style.LG: style.DirectionRow}),
			Justify:   style.Scalar(style.JustifySpaceBetween),
			Align:     style.Scalar(style.AlignCenter),
			Gap:       style.Scalar(style.Gap("4")),
		},
		SpacingProps: resolve.SpacingProps{
			PaddingProps: resolve.PaddingProps{PY: style.Scalar(style.PaddingXS)},
		},
	})

	assert.Equal(t, KindFlex, flex.Kind())
	assert.Equal(t, "hidden md:flex flex-col lg:flex-row justify-between items-center gap-4 py-xs", flex.Classes())
	assert.Equal(t, "hidden flex-col justify-between items-center gap-4 py-xs", flex.ClassesAt(style.SM))
	assert.Equal(t, "flex flex-row justify-between items-center gap-4 py-xs", flex.ClassesAt(style.XL))
}

func TestInputClasses(t *testing.T) {
	input := NewInput(InputProps{
		Size:      style.ByBreakpoint(map[style.Breakpoint]style.InputSize{style.Base: style.InputSM, style.MD: style.InputLG}),
		Radius:    style.Scalar(style.RadiusSM),
		FullWidth: true,
	})

	assert.Equal(t, KindInput, input.Kind())
	assert.Equal(t, "border border-gray-300 px-2 md:px-4 py-1 md:py-3 text-sm md:text-lg rounded-md w-full", input.Classes())
	assert.Equal(t, "border border-gray-300 px-4 py-3 text-lg rounded-md w-full", input.ClassesAt(style.LG))
}

func TestInputDefaultsAndInvalid(t *testing.T) {
	input := NewInput(InputProps{Invalid: true, MarginProps: resolve.MarginProps{MT: style.Scalar(style.MarginXS)}})

	assert.Equal(t, "border border-red-500 px-3 py-2 text-base mt-xs", input.Classes())
}

func TestInputWithTheme(t *testing.T) {
	input := NewInput(InputProps{Size: style.Scalar(style.InputLG)})

	result := input.WithTheme(Theme{InputSize: map[style.InputSize]InputScale{style.InputLG: {PX: "5", PY: "4", Text: "xl"}}})

	assert.Same(t, input, result)
	assert.Equal(t, "border border-gray-300 px-5 py-4 text-xl", input.Classes())
}

func TestComponentsImplementInterface(t *testing.T) {
	var all []Component
	all = append(all, NewCard(CardProps{}), NewContainer(ContainerProps{}), NewFlex(FlexProps{}), NewInput(InputProps{}))

	kinds := make([]string, 0, len(all))
	for _, c := range all {
		kinds = append(kinds, c.Kind())
	}
	assert.Equal(t, Kinds(), kinds)
}

func TestBaseDefaultsWithoutBaseValue(t *testing.T) {
	tests := []struct {
		name      string
		component Component
		want      string
	}{
		{
			name: "flex display set only from md",
			component: NewFlex(FlexProps{
				Display: style.ByBreakpoint(map[style.Breakpoint]style.Display{style.MD: style.DisplayNone}),
			}),
			want: "flex md:hidden",
		},
		{
			name: "inline flex display set only from lg",
			component: NewFlex(FlexProps{
				Inline:  true,
				Display: style.ByBreakpoint(map[style.Breakpoint]style.Display{style.LG: style.DisplayBlock}),
			}),
			want: "inline-flex lg:block",
		},
		{
			name: "input size set only from md",
			component: NewInput(InputProps{
				Size: style.ByBreakpoint(map[style.Breakpoint]style.InputSize{style.MD: style.InputLG}),
			}),
			want: "border border-gray-300 px-3 md:px-4 py-2 md:py-3 text-base md:text-lg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes := tt.component.Classes()
			assert.Equal(t, tt.want, classes)
			assert.Subset(t, strings.Fields(classes), strings.Fields(tt.component.ClassesAt(style.Base)))
		})
	}
}
