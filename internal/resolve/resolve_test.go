package resolve

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

func paddingScale(v style.Padding) string {
	switch v {
	case style.PaddingNone:
		return "0"
	case style.PaddingXS:
		return "2"
	case style.PaddingSM:
		return "3"
	case style.PaddingMD:
		return "4"
	case style.PaddingLG:
		return "6"
	case style.PaddingXL:
		return "8"
	default:
		return string(v)
	}
}

func radiusShorthand(v style.Radius) string {
	switch v {
	case style.RadiusNone:
		return "none"
	case style.RadiusFull:
		return "full"
	default:
		return "lg"
	}
}

func TestResponsiveUnsetIsEmpty(t *testing.T) {
	assert.Equal(t, "", Responsive(style.Unset[style.Padding](), "p-", paddingScale))
	assert.Equal(t, "", Responsive(style.Unset[int](), "z-", nil))
	assert.Equal(t, "", Hyphenated(style.Unset[string](), "mt", nil))
}

func TestResponsiveScalar(t *testing.T) {
	assert.Equal(t, "p-md", Responsive(style.Scalar(style.PaddingMD), "p-", nil))
	assert.Equal(t, "p-4", Responsive(style.Scalar(style.PaddingMD), "p-", paddingScale))
	assert.Equal(t, "z-10", Responsive(style.Scalar(10), "z-", nil))
}

func TestResponsiveFollowsCanonicalOrder(t *testing.T) {
	reversed := style.Unset[string]().With(style.MD, "lg").With(style.Base, "sm")
	declared := style.Unset[string]().With(style.Base, "sm").With(style.MD, "lg")
	fromMap := style.ByBreakpoint(map[style.Breakpoint]string{style.MD: "lg", style.Base: "sm"})

	want := "rounded-sm md:rounded-lg"
	assert.Equal(t, want, Responsive(reversed, "rounded-", nil))
	assert.Equal(t, want, Responsive(declared, "rounded-", nil))
	assert.Equal(t, want, Responsive(fromMap, "rounded-", nil))
}

func TestResponsiveEmitsEveryBreakpoint(t *testing.T) {
	prop := style.ByBreakpoint(map[style.Breakpoint]style.Padding{
		style.XXL:  style.PaddingXL,
		style.XL:   style.PaddingLG,
		style.LG:   style.PaddingMD,
		style.MD:   style.PaddingSM,
		style.SM:   style.PaddingXS,
		style.Base: style.PaddingNone,
	})

	assert.Equal(t, "p-0 sm:p-2 md:p-3 lg:p-4 xl:p-6 2xl:p-8", Responsive(prop, "p-", paddingScale))
}

func TestResponsiveWithNoBreakpointsIsEmpty(t *testing.T) {
	empty := style.ByBreakpoint(map[style.Breakpoint]style.Padding{})
	assert.Equal(t, "", Responsive(empty, "p-", paddingScale))

	cleared := style.Scalar(style.PaddingMD).Without(style.Base)
	assert.Equal(t, "", Responsive(cleared, "p-", paddingScale))
}

func TestResponsiveIsIdempotent(t *testing.T) {
	prop := style.ByBreakpoint(map[style.Breakpoint]style.Padding{style.Base: style.PaddingMD, style.LG: style.PaddingXL})

	first := Responsive(prop, "p-", paddingScale)
	second := Responsive(prop, "p-", paddingScale)
	assert.Equal(t, first, second)
}

func TestResponsivePaddingScenario(t *testing.T) {
	prop := style.ByBreakpoint(map[style.Breakpoint]style.Padding{style.Base: style.PaddingMD, style.LG: style.PaddingXL})

	assert.Equal(t, "p-4 lg:p-8", Hyphenated(prop, "p", paddingScale))
	assert.Equal(t, "p-4 lg:p-8", Responsive(prop, "p-", paddingScale))
}

func TestResponsiveRadiusScenario(t *testing.T) {
	assert.Equal(t, "rounded-full", Responsive(style.Scalar(style.RadiusFull), "rounded-", radiusShorthand))
	assert.Equal(t, "rounded-lg", Responsive(style.Scalar(style.RadiusMD), "rounded-", radiusShorthand))
}

func TestGroupSkipsUnsetProps(t *testing.T) {
	props := map[string]style.Responsive[style.Margin]{
		"mt": style.Scalar(style.MarginMD),
		"mb": style.Unset[style.Margin](),
	}
	fields := []Field{{Name: "mt", Prefix: "mt"}, {Name: "mb", Prefix: "mb"}}

	assert.Equal(t, "mt-md", Group(props, fields, nil))
}

func TestGroupUsesFieldOrder(t *testing.T) {
	props := map[string]style.Responsive[string]{
		"b": style.Scalar("2"),
		"a": style.ByBreakpoint(map[style.Breakpoint]string{style.SM: "1"}),
		"c": style.Scalar("3"),
	}
	fields := []Field{{Name: "c", Prefix: "cc"}, {Name: "missing", Prefix: "x"}, {Name: "a", Prefix: "aa"}, {Name: "b", Prefix: "bb"}}

	assert.Equal(t, "cc-3 sm:aa-1 bb-2", Group(props, fields, nil))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join())
	assert.Equal(t, "", Join("", "  "))
	assert.Equal(t, "a b c", Join("a", "", " b ", "c"))
}

func TestStatic(t *testing.T) {
	assert.Equal(t, "w-full", Static(true, "w-full"))
	assert.Equal(t, "", Static(false, "w-full"))
}

func TestResponsiveConcurrentUse(t *testing.T) {
	prop := style.ByBreakpoint(map[style.Breakpoint]style.Padding{style.Base: style.PaddingXS, style.MD: style.PaddingLG})
	want := Responsive(prop, "p-", paddingScale)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Responsive(prop, "p-", paddingScale)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, fmt.Sprintf("goroutine %d", i))
	}
}
