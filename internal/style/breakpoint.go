package style

import (
	"fmt"
	"strings"
)

// Breakpoint is a named minimum-viewport-width tier. Styles are mobile-first:
// a value set at a breakpoint applies at that width and above.
type Breakpoint int

const (
	Base Breakpoint = iota
	SM              // ≥640px
	MD              // ≥768px
	LG              // ≥1024px
	XL              // ≥1280px
	XXL             // ≥1536px (2xl)
)

// Breakpoints is the canonical emission order shared by every resolver.
// New tiers must be inserted here in increasing width order.
var Breakpoints = [...]Breakpoint{Base, SM, MD, LG, XL, XXL}

const breakpointCount = len(Breakpoints)

var breakpointNames = [breakpointCount]string{"base", "sm", "md", "lg", "xl", "2xl"}

var breakpointWidths = [breakpointCount]int{0, 640, 768, 1024, 1280, 1536}

// String returns the breakpoint name used in class qualifiers and manifests.
func (b Breakpoint) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// Valid reports whether b is one of the known breakpoints.
func (b Breakpoint) Valid() bool {
	return b >= Base && int(b) < breakpointCount
}

// Qualifier returns the class-token qualifier for b: empty for Base,
// "{name}:" otherwise.
func (b Breakpoint) Qualifier() string {
	if b == Base || !b.Valid() {
		return ""
	}
	return breakpointNames[b] + ":"
}

// MinWidth returns the minimum viewport width in pixels at which b applies.
func (b Breakpoint) MinWidth() int {
	if !b.Valid() {
		return 0
	}
	return breakpointWidths[b]
}

// ParseBreakpoint parses a breakpoint name such as "md" or "2xl".
func ParseBreakpoint(name string) (Breakpoint, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, bp := range Breakpoints {
		if breakpointNames[bp] == key {
			return bp, nil
		}
	}
	return Base, fmt.Errorf("unknown breakpoint %q", name)
}

// BreakpointNames lists breakpoint names in canonical order.
func BreakpointNames() []string {
	names := make([]string, breakpointCount)
	copy(names, breakpointNames[:])
	return names
}

// ActiveBreakpoint returns the highest breakpoint the given viewport width satisfies.
func ActiveBreakpoint(width int) Breakpoint {
	active := Base
	for _, bp := range Breakpoints {
		if width >= bp.MinWidth() {
			active = bp
		}
	}
	return active
}
