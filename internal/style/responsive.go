package style

import (
	"fmt"
	"strings"
)

type responsiveKind uint8

const (
	kindUnset responsiveKind = iota
	kindScalar
	kindBreakpoints
)

// Responsive is a style value that is either unset, a single scalar (shorthand
// for a base-only value), or a set of per-breakpoint values. The zero value is
// unset. Responsive values are immutable; every mutator returns a copy.
type Responsive[T any] struct {
	kind    responsiveKind
	values  [breakpointCount]T
	present [breakpointCount]bool
}

// Unset returns an empty responsive value.
func Unset[T any]() Responsive[T] {
	return Responsive[T]{}
}

// Scalar returns a responsive value that applies v at every width.
func Scalar[T any](v T) Responsive[T] {
	r := Responsive[T]{kind: kindScalar}
	r.values[Base] = v
	r.present[Base] = true
	return r
}

// ByBreakpoint builds a per-breakpoint value. Unknown breakpoints are ignored
// and an empty map yields a value that resolves to nothing.
func ByBreakpoint[T any](values map[Breakpoint]T) Responsive[T] {
	r := Responsive[T]{kind: kindBreakpoints}
	for bp, v := range values {
		if !bp.Valid() {
			continue
		}
		r.values[bp] = v
		r.present[bp] = true
	}
	return r
}

// With returns a copy of r with v set at bp. A scalar becomes a
// per-breakpoint value keeping its base entry.
func (r Responsive[T]) With(bp Breakpoint, v T) Responsive[T] {
	if !bp.Valid() {
		return r
	}
	r.kind = kindBreakpoints
	r.values[bp] = v
	r.present[bp] = true
	return r
}

// Without returns a copy of r with bp cleared.
func (r Responsive[T]) Without(bp Breakpoint) Responsive[T] {
	if !bp.Valid() || !r.present[bp] {
		return r
	}
	var zero T
	r.kind = kindBreakpoints
	r.values[bp] = zero
	r.present[bp] = false
	return r
}

// IsSet reports whether at least one breakpoint carries a value.
func (r Responsive[T]) IsSet() bool {
	return r.Len() > 0
}

// IsScalar reports whether r was built with Scalar.
func (r Responsive[T]) IsScalar() bool {
	return r.kind == kindScalar
}

// Len returns the number of breakpoints carrying a value.
func (r Responsive[T]) Len() int {
	n := 0
	for _, ok := range r.present {
		if ok {
			n++
		}
	}
	return n
}

// Value returns the value set exactly at bp.
func (r Responsive[T]) Value(bp Breakpoint) (T, bool) {
	var zero T
	if !bp.Valid() || !r.present[bp] {
		return zero, false
	}
	return r.values[bp], true
}

// Each calls fn for every present breakpoint in canonical order.
func (r Responsive[T]) Each(fn func(Breakpoint, T)) {
	for _, bp := range Breakpoints {
		if r.present[bp] {
			fn(bp, r.values[bp])
		}
	}
}

// Cascade returns the value in effect at bp: the value of the highest
// present breakpoint that is not wider than bp.
func (r Responsive[T]) Cascade(bp Breakpoint) (T, bool) {
	var zero T
	if !bp.Valid() {
		return zero, false
	}
	for i := int(bp); i >= 0; i-- {
		if r.present[i] {
			return r.values[i], true
		}
	}
	return zero, false
}

// Collapse returns the scalar in effect at bp, or an unset value.
func (r Responsive[T]) Collapse(bp Breakpoint) Responsive[T] {
	if v, ok := r.Cascade(bp); ok {
		return Scalar(v)
	}
	return Unset[T]()
}

// String renders r for diagnostics, e.g. "md" or "{base: md, lg: xl}".
func (r Responsive[T]) String() string {
	switch {
	case r.kind == kindScalar:
		return fmt.Sprint(r.values[Base])
	case !r.IsSet():
		return "<unset>"
	}
	parts := make([]string, 0, r.Len())
	r.Each(func(bp Breakpoint, v T) {
		parts = append(parts, fmt.Sprintf("%s: %v", bp, v))
	})
	return "{" + strings.Join(parts, ", ") + "}"
}
