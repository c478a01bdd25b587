// Package resolve turns responsive style values into utility-class tokens.
//
// Every function in this package is pure: the same input always yields the
// same output, nothing is cached, and all functions are safe for concurrent use.
package resolve

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// ValueMapper translates a domain value into the class fragment emitted after
// the prefix. A nil mapper formats the value with fmt.Sprint.
type ValueMapper[T any] func(T) string

func (m ValueMapper[T]) apply(v T) string {
	if m == nil {
		return fmt.Sprint(v)
	}
	return m(v)
}

// Responsive emits "{qualifier}{prefix}{mapped}" for every breakpoint present
// in prop, in canonical breakpoint order, joined by single spaces. An unset
// prop yields "".
func Responsive[T any](prop style.Responsive[T], prefix string, mapper ValueMapper[T]) string {
	if !prop.IsSet() {
		return ""
	}

	if prop.IsScalar() {
		v, _ := prop.Value(style.Base)
		return prefix + mapper.apply(v)
	}

	var b strings.Builder
	prop.Each(func(bp style.Breakpoint, v T) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(bp.Qualifier())
		b.WriteString(prefix)
		b.WriteString(mapper.apply(v))
	})
	return b.String()
}

// Hyphenated is Responsive with the prefix and value joined by a hyphen:
// "{qualifier}{prefix}-{mapped}".
func Hyphenated[T any](prop style.Responsive[T], prefix string, mapper ValueMapper[T]) string {
	return Responsive(prop, prefix+"-", mapper)
}

// Field names one property of a group and the class prefix it resolves under.
type Field struct {
	Name   string
	Prefix string
}

// Group resolves every set property of props in the declaration order given
// by fields, using the hyphenated join. Names missing from props are skipped.
func Group[T any](props map[string]style.Responsive[T], fields []Field, mapper ValueMapper[T]) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		prop, ok := props[f.Name]
		if !ok {
			continue
		}
		parts = append(parts, Hyphenated(prop, f.Prefix, mapper))
	}
	return Join(parts...)
}

// Join concatenates non-empty class fragments with single spaces.
func Join(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Static returns class when on is true, otherwise "".
func Static(on bool, class string) string {
	if on {
		return class
	}
	return ""
}
