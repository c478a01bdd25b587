// Package components holds the storefront's structural components. Each one
// turns its typed, possibly responsive props into a class attribute through
// the resolve package.
package components

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// Component is a structural element whose presentation is a class string.
type Component interface {
	// Kind names the component family, e.g. "card".
	Kind() string
	// Classes returns every token, including breakpoint-qualified ones.
	Classes() string
	// ClassesAt returns the unqualified tokens in effect at bp.
	ClassesAt(bp style.Breakpoint) string
}

const (
	KindCard      = "card"
	KindContainer = "container"
	KindFlex      = "flex"
	KindInput     = "input"
)

// Kinds lists every component kind.
func Kinds() []string {
	return []string{KindCard, KindContainer, KindFlex, KindInput}
}
