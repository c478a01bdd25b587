package resolve

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// Display resolves a display mode to bare tokens, e.g. "hidden md:flex".
func Display(prop style.Responsive[style.Display]) string {
	return Responsive(prop, "", DisplayClass)
}

// DisplayClass maps a display mode to its utility class. "none" is "hidden";
// every other mode is already a class name.
func DisplayClass(v style.Display) string {
	switch v {
	case style.DisplayNone:
		return "hidden"
	default:
		return string(v)
	}
}
