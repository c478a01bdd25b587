package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/resolve"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// ContainerProps configures a Container.
type ContainerProps struct {
	MaxWidth style.Responsive[style.ContainerSize]
	Padding  style.Responsive[style.Padding]
	Centered bool
	resolve.MarginProps
}

// At collapses every responsive prop to the value in effect at bp.
func (p ContainerProps) At(bp style.Breakpoint) ContainerProps {
	return ContainerProps{
		MaxWidth:    p.MaxWidth.Collapse(bp),
		Padding:     p.Padding.Collapse(bp),
		Centered:    p.Centered,
		MarginProps: p.MarginProps.At(bp),
	}
}

// Container constrains page content to a readable width.
type Container struct {
	props ContainerProps
	theme Theme
}

// NewContainer creates a container with the default theme.
func NewContainer(props ContainerProps) *Container {
	return &Container{props: props, theme: DefaultTheme()}
}

// WithTheme replaces the theme used to map prop values.
func (c *Container) WithTheme(theme Theme) *Container {
	c.theme = normalizeTheme(theme)
	return c
}

// Props returns the container's props.
func (c *Container) Props() ContainerProps {
	return c.props
}

// Kind implements Component.
func (c *Container) Kind() string {
	return KindContainer
}

// Classes implements Component.
func (c *Container) Classes() string {
	return containerClasses(c.props, c.theme)
}

// ClassesAt implements Component.
func (c *Container) ClassesAt(bp style.Breakpoint) string {
	return containerClasses(c.props.At(bp), c.theme)
}

func containerClasses(p ContainerProps, theme Theme) string {
	return resolve.Join(
		"w-full",
		resolve.Responsive(p.MaxWidth, "max-w-", theme.ContainerClass),
		resolve.Responsive(p.Padding, "px-", theme.PaddingClass),
		resolve.Static(p.Centered, "mx-auto"),
		resolve.Margins(p.MarginProps),
	)
}
