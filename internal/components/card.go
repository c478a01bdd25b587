package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/resolve"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// CardProps configures a Card.
type CardProps struct {
	Padding     style.Responsive[style.Padding]
	Radius      style.Responsive[style.Radius]
	BorderWidth style.Responsive[style.BorderWidth]
	Shadow      bool
	resolve.MarginProps
}

// At collapses every responsive prop to the value in effect at bp.
func (p CardProps) At(bp style.Breakpoint) CardProps {
	return CardProps{
		Padding:     p.Padding.Collapse(bp),
		Radius:      p.Radius.Collapse(bp),
		BorderWidth: p.BorderWidth.Collapse(bp),
		Shadow:      p.Shadow,
		MarginProps: p.MarginProps.At(bp),
	}
}

// Card is a surface that groups related content, such as a product tile.
type Card struct {
	props CardProps
	theme Theme
}

// NewCard creates a card with the default theme.
func NewCard(props CardProps) *Card {
	return &Card{props: props, theme: DefaultTheme()}
}

// WithTheme replaces the theme used to map prop values.
func (c *Card) WithTheme(theme Theme) *Card {
	c.theme = normalizeTheme(theme)
	return c
}

// Props returns the card's props.
func (c *Card) Props() CardProps {
	return c.props
}

// Kind implements Component.
func (c *Card) Kind() string {
	return KindCard
}

// Classes implements Component.
func (c *Card) Classes() string {
	return cardClasses(c.props, c.theme)
}

// ClassesAt implements Component.
func (c *Card) ClassesAt(bp style.Breakpoint) string {
	return cardClasses(c.props.At(bp), c.theme)
}

func cardClasses(p CardProps, theme Theme) string {
	return resolve.Join(
		"bg-white",
		resolve.Responsive(p.Padding, "p-", theme.PaddingClass),
		resolve.Responsive(p.Radius, "rounded-", theme.RadiusClass),
		resolve.Responsive(p.BorderWidth, "border", theme.BorderClass),
		resolve.Static(p.Shadow, "shadow-sm"),
		resolve.Margins(p.MarginProps),
	)
}
