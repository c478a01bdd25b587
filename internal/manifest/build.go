package manifest

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/stylekit/internal/components"
	"github.com/alexisbeaulieu97/stylekit/internal/resolve"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Entry is a built component together with its manifest identity.
type Entry struct {
	ID        string
	Kind      string
	Component components.Component
}

type setter[P any] func(p *P, field string, raw any) error

func enumSetter[P any, T style.Enum[T]](target func(*P) *style.Responsive[T]) setter[P] {
	return func(p *P, field string, raw any) error {
		v, err := decodeEnum[T](field, raw)
		if err != nil {
			return err
		}
		*target(p) = v
		return nil
	}
}

func boolSetter[P any](target func(*P) *bool) setter[P] {
	return func(p *P, field string, raw any) error {
		v, err := decodeBool(field, raw)
		if err != nil {
			return err
		}
		*target(p) = v
		return nil
	}
}

func gapSetter[P any](target func(*P) *style.Responsive[style.Gap]) setter[P] {
	return func(p *P, field string, raw any) error {
		v, err := decodeResponsive(field, raw, gapCheck)
		if err != nil {
			return err
		}
		*target(p) = v
		return nil
	}
}

func addMarginSetters[P any](set map[string]setter[P], margins func(*P) *resolve.MarginProps) map[string]setter[P] {
	set["m"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).M })
	set["mx"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).MX })
	set["my"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).MY })
	set["mt"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).MT })
	set["mr"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).MR })
	set["mb"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).MB })
	set["ml"] = enumSetter(func(p *P) *style.Responsive[style.Margin] { return &margins(p).ML })
	return set
}

func addPaddingSetters[P any](set map[string]setter[P], paddings func(*P) *resolve.PaddingProps) map[string]setter[P] {
	set["p"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).P })
	set["px"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).PX })
	set["py"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).PY })
	set["pt"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).PT })
	set["pr"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).PR })
	set["pb"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).PB })
	set["pl"] = enumSetter(func(p *P) *style.Responsive[style.Padding] { return &paddings(p).PL })
	return set
}

var cardSetters = addMarginSetters(map[string]setter[components.CardProps]{
	"padding":      enumSetter(func(p *components.CardProps) *style.Responsive[style.Padding] { return &p.Padding }),
	"radius":       enumSetter(func(p *components.CardProps) *style.Responsive[style.Radius] { return &p.Radius }),
	"border_width": enumSetter(func(p *components.CardProps) *style.Responsive[style.BorderWidth] { return &p.BorderWidth }),
	"shadow":       boolSetter(func(p *components.CardProps) *bool { return &p.Shadow }),
}, func(p *components.CardProps) *resolve.MarginProps { return &p.MarginProps })

var containerSetters = addMarginSetters(map[string]setter[components.ContainerProps]{
	"max_width": enumSetter(func(p *components.ContainerProps) *style.Responsive[style.ContainerSize] { return &p.MaxWidth }),
	"padding":   enumSetter(func(p *components.ContainerProps) *style.Responsive[style.Padding] { return &p.Padding }),
	"centered":  boolSetter(func(p *components.ContainerProps) *bool { return &p.Centered }),
}, func(p *components.ContainerProps) *resolve.MarginProps { return &p.MarginProps })

var flexSetters = addPaddingSetters(addMarginSetters(map[string]setter[components.FlexProps]{
	"display":   enumSetter(func(p *components.FlexProps) *style.Responsive[style.Display] { return &p.Display }),
	"inline":    boolSetter(func(p *components.FlexProps) *bool { return &p.Inline }),
	"direction": enumSetter(func(p *components.FlexProps) *style.Responsive[style.FlexDirection] { return &p.Direction }),
	"justify":   enumSetter(func(p *components.FlexProps) *style.Responsive[style.JustifyContent] { return &p.Justify }),
	"align":     enumSetter(func(p *components.FlexProps) *style.Responsive[style.AlignItems] { return &p.Align }),
	"wrap":      enumSetter(func(p *components.FlexProps) *style.Responsive[style.FlexWrap] { return &p.Wrap }),
	"gap":       gapSetter(func(p *components.FlexProps) *style.Responsive[style.Gap] { return &p.Gap }),
}, func(p *components.FlexProps) *resolve.MarginProps { return &p.MarginProps }),
	func(p *components.FlexProps) *resolve.PaddingProps { return &p.PaddingProps })

var inputSetters = addMarginSetters(map[string]setter[components.InputProps]{
	"size":       enumSetter(func(p *components.InputProps) *style.Responsive[style.InputSize] { return &p.Size }),
	"radius":     enumSetter(func(p *components.InputProps) *style.Responsive[style.Radius] { return &p.Radius }),
	"full_width": boolSetter(func(p *components.InputProps) *bool { return &p.FullWidth }),
	"invalid":    boolSetter(func(p *components.InputProps) *bool { return &p.Invalid }),
}, func(p *components.InputProps) *resolve.MarginProps { return &p.MarginProps })

// PropNames lists the props a component kind accepts, sorted.
func PropNames(kind string) []string {
	switch kind {
	case components.KindCard:
		return sortedKeys(cardSetters)
	case components.KindContainer:
		return sortedKeys(containerSetters)
	case components.KindFlex:
		return sortedKeys(flexSetters)
	case components.KindInput:
		return sortedKeys(inputSetters)
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func applyProps[P any](setters map[string]setter[P], props map[string]any, prefix string) (P, error) {
	var p P
	for _, name := range sortedKeys(props) {
		field := prefix + "." + name
		set, ok := setters[name]
		if !ok {
			return p, stylekiterrors.NewValidationErrorWithSuggestion(field, "unknown property", suggest(name, sortedKeys(setters)))
		}
		if err := set(&p, field, props[name]); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Build turns every declared component into a Component, in manifest order.
func (m *Manifest) Build() ([]Entry, error) {
	theme, err := m.Theme.Theme()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(m.Components))
	for i, spec := range m.Components {
		c, err := buildComponent(spec, theme, fieldForComponent(i, "props"))
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: spec.ID, Kind: spec.Kind, Component: c})
	}
	return entries, nil
}

func buildComponent(spec ComponentSpec, theme components.Theme, prefix string) (components.Component, error) {
	switch spec.Kind {
	case components.KindCard:
		p, err := applyProps(cardSetters, spec.Props, prefix)
		if err != nil {
			return nil, err
		}
		return components.NewCard(p).WithTheme(theme), nil
	case components.KindContainer:
		p, err := applyProps(containerSetters, spec.Props, prefix)
		if err != nil {
			return nil, err
		}
		return components.NewContainer(p).WithTheme(theme), nil
	case components.KindFlex:
		p, err := applyProps(flexSetters, spec.Props, prefix)
		if err != nil {
			return nil, err
		}
		return components.NewFlex(p), nil
	case components.KindInput:
		p, err := applyProps(inputSetters, spec.Props, prefix)
		if err != nil {
			return nil, err
		}
		return components.NewInput(p).WithTheme(theme), nil
	default:
		return nil, stylekiterrors.NewValidationErrorWithSuggestion(prefix, fmt.Sprintf("unknown component kind %q", spec.Kind), suggest(spec.Kind, components.Kinds()))
	}
}
