// Package export renders resolved components as a static HTML document.
package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/alexisbeaulieu97/stylekit/internal/manifest"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}}</title>
</head>
<body>
{{- range .Elements}}
<div data-component="{{.ID}}" data-kind="{{.Kind}}" class="{{.Class}}"></div>
{{- end}}
</body>
</html>
`))

type element struct {
	ID    string
	Kind  string
	Class string
}

// Write renders one element per entry, in entry order.
func Write(w io.Writer, name string, entries []manifest.Entry) error {
	elements := make([]element, 0, len(entries))
	for _, e := range entries {
		if e.Component == nil {
			return fmt.Errorf("entry %q has no component", e.ID)
		}
		elements = append(elements, element{ID: e.ID, Kind: e.Kind, Class: e.Component.Classes()})
	}

	data := struct {
		Name     string
		Elements []element
	}{Name: name, Elements: elements}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
