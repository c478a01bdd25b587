package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatTree = "tree"
)

type resolveOptions struct {
	format string
	at     string
}

var idStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <manifest>",
		Short: "Print the class string of every component in a manifest",
		Long: `Resolve builds every component declared in a manifest and prints its class
string. With --at, only the classes in effect at that breakpoint are printed,
without breakpoint qualifiers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json or tree")
	cmd.Flags().StringVar(&opts.at, "at", "", "Collapse classes to a breakpoint (base, sm, md, lg, xl, 2xl)")

	return cmd
}

func runResolve(cmd *cobra.Command, flags *rootFlags, opts *resolveOptions, path string) error {
	switch opts.format {
	case formatText, formatJSON, formatTree:
	default:
		return newCommandError("resolve", "selecting output format", fmt.Errorf("unknown format %q", opts.format), "Use --format text, json or tree.")
	}

	var at *style.Breakpoint
	if opts.at != "" {
		bp, err := style.ParseBreakpoint(opts.at)
		if err != nil {
			return newCommandError("resolve", "parsing --at", err, "Use one of: "+strings.Join(style.BreakpointNames(), ", ")+".")
		}
		at = &bp
	}

	m, entries, err := loadEntries(cmd, flags, path)
	if err != nil {
		return err
	}

	resolved := make([]resolvedComponent, 0, len(entries))
	for _, e := range entries {
		classes := e.Component.Classes()
		if at != nil {
			classes = e.Component.ClassesAt(*at)
		}
		resolved = append(resolved, resolvedComponent{ID: e.ID, Kind: e.Kind, Classes: classes})
	}

	flags.log.Info("manifest resolved", "name", m.Name, "components", len(resolved))

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		return renderResolveJSON(out, m.Name, at, resolved)
	case formatTree:
		return renderResolveTree(out, m.Name, resolved)
	default:
		return renderResolveText(out, resolved)
	}
}

type resolvedComponent struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Classes string `json:"classes"`
}

type resolveJSONPayload struct {
	Name       string              `json:"name"`
	Breakpoint string              `json:"breakpoint,omitempty"`
	Components []resolvedComponent `json:"components"`
}

func renderResolveJSON(w io.Writer, name string, at *style.Breakpoint, resolved []resolvedComponent) error {
	payload := resolveJSONPayload{Name: name, Components: resolved}
	if at != nil {
		payload.Breakpoint = at.String()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderResolveText(w io.Writer, resolved []resolvedComponent) error {
	width := 0
	for _, r := range resolved {
		width = max(width, len(r.ID))
	}

	for _, r := range resolved {
		id := idStyle.Width(width).Render(r.ID)
		if _, err := fmt.Fprintf(w, "%s  %s\n", id, r.Classes); err != nil {
			return err
		}
	}
	return nil
}

// renderResolveTree groups each component's tokens under the breakpoint
// that qualifies them.
func renderResolveTree(w io.Writer, name string, resolved []resolvedComponent) error {
	tree := treeprint.New()
	tree.SetValue(name)

	for _, r := range resolved {
		branch := tree.AddBranch(fmt.Sprintf("%s (%s)", r.ID, r.Kind))
		groups := groupByBreakpoint(r.Classes)
		for _, bp := range style.Breakpoints {
			tokens := groups[bp]
			if len(tokens) == 0 {
				continue
			}
			branch.AddMetaNode(bp.String(), strings.Join(tokens, " "))
		}
	}

	_, err := io.WriteString(w, tree.String())
	return err
}

func groupByBreakpoint(classes string) map[style.Breakpoint][]string {
	groups := make(map[style.Breakpoint][]string)
	for _, token := range strings.Fields(classes) {
		bp := style.Base
		if qual, _, ok := strings.Cut(token, ":"); ok {
			if parsed, err := style.ParseBreakpoint(qual); err == nil {
				bp = parsed
			}
		}
		groups[bp] = append(groups[bp], token)
	}
	return groups
}

