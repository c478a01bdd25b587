package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newBreakpointsCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "List breakpoints and their minimum viewport widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") && width < 0 {
				return newCommandError("breakpoints", "reading --width", fmt.Errorf("width must not be negative, got %d", width), "")
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("BREAKPOINT", "MIN WIDTH", "QUALIFIER").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, bp := range style.Breakpoints {
				qualifier := bp.Qualifier()
				if qualifier == "" {
					qualifier = "(none)"
				}
				t.Row(bp.String(), fmt.Sprintf("%dpx", bp.MinWidth()), qualifier)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.Render())
			if cmd.Flags().Changed("width") {
				fmt.Fprintf(out, "active at %dpx: %s\n", width, style.ActiveBreakpoint(width))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Report the breakpoint active at this viewport width")

	return cmd
}
