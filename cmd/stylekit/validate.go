package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Check a manifest without printing classes",
		Long: `Validate decodes a manifest, checks its schema, property names and values,
and builds every component. Exit code 2 reports an invalid manifest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, entries, err := loadEntries(cmd, flags, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: %d components valid\n", okStyle.Render("✓"), m.Name, len(entries))
			if flags.verbose {
				for _, e := range entries {
					fmt.Fprintf(out, "  - %s (%s)\n", e.ID, e.Kind)
				}
			}
			return nil
		},
	}

	return cmd
}
