package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/preview"
)

var errNotTerminal = errors.New("stdout is not a terminal")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var runProgram = func(cmd *cobra.Command, model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <manifest>",
		Short: "Browse resolved classes interactively across breakpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return newCommandError("preview", "starting the interactive preview", errNotTerminal, "Run preview from an interactive terminal, or use 'stylekit resolve'.")
			}

			m, entries, err := loadEntries(cmd, flags, args[0])
			if err != nil {
				return err
			}

			flags.log.Info("launching preview", "name", m.Name, "viewport", flags.settings.Viewport)
			model := preview.NewModel(m.Name, entries, flags.settings.Viewport)
			if err := runProgram(cmd, model); err != nil {
				flags.log.Error(err, "preview failed")
				return newCommandError("preview", "running the interactive preview", err, "")
			}
			return nil
		},
	}

	cmd.Flags().Int("viewport", 1024, "Initial simulated viewport width in px")

	return cmd
}
