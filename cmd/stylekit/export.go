package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/export"
	"github.com/alexisbeaulieu97/stylekit/internal/manifest"
)

var renderHTML = export.Write

func newExportCmd(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <manifest>",
		Short: "Write a static HTML page with one element per component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, entries, err := loadEntries(cmd, flags, args[0])
			if err != nil {
				return err
			}

			if output == "" {
				if err := renderHTML(cmd.OutOrStdout(), m.Name, entries); err != nil {
					flags.log.Error(err, "export failed")
					return newCommandError("export", "rendering HTML", err, "")
				}
				return nil
			}

			if err := writeExportFile(output, m.Name, entries); err != nil {
				flags.log.Error(err, "export failed", "output", output)
				return newCommandError("export", fmt.Sprintf("writing %q", output), err, "Check that the directory exists and is writable.")
			}

			flags.log.Info("exported", "output", output, "components", len(entries))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d components to %s\n", len(entries), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

// writeExportFile renders into a temporary file next to path and renames it
// into place, so a failed export never leaves a partial page behind.
func writeExportFile(path, name string, entries []manifest.Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".stylekit-export-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := renderHTML(tmp, name, entries); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
