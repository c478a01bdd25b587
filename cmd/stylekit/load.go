package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/manifest"
)

// loadEntries reads, validates and builds the manifest at path.
func loadEntries(cmd *cobra.Command, flags *rootFlags, path string) (*manifest.Manifest, []manifest.Entry, error) {
	m, err := manifest.NewLoader(flags.log).Load(cmd.Context(), path)
	if err != nil {
		flags.log.Error(err, "manifest load failed", "path", path)
		return nil, nil, newCommandError(cmd.Name(), fmt.Sprintf("loading manifest %q", path), err, manifestSuggestion(err))
	}

	entries, err := m.Build()
	if err != nil {
		flags.log.Error(err, "manifest build failed", "path", path)
		return nil, nil, newCommandError(cmd.Name(), fmt.Sprintf("building components from %q", path), err, manifestSuggestion(err))
	}

	flags.log.Debug("manifest built", "path", path, "components", len(entries))
	return m, entries, nil
}
