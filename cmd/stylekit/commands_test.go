package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/manifest"
	"github.com/alexisbeaulieu97/stylekit/internal/preview"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var storefront = filepath.Join("testdata", "storefront.yaml")

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestResolveText(t *testing.T) {
	out, _, err := execute(t, "resolve", storefront)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "page"))
	assert.Contains(t, lines[0], "w-full max-w-full xl:max-w-screen-xl px-3 mx-auto")
	assert.Contains(t, lines[2], "bg-white p-4 lg:p-10 rounded-full shadow-sm mt-sm")
}

func TestResolveJSON(t *testing.T) {
	out, _, err := execute(t, "resolve", storefront, "--format", "json")
	require.NoError(t, err)

	var payload resolveJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "storefront", payload.Name)
	assert.Empty(t, payload.Breakpoint)
	require.Len(t, payload.Components, 4)
	assert.Equal(t, resolvedComponent{
		ID:      "product_grid",
		Kind:    "flex",
		Classes: "flex flex-col md:flex-row justify-between flex-wrap gap-2 lg:gap-6",
	}, payload.Components[1])
}

func TestResolveAtBreakpoint(t *testing.T) {
	out, _, err := execute(t, "resolve", storefront, "--format", "json", "--at", "LG")
	require.NoError(t, err)

	var payload resolveJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "lg", payload.Breakpoint)

	classes := map[string]string{}
	for _, c := range payload.Components {
		classes[c.ID] = c.Classes
		assert.NotContains(t, c.Classes, ":")
	}
	assert.Equal(t, "flex flex-row justify-between flex-wrap gap-6", classes["product_grid"])
	assert.Equal(t, "bg-white p-10 rounded-full shadow-sm mt-sm", classes["product_card"])
	assert.Equal(t, "border border-gray-300 px-4 py-3 text-lg w-full", classes["search_box"])
}

func TestResolveTree(t *testing.T) {
	out, _, err := execute(t, "resolve", storefront, "--format", "tree")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "storefront"))
	assert.Contains(t, out, "product_card (card)")
	assert.Contains(t, out, "[lg]  lg:p-10")
	assert.Contains(t, out, "[md]  md:flex-row")
}

func TestResolveRejectsBadFlags(t *testing.T) {
	_, _, err := execute(t, "resolve", storefront, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Use --format text, json or tree.")

	_, _, err = execute(t, "resolve", storefront, "--at", "huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base, sm, md, lg, xl, 2xl")
}

func TestGroupByBreakpoint(t *testing.T) {
	groups := groupByBreakpoint("flex md:flex-row lg:gap-6 gap-2 2xl:p-8 hover:x")

	assert.Equal(t, []string{"flex", "gap-2", "hover:x"}, groups[style.Base])
	assert.Equal(t, []string{"md:flex-row"}, groups[style.MD])
	assert.Equal(t, []string{"lg:gap-6"}, groups[style.LG])
	assert.Equal(t, []string{"2xl:p-8"}, groups[style.XXL])
}

func TestValidateReportsCount(t *testing.T) {
	out, _, err := execute(t, "validate", storefront, "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "storefront: 4 components valid")
	assert.Contains(t, out, "- search_box (input)")
}

func TestValidateInvalidManifest(t *testing.T) {
	path := writeManifest(t, `version: "1.0"
name: broken
components:
  - id: hero
    kind: card
    props:
      radius: fulll
`)

	_, _, err := execute(t, "validate", path)
	require.Error(t, err)

	var validationErr *stylekiterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "full", validationErr.Suggestion)
	assert.Contains(t, err.Error(), `Suggestion: Replace the value of`)
	assert.Equal(t, exitInvalid, exitCode(err))
}

func TestValidateSyntaxError(t *testing.T) {
	path := writeManifest(t, "version: \"1.0\"\nname: [unclosed\n")

	_, _, err := execute(t, "validate", path)
	require.Error(t, err)

	var parseErr *stylekiterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, exitInvalid, exitCode(err))
}

func TestBreakpointsTable(t *testing.T) {
	out, _, err := execute(t, "breakpoints")
	require.NoError(t, err)

	for _, want := range []string{"BREAKPOINT", "base", "0px", "2xl", "1536px", "md:"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "active at")
}

func TestBreakpointsWidth(t *testing.T) {
	out, _, err := execute(t, "breakpoints", "--width", "900")
	require.NoError(t, err)
	assert.Contains(t, out, "active at 900px: md")

	_, _, err = execute(t, "breakpoints", "--width", "-1")
	require.Error(t, err)
}

func TestExportToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.html")

	out, _, err := execute(t, "export", storefront, "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 4 components")

	f, err := os.Open(target)
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	card := doc.Find(`div[data-component="product_card"]`)
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "card", card.AttrOr("data-kind", ""))
	assert.True(t, card.HasClass("lg:p-10"))
}

func TestExportToStdout(t *testing.T) {
	out, _, err := execute(t, "export", storefront)
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `data-component="search_box"`)
}

func stubPreview(t *testing.T, terminal bool, run func(*cobra.Command, tea.Model) error) {
	t.Helper()
	origTerminal, origRun := isTerminal, runProgram
	t.Cleanup(func() {
		isTerminal = origTerminal
		runProgram = origRun
	})
	isTerminal = func() bool { return terminal }
	runProgram = run
}

func TestPreviewRequiresTerminal(t *testing.T) {
	stubPreview(t, false, func(*cobra.Command, tea.Model) error {
		t.Fatal("program must not start without a terminal")
		return nil
	})

	_, _, err := execute(t, "preview", storefront)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestPreviewStartsAtViewportBreakpoint(t *testing.T) {
	var started preview.Model
	stubPreview(t, true, func(_ *cobra.Command, model tea.Model) error {
		started = model.(preview.Model)
		return nil
	})

	_, _, err := execute(t, "preview", storefront, "--viewport", "700")
	require.NoError(t, err)
	assert.Equal(t, style.SM, started.Breakpoint())
	e, ok := started.Selected()
	require.True(t, ok)
	assert.Equal(t, "page", e.ID)
}

func TestPreviewViewportFromEnvironment(t *testing.T) {
	t.Setenv("STYLEKIT_PREVIEW_VIEWPORT", "1300")
	var started preview.Model
	stubPreview(t, true, func(_ *cobra.Command, model tea.Model) error {
		started = model.(preview.Model)
		return nil
	})

	_, _, err := execute(t, "preview", storefront)
	require.NoError(t, err)
	assert.Equal(t, style.XL, started.Breakpoint())
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, "validate", storefront, "--verbose", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"cli"`)
	assert.Contains(t, stderr, "manifest built")
}

func TestBadLogFormat(t *testing.T) {
	_, _, err := execute(t, "version", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating logger")
	assert.Equal(t, exitFailure, exitCode(err))
}

func TestMissingSettingsFile(t *testing.T) {
	_, _, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading settings")
}

func stubRender(t *testing.T, render func(io.Writer, string, []manifest.Entry) error) {
	t.Helper()
	orig := renderHTML
	t.Cleanup(func() { renderHTML = orig })
	renderHTML = render
}

func TestExportFailureLeavesNoPartialFile(t *testing.T) {
	stubRender(t, func(w io.Writer, _ string, _ []manifest.Entry) error {
		_, _ = io.WriteString(w, "<!DOCTYPE html><html><body><div")
		return errors.New("template exploded")
	})
	dir := t.TempDir()
	target := filepath.Join(dir, "out.html")

	_, _, err := execute(t, "export", storefront, "-o", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template exploded")

	leftovers, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestExportFailureKeepsPreviousFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, os.WriteFile(target, []byte("previous export"), 0o644))

	stubRender(t, func(io.Writer, string, []manifest.Entry) error {
		return errors.New("template exploded")
	})

	_, _, err := execute(t, "export", storefront, "-o", target)
	require.Error(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "previous export", string(data))
}

func TestExportMissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "absent", "out.html")

	_, _, err := execute(t, "export", storefront, "-o", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Check that the directory exists")
	assert.NoFileExists(t, target)
}
