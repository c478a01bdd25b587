package main

import (
	"errors"
	"fmt"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

const (
	exitFailure = 1
	exitInvalid = 2
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// manifestSuggestion picks advice for a manifest load or build failure.
func manifestSuggestion(err error) string {
	var parseErr *stylekiterrors.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("Fix the syntax near line %d of %s.", parseErr.Line, parseErr.Path)
		}
		return fmt.Sprintf("Check that %s is a readable .yaml, .yml or .toml file.", parseErr.Path)
	}

	var validationErr *stylekiterrors.ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Suggestion != "" {
			return fmt.Sprintf("Replace the value of %s with %q.", validationErr.Field, validationErr.Suggestion)
		}
		if validationErr.Field != "" {
			return fmt.Sprintf("Correct %s and try again.", validationErr.Field)
		}
	}
	return ""
}

func exitCode(err error) int {
	var parseErr *stylekiterrors.ParseError
	var validationErr *stylekiterrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return exitInvalid
	}
	return exitFailure
}
