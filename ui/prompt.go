// Package ui implements the interactive parts of an extract operation: file
// selection and root selector entry. Both are cancellable; cancellation is a
// silent abort, not an error to report.
package ui

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"
)

// ErrCancelled signals that the user backed out of a prompt.
var ErrCancelled = errors.New("cancelled by user")

// PickFile lets the user choose one file from candidates.
func PickFile(candidates []string) (string, error) {
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(candidates).
		WithMaxHeight(15).
		Show("Select HTML file")
	if err != nil {
		return "", ErrCancelled
	}
	if selected == "" {
		return "", ErrCancelled
	}
	return selected, nil
}

// AskSelector asks for the root selector string. Empty input counts as
// cancellation; validation of the text happens at the caller.
func AskSelector() (string, error) {
	input, err := pterm.DefaultInteractiveTextInput.Show("Root selector (e.g. .sec01)")
	if err != nil {
		return "", ErrCancelled
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrCancelled
	}
	return input, nil
}
