// Package prompt collects the user's decision on a proposed plan. The
// decision unit is the whole plan: proceed, abort, or show diffs first and
// ask again. Cancellation happens here, strictly before the executor runs.
package prompt

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/doot/pkg/errors"
)

// Decision is the user's answer to a proposed plan.
type Decision int

const (
	Abort Decision = iota
	Proceed
	ShowDiff
)

// Ask prompts once and parses the answer. Empty input defaults to Abort,
// matching the conservative [y/N/d] convention.
func Ask() (Decision, error) {
	input, err := pterm.DefaultInteractiveTextInput.Show("Proceed? [y/N/d]")
	if err != nil {
		return Abort, errors.Wrap(err, errors.ErrIO, "failed to read confirmation")
	}
	decision, ok := Parse(input)
	if !ok {
		pterm.Println("Invalid option. Use 'y' to proceed, 'n' to abort, or 'd' to show diffs.")
		return Ask()
	}
	return decision, nil
}

// Parse maps an answer string to a Decision. The second return is false
// for unrecognized input.
func Parse(input string) (Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return Proceed, true
	case "n", "no", "":
		return Abort, true
	case "d", "diff":
		return ShowDiff, true
	default:
		return Abort, false
	}
}
