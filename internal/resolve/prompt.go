package resolve

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user a single question and returns the raw answer.
type Prompter interface {
	Ask(label string) (string, error)
}

// TerminalPrompter asks questions interactively on the terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Ask(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}

	answer, err := prompt.Run()
	// Closed input counts as an empty answer, not a failure.
	if errors.Is(err, promptui.ErrEOF) {
		return "", nil
	}

	return answer, err
}
