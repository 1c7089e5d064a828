package install

import (
	"github.com/charmbracelet/huh"
)

// Prompter asks the user whether an existing installation may be replaced.
type Prompter interface {
	ConfirmOverwrite(title string) (bool, error)
}

// HuhPrompter renders confirmation prompts as interactive terminal forms.
type HuhPrompter struct{}

// ConfirmOverwrite renders a yes/no prompt with the given title.
func (HuhPrompter) ConfirmOverwrite(title string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// StaticPrompter answers every prompt with a fixed decision. It backs the
// --yes flag and non-interactive runs.
type StaticPrompter struct {
	Answer bool
}

// ConfirmOverwrite returns the fixed answer.
func (p StaticPrompter) ConfirmOverwrite(string) (bool, error) {
	return p.Answer, nil
}
