package cli

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoChoices = errors.New("nothing to choose from")
	ErrEmptyKey  = errors.New("you must enter a key")
)

// PromptKey asks for a search key written as a YAML scalar, such as 4,
// "4" or !char x. The answer is validated as YAML but not converted.
func PromptKey(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if len(s) == 0 {
				return ErrEmptyKey
			}

			var node yaml.Node

			return yaml.Unmarshal([]byte(s), &node)
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	return prompt.Run()
}

