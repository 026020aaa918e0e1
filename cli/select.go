package cli

import (
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
)

// SelectAlgorithm asks the user to pick one of choices. The cursor starts on
// preferred when it is one of them. Typing filters the list by prefix.
func SelectAlgorithm(label string, choices []string, preferred string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	if len(choices) == 1 {
		return choices[0], nil
	}

	sel := &promptui.Select{
		Label:     label,
		Items:     choices,
		CursorPos: max(slices.Index(choices, preferred), 0),
		Searcher: func(input string, index int) bool {
			if len(input) == 0 {
				return false
			}

			return strings.HasPrefix(choices[index], strings.ToLower(input))
		},
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}
