package nav

import (
	"fmt"
	"strings"
)

type branchChoice struct {
	name      string
	display   string
	isCurrent bool
}

// buildBranchChoices drops blanks and duplicates, keeps the gateway's order
// and moves the current branch to the front.
func buildBranchChoices(branches []string, current string) []branchChoice {
	current = strings.TrimSpace(current)
	unique := make(map[string]struct{}, len(branches))
	choices := make([]branchChoice, 0, len(branches))
	var currentChoice *branchChoice
	for _, b := range branches {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, ok := unique[b]; ok {
			continue
		}
		unique[b] = struct{}{}
		if current != "" && b == current {
			currentChoice = &branchChoice{name: b, display: fmt.Sprintf("* %s (current)", b), isCurrent: true}
			continue
		}
		choices = append(choices, branchChoice{name: b, display: b})
	}
	if currentChoice == nil {
		return choices
	}
	return append([]branchChoice{*currentChoice}, choices...)
}
