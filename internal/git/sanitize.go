package git

import (
	"fmt"
	"strings"
	"unicode"
)

// validateRevision checks a revision (branch name or commit hash) before it is
// handed to git as a positional argument.
//
// Rules enforced on top of passing it after --end-of-options:
// - Cannot be empty or start with '-'
// - Cannot contain whitespace or control characters
// - Cannot contain '..' (range syntax) or '@{' (reflog syntax)
func validateRevision(rev string) error {
	if rev == "" {
		return fmt.Errorf("%w: revision cannot be empty", ErrInvalidArgument)
	}
	if strings.HasPrefix(rev, "-") {
		return fmt.Errorf("%w: revision cannot start with '-'", ErrInvalidArgument)
	}
	if strings.Contains(rev, "..") {
		return fmt.Errorf("%w: revision cannot contain '..'", ErrInvalidArgument)
	}
	if strings.Contains(rev, "@{") {
		return fmt.Errorf("%w: revision cannot contain '@{'", ErrInvalidArgument)
	}
	for _, r := range rev {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: revision cannot contain whitespace or control characters", ErrInvalidArgument)
		}
	}
	return nil
}

// validatePath checks a repository-relative path used in "<rev>:<path>" and
// pathspec arguments.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: path cannot contain control characters", ErrInvalidArgument)
		}
	}
	return nil
}

// sanitizeTerm prepares a user-supplied search term: control characters are
// removed and surrounding whitespace trimmed. Pattern metacharacters are kept;
// the backends match terms literally.
func sanitizeTerm(term string) string {
	var b strings.Builder
	for _, r := range term {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
