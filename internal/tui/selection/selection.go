// Package selection remembers which commit row was selected so the cursor
// can follow it when the list is rebuilt.
package selection

import "github.com/thiagokokada/gitnav/internal/git"

type snapshot struct {
	set  bool
	hash string
	idx  int
}

type State struct {
	snap snapshot
}

func (s *State) Clear() {
	s.snap = snapshot{}
}

// SetCommit records commit at row idx. Sentinel commits clear the state.
func (s *State) SetCommit(commit git.Commit, idx int) bool {
	if commit.IsEmpty() || idx < 0 {
		s.Clear()
		return false
	}
	s.snap = snapshot{set: true, hash: commit.Hash, idx: idx}
	return true
}

func (s *State) CommitHash() string {
	if !s.snap.set {
		return ""
	}
	return s.snap.hash
}

// CommitIndex finds the recorded commit in visible, trying its old row first.
// It returns -1 when the commit is gone or nothing was recorded.
func (s *State) CommitIndex(visible []git.Commit) int {
	if !s.snap.set {
		return -1
	}
	if s.snap.idx >= 0 && s.snap.idx < len(visible) && visible[s.snap.idx].Hash == s.snap.hash {
		return s.snap.idx
	}
	for idx, c := range visible {
		if c.Hash == s.snap.hash {
			return idx
		}
	}
	return -1
}
