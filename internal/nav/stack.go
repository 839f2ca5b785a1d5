package nav

import "slices"

// Stack is an ordered stack of screens; index 0 is the base list. Stack
// values are never modified in place: every operation returns a new Stack
// and leaves the receiver usable.
type Stack struct {
	screens []Screen
}

func NewStack(base Screen) Stack {
	return Stack{screens: []Screen{base}}
}

func (s Stack) Depth() int { return len(s.screens) }

// Top returns the visible screen, or the zero Screen for an empty stack.
func (s Stack) Top() Screen {
	if len(s.screens) == 0 {
		return Screen{}
	}
	return s.screens[len(s.screens)-1]
}

func (s Stack) Base() Screen {
	if len(s.screens) == 0 {
		return Screen{}
	}
	return s.screens[0]
}

// At returns the screen at depth i (0 is the base).
func (s Stack) At(i int) Screen {
	if i < 0 || i >= len(s.screens) {
		return Screen{}
	}
	return s.screens[i]
}

func (s Stack) Push(screen Screen) Stack {
	// Clip forces append to copy so stacks sharing a prefix stay independent.
	return Stack{screens: append(slices.Clip(s.screens), screen)}
}

// Pop removes the top screen. The base is never removed.
func (s Stack) Pop() Stack {
	if len(s.screens) <= 1 {
		return s
	}
	return Stack{screens: slices.Clip(s.screens[:len(s.screens)-1])}
}

// ReplaceTop swaps the top screen for screen, keeping the base in place when
// the stack holds only the base.
func (s Stack) ReplaceTop(screen Screen) Stack {
	if len(s.screens) <= 1 {
		return s.Push(screen)
	}
	return s.Pop().Push(screen)
}

// ReplaceBase discards every screen and installs base as the new bottom.
func (s Stack) ReplaceBase(base Screen) Stack {
	return NewStack(base)
}
