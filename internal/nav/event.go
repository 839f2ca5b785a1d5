package nav

// Event is a user intent delivered to Navigator.Dispatch.
type Event interface {
	isEvent()
}

// Select activates row Index of the top screen.
type Select struct {
	Index int
}

// Submit sends the text typed into a SearchInput.
type Submit struct {
	Text string
}

// Close dismisses the top screen.
type Close struct{}

// Shortcut is a global key binding.
type Shortcut struct {
	Action Action
}

func (Select) isEvent()   {}
func (Submit) isEvent()   {}
func (Close) isEvent()    {}
func (Shortcut) isEvent() {}

type Action int

const (
	ActionQuit Action = iota
	ActionBranches
	ActionSearch
	ActionRefresh
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionBranches:
		return "branches"
	case ActionSearch:
		return "search"
	case ActionRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}
