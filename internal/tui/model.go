package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thiagokokada/gitnav/internal/nav"
	"github.com/thiagokokada/gitnav/internal/tui/selection"
)

// reloadMsg asks for the base list to be rebuilt, e.g. after the repository
// changed on disk.
type reloadMsg struct{}

const (
	footerLines         = 2
	defaultViewportRows = 20
)

// Model is the bubbletea model. It owns the navigation stack and renders
// whatever screen is on top.
type Model struct {
	nav   *nav.Navigator
	stack nav.Stack

	keys     keyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model

	// cursors[i] is the selected row of the screen at depth i.
	cursors   []int
	selection selection.State

	palette colorPalette
	styles  styles
	syntax  bool

	width, height int
	showHelp      bool
	// reloadPending defers a reload that arrived while a child screen was
	// open until the base list is visible again.
	reloadPending bool
	quitting      bool
}

func newModel(n *nav.Navigator, palette colorPalette, syntax bool) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256

	m := &Model{
		nav:      n,
		keys:     newKeyMap(),
		help:     help.New(),
		input:    input,
		viewport: viewport.New(0, defaultViewportRows),
		palette:  palette,
		styles:   newStyles(palette),
		syntax:   syntax && syntaxHighlightAvailable,
	}
	m.stack = n.Start()
	m.cursors = []int{0}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		return m, nil
	case reloadMsg:
		if m.stack.Depth() > 1 {
			m.reloadPending = true
			return m, nil
		}
		return m, m.dispatch(nav.Shortcut{Action: nav.ActionRefresh})
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if m.stack.Top().Kind() == nav.KindSearchInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}
	top := m.stack.Top()
	if top.Kind() == nav.KindSearchInput {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.dispatch(nav.Submit{Text: m.input.Value()})
		case key.Matches(msg, m.keys.Cancel):
			return m.dispatch(nav.Close{})
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m.dispatch(nav.Shortcut{Action: nav.ActionQuit})
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Quit):
		return m.dispatch(nav.Shortcut{Action: nav.ActionQuit})
	case key.Matches(msg, m.keys.Branches):
		return m.dispatch(nav.Shortcut{Action: nav.ActionBranches})
	case key.Matches(msg, m.keys.Search):
		return m.dispatch(nav.Shortcut{Action: nav.ActionSearch})
	case key.Matches(msg, m.keys.Refresh):
		return m.dispatch(nav.Shortcut{Action: nav.ActionRefresh})
	case key.Matches(msg, m.keys.Select):
		if top.Kind() == nav.KindFileContent {
			return nil
		}
		return m.dispatch(nav.Select{Index: m.cursor()})
	case key.Matches(msg, m.keys.Close):
		return m.dispatch(nav.Close{})
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.moveTo(0)
	case key.Matches(msg, m.keys.End):
		m.moveToEnd()
	}
	return nil
}

// dispatch hands ev to the navigator and adapts the widgets to the
// resulting stack.
func (m *Model) dispatch(ev nav.Event) tea.Cmd {
	prev := m.stack
	sc, ok := ev.(nav.Shortcut)
	refresh := ok && sc.Action == nav.ActionRefresh
	if refresh && prev.Depth() == 1 {
		m.rememberSelection()
	}
	next, quit := m.nav.Dispatch(prev, ev)
	if quit {
		m.quitting = true
		return tea.Quit
	}
	m.stack = next
	cmd := m.syncScreen(prev, ev)
	if refresh && next.Depth() == 1 {
		m.reloadPending = false
		m.restoreSelection()
	}
	if m.reloadPending && next.Depth() == 1 {
		return tea.Batch(cmd, m.dispatch(nav.Shortcut{Action: nav.ActionRefresh}))
	}
	return cmd
}

func (m *Model) syncScreen(prev nav.Stack, ev nav.Event) tea.Cmd {
	depth := m.stack.Depth()
	if len(m.cursors) > depth {
		m.cursors = m.cursors[:depth]
	}
	for len(m.cursors) < depth {
		m.cursors = append(m.cursors, 0)
	}
	top := m.stack.Top()
	entered := prev.Depth() < depth || (prev.Depth() == depth && prev.Top().Kind() != top.Kind())
	if entered && depth > 0 {
		m.cursors[depth-1] = 0
	}
	if _, ok := ev.(nav.Select); ok && prev.Top().Kind() == nav.KindBranchSelector && depth == 1 {
		m.cursors[0] = 0
	}
	m.clampCursor()

	var cmd tea.Cmd
	switch top.Kind() {
	case nav.KindSearchInput:
		if entered {
			m.input.Reset()
			cmd = m.input.Focus()
		}
	case nav.KindFileContent:
		m.input.Blur()
		if entered {
			content := top.Content()
			if m.syntax {
				content = highlightContent(content, top.File(), m.palette)
			}
			m.viewport.SetContent(content)
			m.resizeViewport()
			m.viewport.GotoTop()
		}
	default:
		m.input.Blur()
	}
	return cmd
}

func (m *Model) rememberSelection() {
	base := m.stack.Base()
	if base.Kind() != nav.KindMainList {
		return
	}
	idx := m.cursors[0]
	commits := base.Commits()
	if idx < 0 || idx >= len(commits) {
		m.selection.Clear()
		return
	}
	m.selection.SetCommit(commits[idx], idx)
}

func (m *Model) restoreSelection() {
	if idx := m.selection.CommitIndex(m.stack.Base().Commits()); idx >= 0 {
		m.cursors[0] = idx
	}
	m.selection.Clear()
	m.clampCursor()
}

func (m *Model) cursor() int {
	if len(m.cursors) == 0 {
		return 0
	}
	return m.cursors[len(m.cursors)-1]
}

func (m *Model) lastRow() int {
	return len(m.stack.Top().View().Items) - 1
}

func (m *Model) move(delta int) {
	if m.stack.Top().Kind() == nav.KindFileContent {
		m.viewport.SetYOffset(m.viewport.YOffset + delta)
		return
	}
	m.moveTo(m.cursor() + delta)
}

func (m *Model) moveTo(row int) {
	if len(m.cursors) == 0 {
		return
	}
	if m.stack.Top().Kind() == nav.KindFileContent {
		m.viewport.SetYOffset(row)
		return
	}
	m.cursors[len(m.cursors)-1] = row
	m.clampCursor()
}

func (m *Model) moveToEnd() {
	if m.stack.Top().Kind() == nav.KindFileContent {
		m.viewport.GotoBottom()
		return
	}
	m.moveTo(m.lastRow())
}

func (m *Model) clampCursor() {
	if len(m.cursors) == 0 {
		return
	}
	last := m.lastRow()
	c := &m.cursors[len(m.cursors)-1]
	*c = max(0, min(*c, last))
}

func (m *Model) pageSize() int {
	if m.stack.Top().Kind() == nav.KindFileContent {
		return max(1, m.viewport.Height)
	}
	return max(1, m.listRows(m.stack.Top().View()))
}

func (m *Model) resizeViewport() {
	if m.width > 0 {
		m.viewport.Width = m.width
	}
	if m.height > 0 {
		head := lipgloss.Height(m.renderHead(m.stack.Top().View()))
		m.viewport.Height = max(1, m.height-head-footerLines-1)
	}
}

// listRows is how many items fit under the head of v.
func (m *Model) listRows(v nav.View) int {
	if m.height <= 0 {
		return len(v.Items)
	}
	head := lipgloss.Height(m.renderHead(v))
	return max(1, m.height-head-footerLines-1)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.stack.Top().View()
	var b strings.Builder
	b.WriteString(m.renderHead(v))
	b.WriteString("\n")
	switch {
	case m.showHelp:
		b.WriteString(formatShortcutsHelpText(m.keys.shortcuts()))
		b.WriteString("\n")
	case m.stack.Top().Kind() == nav.KindFileContent:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	case v.Input:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	default:
		b.WriteString(m.renderItems(v))
	}
	if len(v.Actions) > 0 {
		b.WriteString(m.styles.actions.Render("[" + strings.Join(v.Actions, "] [") + "]"))
		b.WriteString("\n")
	}
	if v.Input {
		b.WriteString(m.help.View(inputHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m *Model) renderHead(v nav.View) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(v.Title))
	b.WriteString("\n")
	for _, h := range v.Header {
		b.WriteString(m.styles.header.Render(h))
		b.WriteString("\n")
	}
	if v.Text != "" && m.stack.Top().Kind() != nav.KindFileContent {
		b.WriteString("\n")
		b.WriteString(v.Text)
		b.WriteString("\n")
	}
	if v.Prompt != "" {
		b.WriteString("\n")
		b.WriteString(v.Prompt)
		b.WriteString("\n")
	}
	if v.ItemsTitle != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.section.Render(v.ItemsTitle))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderItems(v nav.View) string {
	rows := m.listRows(v)
	cur := m.cursor()
	start := 0
	if cur >= rows {
		start = cur - rows + 1
	}
	end := min(len(v.Items), start+rows)
	var b strings.Builder
	for i := start; i < end; i++ {
		item := v.Items[i]
		switch {
		case i == cur && item.Selectable:
			b.WriteString(m.styles.cursor.Render("> " + item.Label))
		case !item.Selectable:
			b.WriteString(m.styles.disabled.Render(item.Label))
		default:
			b.WriteString(m.styles.item.Render(item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
