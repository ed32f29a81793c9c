package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component wrapping a State engine. The engine
// is held by pointer so hosts can also drive it directly between
// Update calls.
type Model struct {
	cfg   Config
	state *State

	bounds Bounds
}

func New(cfg Config) Model {
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	width := cfg.Width
	if width <= 0 {
		width = 20
	}
	m := Model{
		cfg:    cfg,
		state:  NewState(cfg),
		bounds: Bounds{Width: width, Height: 1},
	}
	return m
}

func isZeroKeyMap(km KeyMap) bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0
}

// State exposes the underlying engine.
func (m Model) State() *State { return m.state }

func (m Model) Value() string { return m.state.Value() }

func (m Model) Focused() bool { return m.state.Focused() }

func (m Model) Init() tea.Cmd {
	if m.state.Focused() {
		return m.state.Focus()
	}
	return nil
}

// Focus gives the field keyboard focus and starts the cursor blink.
func (m Model) Focus() (Model, tea.Cmd) {
	return m, m.state.Focus()
}

// Blur removes focus and commits any pending change.
func (m Model) Blur() (Model, tea.Cmd) {
	return m, m.state.Blur()
}

// SetWidth sets the field width in cells.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.bounds.Width = width
	m.state.shouldAutoScroll = true
	return m
}

// SetPosition records the field origin in terminal coordinates so
// mouse events can be hit tested.
func (m Model) SetPosition(x, y int) Model {
	m.bounds.X = x
	m.bounds.Y = y
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case blinkMsg, blinkResumeMsg:
		cmd, _ := m.state.blink.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.state.Focused() {
		return m, nil
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.state.history.PreventMerge()
		cmd := m.state.InsertText(sanitize(string(msg.Runes)))
		m.state.history.PreventMerge()
		return m, cmd
	}

	km := m.cfg.KeyMap
	s := m.state

	switch {
	case key.Matches(msg, km.Left):
		return m, s.left()
	case key.Matches(msg, km.Right):
		return m, s.right()
	case key.Matches(msg, km.WordLeft):
		return m, s.wordLeft()
	case key.Matches(msg, km.WordRight):
		return m, s.wordRight()
	case key.Matches(msg, km.Home):
		return m, s.home()
	case key.Matches(msg, km.End):
		return m, s.end()

	case key.Matches(msg, km.SelectLeft):
		s.selectLeft()
	case key.Matches(msg, km.SelectRight):
		s.selectRight()
	case key.Matches(msg, km.SelectWordLeft):
		s.selectWordLeft()
	case key.Matches(msg, km.SelectWordRight):
		s.selectWordRight()
	case key.Matches(msg, km.SelectToHome):
		s.selectToHome()
	case key.Matches(msg, km.SelectToEnd):
		s.selectToEnd()
	case key.Matches(msg, km.SelectAll):
		return m, s.selectAll()

	case key.Matches(msg, km.Backspace):
		return m, s.backspace()
	case key.Matches(msg, km.Delete):
		return m, s.deleteForward()
	case key.Matches(msg, km.DeleteWordLeft):
		return m, s.deleteWordLeft()
	case key.Matches(msg, km.DeleteWordRight):
		return m, s.deleteWordRight()
	case key.Matches(msg, km.DeleteToBeginning):
		return m, s.deleteToBeginning()
	case key.Matches(msg, km.DeleteToEnd):
		return m, s.deleteToEnd()

	case key.Matches(msg, km.Copy):
		s.copySelection()
	case key.Matches(msg, km.Cut):
		return m, s.cutSelection()
	case key.Matches(msg, km.Paste):
		return m, s.paste()

	case key.Matches(msg, km.Undo):
		return m, s.undo()
	case key.Matches(msg, km.Redo):
		return m, s.redo()

	case key.Matches(msg, km.Commit):
		return m, s.commit()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			return m, s.InsertText(string(msg.Runes))
		}
		if msg.Type == tea.KeySpace {
			return m, s.InsertText(" ")
		}
	}

	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.state.Focused() {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !m.mouseInBounds(msg.X, msg.Y) {
				return m, nil
			}
			return m, m.state.MouseDown(msg.X, msg.Y, msg.Shift)
		case tea.MouseButtonWheelLeft:
			m.state.Wheel(-1)
		case tea.MouseButtonWheelRight:
			m.state.Wheel(1)
		}
	case tea.MouseActionMotion:
		m.state.MouseMotion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.state.MouseUp()
	}

	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.bounds.Width <= 0 {
		return false
	}
	return x >= m.bounds.X && x < m.bounds.X+m.bounds.Width &&
		y >= m.bounds.Y && y < m.bounds.Y+m.bounds.Height
}
