package field

import tea "github.com/charmbracelet/bubbletea"

// InputEvent is emitted after every buffer mutation.
type InputEvent struct {
	Value string
}

// ChangeEvent is emitted when a value is committed (enter or focus
// loss), at most once per distinct value.
type ChangeEvent struct {
	Value string
}

func inputEventCmd(value string) tea.Cmd {
	return func() tea.Msg { return InputEvent{Value: value} }
}

func changeEventCmd(value string) tea.Cmd {
	return func() tea.Msg { return ChangeEvent{Value: value} }
}
