package field

import tea "github.com/charmbracelet/bubbletea"

// Command identifies an editing action independent of key bindings,
// so hosts can drive the engine from menus or scripted input.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveWordLeft
	CmdMoveWordRight
	CmdMoveToBeginning
	CmdMoveToEnd
	CmdSelectLeft
	CmdSelectRight
	CmdSelectWordLeft
	CmdSelectWordRight
	CmdSelectToBeginning
	CmdSelectToEnd
	CmdSelectAll
	CmdBackspace
	CmdDelete
	CmdDeleteWordLeft
	CmdDeleteWordRight
	CmdDeleteToBeginning
	CmdDeleteToEnd
	CmdCopy
	CmdCut
	CmdPaste
	CmdUndo
	CmdRedo
)

var commandNames = map[Command]string{
	CmdMoveLeft:          "move-left",
	CmdMoveRight:         "move-right",
	CmdMoveWordLeft:      "move-word-left",
	CmdMoveWordRight:     "move-word-right",
	CmdMoveToBeginning:   "move-to-beginning",
	CmdMoveToEnd:         "move-to-end",
	CmdSelectLeft:        "select-left",
	CmdSelectRight:       "select-right",
	CmdSelectWordLeft:    "select-word-left",
	CmdSelectWordRight:   "select-word-right",
	CmdSelectToBeginning: "select-to-beginning",
	CmdSelectToEnd:       "select-to-end",
	CmdSelectAll:         "select-all",
	CmdBackspace:         "backspace",
	CmdDelete:            "delete",
	CmdDeleteWordLeft:    "delete-word-left",
	CmdDeleteWordRight:   "delete-word-right",
	CmdDeleteToBeginning: "delete-to-beginning",
	CmdDeleteToEnd:       "delete-to-end",
	CmdCopy:              "copy",
	CmdCut:               "cut",
	CmdPaste:             "paste",
	CmdUndo:              "undo",
	CmdRedo:              "redo",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// Apply executes a command against the engine.
func (s *State) Apply(cmd Command) tea.Cmd {
	switch cmd {
	case CmdMoveLeft:
		return s.left()
	case CmdMoveRight:
		return s.right()
	case CmdMoveWordLeft:
		return s.wordLeft()
	case CmdMoveWordRight:
		return s.wordRight()
	case CmdMoveToBeginning:
		return s.home()
	case CmdMoveToEnd:
		return s.end()
	case CmdSelectLeft:
		s.selectLeft()
	case CmdSelectRight:
		s.selectRight()
	case CmdSelectWordLeft:
		s.selectWordLeft()
	case CmdSelectWordRight:
		s.selectWordRight()
	case CmdSelectToBeginning:
		s.selectToHome()
	case CmdSelectToEnd:
		s.selectToEnd()
	case CmdSelectAll:
		return s.selectAll()
	case CmdBackspace:
		return s.backspace()
	case CmdDelete:
		return s.deleteForward()
	case CmdDeleteWordLeft:
		return s.deleteWordLeft()
	case CmdDeleteWordRight:
		return s.deleteWordRight()
	case CmdDeleteToBeginning:
		return s.deleteToBeginning()
	case CmdDeleteToEnd:
		return s.deleteToEnd()
	case CmdCopy:
		s.copySelection()
	case CmdCut:
		return s.cutSelection()
	case CmdPaste:
		return s.paste()
	case CmdUndo:
		return s.undo()
	case CmdRedo:
		return s.redo()
	}
	return nil
}
