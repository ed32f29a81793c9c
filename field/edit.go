package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkline/textops"
)

// replaceTextInRange is the single mutation point: every edit, whether
// typed, pasted, composed, or replayed from history, funnels through
// here. It enforces MaxLength, records the change, drops any active
// composition, collapses the selection after the inserted text, and
// emits InputEvent.
func (s *State) replaceTextInRange(r textops.Range, text string) tea.Cmd {
	r = r.Normalize().Clamp(len(s.value))

	if s.maxLength > 0 {
		next := textops.Graphemes(s.value) -
			textops.Graphemes(s.value[r.Start:r.End]) +
			textops.Graphemes(text)
		if next > s.maxLength {
			return nil
		}
	}

	s.recordChange(r, text)

	s.value = s.value[:r.Start] + text + s.value[r.End:]
	caret := r.Start + len(text)
	s.selectedRange = textops.Range{Start: caret, End: caret}
	s.selectionReversed = false
	s.hasMarked = false
	s.markedRange = textops.Range{}
	s.lastLine = nil
	s.shouldAutoScroll = true

	return tea.Batch(s.pauseBlink(), inputEventCmd(s.value))
}

// recordChange pushes the change onto the undo stack unless history is
// suspended (replaying undo/redo must not record).
func (s *State) recordChange(r textops.Range, text string) {
	if s.ignoreHistory {
		return
	}
	old := s.value[r.Start:r.End]
	var c Change
	switch {
	case old == "" && text == "":
		return
	case old == "":
		c = Change{Kind: ChangeInsert, Range: r, Text: text, Marked: s.hasMarked}
	case text == "":
		c = Change{Kind: ChangeDelete, Range: r, Text: old}
	default:
		c = Change{Kind: ChangeReplace, Range: r, OldText: old, NewText: text, Marked: s.hasMarked}
	}
	s.history.Push(c)
}

// InsertText inserts typed text over the selection (or at the caret).
func (s *State) InsertText(text string) tea.Cmd {
	return s.replaceTextInRange(s.selectedRange, text)
}

// backspace deletes the selection, or the grapheme before the caret.
func (s *State) backspace() tea.Cmd {
	r := s.selectedRange
	if r.IsEmpty() {
		if r.Start == 0 {
			return nil
		}
		r = textops.Range{Start: textops.PreviousBoundary(s.value, r.Start), End: r.Start}
	}
	return s.replaceTextInRange(r, "")
}

// deleteForward deletes the selection, or the grapheme after the caret.
func (s *State) deleteForward() tea.Cmd {
	r := s.selectedRange
	if r.IsEmpty() {
		if r.End == len(s.value) {
			return nil
		}
		r = textops.Range{Start: r.End, End: textops.NextBoundary(s.value, r.End)}
	}
	return s.replaceTextInRange(r, "")
}

// deleteWordLeft removes back to the previous word boundary. Word and
// line deletions are always their own undo step.
func (s *State) deleteWordLeft() tea.Cmd {
	r := s.selectedRange
	if r.IsEmpty() {
		if r.Start == 0 {
			return nil
		}
		r = textops.Range{Start: textops.PreviousWordBoundary(s.value, r.Start), End: r.Start}
	}
	s.history.PreventMerge()
	return s.replaceTextInRange(r, "")
}

func (s *State) deleteWordRight() tea.Cmd {
	r := s.selectedRange
	if r.IsEmpty() {
		if r.End == len(s.value) {
			return nil
		}
		r = textops.Range{Start: r.End, End: textops.NextWordBoundary(s.value, r.End)}
	}
	s.history.PreventMerge()
	return s.replaceTextInRange(r, "")
}

// deleteToBeginning removes the selection, or everything left of the
// caret when nothing is selected.
func (s *State) deleteToBeginning() tea.Cmd {
	r := s.selectedRange
	if r.IsEmpty() {
		if r.Start == 0 {
			return nil
		}
		r = textops.Range{Start: 0, End: r.End}
	}
	s.history.PreventMerge()
	return s.replaceTextInRange(r, "")
}

// deleteToEnd removes the selection, or everything right of the caret
// when nothing is selected.
func (s *State) deleteToEnd() tea.Cmd {
	r := s.selectedRange
	if r.IsEmpty() {
		if r.End == len(s.value) {
			return nil
		}
		r = textops.Range{Start: r.Start, End: len(s.value)}
	}
	s.history.PreventMerge()
	return s.replaceTextInRange(r, "")
}

// copySelection writes the selected text to the clipboard. Masked
// fields never leak their contents through copy.
func (s *State) copySelection() {
	if s.masked || s.selectedRange.IsEmpty() {
		return
	}
	_ = s.clipboard.WriteText(s.value[s.selectedRange.Start:s.selectedRange.End])
}

// cutSelection copies then deletes the selection.
func (s *State) cutSelection() tea.Cmd {
	if s.masked || s.selectedRange.IsEmpty() {
		return nil
	}
	if err := s.clipboard.WriteText(s.value[s.selectedRange.Start:s.selectedRange.End]); err != nil {
		return nil
	}
	s.history.PreventMerge()
	return s.replaceTextInRange(s.selectedRange, "")
}

// paste inserts clipboard text, with newlines flattened to spaces so
// the field stays single-line. A paste never merges with surrounding
// typing.
func (s *State) paste() tea.Cmd {
	text, err := s.clipboard.ReadText()
	if err != nil || text == "" {
		return nil
	}
	s.history.PreventMerge()
	cmd := s.replaceTextInRange(s.selectedRange, sanitize(text))
	s.history.PreventMerge()
	return cmd
}

// sanitize collapses line breaks and tabs so pasted multi-line text
// becomes a plausible single-line value.
func sanitize(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch r {
		case '\r':
			// dropped; \r\n becomes a single space via the \n case
		case '\n', '\t':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// undo applies the inverse of the most recent change and restores the
// selection to where that change left it.
func (s *State) undo() tea.Cmd {
	c, ok := s.history.Undo()
	if !ok {
		return nil
	}
	cmd := s.replayChange(c)
	s.selectedRange = c.SelectionRange().Clamp(len(s.value))
	s.selectionReversed = false
	return cmd
}

// redo reapplies a previously undone change. The caret stays where the
// replay leaves it, at the end of the replacement.
func (s *State) redo() tea.Cmd {
	c, ok := s.history.Redo()
	if !ok {
		return nil
	}
	return s.replayChange(c)
}

func (s *State) replayChange(c Change) tea.Cmd {
	s.ignoreHistory = true
	cmd := s.replaceTextInRange(c.Span(), c.ResultText())
	s.ignoreHistory = false
	return cmd
}
