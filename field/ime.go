package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkline/textops"
)

// Input-method surface. Platform IMEs address text in UTF-16 code
// units, so every range crossing this boundary is converted to and
// from byte offsets with textops. Out-of-range input is clamped, never
// rejected: a misbehaving IME gets the saturated operation applied.

// TextForRange returns the text within a UTF-16 range, clamped to the
// value.
func (s *State) TextForRange(r textops.Range) string {
	br := textops.RangeFromUTF16(s.value, r)
	return s.value[br.Start:br.End]
}

// SelectedTextRange reports the selection in UTF-16 code units.
func (s *State) SelectedTextRange() (r textops.Range, reversed bool) {
	return textops.RangeToUTF16(s.value, s.selectedRange), s.selectionReversed
}

// MarkedTextRange reports the composition range in UTF-16, or false
// when no composition is active.
func (s *State) MarkedTextRange() (textops.Range, bool) {
	if !s.hasMarked {
		return textops.Range{}, false
	}
	return textops.RangeToUTF16(s.value, s.markedRange), true
}

// ReplaceTextInRange commits text from the input method. A nil range
// targets the marked range if one exists, otherwise the selection.
// Committing always ends the composition.
func (s *State) ReplaceTextInRange(r *textops.Range, text string) tea.Cmd {
	return s.replaceTextInRange(s.imeTarget(r), text)
}

// ReplaceAndMarkTextInRange updates the pre-edit text. The new text
// replaces the target range and becomes the marked zone; markedRange,
// when non-nil, selects a sub-range of the new text (in UTF-16 units
// relative to it) that becomes the selection.
func (s *State) ReplaceAndMarkTextInRange(r *textops.Range, text string, markedRange *textops.Range) tea.Cmd {
	target := s.imeTarget(r)

	if s.maxLength > 0 {
		next := textops.Graphemes(s.value) -
			textops.Graphemes(s.value[target.Start:target.End]) +
			textops.Graphemes(text)
		if next > s.maxLength {
			return nil
		}
	}

	s.hasMarked = true // composition edits fold together in history
	s.recordChange(target, text)

	s.value = s.value[:target.Start] + text + s.value[target.End:]
	s.markedRange = textops.Range{Start: target.Start, End: target.Start + len(text)}
	s.hasMarked = len(text) > 0

	sel := textops.Range{Start: s.markedRange.End, End: s.markedRange.End}
	if markedRange != nil {
		sub := textops.RangeFromUTF16(text, *markedRange)
		sel = textops.Range{Start: target.Start + sub.Start, End: target.Start + sub.End}
	}
	s.selectedRange = sel
	s.selectionReversed = false
	s.lastLine = nil
	s.shouldAutoScroll = true

	return tea.Batch(s.pauseBlink(), inputEventCmd(s.value))
}

// UnmarkText ends the composition, leaving the pre-edit text in place
// as committed text.
func (s *State) UnmarkText() {
	s.hasMarked = false
	s.markedRange = textops.Range{}
	s.history.PreventMerge()
}

// imeTarget resolves the range an IME operation applies to.
func (s *State) imeTarget(r *textops.Range) textops.Range {
	if r != nil {
		return textops.RangeFromUTF16(s.value, *r)
	}
	if s.hasMarked {
		return s.markedRange
	}
	return s.selectedRange
}

// BoundsForRange returns the on-screen cells covered by a UTF-16
// range, for candidate-window placement. It is empty before the first
// layout.
func (s *State) BoundsForRange(r textops.Range) (Bounds, bool) {
	if !s.hasBounds {
		return Bounds{}, false
	}
	br := textops.RangeFromUTF16(s.value, r)
	line := s.ensureLayout()
	startX := line.XForIndex(s.actualToDisplayOffset(br.Start))
	endX := line.XForIndex(s.actualToDisplayOffset(br.End))
	return Bounds{
		X:      s.lastBound.X + startX - s.scrollX,
		Y:      s.lastBound.Y,
		Width:  endX - startX,
		Height: 1,
	}, true
}

// CharacterIndexForPoint maps a terminal cell to a UTF-16 offset.
func (s *State) CharacterIndexForPoint(x, y int) (int, bool) {
	if s.lastLine == nil || !s.hasBounds {
		return 0, false
	}
	offset := s.indexForMousePosition(x, y)
	return textops.OffsetToUTF16(s.value, offset), true
}
