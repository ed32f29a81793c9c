package field

import "github.com/iw2rmb/inkline/textops"

// ChangeKind identifies the variant of a Change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeDelete
	ChangeReplace
)

// Change is one atomic edit plus enough information to invert it.
// A Change is immutable once pushed to History, except for in-place
// merging at push time.
type Change struct {
	Kind ChangeKind

	// Range addresses the pre-change buffer. For inserts it is empty
	// at the insertion point.
	Range textops.Range

	// Text is the inserted text (ChangeInsert) or the removed text
	// (ChangeDelete).
	Text string

	// OldText and NewText are set for ChangeReplace only.
	OldText string
	NewText string

	// Marked flags a replace produced while IME composition was
	// active; such replaces fold into the preceding edit when merged.
	Marked bool
}

// Inverse returns the Change that undoes c.
func (c Change) Inverse() Change {
	switch c.Kind {
	case ChangeInsert:
		return Change{
			Kind:  ChangeDelete,
			Range: textops.Range{Start: c.Range.Start, End: c.Range.Start + len(c.Text)},
		}
	case ChangeDelete:
		return Change{
			Kind:  ChangeInsert,
			Range: textops.Range{Start: c.Range.Start, End: c.Range.Start},
			Text:  c.Text,
		}
	default:
		return Change{
			Kind:    ChangeReplace,
			Range:   textops.Range{Start: c.Range.Start, End: c.Range.Start + len(c.NewText)},
			OldText: c.NewText,
			NewText: c.OldText,
			Marked:  c.Marked,
		}
	}
}

// ResultText returns the text the change leaves in place of its range.
func (c Change) ResultText() string {
	switch c.Kind {
	case ChangeInsert:
		return c.Text
	case ChangeDelete:
		return ""
	default:
		return c.NewText
	}
}

// Span returns the buffer range the change applies to.
func (c Change) Span() textops.Range { return c.Range }

// SelectionRange reports where the selection should land after the
// change is applied: spanning inserted or replacement text, or
// collapsed at the deletion point.
func (c Change) SelectionRange() textops.Range {
	switch c.Kind {
	case ChangeInsert:
		return textops.Range{Start: c.Range.Start, End: c.Range.Start + len(c.Text)}
	case ChangeDelete:
		return textops.Range{Start: c.Range.Start, End: c.Range.Start}
	default:
		return textops.Range{Start: c.Range.Start, End: c.Range.Start + len(c.NewText)}
	}
}

// merge attempts to fold next into c, returning the combined change.
// Only adjacent, same-direction edits merge; the marked-replace rules
// collapse successive IME composition replacements into one step.
func (c Change) merge(next Change) (Change, bool) {
	switch {
	case c.Kind == ChangeInsert && next.Kind == ChangeInsert &&
		c.Range.Start+len(c.Text) == next.Range.Start:
		return Change{
			Kind:  ChangeInsert,
			Range: textops.Range{Start: c.Range.Start, End: c.Range.Start},
			Text:  c.Text + next.Text,
		}, true

	case c.Kind == ChangeDelete && next.Kind == ChangeInsert &&
		c.Range.Start == next.Range.Start:
		return Change{
			Kind:    ChangeReplace,
			Range:   c.Range,
			OldText: c.Text,
			NewText: next.Text,
		}, true

	// Backspace chain: the next delete ends where this one starts.
	case c.Kind == ChangeDelete && next.Kind == ChangeDelete &&
		c.Range.Start == next.Range.End:
		return Change{
			Kind:  ChangeDelete,
			Range: textops.Range{Start: next.Range.Start, End: c.Range.End},
			Text:  next.Text + c.Text,
		}, true

	// Forward-delete chain: both deletes start at the same offset. The
	// merged range is in pre-change coordinates, so it spans the
	// combined removed text.
	case c.Kind == ChangeDelete && next.Kind == ChangeDelete &&
		c.Range.Start == next.Range.Start:
		return Change{
			Kind:  ChangeDelete,
			Range: textops.Range{Start: c.Range.Start, End: c.Range.Start + len(c.Text) + len(next.Text)},
			Text:  c.Text + next.Text,
		}, true

	// Typing after a selection replace extends the replacement.
	case c.Kind == ChangeReplace && next.Kind == ChangeInsert:
		return Change{
			Kind:    ChangeReplace,
			Range:   c.Range,
			OldText: c.OldText,
			NewText: c.NewText + next.Text,
		}, true

	// IME composition folds: each keystroke of composing replaces the
	// previous marked text, so the replace collapses into the insert.
	case c.Kind == ChangeInsert && next.Kind == ChangeReplace &&
		next.Marked && hasSuffix(c.Text, next.OldText):
		return Change{
			Kind:  ChangeInsert,
			Range: c.Range,
			Text:  c.Text[:len(c.Text)-len(next.OldText)] + next.NewText,
		}, true

	case c.Kind == ChangeReplace && next.Kind == ChangeReplace &&
		next.Marked && hasSuffix(c.NewText, next.OldText):
		return Change{
			Kind:    ChangeReplace,
			Range:   c.Range,
			OldText: c.OldText,
			NewText: c.NewText[:len(c.NewText)-len(next.OldText)] + next.NewText,
		}, true
	}

	return Change{}, false
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
