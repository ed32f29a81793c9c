package field

import (
	"testing"

	"github.com/iw2rmb/inkline/textops"
)

func TestIME_CompositionLifecycle(t *testing.T) {
	s := newTestState("")
	s.Focus()

	// Compose "か" by typing k, then replacing it with the kana.
	s.ReplaceAndMarkTextInRange(nil, "k", nil)
	if got := s.Value(); got != "k" {
		t.Fatalf("value=%q", got)
	}
	if _, ok := s.MarkedTextRange(); !ok {
		t.Fatalf("expected active composition")
	}

	s.ReplaceAndMarkTextInRange(nil, "か", nil)
	if got := s.Value(); got != "か" {
		t.Fatalf("value=%q", got)
	}
	r, ok := s.MarkedTextRange()
	if !ok {
		t.Fatalf("expected active composition")
	}
	if r != (textops.Range{Start: 0, End: 1}) {
		t.Fatalf("marked UTF-16 range=%v, want {0 1}", r)
	}

	// Commit replaces the marked text and ends the composition.
	s.ReplaceTextInRange(nil, "家")
	if got := s.Value(); got != "家" {
		t.Fatalf("value=%q", got)
	}
	if _, ok := s.MarkedTextRange(); ok {
		t.Fatalf("commit must clear the marked range")
	}
}

func TestIME_CompositionIsOneUndoStep(t *testing.T) {
	s := newTestState("")
	s.InsertText("x")
	s.ReplaceAndMarkTextInRange(nil, "k", nil)
	s.ReplaceAndMarkTextInRange(nil, "ka", nil)
	s.ReplaceAndMarkTextInRange(nil, "か", nil)
	s.ReplaceTextInRange(nil, "か")
	if got := s.Value(); got != "xか" {
		t.Fatalf("value=%q", got)
	}

	s.undo()
	if got := s.Value(); got != "" {
		t.Fatalf("after undo value=%q, composition must fold into the insert", got)
	}
}

func TestIME_UnmarkKeepsText(t *testing.T) {
	s := newTestState("")
	s.ReplaceAndMarkTextInRange(nil, "abc", nil)
	s.UnmarkText()
	if got := s.Value(); got != "abc" {
		t.Fatalf("value=%q", got)
	}
	if _, ok := s.MarkedTextRange(); ok {
		t.Fatalf("expected no marked range after UnmarkText")
	}
}

func TestIME_MarkedSubRangeBecomesSelection(t *testing.T) {
	s := newTestState("")
	sub := textops.Range{Start: 0, End: 1}
	s.ReplaceAndMarkTextInRange(nil, "abc", &sub)
	if got := s.selectedRange; got != (textops.Range{Start: 0, End: 1}) {
		t.Fatalf("selection=%v, want {0 1}", got)
	}
}

func TestIME_TextForRange(t *testing.T) {
	s := newTestState("a𝄞b")
	if got := s.TextForRange(textops.Range{Start: 1, End: 3}); got != "𝄞" {
		t.Fatalf("TextForRange=%q", got)
	}
	// Out-of-range endpoints saturate at the end of the value.
	if got := s.TextForRange(textops.Range{Start: 1, End: 99}); got != "𝄞b" {
		t.Fatalf("TextForRange=%q, want the clamped tail", got)
	}
}

func TestIME_ReplaceClampsOversizedRange(t *testing.T) {
	s := newTestState("ab")
	r := textops.Range{Start: 0, End: 99}
	s.ReplaceTextInRange(&r, "xy")
	if got := s.Value(); got != "xy" {
		t.Fatalf("value=%q, want %q", got, "xy")
	}
}

func TestIME_SelectedTextRangeUTF16(t *testing.T) {
	s := newTestState("a𝄞b")
	s.selectedRange = textops.Range{Start: 1, End: 5} // the surrogate pair
	r, _ := s.SelectedTextRange()
	if r != (textops.Range{Start: 1, End: 3}) {
		t.Fatalf("UTF-16 selection=%v, want {1 3}", r)
	}
}

func TestIME_CharacterIndexForPoint(t *testing.T) {
	s := newTestState("a𝄞b")
	s.Layout(Bounds{Width: 10, Height: 1})
	idx, ok := s.CharacterIndexForPoint(2, 0)
	if !ok {
		t.Fatalf("expected ok with a layout present")
	}
	if idx != 3 {
		t.Fatalf("UTF-16 index=%d, want 3", idx)
	}
}

func TestIME_BoundsForRange(t *testing.T) {
	s := newTestState("hello")
	s.Layout(Bounds{X: 2, Y: 1, Width: 10, Height: 1})
	b, ok := s.BoundsForRange(textops.Range{Start: 1, End: 3})
	if !ok {
		t.Fatalf("expected bounds")
	}
	want := Bounds{X: 3, Y: 1, Width: 2, Height: 1}
	if b != want {
		t.Fatalf("bounds=%+v, want %+v", b, want)
	}
}
