package field

import "testing"

func TestScroll_AutoScrollKeepsCursorVisible(t *testing.T) {
	s := newTestState("abcdefghij") // 10 cells
	bounds := Bounds{Width: 5, Height: 1}

	s.moveTo(len(s.value))
	s.Layout(bounds)
	// Cursor at x=10, visible span is width-1 cells.
	if got := s.ScrollX(); got != 6 {
		t.Fatalf("scrollX=%d, want 6", got)
	}

	s.moveTo(0)
	s.Layout(bounds)
	if got := s.ScrollX(); got != 0 {
		t.Fatalf("scrollX=%d, want 0", got)
	}
}

func TestScroll_ShortTextPinsToZero(t *testing.T) {
	s := newTestState("abcd")
	for offset := 0; offset <= len(s.Value()); offset++ {
		s.moveTo(offset)
		s.Layout(Bounds{Width: 10, Height: 1})
		if got := s.ScrollX(); got != 0 {
			t.Fatalf("cursor %d: scrollX=%d, want 0 for fitting text", offset, got)
		}
	}
}

func TestScroll_WheelClamped(t *testing.T) {
	s := newTestState("abcdefghij")
	s.Layout(Bounds{Width: 5, Height: 1})

	s.Wheel(100)
	// Max scroll leaves the last cell plus cursor cell visible.
	if got := s.ScrollX(); got != 6 {
		t.Fatalf("scrollX=%d, want 6", got)
	}
	s.Wheel(-100)
	if got := s.ScrollX(); got != 0 {
		t.Fatalf("scrollX=%d, want 0", got)
	}
}

func TestScroll_WheelDoesNotMoveCursor(t *testing.T) {
	s := newTestState("abcdefghij")
	s.moveTo(0)
	s.Layout(Bounds{Width: 5, Height: 1})
	s.Wheel(3)
	if got := s.CursorOffset(); got != 0 {
		t.Fatalf("cursor=%d, wheel must not move it", got)
	}
	// The next layout without an edit keeps the manual scroll.
	s.Layout(Bounds{Width: 5, Height: 1})
	if got := s.ScrollX(); got != 3 {
		t.Fatalf("scrollX=%d, want 3", got)
	}
}

func TestScroll_IndexForMousePosition(t *testing.T) {
	s := newTestState("abcdefghij")
	s.moveTo(0)
	s.Layout(Bounds{X: 2, Y: 1, Width: 5, Height: 1})

	if got := s.indexForMousePosition(2, 1); got != 0 {
		t.Fatalf("at origin got %d, want 0", got)
	}
	if got := s.indexForMousePosition(5, 1); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	// Above the field clamps to the start, below to the end.
	if got := s.indexForMousePosition(5, 0); got != 0 {
		t.Fatalf("above got %d, want 0", got)
	}
	if got := s.indexForMousePosition(5, 2); got != len(s.Value()) {
		t.Fatalf("below got %d, want end", got)
	}
}

func TestScroll_IndexForMousePositionScrolled(t *testing.T) {
	s := newTestState("abcdefghij")
	s.moveTo(len(s.value))
	s.Layout(Bounds{X: 0, Y: 0, Width: 5, Height: 1})
	// scrollX is 6; the first visible cell is 'g'.
	if got := s.indexForMousePosition(0, 0); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}
