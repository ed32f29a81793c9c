package field

// Layout shapes the display text for the given bounds, applies any
// pending auto-scroll, and caches the result for hit testing. The
// Model calls it once per frame before rendering.
func (s *State) Layout(bounds Bounds) Line {
	line := ShapeLine(s.DisplayText())
	s.lastLine = line
	s.lastBound = bounds
	s.hasBounds = true

	if s.shouldAutoScroll {
		s.shouldAutoScroll = false
		s.autoScrollToCursor(line, bounds)
	} else {
		s.setScrollX(s.scrollX)
	}
	return line
}

// ScrollX is the current horizontal scroll offset in cells.
func (s *State) ScrollX() int { return s.scrollX }

// setScrollX clamps the offset so the text can never be scrolled past
// its end; the rightmost position still leaves room for the cursor.
func (s *State) setScrollX(x int) {
	max := 0
	if s.lastLine != nil && s.hasBounds {
		max = s.lastLine.Width() + cursorWidth - s.lastBound.Width
	}
	if x > max {
		x = max
	}
	if x < 0 {
		x = 0
	}
	s.scrollX = x
}

// Wheel scrolls horizontally by delta cells without moving the cursor.
func (s *State) Wheel(delta int) {
	s.setScrollX(s.scrollX + delta)
}

// autoScrollToCursor shifts the viewport the minimal amount that keeps
// the cursor cell visible. Text that fits entirely is pinned to zero.
func (s *State) autoScrollToCursor(line Line, bounds Bounds) {
	visible := bounds.Width - cursorWidth
	if visible < 0 {
		visible = 0
	}
	if line.Width() <= visible {
		s.scrollX = 0
		return
	}
	cursorX := line.XForIndex(s.displayCursorOffset())
	switch {
	case cursorX < s.scrollX:
		s.scrollX = cursorX
	case cursorX > s.scrollX+visible:
		s.scrollX = cursorX - visible
	}
	s.setScrollX(s.scrollX)
}

// indexForMousePosition converts terminal coordinates into a byte
// offset in the value, accounting for the field origin and scroll.
func (s *State) indexForMousePosition(x, y int) int {
	if s.lastLine == nil || !s.hasBounds {
		return 0
	}
	if y < s.lastBound.Y {
		return 0
	}
	if y >= s.lastBound.Y+s.lastBound.Height {
		return len(s.value)
	}
	display := s.lastLine.ClosestIndexForX(x - s.lastBound.X + s.scrollX)
	return s.displayToActualOffset(display)
}

// ensureLayout shapes the line on demand for callers that may run
// before the first frame, such as the input-method queries.
func (s *State) ensureLayout() Line {
	if s.lastLine == nil {
		s.lastLine = ShapeLine(s.DisplayText())
	}
	return s.lastLine
}
