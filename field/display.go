package field

import (
	"strings"

	"github.com/iw2rmb/inkline/textops"
)

// DisplayText returns the string that is actually rendered. When
// masking is off it is the value itself. When masking is on, each
// committed grapheme is replaced by the mask string, but marked
// (pre-edit) text stays literal so the user can see what they are
// composing.
func (s *State) DisplayText() string {
	if !s.masked {
		return s.value
	}
	if !s.hasMarked {
		return strings.Repeat(s.mask, textops.Graphemes(s.value))
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(s.mask, textops.Graphemes(s.value[:s.markedRange.Start])))
	b.WriteString(s.value[s.markedRange.Start:s.markedRange.End])
	b.WriteString(strings.Repeat(s.mask, textops.Graphemes(s.value[s.markedRange.End:])))
	return b.String()
}

// actualToDisplayOffset maps a byte offset in the value to the
// corresponding byte offset in DisplayText. With masking off the two
// coordinate spaces coincide. With masking on, offsets in masked zones
// scale by grapheme count times the mask length, while offsets inside
// the marked zone map one-to-one.
func (s *State) actualToDisplayOffset(offset int) int {
	if !s.masked {
		return offset
	}
	maskLen := len(s.mask)
	if !s.hasMarked || offset <= s.markedRange.Start {
		return textops.Graphemes(s.value[:offset]) * maskLen
	}
	displayMarkedStart := textops.Graphemes(s.value[:s.markedRange.Start]) * maskLen
	if offset <= s.markedRange.End {
		return displayMarkedStart + (offset - s.markedRange.Start)
	}
	displayMarkedEnd := displayMarkedStart + s.markedRange.Len()
	return displayMarkedEnd + textops.Graphemes(s.value[s.markedRange.End:offset])*maskLen
}

// displayToActualOffset is the inverse mapping, used for hit testing.
// A display offset landing inside a mask glyph snaps to the start of
// the grapheme that glyph stands for.
func (s *State) displayToActualOffset(offset int) int {
	if !s.masked {
		return clampOffset(offset, len(s.value))
	}
	maskLen := len(s.mask)
	if maskLen == 0 {
		return len(s.value)
	}

	// mapZone resolves a display offset within a masked zone back to
	// the value-space offset of the grapheme the glyph stands for.
	mapZone := func(zone string, zoneStart, displayStart, displayOffset int) int {
		glyph := (displayOffset - displayStart) / maskLen
		if glyph >= textops.Graphemes(zone) {
			return zoneStart + len(zone)
		}
		return zoneStart + textops.GraphemeOffsetToByteOffset(zone, glyph)
	}

	if !s.hasMarked {
		max := textops.Graphemes(s.value) * maskLen
		return mapZone(s.value, 0, 0, clampOffset(offset, max))
	}

	displayMarkedStart := textops.Graphemes(s.value[:s.markedRange.Start]) * maskLen
	displayMarkedEnd := displayMarkedStart + s.markedRange.Len()
	switch {
	case offset <= displayMarkedStart:
		return mapZone(s.value[:s.markedRange.Start], 0, 0, clampOffset(offset, displayMarkedStart))
	case offset <= displayMarkedEnd:
		return s.markedRange.Start + (offset - displayMarkedStart)
	default:
		tail := s.value[s.markedRange.End:]
		maxDisplay := displayMarkedEnd + textops.Graphemes(tail)*maskLen
		return mapZone(tail, s.markedRange.End, displayMarkedEnd, clampOffset(offset, maxDisplay))
	}
}

// displayCursorOffset is the cursor position in display coordinates.
func (s *State) displayCursorOffset() int {
	return s.actualToDisplayOffset(s.CursorOffset())
}

// displaySelectionRange is the selection in display coordinates.
func (s *State) displaySelectionRange() textops.Range {
	return textops.Range{
		Start: s.actualToDisplayOffset(s.selectedRange.Start),
		End:   s.actualToDisplayOffset(s.selectedRange.End),
	}
}

// displayMarkedRange is the marked zone in display coordinates, valid
// only while a composition is active.
func (s *State) displayMarkedRange() (textops.Range, bool) {
	if !s.hasMarked {
		return textops.Range{}, false
	}
	return textops.Range{
		Start: s.actualToDisplayOffset(s.markedRange.Start),
		End:   s.actualToDisplayOffset(s.markedRange.End),
	}, true
}
