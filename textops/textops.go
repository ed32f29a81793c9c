// Package textops provides pure text-boundary and offset-conversion
// operations for single-line editing: grapheme cluster boundaries,
// word boundaries, UTF-8<->UTF-16 offset translation, and
// grapheme-index to byte-offset mapping.
//
// All functions are stateless and safe for concurrent use. Offsets are
// byte offsets into UTF-8 strings unless a name says otherwise.
package textops

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

type charClass uint8

const (
	classWhitespace charClass = iota
	classWord
	classPunctuation
)

// PreviousBoundary returns the grapheme cluster boundary immediately
// before offset, or 0 if offset is at or before the first boundary.
func PreviousBoundary(text string, offset int) int {
	prev := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		if start >= offset {
			break
		}
		prev = start
	}
	return prev
}

// AlignToBoundary snaps offset to the nearest grapheme cluster
// boundary at or before it. Offsets outside the text saturate at its
// ends.
func AlignToBoundary(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(text) {
		return len(text)
	}
	return PreviousBoundary(text, offset+1)
}

// NextBoundary returns the grapheme cluster boundary immediately after
// offset, or len(text) if there is none.
func NextBoundary(text string, offset int) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		if start > offset {
			return start
		}
	}
	return len(text)
}

// PreviousWordBoundary scans left from offset for the start of the
// word-like run the cursor is in (or the run before it, when the cursor
// sits on whitespace). Runs are maximal sequences of one character
// class; a '.' between two ASCII digits counts as a word character so
// decimal literals stay whole.
func PreviousWordBoundary(text string, offset int) int {
	if offset <= 0 {
		return 0
	}

	chars := decode(text)
	foundNonWhitespace := false
	haveLast := false
	var last charClass

	for i := len(chars) - 1; i >= 0; i-- {
		if chars[i].pos >= offset {
			continue
		}

		class := classify(chars, i)

		if !foundNonWhitespace && class != classWhitespace {
			foundNonWhitespace = true
			haveLast = true
			last = class
			continue
		}

		if foundNonWhitespace && haveLast && (class != last || class == classWhitespace) {
			return NextBoundary(text, chars[i].pos)
		}

		haveLast = true
		last = class
	}

	return 0
}

// NextWordBoundary scans right from offset for the end of the current
// word-like run, skipping leading whitespace first. See
// PreviousWordBoundary for the run rules.
func NextWordBoundary(text string, offset int) int {
	if offset >= len(text) {
		return len(text)
	}

	chars := decode(text)
	foundNonWhitespace := false
	haveLast := false
	var last charClass

	for i := range chars {
		if chars[i].pos < offset {
			continue
		}

		class := classify(chars, i)

		if !foundNonWhitespace && class != classWhitespace {
			foundNonWhitespace = true
			haveLast = true
			last = class
			continue
		}

		if foundNonWhitespace && haveLast && (class != last || class == classWhitespace) {
			return chars[i].pos
		}

		haveLast = true
		last = class
	}

	return len(text)
}

// GraphemeOffsetToByteOffset returns the byte offset of the nth
// grapheme cluster boundary, or len(text) if n exceeds the grapheme
// count.
func GraphemeOffsetToByteOffset(text string, n int) int {
	if n <= 0 {
		return 0
	}
	idx := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		if idx == n {
			return start
		}
		idx++
	}
	return len(text)
}

// Graphemes returns the number of grapheme clusters in text.
func Graphemes(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n++
	}
	return n
}

// OffsetToUTF16 converts a UTF-8 byte offset to a UTF-16 code-unit
// offset by walking the string's runes.
func OffsetToUTF16(text string, offset int) int {
	utf16Offset := 0
	byteOffset := 0
	for _, r := range text {
		if byteOffset >= offset {
			break
		}
		utf16Offset += utf16Len(r)
		byteOffset += utf8.RuneLen(r)
	}
	return utf16Offset
}

// OffsetFromUTF16 converts a UTF-16 code-unit offset to a UTF-8 byte
// offset. Offsets past the end of text map to len(text).
func OffsetFromUTF16(text string, utf16Offset int) int {
	current := 0
	byteOffset := 0
	for _, r := range text {
		if current >= utf16Offset {
			break
		}
		current += utf16Len(r)
		byteOffset += utf8.RuneLen(r)
	}
	return byteOffset
}

// RangeToUTF16 converts both endpoints of a byte range independently.
func RangeToUTF16(text string, r Range) Range {
	return Range{
		Start: OffsetToUTF16(text, r.Start),
		End:   OffsetToUTF16(text, r.End),
	}
}

// RangeFromUTF16 converts both endpoints of a UTF-16 range
// independently. Out-of-range endpoints saturate at the ends of text;
// a misbehaving caller gets a clamped range, never a failure.
func RangeFromUTF16(text string, r Range) Range {
	return Range{
		Start: OffsetFromUTF16(text, r.Start),
		End:   OffsetFromUTF16(text, r.End),
	}.Normalize()
}

type posRune struct {
	pos int
	r   rune
}

func decode(text string) []posRune {
	out := make([]posRune, 0, len(text))
	for i, r := range text {
		out = append(out, posRune{pos: i, r: r})
	}
	return out
}

// classify determines the word-boundary class of chars[i], looking at
// both neighbors so a decimal point between digits classifies as Word.
func classify(chars []posRune, i int) charClass {
	ch := chars[i].r
	switch {
	case unicode.IsSpace(ch):
		return classWhitespace
	case ch == '.' && isASCIIDigitAt(chars, i-1) && isASCIIDigitAt(chars, i+1):
		return classWord
	case unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_':
		return classWord
	default:
		return classPunctuation
	}
}

func isASCIIDigitAt(chars []posRune, i int) bool {
	if i < 0 || i >= len(chars) {
		return false
	}
	return chars[i].r >= '0' && chars[i].r <= '9'
}

func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
