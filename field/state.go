package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkline/textops"
)

// State is the single-line editing engine. It owns the buffer, the
// selection, IME marked text, masking, the undo history, the scroll
// offset, and the cursor blinker; the Model routes terminal input into
// it.
//
// All offsets are byte offsets into the UTF-8 value. Offsets supplied
// by an input method in UTF-16 code units are converted at the
// boundary via textops.
type State struct {
	value        string
	emittedValue string
	placeholder  string

	// selectedRange is half-open; selectionReversed records which end
	// is the active cursor end so extending from either side works.
	selectedRange     textops.Range
	selectionReversed bool

	markedRange textops.Range
	hasMarked   bool

	masked bool
	mask   string

	lastLine  Line
	lastBound Bounds
	hasBounds bool

	scrollX          int
	shouldAutoScroll bool

	selecting bool
	clicks    clickDetector

	blink   Blink
	focused bool

	history       *History
	ignoreHistory bool

	maxLength int
	validate  func(string) bool
	clipboard Clipboard
}

// NewState builds an engine from cfg, applying defaults for the mask,
// clipboard, and history limit.
func NewState(cfg Config) *State {
	mask := cfg.Mask
	if mask == "" {
		mask = "•"
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	return &State{
		value:        cfg.Value,
		emittedValue: cfg.Value,
		placeholder:  cfg.Placeholder,
		masked:       cfg.Masked,
		mask:         mask,
		maxLength:    cfg.MaxLength,
		validate:     cfg.Validate,
		clipboard:    clip,
		history:      NewHistory(cfg.HistoryLimit),
		blink:        NewBlink(),
	}
}

func (s *State) Value() string { return s.value }

// SetValue replaces the buffer programmatically, resetting history and
// the committed-value baseline. The selection is clamped into the new
// value and composition state is dropped.
func (s *State) SetValue(value string) {
	s.value = value
	s.emittedValue = value
	s.history.Clear()
	// The carried-over selection may land mid-grapheme in the new text.
	s.selectedRange = textops.Range{
		Start: textops.AlignToBoundary(value, s.selectedRange.Start),
		End:   textops.AlignToBoundary(value, s.selectedRange.End),
	}
	s.hasMarked = false
	s.markedRange = textops.Range{}
	s.shouldAutoScroll = true
}

func (s *State) Placeholder() string { return s.placeholder }

func (s *State) SetPlaceholder(placeholder string) { s.placeholder = placeholder }

func (s *State) IsMasked() bool { return s.masked }

// SetMasked toggles masked display. The rendered glyph run changes, so
// the cached layout must be refreshed.
func (s *State) SetMasked(masked bool) {
	if s.masked != masked {
		s.masked = masked
		s.shouldAutoScroll = true
	}
}

// SetMask sets the string displayed per committed grapheme when
// masking is enabled.
func (s *State) SetMask(mask string) {
	if s.mask != mask {
		s.mask = mask
		if s.masked {
			s.shouldAutoScroll = true
		}
	}
}

func (s *State) SetMaxLength(n int) { s.maxLength = n }

// Valid reports whether the current value passes the configured
// validator. A nil validator accepts everything.
func (s *State) Valid() bool {
	return s.validate == nil || s.validate(s.value)
}

// SelectedRange returns the selection as byte offsets plus the
// reversed flag.
func (s *State) SelectedRange() (r textops.Range, reversed bool) {
	return s.selectedRange, s.selectionReversed
}

// CursorOffset returns the byte offset of the active selection end.
func (s *State) CursorOffset() int {
	if s.selectionReversed {
		return s.selectedRange.Start
	}
	return s.selectedRange.End
}

func (s *State) Focused() bool { return s.focused }

// Focus starts the cursor blinking.
func (s *State) Focus() tea.Cmd {
	s.focused = true
	return s.blink.Start()
}

// Blur stops blinking, bars history merging across the focus change,
// and commits the value if it changed while focused.
func (s *State) Blur() tea.Cmd {
	s.focused = false
	s.history.PreventMerge()
	s.blink.Stop()
	s.clicks.reset()
	return s.commit()
}

// CursorVisible reports whether the cursor cell should be painted.
func (s *State) CursorVisible() bool {
	return s.focused && s.blink.Visible()
}

// Clear resets the field to empty, including scroll and layout caches.
func (s *State) Clear() {
	s.value = ""
	s.selectedRange = textops.Range{}
	s.selectionReversed = false
	s.hasMarked = false
	s.markedRange = textops.Range{}
	s.lastLine = nil
	s.hasBounds = false
	s.selecting = false
	s.scrollX = 0
	s.shouldAutoScroll = true
}

// commit emits ChangeEvent once per distinct value. The validator
// gates emission; invalid values stay in the buffer.
func (s *State) commit() tea.Cmd {
	if s.value == s.emittedValue {
		return nil
	}
	if !s.Valid() {
		return nil
	}
	s.emittedValue = s.value
	return changeEventCmd(s.value)
}

func (s *State) pauseBlink() tea.Cmd {
	if !s.focused {
		return nil
	}
	return s.blink.Pause()
}

// moveTo collapses the selection at offset. Every discrete navigation
// is a history merge barrier, so typing bursts never fuse across it.
func (s *State) moveTo(offset int) tea.Cmd {
	cmd := s.pauseBlink()
	offset = clampOffset(offset, len(s.value))
	s.selectedRange = textops.Range{Start: offset, End: offset}
	s.selectionReversed = false
	s.shouldAutoScroll = true
	s.history.PreventMerge()
	return cmd
}

// selectTo extends the active end of the selection to offset, flipping
// the reversed flag when the ends cross so Start <= End always holds.
func (s *State) selectTo(offset int) {
	offset = clampOffset(offset, len(s.value))
	if s.selectionReversed {
		s.selectedRange.Start = offset
	} else {
		s.selectedRange.End = offset
	}
	if s.selectedRange.End < s.selectedRange.Start {
		s.selectionReversed = !s.selectionReversed
		s.selectedRange = textops.Range{Start: s.selectedRange.End, End: s.selectedRange.Start}
	}
	s.shouldAutoScroll = true
}

func (s *State) left() tea.Cmd {
	if s.selectedRange.IsEmpty() {
		return s.moveTo(textops.PreviousBoundary(s.value, s.CursorOffset()))
	}
	return s.moveTo(s.selectedRange.Start)
}

func (s *State) right() tea.Cmd {
	if s.selectedRange.IsEmpty() {
		return s.moveTo(textops.NextBoundary(s.value, s.selectedRange.End))
	}
	return s.moveTo(s.selectedRange.End)
}

func (s *State) wordLeft() tea.Cmd {
	return s.moveTo(textops.PreviousWordBoundary(s.value, s.CursorOffset()))
}

func (s *State) wordRight() tea.Cmd {
	return s.moveTo(textops.NextWordBoundary(s.value, s.CursorOffset()))
}

func (s *State) home() tea.Cmd { return s.moveTo(0) }

func (s *State) end() tea.Cmd { return s.moveTo(len(s.value)) }

func (s *State) selectLeft() {
	s.selectTo(textops.PreviousBoundary(s.value, s.CursorOffset()))
}

func (s *State) selectRight() {
	s.selectTo(textops.NextBoundary(s.value, s.CursorOffset()))
}

func (s *State) selectWordLeft() {
	s.history.PreventMerge()
	s.selectTo(textops.PreviousWordBoundary(s.value, s.CursorOffset()))
}

func (s *State) selectWordRight() {
	s.history.PreventMerge()
	s.selectTo(textops.NextWordBoundary(s.value, s.CursorOffset()))
}

func (s *State) selectToHome() { s.selectTo(0) }

func (s *State) selectToEnd() { s.selectTo(len(s.value)) }

func (s *State) selectAll() tea.Cmd {
	cmd := s.moveTo(0)
	s.selectTo(len(s.value))
	return cmd
}

// selectWord selects the word-like run around offset.
func (s *State) selectWord(offset int) {
	start := textops.PreviousWordBoundary(s.value, offset)
	end := textops.NextWordBoundary(s.value, offset)
	s.selectedRange = textops.Range{Start: start, End: end}
	s.selectionReversed = false
	s.shouldAutoScroll = true
}

// MouseDown positions the cursor or extends the selection; double
// clicks select the word under the pointer and triple clicks select
// everything.
func (s *State) MouseDown(x, y int, shift bool) tea.Cmd {
	s.selecting = true

	switch s.clicks.detect(x, y) {
	case doubleClick:
		s.selectWord(s.indexForMousePosition(x, y))
		return nil
	case tripleClick:
		return s.selectAll()
	}

	offset := s.indexForMousePosition(x, y)
	if shift {
		s.selectTo(offset)
		return nil
	}
	return s.moveTo(offset)
}

func (s *State) MouseUp() { s.selecting = false }

// MouseMotion extends the selection while a drag is in progress.
func (s *State) MouseMotion(x, y int) {
	if s.selecting {
		s.selectTo(s.indexForMousePosition(x, y))
	}
}

func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
