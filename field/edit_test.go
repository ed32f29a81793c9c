package field

import (
	"testing"

	"github.com/iw2rmb/inkline/textops"
)

type memClipboard struct {
	text string
}

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

func TestEdit_InsertOverSelection(t *testing.T) {
	s := newTestState("hello world")
	s.selectedRange = textops.Range{Start: 0, End: 5}
	s.InsertText("goodbye")

	if got := s.Value(); got != "goodbye world" {
		t.Fatalf("value=%q", got)
	}
	if got := s.selectedRange; got != (textops.Range{Start: 7, End: 7}) {
		t.Fatalf("caret=%v, want collapsed after insert", got)
	}
}

func TestEdit_BackspaceGrapheme(t *testing.T) {
	s := newTestState("aé")
	s.moveTo(len(s.value))
	s.backspace()
	if got := s.Value(); got != "a" {
		t.Fatalf("value=%q, want %q (whole cluster removed)", got, "a")
	}
	s.backspace()
	if got := s.Value(); got != "" {
		t.Fatalf("value=%q, want empty", got)
	}
	// Backspace at the start is a no-op.
	s.backspace()
	if got := s.Value(); got != "" {
		t.Fatalf("value=%q, want empty", got)
	}
}

func TestEdit_DeleteForward(t *testing.T) {
	s := newTestState("abc")
	s.moveTo(1)
	s.deleteForward()
	if got := s.Value(); got != "ac" {
		t.Fatalf("value=%q", got)
	}
	s.moveTo(2)
	s.deleteForward()
	if got := s.Value(); got != "ac" {
		t.Fatalf("delete at end must be a no-op, value=%q", got)
	}
}

func TestEdit_DeleteWordLeft(t *testing.T) {
	s := newTestState("hello world")
	s.moveTo(len(s.value))
	s.deleteWordLeft()
	if got := s.Value(); got != "hello " {
		t.Fatalf("value=%q, want %q", got, "hello ")
	}
	s.deleteWordLeft()
	if got := s.Value(); got != "" {
		t.Fatalf("value=%q, want empty", got)
	}
}

func TestEdit_DeleteWordRight(t *testing.T) {
	s := newTestState("hello world")
	s.moveTo(0)
	s.deleteWordRight()
	if got := s.Value(); got != " world" {
		t.Fatalf("value=%q, want %q", got, " world")
	}
}

func TestEdit_DeleteToBeginningAndEnd(t *testing.T) {
	s := newTestState("hello world")
	s.moveTo(5)
	s.deleteToBeginning()
	if got := s.Value(); got != " world" {
		t.Fatalf("value=%q", got)
	}
	s.moveTo(1)
	s.deleteToEnd()
	if got := s.Value(); got != " " {
		t.Fatalf("value=%q", got)
	}
}

func TestEdit_DeleteToEdgesWithSelection(t *testing.T) {
	// With a selection, both commands remove only the selected text.
	s := newTestState("abcdef")
	s.selectedRange = textops.Range{Start: 2, End: 4}
	s.deleteToBeginning()
	if got := s.Value(); got != "abef" {
		t.Fatalf("value=%q, want selection-only delete", got)
	}

	s = newTestState("abcdef")
	s.selectedRange = textops.Range{Start: 2, End: 4}
	s.deleteToEnd()
	if got := s.Value(); got != "abef" {
		t.Fatalf("value=%q, want selection-only delete", got)
	}
}

func TestEdit_WordDeleteIsSingleUndoStep(t *testing.T) {
	s := newTestState("")
	s.InsertText("hello ")
	s.InsertText("world")
	s.deleteWordLeft()
	if got := s.Value(); got != "hello " {
		t.Fatalf("value=%q", got)
	}

	// One undo restores the word; typing did not fuse with the delete.
	s.undo()
	if got := s.Value(); got != "hello world" {
		t.Fatalf("after undo value=%q", got)
	}
}

func TestEdit_TypingMergesIntoOneUndo(t *testing.T) {
	s := newTestState("")
	s.InsertText("a")
	s.InsertText("b")
	s.InsertText("c")
	s.undo()
	if got := s.Value(); got != "" {
		t.Fatalf("value=%q, want empty after single undo", got)
	}
	s.redo()
	if got := s.Value(); got != "abc" {
		t.Fatalf("value=%q after redo", got)
	}
}

func TestEdit_CursorMoveSplitsUndo(t *testing.T) {
	s := newTestState("")
	s.InsertText("ab")
	s.left()
	s.right()
	s.InsertText("cd")

	s.undo()
	if got := s.Value(); got != "ab" {
		t.Fatalf("value=%q, want %q", got, "ab")
	}
	s.undo()
	if got := s.Value(); got != "" {
		t.Fatalf("value=%q, want empty", got)
	}
}

func TestEdit_UndoRestoresSelection(t *testing.T) {
	s := newTestState("abcdef")
	s.selectedRange = textops.Range{Start: 1, End: 4}
	s.InsertText("X")
	if got := s.Value(); got != "aXef" {
		t.Fatalf("value=%q", got)
	}

	s.undo()
	if got := s.Value(); got != "abcdef" {
		t.Fatalf("after undo value=%q", got)
	}
	if got := s.selectedRange; got != (textops.Range{Start: 1, End: 4}) {
		t.Fatalf("selection=%v, want restored {1 4}", got)
	}

	s.redo()
	if got := s.Value(); got != "aXef" {
		t.Fatalf("after redo value=%q", got)
	}
	if got := s.selectedRange; got != (textops.Range{Start: 2, End: 2}) {
		t.Fatalf("selection=%v, want caret after the replacement", got)
	}
}

func TestEdit_MaxLengthRejectsWholeEdit(t *testing.T) {
	s := NewState(Config{Value: "abcd", MaxLength: 5, Clipboard: NoopClipboard{}})
	s.moveTo(4)
	s.InsertText("ef")
	if got := s.Value(); got != "abcd" {
		t.Fatalf("value=%q, over-limit edit must be rejected whole", got)
	}
	s.InsertText("e")
	if got := s.Value(); got != "abcde" {
		t.Fatalf("value=%q, exact-limit edit must apply", got)
	}

	// Replacing within the limit is still allowed at max length.
	s.selectedRange = textops.Range{Start: 0, End: 5}
	s.InsertText("xyz")
	if got := s.Value(); got != "xyz" {
		t.Fatalf("value=%q", got)
	}
}

func TestEdit_MaxLengthCountsGraphemes(t *testing.T) {
	s := NewState(Config{MaxLength: 2, Clipboard: NoopClipboard{}})
	s.InsertText("é")
	s.InsertText("\U0001F1FA\U0001F1F8")
	if got := s.Value(); got != "é\U0001F1FA\U0001F1F8" {
		t.Fatalf("value=%q, two clusters must fit", got)
	}
	s.InsertText("x")
	if got := textops.Graphemes(s.Value()); got != 2 {
		t.Fatalf("graphemes=%d, want 2", got)
	}
}

func TestEdit_CopyCutPaste(t *testing.T) {
	clip := &memClipboard{}
	s := NewState(Config{Value: "hello world", Clipboard: clip})

	s.selectedRange = textops.Range{Start: 0, End: 5}
	s.copySelection()
	if clip.text != "hello" {
		t.Fatalf("clipboard=%q", clip.text)
	}

	s.cutSelection()
	if got := s.Value(); got != " world" {
		t.Fatalf("value=%q after cut", got)
	}
	if clip.text != "hello" {
		t.Fatalf("clipboard=%q after cut", clip.text)
	}

	s.moveTo(len(s.value))
	s.paste()
	if got := s.Value(); got != " worldhello" {
		t.Fatalf("value=%q after paste", got)
	}
}

func TestEdit_PasteFlattensNewlines(t *testing.T) {
	clip := &memClipboard{text: "one\r\ntwo\tthree"}
	s := NewState(Config{Clipboard: clip})
	s.paste()
	if got := s.Value(); got != "one two three" {
		t.Fatalf("value=%q", got)
	}
}

func TestEdit_PasteIsOwnUndoStep(t *testing.T) {
	clip := &memClipboard{text: "XYZ"}
	s := NewState(Config{Clipboard: clip})
	s.InsertText("ab")
	s.paste()
	s.InsertText("cd")

	s.undo()
	if got := s.Value(); got != "abXYZ" {
		t.Fatalf("value=%q", got)
	}
	s.undo()
	if got := s.Value(); got != "ab" {
		t.Fatalf("value=%q", got)
	}
	s.undo()
	if got := s.Value(); got != "" {
		t.Fatalf("value=%q", got)
	}
}

func TestEdit_MaskedFieldBlocksCopyAndCut(t *testing.T) {
	clip := &memClipboard{}
	s := NewState(Config{Value: "secret", Masked: true, Clipboard: clip})
	s.selectedRange = textops.Range{Start: 0, End: 6}

	s.copySelection()
	if clip.text != "" {
		t.Fatalf("masked copy leaked %q", clip.text)
	}
	s.cutSelection()
	if got := s.Value(); got != "secret" {
		t.Fatalf("masked cut must be a no-op, value=%q", got)
	}
}

func TestEdit_UndoRedoInverseLaw(t *testing.T) {
	s := newTestState("")
	for _, r := range "Hello World!" {
		s.InsertText(string(r))
	}
	if got := s.Value(); got != "Hello World!" {
		t.Fatalf("value=%q", got)
	}

	inv, ok := s.history.Undo()
	if !ok {
		t.Fatalf("expected an undo entry")
	}
	if inv.Kind != ChangeDelete || inv.Range != (textops.Range{Start: 0, End: 12}) {
		t.Fatalf("undo change=%+v, want delete of the whole insert", inv)
	}
	s.replayChange(inv)
	if got := s.Value(); got != "" {
		t.Fatalf("after undo value=%q", got)
	}

	redo, ok := s.history.Redo()
	if !ok {
		t.Fatalf("expected a redo entry")
	}
	if redo.Kind != ChangeInsert || redo.Text != "Hello World!" || redo.Range.Start != 0 {
		t.Fatalf("redo change=%+v", redo)
	}
	s.replayChange(redo)
	if got := s.Value(); got != "Hello World!" {
		t.Fatalf("after redo value=%q", got)
	}
}

func TestEdit_ReplaceThenTypingCoalesces(t *testing.T) {
	s := newTestState("")
	for _, r := range "abcdef" {
		s.InsertText(string(r))
	}

	s.selectedRange = textops.Range{Start: 2, End: 4}
	s.InsertText("X")
	s.InsertText("Y")
	if got := s.Value(); got != "abXYef" {
		t.Fatalf("value=%q", got)
	}

	// The replace and the continued typing are one undo step.
	s.undo()
	if got := s.Value(); got != "abcdef" {
		t.Fatalf("after first undo value=%q", got)
	}
	s.undo()
	if got := s.Value(); got != "" {
		t.Fatalf("after second undo value=%q", got)
	}
}

func TestEdit_RedoAppliesForwardDeleteChain(t *testing.T) {
	s := newTestState("abcd")
	s.moveTo(1)
	s.deleteForward()
	s.deleteForward()
	if got := s.Value(); got != "ad" {
		t.Fatalf("value=%q", got)
	}
	s.undo()
	if got := s.Value(); got != "abcd" {
		t.Fatalf("after undo value=%q", got)
	}
	s.redo()
	if got := s.Value(); got != "ad" {
		t.Fatalf("after redo value=%q", got)
	}
}
