package field

// Config configures a field Model.
type Config struct {
	// Initial value.
	Value string

	// Placeholder is shown when the value is empty.
	Placeholder string

	// Masked replaces each committed grapheme with Mask when rendering
	// (e.g. password entry). Mask defaults to "•".
	Masked bool
	Mask   string

	// MaxLength bounds the value in grapheme clusters; edits that would
	// exceed it are rejected whole. Zero means unbounded.
	MaxLength int

	// Validate, when set, gates ChangeEvent emission: invalid values
	// stay editable but are not committed. See State.Valid.
	Validate func(string) bool

	// Width of the visible viewport in cells.
	Width int

	Style  Style
	KeyMap KeyMap

	// Clipboard defaults to SystemClipboard.
	Clipboard Clipboard

	// HistoryLimit bounds the undo stack (default 100).
	HistoryLimit int
}
