// Package field implements a single-line text input component for
// Bubble Tea: an editing engine (buffer, selection, IME marked text,
// coalescing undo history, masking, horizontal cursor-follow scroll)
// plus a tea.Model wrapper that wires key, mouse, and blink-timer
// messages into it.
package field
