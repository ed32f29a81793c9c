package field

import "github.com/atotto/clipboard"

// Clipboard provides field-level clipboard integration.
//
// Errors must not crash the UI; failures are treated as no-ops.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard reads and writes the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// NoopClipboard discards writes and reads nothing. Useful for headless
// hosts and tests.
type NoopClipboard struct{}

func (NoopClipboard) ReadText() (string, error) { return "", nil }

func (NoopClipboard) WriteText(string) error { return nil }
