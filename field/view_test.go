package field

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Pin the color profile so styled output is byte-stable regardless of
// the terminal running the tests.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// plainStyle renders without ANSI so output is directly comparable.
func plainConfig(cfg Config) Config {
	cfg.Style = Style{}
	if cfg.Clipboard == nil {
		cfg.Clipboard = NoopClipboard{}
	}
	return cfg
}

func TestView_PadsToWidth(t *testing.T) {
	m := New(plainConfig(Config{Value: "hi", Width: 6}))
	got := m.View()
	if got != "hi    " {
		t.Fatalf("view=%q", got)
	}
}

func TestView_ScrollsLongValue(t *testing.T) {
	m := New(plainConfig(Config{Value: "abcdefghij", Width: 5}))
	m.State().moveTo(10)
	got := m.View()
	// scrollX=6 leaves "ghij" plus the cursor cell.
	if !strings.HasPrefix(got, "ghij") {
		t.Fatalf("view=%q, want suffix of value visible", got)
	}
	if len([]rune(got)) != 5 {
		t.Fatalf("view width=%d, want 5", len([]rune(got)))
	}
}

func TestView_Placeholder(t *testing.T) {
	m := New(plainConfig(Config{Placeholder: "search...", Width: 12}))
	got := m.View()
	if got != "search...   " {
		t.Fatalf("view=%q", got)
	}
}

func TestView_PlaceholderTruncated(t *testing.T) {
	m := New(plainConfig(Config{Placeholder: "very long placeholder", Width: 4}))
	got := m.View()
	if got != "very" {
		t.Fatalf("view=%q", got)
	}
}

func TestView_MaskedValue(t *testing.T) {
	m := New(plainConfig(Config{Value: "secret", Masked: true, Width: 8}))
	got := m.View()
	if got != "••••••  " {
		t.Fatalf("view=%q", got)
	}
}

func TestView_CustomMask(t *testing.T) {
	m := New(plainConfig(Config{Value: "ab", Masked: true, Mask: "*", Width: 4}))
	if got := m.View(); got != "**  " {
		t.Fatalf("view=%q", got)
	}
}

func TestView_FocusedEmptyShowsCursorCell(t *testing.T) {
	m := New(plainConfig(Config{Width: 3}))
	m, _ = m.Focus()
	got := m.View()
	// The cursor cell renders as a space with the zero style.
	if got != "   " {
		t.Fatalf("view=%q", got)
	}
	if !m.State().CursorVisible() {
		t.Fatalf("expected visible cursor after focus")
	}
}

func TestView_WideGlyphNotSplitAtEdge(t *testing.T) {
	m := New(plainConfig(Config{Value: "a漢b", Width: 2}))
	m.State().moveTo(0)
	got := m.View()
	// Only "a" fits: the wide glyph would straddle the right edge.
	if got != "a " {
		t.Fatalf("view=%q", got)
	}
}
