package field

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// View renders the field as a single styled line of exactly the
// configured width.
func (m Model) View() string {
	s := m.state
	line := s.Layout(m.bounds)
	width := m.bounds.Width

	if line.Text() == "" {
		return m.viewPlaceholder(width)
	}

	sel := s.displaySelectionRange()
	marked, hasMarked := s.displayMarkedRange()
	cursorOffset := s.displayCursorOffset()
	cursorVisible := s.CursorVisible()
	scrollX := s.ScrollX()

	var sb strings.Builder
	cells := 0

	g := uniseg.NewGraphemes(line.Text())
	x := 0
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		start, _ := g.Positions()

		// Clip to the scrolled viewport. Wide glyphs straddling an
		// edge are dropped rather than split.
		if x+w <= scrollX {
			x += w
			continue
		}
		if x-scrollX+w > width {
			break
		}

		style := m.cfg.Style.Text
		switch {
		case cursorVisible && start == cursorOffset:
			style = m.cfg.Style.Cursor
		case hasMarked && start >= marked.Start && start < marked.End:
			style = m.cfg.Style.Marked
		case !sel.IsEmpty() && start >= sel.Start && start < sel.End:
			style = m.cfg.Style.Selection
		}
		sb.WriteString(style.Render(cluster))

		x += w
		cells += w
	}

	// Cursor sitting past the last grapheme gets its own cell.
	if cursorVisible && cursorOffset >= len(line.Text()) && cells < width {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		cells++
	}

	if cells < width {
		sb.WriteString(m.cfg.Style.Text.Render(strings.Repeat(" ", width-cells)))
	}
	return sb.String()
}

func (m Model) viewPlaceholder(width int) string {
	var sb strings.Builder
	cells := 0

	if m.state.CursorVisible() && width > 0 {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		cells++
	}

	g := uniseg.NewGraphemes(m.state.Placeholder())
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if cells+w > width {
			break
		}
		sb.WriteString(m.cfg.Style.Placeholder.Render(g.Str()))
		cells += w
	}

	if cells < width {
		sb.WriteString(m.cfg.Style.Text.Render(strings.Repeat(" ", width-cells)))
	}
	return sb.String()
}
