package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"viso/internal/editor"
)

var (
	cursorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	statusStyle      = lipgloss.NewStyle().Reverse(true)
	outputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	switch m.ActiveView {
	case ViewQuitting:
		return "Goodbye!\n"
	default:
		return editingView(m)
	}
}

func editingView(m model) string {
	ed := m.sess.Editor()
	status := fmt.Sprintf(" %s  line %d/%d ", m.sess.Path, ed.Cursor(), ed.LineCount())
	status = runewidth.FillRight(runewidth.Truncate(status, m.width, "…"), m.width)

	output := make([]string, 0, outputLines)
	for i, l := range m.output {
		if i == outputLines {
			break
		}
		output = append(output, outputStyle.Render(runewidth.Truncate(l, m.width, "…")))
	}
	for len(output) < outputLines {
		output = append(output, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.document.View(),
		statusStyle.Render(status),
		strings.Join(output, "\n"),
		m.input.View(),
	)
}

// renderRows renders a listing, truncated to width display cells, with the
// cursor line highlighted.
func renderRows(rows []editor.Row, width int) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		text := r.String()
		if width > 0 {
			text = runewidth.Truncate(text, width, "…")
		}
		switch {
		case r.IsCursor:
			text = cursorStyle.Render(text)
		case r.Placeholder:
			text = placeholderStyle.Render(text)
		}
		lines[i] = text
	}
	return strings.Join(lines, "\n")
}
