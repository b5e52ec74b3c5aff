package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"viso/internal/dev"
	"viso/internal/parser"
)

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.ActiveView == ViewQuitting {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.ActiveView = ViewQuitting
		return m, tea.Quit
	case tea.KeyEnter:
		return submit(m)
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.document, cmd = m.document.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the command typed into the input line.
func submit(m model) (model, tea.Cmd) {
	text := m.input.Value()
	m.input.SetValue("")

	cmd, err := parser.ParseCommand(text)
	if errors.Is(err, parser.ErrEmptyCommand) {
		return m, nil
	}

	var out bytes.Buffer
	quit, err := m.dispatcher.Execute(cmd, &out)
	if err != nil {
		dev.Debugf("tui command %q failed: %v", cmd.Verb, err)
		fmt.Fprintf(&out, "Error: %v\n", err)
	}
	m.output = strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if out.Len() == 0 {
		m.output = nil
	}
	if quit {
		m.ActiveView = ViewQuitting
		return m, tea.Quit
	}
	m.refreshDocument()
	return m, nil
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.document.Width = msg.Width
	m.document.Height = max(msg.Height-chromeHeight, 1)
	m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
	m.refreshDocument()
	return m, nil
}

// refreshDocument re-renders the document pane and scrolls it so the
// cursor line is visible.
func (m *model) refreshDocument() {
	ed := m.sess.Editor()
	m.document.SetContent(renderRows(ed.ShowAll(), m.width))

	cursorRow := ed.Cursor() - 1
	switch {
	case cursorRow < m.document.YOffset:
		m.document.SetYOffset(cursorRow)
	case cursorRow >= m.document.YOffset+m.document.Height:
		m.document.SetYOffset(cursorRow - m.document.Height + 1)
	}
}
