package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"viso/internal/core"
	"viso/internal/session"
)

// ViewState is the screen the TUI is showing.
type ViewState int

const (
	ViewEditing ViewState = iota
	ViewQuitting
)

// model is the Bubbletea model for the TUI.
type model struct {
	ActiveView ViewState

	sess       *session.Session
	dispatcher *core.Dispatcher

	input    textinput.Model
	document viewport.Model
	output   []string // report of the last command
	height   int
	width    int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	// rows taken by the status bar, output pane and input line
	chromeHeight = 8
	outputLines  = 4
)

// InitialModel creates the TUI model for an open session.
func InitialModel(sess *session.Session, prompt string, width, height int) model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = "sf, sc N, cu N, cd N, ct N, nl TEXT, dl, lc, wc, cc, s, q"
	in.Focus()

	m := model{
		ActiveView: ViewEditing,
		sess:       sess,
		dispatcher: core.NewDispatcher(sess.Editor(), sess),
		input:      in,
		document:   viewport.New(width, max(height-chromeHeight, 1)),
		width:      width,
		height:     height,
	}
	m.refreshDocument()
	return m
}
