package editor

import (
	"fmt"

	"viso/internal/linebuffer"
	"viso/internal/state"
	"viso/pkg/line"
)

// Editor applies line operations to one document: its lines and the
// cursor state that addresses them. An Editor is not safe for concurrent
// use.
type Editor struct {
	buf   *linebuffer.LineBuffer
	state state.DocumentState
}

// New builds an Editor over text with the cursor on line 1.
func New(text []byte) *Editor {
	buf := linebuffer.New(text)
	return &Editor{buf: buf, state: state.New(buf.Len())}
}

// State returns a copy of the cursor state.
func (e *Editor) State() state.DocumentState {
	return e.state
}

// Cursor returns the 1-based cursor line.
func (e *Editor) Cursor() int {
	return e.state.Cursor
}

// Lines returns a copy of the document lines.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// ShowRange renders the existing lines in [lower, upper].
func (e *Editor) ShowRange(lower, upper int) ([]Row, error) {
	if lower < 1 || lower > upper || upper > e.state.LineCount+1 {
		return nil, fmt.Errorf("%w: [%d, %d] with %d lines", ErrInvalidRange, lower, upper, e.state.LineCount)
	}
	if e.state.LineCount == 0 {
		return placeholderRows(), nil
	}
	rows := make([]Row, 0, min(upper, e.state.LineCount)-lower+1)
	e.buf.Each(func(pos int, l *line.Line) {
		if pos < lower || pos > upper {
			return
		}
		rows = append(rows, Row{Number: pos, Text: l.String(), IsCursor: pos == e.state.Cursor})
	})
	return rows, nil
}

// ShowAll renders every line.
func (e *Editor) ShowAll() []Row {
	rows, err := e.ShowRange(1, e.state.LineCount+1)
	if err != nil {
		panic(err)
	}
	return rows
}

// ShowAroundCursor renders the cursor line and up to radius lines on each
// side of it. Negative radii count as zero.
func (e *Editor) ShowAroundCursor(radius int) []Row {
	if e.state.LineCount == 0 {
		return placeholderRows()
	}
	radius = min(max(radius, 0), e.state.LineCount)
	lower := max(e.state.Cursor-radius, 1)
	upper := min(e.state.Cursor+radius, e.state.LineCount)
	rows, err := e.ShowRange(lower, upper)
	if err != nil {
		panic(err)
	}
	return rows
}

// MoveUp moves the cursor delta lines towards the end of the document.
func (e *Editor) MoveUp(delta int) {
	e.state.MoveUp(delta)
}

// MoveDown moves the cursor delta lines towards line 1.
func (e *Editor) MoveDown(delta int) {
	e.state.MoveDown(delta)
}

// MoveTo places the cursor on target when it names an existing line.
func (e *Editor) MoveTo(target int) bool {
	return e.state.MoveTo(target)
}

// InsertLine adds a line holding content after the cursor line and moves
// the cursor onto it. Into an empty document the line becomes line 1.
func (e *Editor) InsertLine(content string) {
	l := e.buf.InsertAfter(e.insertPos())
	l.AppendString(content)
	e.state.Inserted()
}

func (e *Editor) insertPos() int {
	if e.state.LineCount == 0 {
		return linebuffer.BeforeFirst
	}
	return e.state.Cursor
}

// DeleteLine removes the cursor line. It does nothing on an empty document.
func (e *Editor) DeleteLine() {
	if e.state.LineCount == 0 {
		return
	}
	e.buf.RemoveAt(e.state.Cursor)
	e.state.Removed()
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	return e.state.LineCount
}

// CharCount returns the number of characters, excluding line-feeds.
func (e *Editor) CharCount() int {
	n := 0
	e.buf.Each(func(_ int, l *line.Line) {
		n += l.Len()
	})
	return n
}

// WordCount returns the number of words. A word is a maximal run of word
// characters within one line.
func (e *Editor) WordCount() int {
	n := 0
	e.buf.Each(func(_ int, l *line.Line) {
		inWord := false
		for _, c := range l.Bytes() {
			w := IsWordChar(c)
			if w && !inWord {
				n++
			}
			inWord = w
		}
	})
	return n
}

// IsWordChar reports whether c is an ASCII letter or digit, '_', '-' or '\''.
func IsWordChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '-', c == '\'':
		return true
	}
	return false
}

// Serialize returns the document text: lines joined by line-feeds, with
// no line-feed after the last line.
func (e *Editor) Serialize() []byte {
	return e.buf.Serialize()
}
