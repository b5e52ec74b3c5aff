package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"viso/internal/dev"
	"viso/internal/editor"
	"viso/internal/parser"
)

// Saver writes the document back to its file.
type Saver interface {
	Save() error
}

// Dispatcher runs parsed commands against an editor and writes their
// reports.
type Dispatcher struct {
	ed    *editor.Editor
	saver Saver
}

// NewDispatcher returns a Dispatcher for ed. saver handles the save verb.
func NewDispatcher(ed *editor.Editor, saver Saver) *Dispatcher {
	return &Dispatcher{ed: ed, saver: saver}
}

// Execute runs cmd, writing any report to out. It returns true when cmd
// ends the session. Only failures to write the report or to save are
// returned as errors; bad arguments are clamped or ignored.
func (d *Dispatcher) Execute(cmd parser.Command, out io.Writer) (quit bool, err error) {
	dev.Debugf("execute %q arg=%q cursor=%d", cmd.Verb, cmd.Arg, d.ed.Cursor())

	switch cmd.Verb {
	case parser.VerbShowFile:
		err = writeRows(out, d.ed.ShowAll())
	case parser.VerbShowCursor:
		err = writeRows(out, d.ed.ShowAroundCursor(cmd.Int()))
	case parser.VerbCursorUp:
		d.ed.MoveUp(cmd.Int())
	case parser.VerbCursorDown:
		d.ed.MoveDown(cmd.Int())
	case parser.VerbCursorTo:
		d.ed.MoveTo(cmd.Int())
	case parser.VerbNewLine:
		d.ed.InsertLine(cmd.Arg)
	case parser.VerbDeleteLine:
		d.ed.DeleteLine()
	case parser.VerbLineCount:
		_, err = fmt.Fprintf(out, "lc. %d\n", d.ed.LineCount())
	case parser.VerbWordCount:
		_, err = fmt.Fprintf(out, "wc. %d\n", d.ed.WordCount())
	case parser.VerbCharCount:
		_, err = fmt.Fprintf(out, "cc. %d\n", d.ed.CharCount())
	case parser.VerbSave:
		if err := d.saver.Save(); err != nil {
			return false, fmt.Errorf("save: %w", err)
		}
	case parser.VerbQuit:
		return true, nil
	default:
		_, err = fmt.Fprintf(out, "Could not find: %s\n", cmd.Verb)
	}
	return false, err
}

func writeRows(out io.Writer, rows []editor.Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(out, r.String()); err != nil {
			return err
		}
	}
	return nil
}

// Run reads commands from in until quit or end of input, printing prompt
// before each one. A failed save is reported on out and the loop goes on.
func Run(d *Dispatcher, in io.Reader, out io.Writer, prompt string) error {
	reader := bufio.NewReader(in)

	for {
		if _, err := io.WriteString(out, prompt); err != nil {
			return err
		}
		input, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("error reading command: %w", readErr)
		}
		atEOF := readErr != nil

		cmd, err := parser.ParseCommand(input)
		if errors.Is(err, parser.ErrEmptyCommand) {
			if atEOF {
				return nil
			}
			continue
		}

		quit, err := d.Execute(cmd, out)
		if err != nil {
			dev.Debugf("command %q failed: %v", cmd.Verb, err)
			if _, werr := fmt.Fprintf(out, "Error: %v\n", err); werr != nil {
				return werr
			}
		}
		if quit || atEOF {
			return nil
		}
	}
}
