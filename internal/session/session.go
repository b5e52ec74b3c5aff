package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"viso/internal/clock"
	"viso/internal/core"
	"viso/internal/dev"
	"viso/internal/editor"
	"viso/internal/state"
)

// Options control how a Session opens and saves its file.
type Options struct {
	// FileMode is the permission used when the file has to be created.
	FileMode fs.FileMode
	// States remembers cursor positions between sessions. May be nil.
	States core.StateStore
	// RestoreCursor moves the cursor to the remembered line on open.
	RestoreCursor bool
	Clock         clock.Clock
}

// Session is one editing session over a single file.
type Session struct {
	Path string

	ed   *editor.Editor
	opts Options
	hash string
}

// Open loads path into a new Session, creating the file empty if it does
// not exist.
func Open(path string, opts Options) (*Session, error) {
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		dev.Debugf("creating %s", path)
		if err := os.WriteFile(path, nil, opts.FileMode); err != nil {
			return nil, fmt.Errorf("failed to create file %s: %w", path, err)
		}
		content = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	s := &Session{
		Path: path,
		ed:   editor.New(content),
		opts: opts,
		hash: state.HashPath(path),
	}
	if opts.RestoreCursor && opts.States != nil {
		if err := s.restoreCursor(); err != nil {
			return nil, err
		}
	}
	dev.Debugf("opened %s: %d lines, cursor %d", path, s.ed.LineCount(), s.ed.Cursor())
	return s, nil
}

func (s *Session) restoreCursor() error {
	states, err := s.opts.States.Load()
	if err != nil {
		return fmt.Errorf("failed to load cursor state: %w", err)
	}
	if cs, ok := core.FindCursorState(states, s.hash); ok {
		s.ed.MoveTo(cs.Cursor)
	}
	return nil
}

// Editor returns the session's editor.
func (s *Session) Editor() *editor.Editor {
	return s.ed
}

// Save replaces the file contents with the current document and records
// the cursor position.
func (s *Session) Save() error {
	if err := os.WriteFile(s.Path, s.ed.Serialize(), s.opts.FileMode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", s.Path, err)
	}
	dev.Debugf("saved %s: %d lines", s.Path, s.ed.LineCount())

	if s.opts.States == nil {
		return nil
	}
	states, err := s.opts.States.Load()
	if err != nil {
		return fmt.Errorf("failed to load cursor state: %w", err)
	}
	states = core.PutCursorState(states, state.CursorState{
		FileHash: s.hash,
		Path:     s.Path,
		Cursor:   s.ed.Cursor(),
		SavedAt:  s.opts.Clock.Now(),
	})
	if err := s.opts.States.Save(states); err != nil {
		return fmt.Errorf("failed to save cursor state: %w", err)
	}
	return nil
}
