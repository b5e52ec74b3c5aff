package core

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"

	"viso/internal/state"
)

// StateStore abstracts cursor-state persistence for testability.
type StateStore interface {
	Load() ([]state.CursorState, error)
	Save([]state.CursorState) error
}

// FileStateStore implements StateStore using a JSON file.
type FileStateStore struct {
	File string
}

func NewFileStateStore(file string) *FileStateStore {
	return &FileStateStore{File: file}
}

// Load returns the stored states. A missing or empty file holds no states.
func (fs *FileStateStore) Load() ([]state.CursorState, error) {
	var states []state.CursorState
	f, err := os.Open(fs.File)
	if errors.Is(err, os.ErrNotExist) {
		return states, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&states); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return states, nil
}

func (fs *FileStateStore) Save(states []state.CursorState) error {
	f, err := os.Create(fs.File)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(states)
}

// InMemoryStateStore implements StateStore for testing (no disk I/O).
type InMemoryStateStore struct {
	mu     sync.Mutex
	states []state.CursorState
}

func NewInMemoryStateStore() *InMemoryStateStore {
	return &InMemoryStateStore{}
}

func (ms *InMemoryStateStore) Load() ([]state.CursorState, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	// Return a copy to avoid mutation
	cpy := make([]state.CursorState, len(ms.states))
	copy(cpy, ms.states)
	return cpy, nil
}

func (ms *InMemoryStateStore) Save(states []state.CursorState) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cpy := make([]state.CursorState, len(states))
	copy(cpy, states)
	ms.states = cpy
	return nil
}

// FindCursorState returns the state stored for fileHash.
func FindCursorState(states []state.CursorState, fileHash string) (state.CursorState, bool) {
	for _, s := range states {
		if s.FileHash == fileHash {
			return s, true
		}
	}
	return state.CursorState{}, false
}

// PutCursorState replaces the state for cs.FileHash, or appends cs.
func PutCursorState(states []state.CursorState, cs state.CursorState) []state.CursorState {
	for i := range states {
		if states[i].FileHash == cs.FileHash {
			states[i] = cs
			return states
		}
	}
	return append(states, cs)
}
