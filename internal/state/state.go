package state

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"time"
)

// DocumentState is the cursor and line count of the open document.
// The cursor is 1-based and stays within [1, max(LineCount, 1)].
type DocumentState struct {
	Cursor    int
	LineCount int
}

// New returns the state of a freshly loaded document of lineCount lines.
func New(lineCount int) DocumentState {
	return DocumentState{Cursor: 1, LineCount: lineCount}
}

// last is the highest position the cursor may hold.
func (d *DocumentState) last() int {
	return max(d.LineCount, 1)
}

// MoveUp advances the cursor by delta lines towards the end of the document.
// Negative deltas count as zero.
func (d *DocumentState) MoveUp(delta int) {
	delta = max(delta, 0)
	if delta >= d.last()-d.Cursor {
		d.Cursor = d.last()
		return
	}
	d.Cursor += delta
}

// MoveDown moves the cursor by delta lines towards line 1.
// Negative deltas count as zero.
func (d *DocumentState) MoveDown(delta int) {
	d.Cursor = max(d.Cursor-max(delta, 0), 1)
}

// MoveTo places the cursor on target if target is an existing line.
// It reports whether the cursor moved.
func (d *DocumentState) MoveTo(target int) bool {
	if target < 1 || target > d.LineCount {
		return false
	}
	d.Cursor = target
	return true
}

// Inserted records a line inserted after the cursor. The cursor follows it
// onto the new line unless the document was empty.
func (d *DocumentState) Inserted() {
	if d.LineCount > 0 {
		d.Cursor++
	}
	d.LineCount++
}

// Removed records the removal of the cursor line.
func (d *DocumentState) Removed() {
	d.LineCount--
	if d.Cursor > d.LineCount {
		d.Cursor--
	}
	if d.Cursor < 1 {
		d.Cursor = 1
	}
}

// Valid reports whether the cursor invariant holds.
func (d *DocumentState) Valid() bool {
	return d.LineCount >= 0 && d.Cursor >= 1 && d.Cursor <= d.last()
}

// CursorState is the cursor position remembered for a file between sessions.
type CursorState struct {
	FileHash string    `json:"file_hash"` // hash of the absolute file path
	Path     string    `json:"path"`
	Cursor   int       `json:"cursor"`
	SavedAt  time.Time `json:"saved_at"`
}

// HashPath returns the key under which a file's cursor is remembered.
func HashPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])
}
