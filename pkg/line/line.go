package line

import (
	"bytes"
	"fmt"
)

// InitialCapacity is the storage reserved for a freshly created line.
const InitialCapacity = 64

// Line is one line of text without its terminating line-feed.
// A Line owns its storage; callers only borrow the slice returned by Bytes.
type Line struct {
	data []byte
}

// New returns an empty line with InitialCapacity bytes of storage.
func New() *Line {
	return &Line{data: make([]byte, 0, InitialCapacity)}
}

// FromBytes returns a line holding a copy of b.
func FromBytes(b []byte) *Line {
	l := New()
	l.Append(b)
	return l
}

// Append adds b to the end of the line, doubling the capacity until it fits.
// b must not contain a line-feed.
func (l *Line) Append(b []byte) {
	if bytes.IndexByte(b, '\n') >= 0 {
		panic(fmt.Sprintf("line: append of %q contains a line-feed", b))
	}
	l.grow(len(b))
	l.data = append(l.data, b...)
}

// AppendString is Append for a string.
func (l *Line) AppendString(s string) {
	l.Append([]byte(s))
}

func (l *Line) grow(n int) {
	need := len(l.data) + n
	c := cap(l.data)
	if need <= c {
		return
	}
	if c == 0 {
		c = InitialCapacity
	}
	for c < need {
		c *= 2
	}
	grown := make([]byte, len(l.data), c)
	copy(grown, l.data)
	l.data = grown
}

// Bytes returns the line contents. The slice is valid until the next Append.
func (l *Line) Bytes() []byte {
	return l.data
}

// String returns a copy of the line contents.
func (l *Line) String() string {
	return string(l.data)
}

// Len returns the number of characters in the line.
func (l *Line) Len() int {
	return len(l.data)
}

// Cap returns the current storage capacity.
func (l *Line) Cap() int {
	return cap(l.data)
}
