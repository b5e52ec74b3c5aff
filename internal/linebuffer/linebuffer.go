package linebuffer

import (
	"bytes"
	"fmt"

	sll "github.com/emirpasic/gods/lists/singlylinkedlist"

	"viso/pkg/line"
)

// BeforeFirst is the position of the sentinel that precedes line 1.
// InsertAfter(BeforeFirst) makes the new line the first line.
const BeforeFirst = 0

// LineBuffer is the ordered set of lines making up a document.
// Positions are 1-based; position 0 names the sentinel. The buffer owns
// every Line it holds.
type LineBuffer struct {
	lines *sll.List
}

// New splits text on line-feeds. A trailing fragment without a line-feed
// becomes the last line, a trailing line-feed does not open another line,
// and empty input yields an empty buffer.
func New(text []byte) *LineBuffer {
	lb := &LineBuffer{lines: sll.New()}
	if len(text) == 0 {
		return lb
	}
	text = bytes.TrimSuffix(text, []byte{'\n'})
	for _, chunk := range bytes.Split(text, []byte{'\n'}) {
		lb.lines.Add(line.FromBytes(chunk))
	}
	return lb
}

// Len returns the number of lines, excluding the sentinel.
func (lb *LineBuffer) Len() int {
	return lb.lines.Size()
}

// Get returns the line at pos, or false if pos is not a line.
func (lb *LineBuffer) Get(pos int) (*line.Line, bool) {
	if pos <= BeforeFirst || pos > lb.Len() {
		return nil, false
	}
	v, ok := lb.lines.Get(pos - 1)
	if !ok {
		return nil, false
	}
	return v.(*line.Line), true
}

// InsertAfter creates an empty line directly after pos and returns it for
// the caller to fill. Appending to the end is InsertAfter(Len()).
func (lb *LineBuffer) InsertAfter(pos int) *line.Line {
	if pos < BeforeFirst || pos > lb.Len() {
		panic(fmt.Sprintf("linebuffer: insert after %d in buffer of %d lines", pos, lb.Len()))
	}
	l := line.New()
	lb.lines.Insert(pos, l)
	return l
}

// RemoveAt drops the line at pos. Removing the only line leaves the buffer
// empty.
func (lb *LineBuffer) RemoveAt(pos int) {
	if pos <= BeforeFirst || pos > lb.Len() {
		panic(fmt.Sprintf("linebuffer: remove at %d in buffer of %d lines", pos, lb.Len()))
	}
	lb.lines.Remove(pos - 1)
}

// Each calls fn for every line in order with its 1-based position.
// fn must not retain l or mutate the buffer.
func (lb *LineBuffer) Each(fn func(pos int, l *line.Line)) {
	it := lb.lines.Iterator()
	for it.Next() {
		fn(it.Index()+1, it.Value().(*line.Line))
	}
}

// Serialize joins every line with a single line-feed. No line-feed follows
// the last line, so New(Serialize()) reproduces the buffer.
func (lb *LineBuffer) Serialize() []byte {
	var out bytes.Buffer
	lb.Each(func(pos int, l *line.Line) {
		if pos > 1 {
			out.WriteByte('\n')
		}
		out.Write(l.Bytes())
	})
	return out.Bytes()
}

// Lines returns a copy of every line as a string.
func (lb *LineBuffer) Lines() []string {
	out := make([]string, 0, lb.Len())
	lb.Each(func(_ int, l *line.Line) {
		out = append(out, l.String())
	})
	return out
}
