package line

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	l := New()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Cap() != InitialCapacity {
		t.Errorf("Cap() = %d, want %d", l.Cap(), InitialCapacity)
	}
}

func TestAppend_Growth(t *testing.T) {
	tests := []struct {
		name    string
		appends []int
		wantLen int
		wantCap int
	}{
		{name: "fits initial", appends: []int{10, 20}, wantLen: 30, wantCap: 64},
		{name: "exactly full", appends: []int{64}, wantLen: 64, wantCap: 64},
		{name: "one over", appends: []int{64, 1}, wantLen: 65, wantCap: 128},
		{name: "large single append", appends: []int{300}, wantLen: 300, wantCap: 512},
		{name: "many small appends", appends: []int{50, 50, 50, 50, 50}, wantLen: 250, wantCap: 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			var want strings.Builder
			for i, n := range tt.appends {
				chunk := strings.Repeat(string(rune('a'+i)), n)
				l.AppendString(chunk)
				want.WriteString(chunk)
			}
			if l.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", l.Len(), tt.wantLen)
			}
			if l.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", l.Cap(), tt.wantCap)
			}
			if l.Cap() < l.Len() {
				t.Errorf("Cap() %d < Len() %d", l.Cap(), l.Len())
			}
			if l.String() != want.String() {
				t.Errorf("content mismatch")
			}
		})
	}
}

func TestFromBytes_Copies(t *testing.T) {
	src := []byte("hello")
	l := FromBytes(src)
	src[0] = 'j'
	if got := l.String(); got != "hello" {
		t.Errorf("String() = %q, want %q", got, "hello")
	}
}

func TestAppend_LineFeedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on embedded line-feed")
		}
	}()
	New().AppendString("a\nb")
}
