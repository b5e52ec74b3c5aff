package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"viso/internal/session"
)

func newTestModel(t *testing.T, content string) (model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	sess, err := session.Open(path, session.Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return InitialModel(sess, "> ", 60, 20), path
}

func enter(t *testing.T, m model, command string) (model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(command)
	return Update(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmit_EditsDocument(t *testing.T) {
	m, path := newTestModel(t, "alpha\nbeta")

	m, _ = enter(t, m, "nl inserted")
	m, _ = enter(t, m, "cu 9")
	m, _ = enter(t, m, "dl")
	if diff := cmp.Diff([]string{"alpha", "inserted"}, m.sess.Editor().Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	m, _ = enter(t, m, "s")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alpha\ninserted" {
		t.Errorf("file content = %q", data)
	}
}

func TestSubmit_ShowsReport(t *testing.T) {
	m, _ := newTestModel(t, "hello world")

	m, _ = enter(t, m, "wc")
	if diff := cmp.Diff([]string{"wc. 2"}, m.output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	m, _ = enter(t, m, "bogus")
	if diff := cmp.Diff([]string{"Could not find: bogus"}, m.output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	m, _ = enter(t, m, "cu 1")
	if m.output != nil {
		t.Errorf("silent command left output %q", m.output)
	}
	if !strings.Contains(ModelView(m), "@. hello world") {
		t.Errorf("view does not show the cursor line:\n%s", ModelView(m))
	}
}

func TestSubmit_Quit(t *testing.T) {
	m, _ := newTestModel(t, "x")

	m, cmd := enter(t, m, "q")
	if m.ActiveView != ViewQuitting {
		t.Errorf("ActiveView = %v, want ViewQuitting", m.ActiveView)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command returned %T, want tea.QuitMsg", cmd())
	}
	if ModelView(m) != "Goodbye!\n" {
		t.Errorf("quitting view = %q", ModelView(m))
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m, _ := newTestModel(t, "x")
	m, cmd := Update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.ActiveView != ViewQuitting || cmd == nil {
		t.Errorf("ctrl+c did not quit: view=%v cmd=%v", m.ActiveView, cmd)
	}
}

func TestWindowResize_KeepsCursorVisible(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "line")
	}
	m, _ := newTestModel(t, strings.Join(lines, "\n"))

	m, _ = Update(m, tea.WindowSizeMsg{Width: 40, Height: 18})
	if m.document.Height != 10 {
		t.Errorf("document height = %d, want 10", m.document.Height)
	}
	m, _ = enter(t, m, "ct 50")
	if off := m.document.YOffset; off > 49 || off+m.document.Height <= 49 {
		t.Errorf("cursor row 49 outside window [%d, %d)", off, off+m.document.Height)
	}
	m, _ = enter(t, m, "ct 1")
	if m.document.YOffset != 0 {
		t.Errorf("YOffset = %d, want 0", m.document.YOffset)
	}
}
