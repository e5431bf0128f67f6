package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func newSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return New(model.NewTodoList("Today's Todos"), &out, nil), &out
}

func TestRunScript(t *testing.T) {
	s, out := newSession()
	script := `
# seed
add Buy milk
add Clean room
add Go to the gym
done 2
ls
`
	if err := s.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "added: Buy milk\n" +
		"added: Clean room\n" +
		"added: Go to the gym\n" +
		"[X] Clean room\n" +
		"---- Today's Todos ----\n[ ] Buy milk\n[X] Clean room\n[ ] Go to the gym\n"
	if got := out.String(); got != want {
		t.Errorf("output:\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestExecCommands(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string // output of the last line
	}{
		{"size", []string{"size"}, "3\n"},
		{"first", []string{"first"}, "[ ] a\n"},
		{"last", []string{"last"}, "[ ] c\n"},
		{"shift", []string{"shift", "size"}, "2\n"},
		{"pop", []string{"pop"}, "[ ] c\n"},
		{"show", []string{"show 2"}, "[ ] b\n"},
		{"undone", []string{"all", "undone 1"}, "[ ] a\n"},
		{"toggle twice", []string{"toggle 3", "toggle 3"}, "[ ] c\n"},
		{"rm", []string{"rm 2"}, "removed: b\n"},
		{"all", []string{"all", "done?"}, "true\n"},
		{"not all done", []string{"done 1", "done?"}, "false\n"},
		{"filter done", []string{"done 3", "filter done"}, "---- L ----\n[X] c\n"},
		{"filter pending", []string{"done 3", "filter pending"}, "---- L ----\n[ ] a\n[ ] b\n"},
		{"comment", []string{"# nothing"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			l := model.NewTodoList("L")
			for _, title := range []string{"a", "b", "c"} {
				_ = l.Add(model.NewTodo(title))
			}
			s := New(l, &out, nil)
			for _, line := range tt.lines {
				out.Reset()
				if err := s.Exec(line); err != nil {
					t.Fatalf("Exec(%q): %v", line, err)
				}
			}
			if got := out.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyListEnds(t *testing.T) {
	s, out := newSession()
	for _, cmd := range []string{"shift", "pop", "first", "last"} {
		out.Reset()
		if err := s.Exec(cmd); err != nil {
			t.Fatalf("%s on empty list: %v", cmd, err)
		}
		if out.String() != "(empty)\n" {
			t.Errorf("%s: got %q", cmd, out.String())
		}
	}
	out.Reset()
	_ = s.Exec("done?")
	if out.String() != "true\n" {
		t.Errorf("done? on empty list: got %q", out.String())
	}
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		line       string
		usage      bool
		outOfRange bool
	}{
		{"frobnicate", true, false},
		{"add", true, false},
		{"done", true, false},
		{"done x", true, false},
		{"size 1", true, false},
		{"filter maybe", true, false},
		{"done 9", false, true},
		{"rm 0", false, true},
		{"show -1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, _ := newSession()
			_ = s.Exec("add only")
			err := s.Exec(tt.line)
			if err == nil {
				t.Fatal("expected error")
			}
			if IsUsage(err) != tt.usage {
				t.Errorf("IsUsage: got %v, want %v (%v)", IsUsage(err), tt.usage, err)
			}
			if got := errors.Is(err, model.ErrOutOfRange); got != tt.outOfRange {
				t.Errorf("ErrOutOfRange: got %v, want %v (%v)", got, tt.outOfRange, err)
			}
			if s.List().Size() != 1 {
				t.Errorf("failed command changed the list: size %d", s.List().Size())
			}
		})
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	s, _ := newSession()
	err := s.Run(strings.NewReader("add a\nrm 4\nadd b\n"))

	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LineError, got %v", err)
	}
	if le.Line != 2 {
		t.Errorf("Line: got %d, want 2", le.Line)
	}
	if !errors.Is(err, model.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange in chain: %v", err)
	}
	if s.List().Size() != 1 {
		t.Errorf("size: got %d, want 1", s.List().Size())
	}
}
