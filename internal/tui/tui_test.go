package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T, titles ...string) (Model, *model.TodoList) {
	t.Helper()
	l := model.NewTodoList("Today's Todos")
	for _, title := range titles {
		if err := l.Add(model.NewTodo(title)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return New(l), l
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestToggleSelected(t *testing.T) {
	m, l := newTestModel(t, "Buy milk", "Clean room", "Go to the gym")
	m.list.Select(1)

	m = send(t, m, space)
	if !m.Changed() {
		t.Error("expected Changed after toggle")
	}
	want := "---- Today's Todos ----\n[ ] Buy milk\n[X] Clean room\n[ ] Go to the gym"
	if got := l.String(); got != want {
		t.Errorf("after toggle:\ngot  %q\nwant %q", got, want)
	}

	m = send(t, m, space)
	if l.CountDone() != 0 {
		t.Errorf("second toggle should undo, done=%d", l.CountDone())
	}
}

func TestRemoveSelected(t *testing.T) {
	m, l := newTestModel(t, "a", "b", "c")
	m.list.Select(2)

	m = send(t, m, runes("d"))
	if l.Size() != 2 {
		t.Fatalf("Size: got %d, want 2", l.Size())
	}
	if last, _ := l.Last(); last.Title() != "b" {
		t.Errorf("Last: got %q", last.Title())
	}
	if got := m.list.Index(); got != 1 {
		t.Errorf("cursor should clamp to 1, got %d", got)
	}
}

func TestMarkAllDone(t *testing.T) {
	m, l := newTestModel(t, "a", "b")
	m = send(t, m, runes("A"))
	if !l.IsDone() || !m.Changed() {
		t.Errorf("IsDone=%v Changed=%v", l.IsDone(), m.Changed())
	}
}

func TestPendingOnlyView(t *testing.T) {
	m, l := newTestModel(t, "a", "b", "c")
	_ = l.MarkDoneAt(0)

	m = send(t, m, runes("p"))
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("visible items: got %d, want 2", got)
	}

	// cursor 0 is "b", which sits at index 1 of the full list
	m = send(t, m, space)
	if todo, _ := l.ItemAt(1); !todo.IsDone() {
		t.Error("toggle in pending view hit the wrong todo")
	}
	if got := len(m.list.Items()); got != 1 {
		t.Errorf("visible items after toggle: got %d, want 1", got)
	}
	if l.Size() != 3 {
		t.Errorf("pending view must not shrink the list, size %d", l.Size())
	}
}

func TestInlineAdd(t *testing.T) {
	m, l := newTestModel(t, "a")

	m = send(t, m, runes("a"))
	if !m.adding {
		t.Fatal("expected add mode")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.addErr == "" || l.Size() != 1 {
		t.Fatalf("empty title should be rejected: err=%q size=%d", m.addErr, l.Size())
	}

	m = send(t, m, runes("Read book"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.adding {
		t.Error("add mode should close after enter")
	}
	if last, _ := l.Last(); l.Size() != 2 || last.Title() != "Read book" {
		t.Errorf("unexpected list: %s", l)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "a")
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewRenders(t *testing.T) {
	m, _ := newTestModel(t, "Buy milk")
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.View() == "" {
		t.Error("empty view")
	}
}
