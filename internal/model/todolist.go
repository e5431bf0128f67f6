package model

import "strings"

// TodoList is an ordered collection of todo references with a title.
// It does not own its todos: removing one only drops the reference.
// Not safe for concurrent use.
type TodoList struct {
	title string
	todos []*Todo
}

func NewTodoList(title string) *TodoList {
	return &TodoList{title: title}
}

func (l *TodoList) Title() string { return l.title }

// Add appends t. A nil todo is rejected and the list is left as is.
func (l *TodoList) Add(t *Todo) error {
	if t == nil {
		return &Error{Kind: InvalidArgumentType, Op: "add", Size: len(l.todos)}
	}
	l.todos = append(l.todos, t)
	return nil
}

func (l *TodoList) Size() int { return len(l.todos) }

// ToSlice returns a shallow copy; changing it does not change the list.
func (l *TodoList) ToSlice() []*Todo {
	out := make([]*Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

func (l *TodoList) First() (*Todo, bool) {
	if len(l.todos) == 0 {
		return nil, false
	}
	return l.todos[0], true
}

func (l *TodoList) Last() (*Todo, bool) {
	if len(l.todos) == 0 {
		return nil, false
	}
	return l.todos[len(l.todos)-1], true
}

// Shift removes and returns the first todo.
func (l *TodoList) Shift() (*Todo, bool) {
	if len(l.todos) == 0 {
		return nil, false
	}
	t := l.todos[0]
	l.todos[0] = nil
	l.todos = l.todos[1:]
	return t, true
}

// Pop removes and returns the last todo.
func (l *TodoList) Pop() (*Todo, bool) {
	n := len(l.todos)
	if n == 0 {
		return nil, false
	}
	t := l.todos[n-1]
	l.todos[n-1] = nil
	l.todos = l.todos[:n-1]
	return t, true
}

func (l *TodoList) validIndex(op string, i int) error {
	if i < 0 || i >= len(l.todos) {
		return &Error{Kind: OutOfRange, Op: op, Index: i, Size: len(l.todos)}
	}
	return nil
}

func (l *TodoList) ItemAt(i int) (*Todo, error) {
	if err := l.validIndex("item at", i); err != nil {
		return nil, err
	}
	return l.todos[i], nil
}

func (l *TodoList) MarkDoneAt(i int) error {
	if err := l.validIndex("mark done at", i); err != nil {
		return err
	}
	l.todos[i].MarkDone()
	return nil
}

func (l *TodoList) MarkUndoneAt(i int) error {
	if err := l.validIndex("mark undone at", i); err != nil {
		return err
	}
	l.todos[i].MarkUndone()
	return nil
}

func (l *TodoList) MarkAllDone() {
	for _, t := range l.todos {
		t.MarkDone()
	}
}

// IsDone reports whether every todo is done. An empty list is done.
func (l *TodoList) IsDone() bool {
	for _, t := range l.todos {
		if !t.IsDone() {
			return false
		}
	}
	return true
}

// RemoveAt removes the todo at i and returns it as a one-element slice.
func (l *TodoList) RemoveAt(i int) ([]*Todo, error) {
	if err := l.validIndex("remove at", i); err != nil {
		return nil, err
	}
	removed := []*Todo{l.todos[i]}
	n := len(l.todos)
	copy(l.todos[i:], l.todos[i+1:])
	l.todos[n-1] = nil
	l.todos = l.todos[:n-1]
	return removed, nil
}

func (l *TodoList) ForEach(fn func(*Todo)) {
	for _, t := range l.todos {
		fn(t)
	}
}

// Filter returns a new list with the same title holding the todos for which
// keep returns true, in their original order.
func (l *TodoList) Filter(keep func(*Todo) bool) *TodoList {
	out := NewTodoList(l.title)
	for _, t := range l.todos {
		if keep(t) {
			out.todos = append(out.todos, t)
		}
	}
	return out
}

func (l *TodoList) Done() *TodoList    { return l.Filter((*Todo).IsDone) }
func (l *TodoList) Pending() *TodoList { return l.Filter(func(t *Todo) bool { return !t.IsDone() }) }

// CountDone returns how many todos are done.
func (l *TodoList) CountDone() int {
	n := 0
	for _, t := range l.todos {
		if t.IsDone() {
			n++
		}
	}
	return n
}

// String renders a "---- title ----" header followed by one line per todo.
func (l *TodoList) String() string {
	lines := make([]string, 0, len(l.todos)+1)
	lines = append(lines, "---- "+l.title+" ----")
	for _, t := range l.todos {
		lines = append(lines, t.String())
	}
	return strings.Join(lines, "\n")
}
