package model

// Todo is a single entry with a title and a completion flag.
// The title is fixed at construction; only the flag changes.
type Todo struct {
	title string
	done  bool
}

// NewTodo returns an incomplete todo.
func NewTodo(title string) *Todo {
	return &Todo{title: title}
}

func (t *Todo) Title() string { return t.title }

func (t *Todo) MarkDone()   { t.done = true }
func (t *Todo) MarkUndone() { t.done = false }

func (t *Todo) IsDone() bool { return t.done }

// String renders "[X] title" or "[ ] title".
func (t *Todo) String() string {
	mark := " "
	if t.done {
		mark = "X"
	}
	return "[" + mark + "] " + t.title
}
