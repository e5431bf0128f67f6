// Package session applies line commands to an in-memory todo list.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
)

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// LineError ties a failure to the script line that caused it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// Session owns one list and writes command output to out.
type Session struct {
	list   *model.TodoList
	out    io.Writer
	logger *log.Logger
}

// New returns a session over list. A nil logger discards.
func New(list *model.TodoList, out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{list: list, out: out, logger: logger}
}

// List returns the list the session mutates.
func (s *Session) List() *model.TodoList { return s.list }

// Run executes every line of r, stopping at the first failing command.
func (s *Session) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := s.Exec(sc.Text()); err != nil {
			return &LineError{Line: n, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Exec runs a single command line. Blank lines and # comments are ignored.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	s.logger.Debug("exec", "cmd", cmd, "args", args, "size", s.list.Size())

	switch cmd {
	case "add":
		if len(args) == 0 {
			return usagef("usage: add <title...>")
		}
		title := strings.Join(args, " ")
		if err := s.list.Add(model.NewTodo(title)); err != nil {
			return err
		}
		s.printf("added: %s\n", title)

	case "done", "undone", "toggle", "rm", "show":
		idx, err := indexArg(cmd, args)
		if err != nil {
			return err
		}
		return s.indexed(cmd, idx)

	case "all":
		if err := noArgs(cmd, args); err != nil {
			return err
		}
		s.list.MarkAllDone()
		s.printf("marked %d done\n", s.list.Size())

	case "shift", "pop", "first", "last":
		if err := noArgs(cmd, args); err != nil {
			return err
		}
		s.printOptional(s.ends(cmd))

	case "size":
		if err := noArgs(cmd, args); err != nil {
			return err
		}
		s.printf("%d\n", s.list.Size())

	case "done?":
		if err := noArgs(cmd, args); err != nil {
			return err
		}
		s.printf("%t\n", s.list.IsDone())

	case "ls":
		if err := noArgs(cmd, args); err != nil {
			return err
		}
		s.printf("%s\n", s.list)

	case "filter":
		if len(args) != 1 {
			return usagef("usage: filter <done|pending>")
		}
		switch args[0] {
		case "done":
			s.printf("%s\n", s.list.Done())
		case "pending":
			s.printf("%s\n", s.list.Pending())
		default:
			return usagef("filter: want done or pending, got %q", args[0])
		}

	default:
		return usagef("unknown command: %s", cmd)
	}
	return nil
}

// indexed runs the index-based commands; idx is already 0-based.
func (s *Session) indexed(cmd string, idx int) error {
	var err error
	switch cmd {
	case "done":
		err = s.list.MarkDoneAt(idx)
	case "undone":
		err = s.list.MarkUndoneAt(idx)
	case "toggle":
		var t *model.Todo
		if t, err = s.list.ItemAt(idx); err == nil {
			if t.IsDone() {
				t.MarkUndone()
			} else {
				t.MarkDone()
			}
		}
	case "rm":
		var removed []*model.Todo
		if removed, err = s.list.RemoveAt(idx); err == nil {
			s.printf("removed: %s\n", removed[0].Title())
			return nil
		}
	case "show":
		var t *model.Todo
		if t, err = s.list.ItemAt(idx); err == nil {
			s.printf("%s\n", t)
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("%s %d: %w", cmd, idx+1, err)
	}
	t, _ := s.list.ItemAt(idx)
	s.printf("%s\n", t)
	return nil
}

func (s *Session) ends(cmd string) (*model.Todo, bool) {
	switch cmd {
	case "shift":
		return s.list.Shift()
	case "pop":
		return s.list.Pop()
	case "first":
		return s.list.First()
	default:
		return s.list.Last()
	}
}

func (s *Session) printOptional(t *model.Todo, ok bool) {
	if !ok {
		s.printf("(empty)\n")
		return
	}
	s.printf("%s\n", t)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// indexArg parses a 1-based index and returns it 0-based.
func indexArg(cmd string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, usagef("usage: %s <index>", cmd)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, usagef("%s: not a number: %s", cmd, args[0])
	}
	return n - 1, nil
}

func noArgs(cmd string, args []string) error {
	if len(args) != 0 {
		return usagef("usage: %s", cmd)
	}
	return nil
}

// IsUsage reports whether err came from a malformed command.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
