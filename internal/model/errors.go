package model

import (
	"errors"
	"fmt"
)

// ErrorKind tags the two ways a list operation can be rejected.
type ErrorKind int

const (
	OutOfRange ErrorKind = iota + 1
	InvalidArgumentType
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case InvalidArgumentType:
		return "invalid argument type"
	}
	return "unknown"
}

var (
	ErrOutOfRange          = errors.New("index out of range")
	ErrInvalidArgumentType = errors.New("not a todo")
)

// Error is returned by TodoList operations. Match it with errors.Is against
// ErrOutOfRange / ErrInvalidArgumentType, or errors.As to read Index and Size.
type Error struct {
	Kind  ErrorKind
	Op    string
	Index int // only set for OutOfRange
	Size  int
}

func (e *Error) Error() string {
	if e.Kind == OutOfRange {
		return fmt.Sprintf("%s: index out of range: have %d, got %d", e.Op, e.Size, e.Index)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrOutOfRange:
		return e.Kind == OutOfRange
	case ErrInvalidArgumentType:
		return e.Kind == InvalidArgumentType
	}
	return false
}
