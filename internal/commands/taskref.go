package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"ltask/internal/task"
)

// TaskRef is a parsed reference to one task.
type TaskRef struct {
	Num  int   // 1-based position in the full collection; 0 when ByID
	ID   int64 // task id; 0 unless ByID
	ByID bool  // true for "#<id>" references
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrOutOfRange indicates a position past the end of the collection.
	ErrOutOfRange = errors.New("task number out of range")

	// ErrTaskNotFound indicates an id reference to a task that does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// ParseTaskRef parses the task reference in args[0].
//
// Accepted forms:
//  1. all digits ("3") → position in the full collection, newest first
//  2. "#" followed by digits ("#1712345678901") → task id
//
// Anything else is "invalid task reference: <arg>".
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	arg := args[0]

	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if rest, ok := strings.CutPrefix(arg, "#"); ok && isAllDigits(rest) {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// Resolve finds the referenced task in c.
func (r TaskRef) Resolve(c task.Collection) (task.Task, error) {
	if r.ByID {
		t, ok := c.Find(r.ID)
		if !ok {
			return task.Task{}, fmt.Errorf("%w: #%d", ErrTaskNotFound, r.ID)
		}
		return t, nil
	}
	if r.Num < 1 || r.Num > len(c) {
		return task.Task{}, fmt.Errorf("%w: %d", ErrOutOfRange, r.Num)
	}
	return c[r.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
