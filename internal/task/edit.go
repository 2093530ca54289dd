package task

import "strings"

// EditSession tracks the single task currently being edited and the text
// staged for it. The zero value is an idle session.
type EditSession struct {
	id     int64
	active bool
	buffer string
}

// Begin puts the task with the given id into edit mode, copying its current
// text into the buffer. Any previous session is abandoned. Returns false, and
// leaves the session untouched, if c has no such task.
func (e *EditSession) Begin(c Collection, id int64) bool {
	t, ok := c.Find(id)
	if !ok {
		return false
	}
	e.id = id
	e.active = true
	e.buffer = t.Text
	return true
}

// Active returns the id being edited.
func (e *EditSession) Active() (int64, bool) {
	return e.id, e.active
}

// Buffer returns the staged text.
func (e *EditSession) Buffer() string {
	return e.buffer
}

// SetBuffer replaces the staged text. It has no effect on an idle session.
func (e *EditSession) SetBuffer(text string) {
	if e.active {
		e.buffer = text
	}
}

// Cancel abandons the session without touching any collection.
func (e *EditSession) Cancel() {
	*e = EditSession{}
}

// Commit applies the staged text to c and closes the session. A blank buffer
// leaves both c and the session as they are and returns false.
func (e *EditSession) Commit(c Collection) (Collection, bool) {
	if !e.active || strings.TrimSpace(e.buffer) == "" {
		return c, false
	}
	out := Edit(c, e.id, e.buffer)
	e.Cancel()
	return out, true
}
