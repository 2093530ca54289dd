// Package task defines the task collection and the pure transitions over it.
package task

import "strings"

// Task is a single to-do item.
type Task struct {
	ID        int64  `json:"id" yaml:"id" toml:"id"`
	Text      string `json:"text" yaml:"text" toml:"text"`
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
}

// Collection is the ordered set of tasks, newest first.
type Collection []Task

// Clone returns a copy that shares no backing array with c.
// A nil collection clones to nil.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Index returns the position of the task with the given id, or -1.
func (c Collection) Index(id int64) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given id.
func (c Collection) Find(id int64) (Task, bool) {
	i := c.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return c[i], true
}

// MaxID returns the largest id in c, or 0 for an empty collection.
func (c Collection) MaxID() int64 {
	var max int64
	for _, t := range c {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// Sanitize drops records that break the collection invariants: tasks whose
// text is blank, whose id is outside 1..MaxTaskID, and tasks repeating an id
// already seen earlier in c. Text is trimmed. The second return value reports
// whether anything was changed.
func Sanitize(c Collection) (Collection, bool) {
	if c == nil {
		return nil, false
	}
	out := make(Collection, 0, len(c))
	seen := make(map[int64]struct{}, len(c))
	changed := false
	for _, t := range c {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			changed = true
			continue
		}
		if t.ID <= 0 || t.ID > MaxTaskID {
			changed = true
			continue
		}
		if _, dup := seen[t.ID]; dup {
			changed = true
			continue
		}
		if text != t.Text {
			t.Text = text
			changed = true
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out, changed
}
