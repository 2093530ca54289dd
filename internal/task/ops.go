package task

import "strings"

// Each transition returns a new collection and never modifies its input.
// Transitions that have nothing to do return the input unchanged.

// Add prepends a new open task with the trimmed text. Blank text is ignored.
func Add(c Collection, text string, next IDFunc) Collection {
	text = strings.TrimSpace(text)
	if text == "" {
		return c
	}
	out := make(Collection, 0, len(c)+1)
	out = append(out, Task{ID: nextID(c, next), Text: text})
	return append(out, c...)
}

// Edit replaces the text of the task with the given id. Blank text and
// unknown ids are ignored.
func Edit(c Collection, id int64, text string) Collection {
	text = strings.TrimSpace(text)
	if text == "" {
		return c
	}
	i := c.Index(id)
	if i < 0 {
		return c
	}
	out := c.Clone()
	out[i] = Task{ID: id, Text: text, Completed: c[i].Completed}
	return out
}

// Toggle flips the completion flag of the task with the given id.
func Toggle(c Collection, id int64) Collection {
	i := c.Index(id)
	if i < 0 {
		return c
	}
	out := c.Clone()
	out[i] = Task{ID: id, Text: c[i].Text, Completed: !c[i].Completed}
	return out
}

// Delete removes the task with the given id.
func Delete(c Collection, id int64) Collection {
	i := c.Index(id)
	if i < 0 {
		return c
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...)
}

// DeleteCompleted removes every completed task.
func DeleteCompleted(c Collection) Collection {
	out := make(Collection, 0, len(c))
	for _, t := range c {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// DeleteAll returns an empty collection.
func DeleteAll(Collection) Collection {
	return Collection{}
}
