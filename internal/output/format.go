// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ltask/internal/task"
)

const (
	// NoTasks is printed when a projection is empty.
	NoTasks = "no tasks found"

	// Separator frames the header of the shell view.
	Separator = "------------"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces,
// completion box, text). Open tasks show "[ ]".
func FormatTask(w io.Writer, num int, t task.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, normalizeText(t.Text))
}

// FormatTasks writes every task in view, numbering each by its position in
// all. Numbers therefore stay valid as task references whatever filter
// produced view. Prints NoTasks when view is empty, unless quiet.
func FormatTasks(w io.Writer, all, view task.Collection, quiet bool) {
	if len(view) == 0 {
		if !quiet {
			fmt.Fprintln(w, NoTasks)
		}
		return
	}
	for _, t := range view {
		FormatTask(w, all.Index(t.ID)+1, t)
	}
}

// FormatHeader formats the view header: search query and active tab.
func FormatHeader(w io.Writer, query, tab string) {
	fmt.Fprintln(w, Separator)
	if query != "" {
		fmt.Fprintf(w, "%s (search: %q)\n", tab, query)
	} else {
		fmt.Fprintln(w, tab)
	}
	fmt.Fprintln(w, Separator)
}

// FormatSummary formats the open/done counts of c.
func FormatSummary(w io.Writer, c task.Collection) {
	done := 0
	for _, t := range c {
		if t.Completed {
			done++
		}
	}
	fmt.Fprintf(w, "%d open, %d done\n", len(c)-done, done)
}

// normalizeText normalizes task text for single-line display.
// Newlines are replaced with spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
