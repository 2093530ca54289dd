// Package query derives read-only projections of a task collection.
package query

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"ltask/internal/task"
)

// Tab selects tasks by completion status.
type Tab string

const (
	All  Tab = "All"
	Done Tab = "Done"
	Todo Tab = "Todo"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{All, Done, Todo}

// ParseTab resolves a tab name case-insensitively.
func ParseTab(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	for _, t := range Tabs {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid tab: %s", s)
}

// FilterByText keeps tasks whose text contains query, ignoring case.
// An empty query keeps everything. Order is preserved.
func FilterByText(c task.Collection, query string) task.Collection {
	out := make(task.Collection, 0, len(c))
	if query == "" {
		return append(out, c...)
	}
	fold := cases.Fold()
	q := fold.String(query)
	for _, t := range c {
		if strings.Contains(fold.String(t.Text), q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByStatus keeps tasks matching tab. Unknown tabs behave as All.
func FilterByStatus(c task.Collection, tab Tab) task.Collection {
	out := make(task.Collection, 0, len(c))
	for _, t := range c {
		switch tab {
		case Done:
			if !t.Completed {
				continue
			}
		case Todo:
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Project applies the text filter and then the status filter.
func Project(c task.Collection, query string, tab Tab) task.Collection {
	return FilterByStatus(FilterByText(c, query), tab)
}
