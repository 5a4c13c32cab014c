package todo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyText is returned when task text is empty after trimming.
var ErrEmptyText = errors.New("task text is empty")

// Priority represents a task priority.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists all priorities from highest to lowest.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Next returns the following priority in the high, medium, low cycle.
func (p Priority) Next() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		names := make([]string, 0, len(Priorities()))
		for _, q := range Priorities() {
			names = append(names, string(q))
		}
		return "", fmt.Errorf("invalid priority %q, must be one of: %s", s, strings.Join(names, ", "))
	}
	return p, nil
}

// Filter selects which tasks are projected to the view.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists all filter modes in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// Valid reports whether f is a known filter mode.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Next returns the following filter in display order.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Label returns the display label for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether t belongs to the filter's projection.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter parses a filter mode name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid filter %q, must be one of: all, active, completed", s)
	}
	return f, nil
}

// Task represents a single entry in the task list.
type Task struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	Date      string   `json:"date"`
}

// Apply returns the tasks matching f, preserving order.
// The result never aliases tasks.
func Apply(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Counts returns the number of remaining and completed tasks.
func Counts(tasks []Task) (remaining, completed int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			remaining++
		}
	}
	return remaining, completed
}

// Index returns the position of the task with id, or -1 if absent.
func Index(tasks []Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// ValidText reports whether text is acceptable task text.
func ValidText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}
