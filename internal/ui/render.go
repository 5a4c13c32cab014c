package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/todo"
)

const (
	emptyListText = "No tasks found. Add one above!"
	sunIcon       = "☀"
	moonIcon      = "☾"
)

// ViewState carries the widget output and cursor position that Render
// draws around a state snapshot.
type ViewState struct {
	// Cursor indexes the filtered list. Negative means no row is selected.
	Cursor int
	// Input is the rendered add field.
	Input string
	// EditInput is the rendered inline edit field. Empty falls back to the
	// snapshot's edit buffer.
	EditInput string
	// List replaces the task list, typically with a scrolled viewport.
	// Empty renders every filtered row.
	List string
	Help string
}

// Render draws the full screen for snap. It has no side effects.
func Render(snap state.Snapshot, v ViewState) string {
	th := themeFor(snap.DarkMode)

	var b strings.Builder
	writeTitle(&b, th, snap.DarkMode)
	writeInput(&b, th, v.Input)
	writeFilters(&b, th, snap.Filter)
	if v.List != "" {
		b.WriteString(v.List)
		b.WriteString("\n")
	} else {
		b.WriteString(RenderList(snap, v))
	}
	b.WriteString("\n")
	writeCounts(&b, th, snap)
	writeNotification(&b, th, snap.Notification)
	writeFooter(&b, th, v.Help)
	return th.app.Render(b.String())
}

// RenderList draws the filtered task rows, one line per task, or the
// empty-state placeholder.
func RenderList(snap state.Snapshot, v ViewState) string {
	th := themeFor(snap.DarkMode)
	tasks := snap.Filtered()
	if len(tasks) == 0 {
		return "  " + th.muted.Render(emptyListText) + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		b.WriteString(formatRow(th, snap, v, t, i == v.Cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func writeTitle(b *strings.Builder, th theme, dark bool) {
	icon, hint := moonIcon, "dark mode"
	if dark {
		icon, hint = sunIcon, "light mode"
	}
	b.WriteString(th.title.Render("ticklist"))
	b.WriteString("  ")
	b.WriteString(th.action.Render(icon))
	b.WriteString(th.muted.Render(" t " + hint))
	b.WriteString("\n\n")
}

func writeInput(b *strings.Builder, th theme, input string) {
	if input == "" {
		input = th.muted.Render("Add a new task...")
	}
	b.WriteString(input)
	b.WriteString("  ")
	b.WriteString(th.action.Render("[enter] Add Task"))
	b.WriteString("\n\n")
}

func writeFilters(b *strings.Builder, th theme, active todo.Filter) {
	parts := make([]string, 0, len(todo.Filters()))
	for _, f := range todo.Filters() {
		style := th.filterOff
		if f == active {
			style = th.filterOn
		}
		parts = append(parts, style.Render(f.Label()))
	}
	b.WriteString(strings.Join(parts, th.muted.Render("|")))
	b.WriteString("\n\n")
}

func writeCounts(b *strings.Builder, th theme, snap state.Snapshot) {
	remaining, completed := snap.Counts()
	b.WriteString(th.text.Render(fmt.Sprintf("%d tasks left", remaining)))
	b.WriteString(th.muted.Render(" · "))
	b.WriteString(th.text.Render(fmt.Sprintf("%d completed", completed)))
	if completed > 0 {
		b.WriteString("  ")
		b.WriteString(th.action.Render("[c] Clear Completed"))
	}
	b.WriteString("\n")
}

func writeNotification(b *strings.Builder, th theme, n *state.Notification) {
	if n == nil {
		b.WriteString("\n")
		return
	}
	style, ok := th.notice[n.Kind]
	if !ok {
		style = th.notice[state.KindSuccess]
	}
	b.WriteString("\n")
	b.WriteString(style.Render(n.Message))
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder, th theme, help string) {
	b.WriteString("\n")
	b.WriteString(th.action.Render("↑ top"))
	b.WriteString(th.muted.Render(" [g]"))
	b.WriteString("\n")
	if help != "" {
		b.WriteString(help)
		b.WriteString("\n")
	}
}

func formatRow(th theme, snap state.Snapshot, v ViewState, t todo.Task, selected bool) string {
	marker := " "
	if selected {
		marker = th.cursor.Render("›")
	}

	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}

	var text, actions string
	if snap.IsEditing(t.ID) {
		text = v.EditInput
		if text == "" {
			text = th.text.Render(snap.EditText)
		}
		actions = th.action.Render("[enter] save [esc] cancel")
	} else {
		if t.Completed {
			text = th.done.Render(t.Text)
		} else {
			text = th.text.Render(t.Text)
		}
		actions = th.muted.Render("[e] edit [d] delete")
	}

	style, ok := th.priority[t.Priority]
	if !ok {
		style = th.muted
	}
	badge := style.Render(string(t.Priority))
	return fmt.Sprintf("%s %s %s  %s  %s  %s",
		marker, box, text, badge, th.muted.Render(t.Date), actions)
}
