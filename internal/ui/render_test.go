package ui

import (
	"strings"
	"testing"

	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/todo"
)

func sampleSnapshot() state.Snapshot {
	return state.Snapshot{
		Tasks: []todo.Task{
			{ID: 1, Text: "Buy milk", Priority: todo.PriorityMedium, Date: "6/10/2024"},
			{ID: 2, Text: "Walk dog", Completed: true, Priority: todo.PriorityHigh, Date: "6/11/2024"},
		},
		Filter: todo.FilterAll,
	}
}

func TestRenderEmptyList(t *testing.T) {
	snap := state.Snapshot{Tasks: []todo.Task{}, Filter: todo.FilterAll}
	out := Render(snap, ViewState{})

	if !strings.Contains(out, "No tasks found. Add one above!") {
		t.Errorf("missing empty placeholder:\n%s", out)
	}
	if !strings.Contains(out, "0 tasks left") || !strings.Contains(out, "0 completed") {
		t.Errorf("missing counts:\n%s", out)
	}
	if strings.Contains(out, "Clear Completed") {
		t.Errorf("clear action shown with nothing completed:\n%s", out)
	}
}

func TestRenderRows(t *testing.T) {
	out := Render(sampleSnapshot(), ViewState{Cursor: 0})

	for _, want := range []string{
		"[ ] Buy milk", "[x] Walk dog",
		"medium", "high", "6/10/2024", "6/11/2024",
		"1 tasks left", "1 completed", "Clear Completed",
		"All", "Active", "Completed", "↑ top",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, emptyListText) {
		t.Errorf("placeholder shown with tasks present")
	}
}

func TestRenderFilter(t *testing.T) {
	tests := []struct {
		filter todo.Filter
		show   []string
		hide   []string
	}{
		{todo.FilterAll, []string{"Buy milk", "Walk dog"}, nil},
		{todo.FilterActive, []string{"Buy milk"}, []string{"Walk dog"}},
		{todo.FilterCompleted, []string{"Walk dog"}, []string{"Buy milk"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			snap := sampleSnapshot()
			snap.Filter = tt.filter
			out := RenderList(snap, ViewState{Cursor: -1})
			for _, s := range tt.show {
				if !strings.Contains(out, s) {
					t.Errorf("missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.hide {
				if strings.Contains(out, s) {
					t.Errorf("unexpected %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderFilteredEmpty(t *testing.T) {
	snap := sampleSnapshot()
	snap.Tasks = snap.Tasks[:1]
	snap.Filter = todo.FilterCompleted

	out := RenderList(snap, ViewState{})
	if !strings.Contains(out, emptyListText) {
		t.Errorf("filtered-out list should show placeholder:\n%s", out)
	}
}

func TestRenderThemeIndicator(t *testing.T) {
	snap := sampleSnapshot()

	light := Render(snap, ViewState{})
	if !strings.Contains(light, moonIcon) || strings.Contains(light, sunIcon) {
		t.Errorf("light mode should offer the moon icon:\n%s", light)
	}

	snap.DarkMode = true
	dark := Render(snap, ViewState{})
	if !strings.Contains(dark, sunIcon) || strings.Contains(dark, moonIcon) {
		t.Errorf("dark mode should offer the sun icon:\n%s", dark)
	}
}

func TestRenderEditingRow(t *testing.T) {
	snap := sampleSnapshot()
	snap.Editing = true
	snap.EditingID = 1
	snap.EditText = "Buy oat milk"

	out := RenderList(snap, ViewState{Cursor: 0})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("rows: got %d, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Buy oat milk") || !strings.Contains(lines[0], "save") {
		t.Errorf("edit row: got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Walk dog") || !strings.Contains(lines[1], "edit") {
		t.Errorf("other row: got %q", lines[1])
	}
}

func TestRenderNotification(t *testing.T) {
	snap := sampleSnapshot()
	snap.Notification = &state.Notification{Message: "Task deleted!", Kind: state.KindWarning, Token: 3}

	out := Render(snap, ViewState{})
	if !strings.Contains(out, "Task deleted!") {
		t.Errorf("missing notification:\n%s", out)
	}
}

func TestRenderUsesProvidedList(t *testing.T) {
	out := Render(sampleSnapshot(), ViewState{List: "scrolled rows"})
	if !strings.Contains(out, "scrolled rows") {
		t.Errorf("list override ignored:\n%s", out)
	}
	if strings.Contains(out, "Buy milk") {
		t.Errorf("rows rendered despite list override:\n%s", out)
	}
}
