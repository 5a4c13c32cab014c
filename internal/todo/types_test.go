package todo

import (
	"errors"
	"strings"
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "Buy milk", Priority: PriorityMedium, Date: "1/2/2024"},
		{ID: 2, Text: "Walk dog", Completed: true, Priority: PriorityHigh, Date: "1/2/2024"},
		{ID: 3, Text: "File taxes", Priority: PriorityLow, Date: "1/3/2024"},
		{ID: 4, Text: "Call mom", Completed: true, Priority: PriorityMedium, Date: "1/4/2024"},
	}
}

func TestFilterApply(t *testing.T) {
	tasks := sampleTasks()

	for _, f := range Filters() {
		t.Run(string(f), func(t *testing.T) {
			got := Apply(tasks, f)
			included := make(map[int64]bool)
			for _, task := range got {
				if !f.Match(task) {
					t.Errorf("task %d does not satisfy %s", task.ID, f)
				}
				included[task.ID] = true
			}
			for _, task := range tasks {
				if f.Match(task) && !included[task.ID] {
					t.Errorf("task %d satisfies %s but was excluded", task.ID, f)
				}
			}
		})
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	got := Apply(sampleTasks(), FilterActive)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("Apply(active): got %+v, want ids [1 3]", got)
	}
}

func TestCounts(t *testing.T) {
	remaining, completed := Counts(sampleTasks())
	if remaining != 2 || completed != 2 {
		t.Errorf("Counts: got (%d, %d), want (2, 2)", remaining, completed)
	}
	remaining, completed = Counts(nil)
	if remaining != 0 || completed != 0 {
		t.Errorf("Counts(nil): got (%d, %d), want (0, 0)", remaining, completed)
	}
}

func TestIndex(t *testing.T) {
	tasks := sampleTasks()
	if got := Index(tasks, 3); got != 2 {
		t.Errorf("Index(3): got %d, want 2", got)
	}
	if got := Index(tasks, 99); got != -1 {
		t.Errorf("Index(99): got %d, want -1", got)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{" Medium ", PriorityMedium, false},
		{"LOW", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriority(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPriorityNextCycles(t *testing.T) {
	p := PriorityHigh
	for i := 0; i < 3; i++ {
		p = p.Next()
	}
	if p != PriorityHigh {
		t.Errorf("three Next calls: got %q, want high", p)
	}
	if Priority("bogus").Next() != PriorityHigh {
		t.Errorf("unknown priority should cycle to high")
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter("Completed"); err != nil || f != FilterCompleted {
		t.Errorf("ParseFilter(Completed): got (%q, %v)", f, err)
	}
	if _, err := ParseFilter("done"); err == nil {
		t.Errorf("ParseFilter(done): expected error")
	}
	if FilterCompleted.Next() != FilterAll {
		t.Errorf("completed.Next: got %q, want all", FilterCompleted.Next())
	}
}

func TestValidText(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n"} {
		if err := ValidText(text); !errors.Is(err, ErrEmptyText) {
			t.Errorf("ValidText(%q): got %v, want ErrEmptyText", text, err)
		}
	}
	if err := ValidText(" x "); err != nil {
		t.Errorf("ValidText(x): got %v, want nil", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tasks := sampleTasks()
	data, err := Encode(tasks)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(tasks) {
		t.Fatalf("Decode: got %d tasks, want %d", len(got), len(tasks))
	}
	for i := range tasks {
		if got[i] != tasks[i] {
			t.Errorf("task %d: got %+v, want %+v", i, got[i], tasks[i])
		}
	}
}

func TestEncodeNil(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	if data != "[]" {
		t.Errorf("Encode(nil): got %q, want []", data)
	}
}

func TestEncodeFieldNames(t *testing.T) {
	data, err := Encode([]Task{{ID: 1718000000000, Text: "a", Priority: PriorityLow, Date: "6/10/2024"}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `[{"id":1718000000000,"text":"a","completed":false,"priority":"low","date":"6/10/2024"}]`
	if data != want {
		t.Errorf("Encode:\n got %s\nwant %s", data, want)
	}
}

func TestDecodeDefaultsAndDuplicates(t *testing.T) {
	data := `[{"id":1,"text":"a"},{"id":1,"text":"dup"},{"id":2,"text":"b","priority":"high"}]`
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Decode: got %d tasks, want 2", len(got))
	}
	if got[0].Text != "a" || got[0].Priority != PriorityMedium {
		t.Errorf("first task: got %+v", got[0])
	}
	if got[1].Priority != PriorityHigh {
		t.Errorf("second task priority: got %q, want high", got[1].Priority)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantPath string
	}{
		{"empty", "", ""},
		{"not json", "{oops", ""},
		{"object", `{"id":1}`, ""},
		{"null", "null", ""},
		{"bad priority", `[{"id":1,"text":"a","priority":"urgent"}]`, "[0].priority"},
		{"missing text", `[{"id":1}]`, "[0]"},
		{"string id", `[{"id":"1","text":"a"}]`, "[0].id"},
		{"fractional id", `[{"id":1.5,"text":"a"}]`, "[0].id"},
		{"trailing data", `[] []`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatalf("Decode(%q): expected error", tt.data)
			}
			if tt.wantPath == "" {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !strings.HasPrefix(ve.Path, tt.wantPath) {
				t.Errorf("path: got %q, want prefix %q", ve.Path, tt.wantPath)
			}
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/0/priority", "[0].priority"},
		{"#/3/text", "[3].text"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		if got := jsonPointerToPath(tt.in); got != tt.want {
			t.Errorf("jsonPointerToPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
