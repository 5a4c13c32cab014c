package cmd

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/todo"
)

// withStore opens the store, runs fn, and reports any failed write.
func (c *cli) withStore(fn func(st *state.Store) error) error {
	st, closeStore, err := c.openStore(c.stderrLogger())
	if err != nil {
		return err
	}
	defer closeStore()

	if err := fn(st); err != nil {
		return err
	}
	if err := st.Err(); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// lsCommand prints tasks matching a filter.
func (c *cli) lsCommand(args []string) error {
	fs := flag.NewFlagSet("ticklist ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	filterName := fs.String("filter", "", "Filter tasks (all|active|completed), default: saved filter")
	asJSON := fs.Bool("json", false, "Print tasks as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 1 && *filterName == "" {
		*filterName = fs.Arg(0)
	} else if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return c.withStore(func(st *state.Store) error {
		snap := st.Snapshot()
		filter := snap.Filter
		if *filterName != "" {
			f, err := todo.ParseFilter(*filterName)
			if err != nil {
				return err
			}
			filter = f
		}
		tasks := todo.Apply(snap.Tasks, filter)

		if *asJSON {
			data, err := todo.Encode(tasks)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, data)
			return nil
		}

		printTaskList(c.stdout, tasks)
		remaining, completed := snap.Counts()
		fmt.Fprintf(c.stdout, "\n%d tasks left, %d completed (%s)\n", remaining, completed, filter.Label())
		return nil
	})
}

// addCommand adds a task from the remaining arguments.
func (c *cli) addCommand(args []string) error {
	fs := flag.NewFlagSet("ticklist add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	priorityName := fs.String("priority", "", "Priority (high|medium|low)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	if err := todo.ValidText(text); err != nil {
		return err
	}
	var priority todo.Priority
	if *priorityName != "" {
		p, err := todo.ParsePriority(*priorityName)
		if err != nil {
			return err
		}
		priority = p
	}

	return c.withStore(func(st *state.Store) error {
		snap := st.AddTask(text)
		task := snap.Tasks[len(snap.Tasks)-1]
		if priority != "" && priority != task.Priority {
			snap = st.ChangePriority(task.ID, priority)
			task = snap.Tasks[len(snap.Tasks)-1]
		}
		fmt.Fprintf(c.stdout, "Added %d: %s (%s)\n", task.ID, task.Text, task.Priority)
		return nil
	})
}

// doneCommand sets a task's completion state.
func (c *cli) doneCommand(args []string, completed bool) error {
	id, err := parseIDArg(args, 1)
	if err != nil {
		return err
	}
	return c.withStore(func(st *state.Store) error {
		task, err := findTask(st.Snapshot(), id)
		if err != nil {
			return err
		}
		if task.Completed != completed {
			st.ToggleComplete(id)
		}
		word := "incomplete"
		if completed {
			word = "complete"
		}
		fmt.Fprintf(c.stdout, "%d marked %s: %s\n", id, word, task.Text)
		return nil
	})
}

// rmCommand deletes a task.
func (c *cli) rmCommand(args []string) error {
	id, err := parseIDArg(args, 1)
	if err != nil {
		return err
	}
	return c.withStore(func(st *state.Store) error {
		task, err := findTask(st.Snapshot(), id)
		if err != nil {
			return err
		}
		st.DeleteTask(id)
		fmt.Fprintf(c.stdout, "Deleted %d: %s\n", id, task.Text)
		return nil
	})
}

// editCommand replaces a task's text through the edit flow.
func (c *cli) editCommand(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: ticklist edit ID TEXT")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	if err := todo.ValidText(text); err != nil {
		return err
	}

	return c.withStore(func(st *state.Store) error {
		task, err := findTask(st.Snapshot(), id)
		if err != nil {
			return err
		}
		st.StartEdit(id, task.Text)
		st.SetEditText(text)
		st.SaveEdit(id)
		fmt.Fprintf(c.stdout, "Updated %d: %s\n", id, text)
		return nil
	})
}

// priorityCommand sets a task's priority.
func (c *cli) priorityCommand(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: ticklist priority ID high|medium|low")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	p, err := todo.ParsePriority(args[1])
	if err != nil {
		return err
	}
	return c.withStore(func(st *state.Store) error {
		if _, err := findTask(st.Snapshot(), id); err != nil {
			return err
		}
		st.ChangePriority(id, p)
		fmt.Fprintf(c.stdout, "%d priority set to %s\n", id, p)
		return nil
	})
}

// clearCommand removes completed tasks.
func (c *cli) clearCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return c.withStore(func(st *state.Store) error {
		before := len(st.Snapshot().Tasks)
		after := len(st.ClearCompleted().Tasks)
		fmt.Fprintf(c.stdout, "Cleared %d completed tasks\n", before-after)
		return nil
	})
}

// themeCommand shows or sets the persisted dark-mode flag.
func (c *cli) themeCommand(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: ticklist theme [light|dark|toggle]")
	}
	return c.withStore(func(st *state.Store) error {
		snap := st.Snapshot()
		if len(args) == 1 {
			switch args[0] {
			case "light":
				snap = st.SetDarkMode(false)
			case "dark":
				snap = st.SetDarkMode(true)
			case "toggle":
				snap = st.ToggleDarkMode()
			default:
				return fmt.Errorf("invalid theme %q, must be one of: light, dark, toggle", args[0])
			}
		}
		name := "light"
		if snap.DarkMode {
			name = "dark"
		}
		fmt.Fprintf(c.stdout, "Theme: %s\n", name)
		return nil
	})
}

func parseIDArg(args []string, n int) (int64, error) {
	if len(args) != n {
		return 0, fmt.Errorf("expected a task id")
	}
	return parseID(args[0])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func findTask(snap state.Snapshot, id int64) (todo.Task, error) {
	i := todo.Index(snap.Tasks, id)
	if i < 0 {
		return todo.Task{}, fmt.Errorf("no task with id %d", id)
	}
	return snap.Tasks[i], nil
}

// printTaskList prints one line per task.
func printTaskList(w io.Writer, tasks []todo.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}
	for _, t := range tasks {
		printTask(w, t)
	}
}

func printTask(w io.Writer, t todo.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%s %d  %-6s  %-10s  %s\n", box, t.ID, t.Priority, t.Date, t.Text)
}
