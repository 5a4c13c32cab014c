package state

import (
	"fmt"

	"github.com/nibzard/ticklist/internal/todo"
)

// AddTask appends a new medium-priority task. Blank text is ignored.
func (s *Store) AddTask(text string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := todo.ValidText(text); err != nil {
		return s.snapshot()
	}

	now := s.now()
	task := todo.Task{
		ID:       s.nextID(),
		Text:     text,
		Priority: todo.PriorityMedium,
		Date:     now.Format(s.dateLayout),
	}
	s.tasks = append(s.tasks, task)
	s.logger.Debug("task added", "id", task.ID)
	s.notify("Task added successfully!", KindSuccess)
	s.persist()
	return s.snapshot()
}

// DeleteTask removes the task with id. Unknown ids are ignored.
func (s *Store) DeleteTask(id int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return s.snapshot()
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.clearEditIfGone()
	s.logger.Debug("task deleted", "id", id)
	s.notify("Task deleted!", KindWarning)
	s.persist()
	return s.snapshot()
}

// ToggleComplete flips the completion flag of the task with id.
func (s *Store) ToggleComplete(id int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return s.snapshot()
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	word := "incomplete"
	if s.tasks[i].Completed {
		word = "complete"
	}
	s.logger.Debug("task toggled", "id", id, "completed", s.tasks[i].Completed)
	s.notify(fmt.Sprintf("Task marked as %s!", word), KindSuccess)
	s.persist()
	return s.snapshot()
}

// ChangePriority sets the priority of the task with id.
// Unknown ids and invalid priorities are ignored.
func (s *Store) ChangePriority(id int64, p todo.Priority) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 || !p.Valid() {
		return s.snapshot()
	}
	s.tasks[i].Priority = p
	s.logger.Debug("priority changed", "id", id, "priority", p)
	s.notify(fmt.Sprintf("Priority changed to %s!", p), KindSuccess)
	s.persist()
	return s.snapshot()
}

// StartEdit puts the task with id in edit mode with a buffer seeded from
// currentText. An edit already in progress is dropped without saving.
func (s *Store) StartEdit(id int64, currentText string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(id) < 0 {
		return s.snapshot()
	}
	s.editing, s.editingID, s.editText = true, id, currentText
	s.persist()
	return s.snapshot()
}

// SetEditText replaces the edit buffer. It does nothing outside edit mode.
func (s *Store) SetEditText(text string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing {
		s.editText = text
	}
	return s.snapshot()
}

// SaveEdit writes the edit buffer to the task with id and leaves edit mode.
// A blank buffer keeps edit mode open and changes nothing.
func (s *Store) SaveEdit(id int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing {
		return s.snapshot()
	}
	if err := todo.ValidText(s.editText); err != nil {
		return s.snapshot()
	}

	i := s.index(id)
	if i >= 0 {
		s.tasks[i].Text = s.editText
	}
	s.editing, s.editingID, s.editText = false, 0, ""
	if i >= 0 {
		s.logger.Debug("task updated", "id", id)
		s.notify("Task updated!", KindSuccess)
	}
	s.persist()
	return s.snapshot()
}

// CancelEdit leaves edit mode without changing any task.
func (s *Store) CancelEdit() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing {
		return s.snapshot()
	}
	s.editing, s.editingID, s.editText = false, 0, ""
	s.persist()
	return s.snapshot()
}

// ClearCompleted removes every completed task.
func (s *Store) ClearCompleted() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	s.clearEditIfGone()
	s.logger.Debug("completed cleared", "removed", removed)
	s.notify("Completed tasks cleared!", KindWarning)
	s.persist()
	return s.snapshot()
}

// SetFilter changes which tasks the view shows. Invalid modes are ignored.
func (s *Store) SetFilter(f todo.Filter) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !f.Valid() {
		return s.snapshot()
	}
	s.filter = f
	s.persist()
	return s.snapshot()
}

// ToggleDarkMode flips the theme flag.
func (s *Store) ToggleDarkMode() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
	s.persist()
	return s.snapshot()
}

// SetDarkMode sets the theme flag.
func (s *Store) SetDarkMode(dark bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = dark
	s.persist()
	return s.snapshot()
}

// ClearNotification removes the current notification if its token matches.
// Tokens from replaced notifications are ignored.
func (s *Store) ClearNotification(token uint64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notice != nil && s.notice.Token == token {
		s.notice = nil
	}
	return s.snapshot()
}
