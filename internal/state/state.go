// Package state owns the task collection and UI flags, applies mutations,
// and writes the result to a key-value store after every change.
package state

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/ticklist/internal/kv"
	"github.com/nibzard/ticklist/internal/todo"
)

// Keys used in the key-value store.
const (
	KeyTodos    = "todos"
	KeyDarkMode = "darkMode"
	KeyFilter   = "filter"
)

// NotificationTTL is how long a notification stays visible by default.
const NotificationTTL = 3 * time.Second

// DefaultDateLayout renders creation dates like 6/10/2024.
const DefaultDateLayout = "1/2/2006"

// Kind styles a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification is a transient message shown after a mutation.
// Token identifies it so a delayed clear only removes the notification it
// was scheduled for.
type Notification struct {
	Message string
	Kind    Kind
	Token   uint64
}

// Snapshot is an immutable copy of the store state.
type Snapshot struct {
	Tasks        []todo.Task
	Filter       todo.Filter
	DarkMode     bool
	Editing      bool
	EditingID    int64
	EditText     string
	Notification *Notification
}

// Filtered returns the tasks visible under the snapshot's filter.
func (s Snapshot) Filtered() []todo.Task {
	return todo.Apply(s.Tasks, s.Filter)
}

// Counts returns the number of remaining and completed tasks.
func (s Snapshot) Counts() (remaining, completed int) {
	return todo.Counts(s.Tasks)
}

// IsEditing reports whether the task with id is in edit mode.
func (s Snapshot) IsEditing(id int64) bool {
	return s.Editing && s.EditingID == id
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for ids and dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDateLayout sets the Go time layout for task creation dates.
func WithDateLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

// WithDarkModeDefault sets the theme used when none has been persisted.
func WithDarkModeDefault(dark bool) Option {
	return func(s *Store) {
		s.defaultDark = dark
	}
}

// Store holds the task collection and UI flags.
type Store struct {
	mu          sync.Mutex
	kv          kv.Store
	logger      *log.Logger
	now         func() time.Time
	dateLayout  string
	defaultDark bool

	tasks     []todo.Task
	filter    todo.Filter
	darkMode  bool
	editing   bool
	editingID int64
	editText  string
	notice    *Notification
	token     uint64
	lastID    int64
	err       error
}

// New creates a Store writing to store. Call Load to read persisted state.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:         store,
		logger:     log.New(io.Discard),
		now:        time.Now,
		dateLayout: DefaultDateLayout,
		filter:     todo.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.darkMode = s.defaultDark
	return s
}

// Load replaces the in-memory state with the persisted one.
// Missing or malformed values fall back to defaults.
func (s *Store) Load() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.filter = todo.FilterAll
	s.darkMode = s.defaultDark
	s.editing, s.editingID, s.editText = false, 0, ""
	s.notice = nil

	if raw, ok := s.get(KeyTodos); ok {
		tasks, err := todo.Decode(raw)
		if err != nil {
			s.logger.Warn("ignoring stored tasks", "err", err)
		} else {
			s.tasks = tasks
		}
	}
	if raw, ok := s.get(KeyDarkMode); ok {
		dark, err := strconv.ParseBool(raw)
		if err != nil {
			s.logger.Warn("ignoring stored theme", "value", raw)
		} else {
			s.darkMode = dark
		}
	}
	if raw, ok := s.get(KeyFilter); ok {
		f, err := todo.ParseFilter(raw)
		if err != nil {
			s.logger.Warn("ignoring stored filter", "value", raw)
		} else {
			s.filter = f
		}
	}

	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}

	s.logger.Info("state loaded", "tasks", len(s.tasks), "filter", s.filter, "dark", s.darkMode)
	return s.snapshot()
}

func (s *Store) get(key string) (string, bool) {
	v, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("read store", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Err returns the last persistence error, or nil if the last write succeeded.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store) snapshot() Snapshot {
	snap := Snapshot{
		Tasks:     slices.Clone(s.tasks),
		Filter:    s.filter,
		DarkMode:  s.darkMode,
		Editing:   s.editing,
		EditingID: s.editingID,
		EditText:  s.editText,
	}
	if snap.Tasks == nil {
		snap.Tasks = []todo.Task{}
	}
	if s.notice != nil {
		n := *s.notice
		snap.Notification = &n
	}
	return snap
}

// nextID returns a time-derived id, strictly greater than any id issued or
// loaded before.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) notify(message string, kind Kind) {
	s.token++
	s.notice = &Notification{Message: message, Kind: kind, Token: s.token}
}

// persist writes the full task collection, theme, and filter.
func (s *Store) persist() {
	data, err := todo.Encode(s.tasks)
	if err == nil {
		err = s.kv.SetMany(map[string]string{
			KeyTodos:    data,
			KeyDarkMode: strconv.FormatBool(s.darkMode),
			KeyFilter:   string(s.filter),
		})
	}
	if err != nil {
		s.err = err
		s.logger.Error("save state", "err", err)
		s.notify(fmt.Sprintf("Could not save tasks: %v", err), KindError)
		return
	}
	s.err = nil
}

func (s *Store) index(id int64) int {
	return todo.Index(s.tasks, id)
}

// clearEditIfGone leaves edit mode when the edited task no longer exists.
func (s *Store) clearEditIfGone() {
	if s.editing && s.index(s.editingID) < 0 {
		s.editing, s.editingID, s.editText = false, 0, ""
	}
}
