package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/todo"
)

// chromeHeight is the number of screen lines outside the task list.
const chromeHeight = 15

const scrollFrame = 16 * time.Millisecond

type focusArea int

const (
	focusList focusArea = iota
	focusAdd
	focusEdit
)

type clearNoticeMsg struct {
	token uint64
}

type scrollMsg struct{}

// Model is the bubbletea model for the interactive task list.
type Model struct {
	store       *state.Store
	snap        state.Snapshot
	keys        keyMap
	help        help.Model
	input       textinput.Model
	edit        textinput.Model
	list        viewport.Model
	cursor      int
	focus       focusArea
	notifyDelay time.Duration
	lastToken   uint64
	ready       bool
	scrolling   bool
}

// NewModel builds a model over a loaded store. Notifications are cleared
// notifyDelay after they appear.
func NewModel(store *state.Store, notifyDelay time.Duration) *Model {
	if notifyDelay <= 0 {
		notifyDelay = state.NotificationTTL
	}

	input := textinput.New()
	input.Placeholder = "Add a new task..."
	input.Prompt = "+ "
	input.CharLimit = 500

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 500

	m := &Model{
		store:       store,
		keys:        defaultKeyMap(),
		help:        help.New(),
		input:       input,
		edit:        edit,
		list:        viewport.New(0, 0),
		notifyDelay: notifyDelay,
	}
	m.snap = store.Snapshot()
	if m.snap.Notification != nil {
		m.lastToken = m.snap.Notification.Token
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refreshList()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case clearNoticeMsg:
		m.snap = m.store.ClearNotification(msg.token)
		return nil
	case scrollMsg:
		return m.scrollStep()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		switch m.focus {
		case focusAdd:
			return m.updateAdd(msg)
		case focusEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusAdd:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	t, ok := m.selected()

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Focus):
		m.focus = focusAdd
		return m.input.Focus()
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.snap.Filtered())-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Toggle):
		if ok {
			return m.apply(m.store.ToggleComplete(t.ID))
		}
	case key.Matches(msg, k.Edit):
		if ok {
			return m.startEdit(t)
		}
	case key.Matches(msg, k.Delete):
		if ok {
			return m.apply(m.store.DeleteTask(t.ID))
		}
	case key.Matches(msg, k.CyclePriority):
		if ok {
			return m.apply(m.store.ChangePriority(t.ID, t.Priority.Next()))
		}
	case key.Matches(msg, k.High):
		if ok {
			return m.apply(m.store.ChangePriority(t.ID, todo.PriorityHigh))
		}
	case key.Matches(msg, k.Medium):
		if ok {
			return m.apply(m.store.ChangePriority(t.ID, todo.PriorityMedium))
		}
	case key.Matches(msg, k.Low):
		if ok {
			return m.apply(m.store.ChangePriority(t.ID, todo.PriorityLow))
		}
	case key.Matches(msg, k.CycleFilter):
		return m.setFilter(m.snap.Filter.Next())
	case key.Matches(msg, k.FilterAll):
		return m.setFilter(todo.FilterAll)
	case key.Matches(msg, k.FilterActive):
		return m.setFilter(todo.FilterActive)
	case key.Matches(msg, k.FilterDone):
		return m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, k.ClearCompleted):
		return m.apply(m.store.ClearCompleted())
	case key.Matches(msg, k.Theme):
		return m.apply(m.store.ToggleDarkMode())
	case key.Matches(msg, k.Top):
		return m.scrollToTop()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Submit):
		if m.snap.Editing {
			return m.saveEdit()
		}
	}
	return nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.snap.Editing {
			return m.saveEdit()
		}
		text := m.input.Value()
		cmd := m.apply(m.store.AddTask(text))
		if todo.ValidText(text) == nil {
			m.input.Reset()
		}
		return cmd
	case key.Matches(msg, m.keys.Cancel):
		m.input.Blur()
		m.focus = focusList
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.saveEdit()
	case key.Matches(msg, m.keys.Cancel):
		m.leaveEdit()
		return m.apply(m.store.CancelEdit())
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.snap = m.store.SetEditText(m.edit.Value())
	return cmd
}

func (m *Model) startEdit(t todo.Task) tea.Cmd {
	m.edit.SetValue(t.Text)
	m.edit.CursorEnd()
	m.focus = focusEdit
	m.input.Blur()
	return tea.Batch(m.apply(m.store.StartEdit(t.ID, t.Text)), m.edit.Focus())
}

func (m *Model) saveEdit() tea.Cmd {
	m.store.SetEditText(m.edit.Value())
	cmd := m.apply(m.store.SaveEdit(m.snap.EditingID))
	if !m.snap.Editing {
		m.leaveEdit()
	}
	return cmd
}

func (m *Model) leaveEdit() {
	m.edit.Blur()
	m.edit.Reset()
	if m.focus == focusEdit {
		m.focus = focusList
	}
}

func (m *Model) setFilter(f todo.Filter) tea.Cmd {
	m.cursor = 0
	m.list.GotoTop()
	return m.apply(m.store.SetFilter(f))
}

// apply adopts snap and schedules a clear for any new notification.
func (m *Model) apply(snap state.Snapshot) tea.Cmd {
	m.snap = snap
	if n := snap.Notification; n != nil && n.Token != m.lastToken {
		m.lastToken = n.Token
		token := n.Token
		return tea.Tick(m.notifyDelay, func(time.Time) tea.Msg {
			return clearNoticeMsg{token: token}
		})
	}
	return nil
}

func (m *Model) selected() (todo.Task, bool) {
	tasks := m.snap.Filtered()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) resize(width, height int) {
	listHeight := height - chromeHeight
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.Width = width
	m.list.Height = listHeight
	m.help.Width = width
	m.input.Width = width / 2
	m.ready = true
}

func (m *Model) scrollToTop() tea.Cmd {
	m.cursor = 0
	if m.list.YOffset == 0 {
		return nil
	}
	m.scrolling = true
	return scrollTick()
}

// scrollStep moves the list a fraction of the way to the top each frame.
func (m *Model) scrollStep() tea.Cmd {
	off := m.list.YOffset
	if off <= 0 {
		m.scrolling = false
		return nil
	}
	step := off / 3
	if step < 1 {
		step = 1
	}
	m.list.SetYOffset(off - step)
	if m.list.YOffset <= 0 {
		m.scrolling = false
		return nil
	}
	return scrollTick()
}

func scrollTick() tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollMsg{}
	})
}

// refreshList clamps the cursor, rebuilds the viewport content, and keeps
// the cursor row on screen.
func (m *Model) refreshList() {
	n := len(m.snap.Filtered())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.list.SetContent(RenderList(m.snap, m.viewState()))
	if m.scrolling || m.list.Height <= 0 {
		return
	}
	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	} else if m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m *Model) viewState() ViewState {
	v := ViewState{
		Cursor: m.cursor,
		Input:  m.input.View(),
		Help:   m.help.View(m.keys),
	}
	switch m.focus {
	case focusAdd:
		v.Cursor = -1
	case focusEdit:
		v.EditInput = m.edit.View()
	}
	return v
}

func (m *Model) View() string {
	v := m.viewState()
	if m.ready {
		v.List = m.list.View()
	}
	return Render(m.snap, v)
}
