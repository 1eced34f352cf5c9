package manage

import (
	"context"
	"strconv"
)

// State is the list view's observable state.
type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

// ModalMode is the create/edit dialog state.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
)

const defaultMaxScore = "10"

// Draft is the in-progress form. MaxScore stays a string until submit so a
// non-numeric entry can be rejected explicitly.
type Draft struct {
	Name     string
	MaxScore string
}

// Notifier receives the transient success/error notifications the view
// shows as toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Manager holds the criteria list view state: the loaded list, the modal
// state machine, and the form draft. Every mutation talks to the server
// first and mirrors the response into local state.
type Manager struct {
	api    *Client
	notify Notifier

	eventID int64
	state   State
	errMsg  string
	list    []Criteria

	modal   ModalMode
	draft   Draft
	editing int64
}

// NewManager builds a manager around an API client.
func NewManager(api *Client, notify Notifier) *Manager {
	return &Manager{
		api:    api,
		notify: notify,
		state:  StateLoading,
		draft:  Draft{MaxScore: defaultMaxScore},
	}
}

// State returns the current list view state.
func (m *Manager) State() State { return m.state }

// ErrMessage returns the load error; only meaningful in StateError.
func (m *Manager) ErrMessage() string { return m.errMsg }

// List returns the loaded criteria.
func (m *Manager) List() []Criteria { return m.list }

// Empty reports a loaded list with no criteria, distinct from loading and
// error states.
func (m *Manager) Empty() bool { return m.state == StateReady && len(m.list) == 0 }

// Modal returns the dialog state.
func (m *Manager) Modal() ModalMode { return m.modal }

// Draft returns the in-progress form.
func (m *Manager) Draft() Draft { return m.draft }

// Load fetches the criteria set for an event.
func (m *Manager) Load(ctx context.Context, eventID int64) {
	m.eventID = eventID
	m.state = StateLoading
	m.errMsg = ""

	list, err := m.api.List(ctx, eventID)
	if err != nil {
		m.state = StateError
		m.errMsg = err.Error()
		return
	}
	if list == nil {
		list = []Criteria{}
	}
	m.state = StateReady
	m.list = list
}

// OpenCreate opens the dialog with a fresh draft.
func (m *Manager) OpenCreate() {
	m.modal = ModalCreate
	m.draft = Draft{MaxScore: defaultMaxScore}
	m.editing = 0
}

// OpenEdit opens the dialog prefilled from an existing record.
func (m *Manager) OpenEdit(c Criteria) {
	m.modal = ModalEdit
	m.editing = c.ID
	m.draft = Draft{Name: c.Name, MaxScore: strconv.Itoa(c.MaxScore)}
}

// Close dismisses the dialog. Closing always clears the draft.
func (m *Manager) Close() {
	m.modal = ModalClosed
	m.editing = 0
	m.draft = Draft{MaxScore: defaultMaxScore}
}

// SetName updates the draft name.
func (m *Manager) SetName(name string) { m.draft.Name = name }

// SetMaxScore updates the draft score field.
func (m *Manager) SetMaxScore(raw string) { m.draft.MaxScore = raw }

// Submit sends the draft: a create when the dialog was opened blank, an
// update when it was opened on an existing record.
func (m *Manager) Submit(ctx context.Context) {
	switch m.modal {
	case ModalCreate:
		m.submitCreate(ctx)
	case ModalEdit:
		m.submitUpdate(ctx)
	}
}

// submitCreate appends the server-assigned record on success. The draft is
// reset and the dialog closed on both outcomes.
func (m *Manager) submitCreate(ctx context.Context) {
	maxScore, perr := strconv.Atoi(m.draft.MaxScore)
	if perr != nil {
		m.notify.Error("Max score must be a whole number.")
		m.Close()
		return
	}

	res, err := m.api.Create(ctx, m.eventID, m.draft.Name, maxScore)
	if err != nil {
		m.notify.Error(err.Error())
		m.Close()
		return
	}

	m.list = append(m.list, res.Criteria)
	m.notify.Success(res.Message)
	m.Close()
}

// submitUpdate replaces the matching local record on success. On failure
// the list and the dialog stay as they were.
func (m *Manager) submitUpdate(ctx context.Context) {
	maxScore, perr := strconv.Atoi(m.draft.MaxScore)
	if perr != nil {
		m.notify.Error("Max score must be a whole number.")
		return
	}

	updated, err := m.api.Update(ctx, m.editing, m.draft.Name, maxScore)
	if err != nil {
		m.notify.Error("Failed to update criteria.")
		return
	}

	for i := range m.list {
		if m.list[i].ID == updated.ID {
			m.list[i].Name = updated.Name
			m.list[i].MaxScore = updated.MaxScore
		}
	}
	m.notify.Success("Criteria updated successfully!")
	m.Close()
}

// Delete removes a criteria. The request is issued even when the id is not
// in the local list; removal there is a no-op.
func (m *Manager) Delete(ctx context.Context, id int64) {
	if err := m.api.Delete(ctx, id); err != nil {
		m.notify.Error("Failed to delete criteria.")
		return
	}

	kept := m.list[:0]
	for _, c := range m.list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.list = kept
	m.notify.Success("Criteria deleted successfully!")
}
