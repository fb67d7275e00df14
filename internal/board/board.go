// Package board presents stored sessions in chronological order and applies
// payment and note edits back to the store as they happen.
package board

import (
	"log/slog"
	"sort"

	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

// EmptyNotice is shown when there is nothing to list.
const EmptyNotice = "Henüz planlanmış bir seans yok."

// FieldState is the in-progress value of a session's editable controls.
type FieldState struct {
	Paid  bool
	Notes string
}

// Board is the chronological list/detail view over a store.
type Board struct {
	store    *store.Store
	template string
	logger   *slog.Logger

	// fields maps session id to the last known value of its paid toggle and
	// notes area. Entries are refreshed from the store on every read.
	fields map[string]FieldState
}

// New creates a board reading from st. An empty template selects
// DefaultReminderTemplate.
func New(st *store.Store, template string, logger *slog.Logger) *Board {
	if template == "" {
		template = DefaultReminderTemplate
	}
	return &Board{
		store:    st,
		template: template,
		logger:   logger,
		fields:   make(map[string]FieldState),
	}
}

// Empty reports whether there is anything to show.
func (b *Board) Empty() bool {
	return b.store.Len() == 0
}

// Sessions returns every stored session ordered by date then time. Sessions
// with equal date and time keep their insertion order.
func (b *Board) Sessions() []*models.Session {
	sessions := b.store.All()
	Sort(sessions)
	return sessions
}

// Session returns one stored session by id.
func (b *Board) Session(id string) (*models.Session, error) {
	return b.store.Get(id)
}

// Sort orders sessions by date then time, stably.
func Sort(sessions []*models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Before(sessions[j])
	})
}

// Field returns the control state for a session, taken from the stored
// record so edits made elsewhere are never masked.
func (b *Board) Field(sess *models.Session) FieldState {
	st := FieldState{Paid: sess.Paid, Notes: sess.Notes}
	b.fields[sess.ID] = st
	return st
}

// SetPaid applies the toggle's new value immediately.
func (b *Board) SetPaid(id string, paid bool) error {
	if err := b.store.SetPaid(id, paid); err != nil {
		return err
	}
	st := b.fields[id]
	st.Paid = paid
	b.fields[id] = st
	b.logger.Debug("session paid updated", "session_id", id, "paid", paid)
	return nil
}

// TogglePaid flips the paid control of a session and returns the new value.
func (b *Board) TogglePaid(id string) (bool, error) {
	sess, err := b.store.Get(id)
	if err != nil {
		return false, err
	}
	paid := !b.Field(sess).Paid
	return paid, b.SetPaid(id, paid)
}

// SetNotes applies the notes area's current text immediately.
func (b *Board) SetNotes(id, notes string) error {
	if err := b.store.SetNotes(id, notes); err != nil {
		return err
	}
	st := b.fields[id]
	st.Notes = notes
	b.fields[id] = st
	b.logger.Debug("session notes updated", "session_id", id)
	return nil
}

// Message returns the reminder text for a session.
func (b *Board) Message(sess *models.Session) string {
	return ReminderMessage(b.template, sess)
}

// Link returns the reminder deep link for a session.
func (b *Board) Link(sess *models.Session) string {
	return BuildReminderLink(sess.Phone, b.Message(sess))
}

// Entries returns the sorted sessions with their headings and reminder links.
func (b *Board) Entries() []models.BoardEntry {
	sessions := b.Sessions()
	entries := make([]models.BoardEntry, 0, len(sessions))
	for _, sess := range sessions {
		entries = append(entries, b.Entry(sess))
	}
	return entries
}

// Entry decorates one session for display.
func (b *Board) Entry(sess *models.Session) models.BoardEntry {
	return models.BoardEntry{
		Session:      sess,
		Heading:      sess.Heading(),
		ReminderLink: b.Link(sess),
	}
}
