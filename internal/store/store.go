// Package store holds the session records for the lifetime of the process.
// Nothing is written to disk; everything is gone when the process exits.
package store

import (
	"errors"

	"github.com/iammorganparry/seans/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Store is the single owner of all session records. It is not safe for
// concurrent use; callers handle one interaction at a time.
type Store struct {
	sessions []*models.Session
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Append inserts a fully populated record. It never fails.
func (s *Store) Append(sess *models.Session) {
	s.sessions = append(s.sessions, sess)
}

// All returns handles to every record in insertion order. Field changes made
// through SetPaid or SetNotes are visible through previously returned handles.
func (s *Store) All() []*models.Session {
	out := make([]*models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.sessions)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (*models.Session, error) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return nil, ErrNotFound
}

// SetPaid overwrites the paid flag of a record.
func (s *Store) SetPaid(id string, paid bool) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}
	sess.Paid = paid
	return nil
}

// SetNotes overwrites the notes of a record. Last write wins.
func (s *Store) SetNotes(id, notes string) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}
	sess.Notes = notes
	return nil
}
