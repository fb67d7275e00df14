package models

import (
	"github.com/shopspring/decimal"
)

// Session is one scheduled appointment between the practitioner and a client.
type Session struct {
	ID         string          `json:"id"`
	ClientName string          `json:"clientName"`
	Title      string          `json:"sessionTitle"`
	Date       Date            `json:"date"`
	Time       Clock           `json:"time"`
	Fee        decimal.Decimal `json:"fee"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"` // stored for later use, never read
	Notes      string          `json:"notes"`
	Completed  bool            `json:"completed"` // defaulted, no transitions defined
	Paid       bool            `json:"paid"`
}

// Before reports whether s is scheduled strictly before o, comparing date then time.
func (s *Session) Before(o *Session) bool {
	if c := s.Date.Compare(o.Date); c != 0 {
		return c < 0
	}
	return s.Time.Compare(o.Time) < 0
}

// Heading is the one-line summary shown on a collapsed board panel.
func (s *Session) Heading() string {
	return s.Date.String() + " - " + s.Time.String() + " | " + s.ClientName + " (" + s.Title + ")"
}
