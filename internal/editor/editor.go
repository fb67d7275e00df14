package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

var (
	ErrMissingRequired = errors.New("at least name and date are required")
	ErrNegativeFee     = errors.New("fee must not be negative")
	ErrDateInPast      = errors.New("date is before today")
)

// Messages shown to the practitioner.
const (
	MissingRequiredMessage = "Lütfen en azından isim ve tarih giriniz."
	createdMessageFormat   = "%s için seans oluşturuldu!"
)

// Input is the content of the new-session form at submission time.
type Input struct {
	ClientName string
	Title      string
	Date       models.Date
	Time       models.Clock
	Fee        decimal.Decimal
	Phone      string
	Email      string
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator replaces the uuid-based id source.
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) { e.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(e *Editor) { e.now = fn }
}

// WithMinDateEnforced rejects dates before today instead of treating the
// minimum as a hint.
func WithMinDateEnforced(enforce bool) Option {
	return func(e *Editor) { e.enforceMinDate = enforce }
}

// Editor validates new sessions and appends them to the store.
type Editor struct {
	store          *store.Store
	newID          func() string
	now            func() time.Time
	enforceMinDate bool
	logger         *slog.Logger
}

// New creates an editor writing into st.
func New(st *store.Store, logger *slog.Logger, opts ...Option) *Editor {
	e := &Editor{
		store:  st,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MinDate is the earliest date the form offers.
func (e *Editor) MinDate() models.Date {
	return models.DateOf(e.now())
}

// Today is the form's default date and time.
func (e *Editor) Today() (models.Date, models.Clock) {
	now := e.now()
	return models.DateOf(now), models.ClockOf(now)
}

// Submit validates in and, when it is acceptable, appends a new session.
// On error the store is left untouched.
func (e *Editor) Submit(in Input) (*models.Session, error) {
	name := clean(in.ClientName)
	if name == "" || in.Date.IsZero() {
		e.logger.Debug("session rejected", "reason", "missing required fields")
		return nil, ErrMissingRequired
	}
	if in.Fee.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeFee, in.Fee)
	}
	if e.enforceMinDate && in.Date.Compare(e.MinDate()) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDateInPast, in.Date)
	}

	sess := &models.Session{
		ID:         e.newID(),
		ClientName: name,
		Title:      clean(in.Title),
		Date:       in.Date,
		Time:       in.Time,
		Fee:        in.Fee,
		Phone:      clean(in.Phone),
		Email:      clean(in.Email),
	}
	e.store.Append(sess)

	e.logger.Info("session created", "session_id", sess.ID, "client", sess.ClientName, "date", sess.Date.String())
	return sess, nil
}

// Acknowledgement is the confirmation shown after a successful submission.
func Acknowledgement(sess *models.Session) string {
	return fmt.Sprintf(createdMessageFormat, sess.ClientName)
}

// clean trims whitespace and composes characters so that text typed on
// different terminals compares equal.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
