package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

// SessionHandler handles session-related HTTP requests.
type SessionHandler struct {
	editor *editor.Editor
	board  *board.Board
	logger *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(ed *editor.Editor, b *board.Board, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{editor: ed, board: b, logger: logger}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	fee := decimal.Zero
	if req.Fee != nil {
		fee = *req.Fee
	}

	sess, err := h.editor.Submit(editor.Input{
		ClientName: req.ClientName,
		Title:      req.Title,
		Date:       req.Date,
		Time:       req.Time,
		Fee:        fee,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, models.CreateSessionResponse{
		Session: sess,
		Message: editor.Acknowledgement(sess),
	})
}

// List handles GET /sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := models.BoardResponse{Sessions: h.board.Entries()}
	if len(resp.Sessions) == 0 {
		resp.Notice = board.EmptyNotice
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.board.Entry(sess))
}

// Update handles PATCH /sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sess, ok := h.lookup(w, id)
	if !ok {
		return
	}

	if req.Paid != nil {
		if err := h.board.SetPaid(id, *req.Paid); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}
	if req.Notes != nil {
		if err := h.board.SetNotes(id, *req.Notes); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}

	h.logger.Info("session edited", "session_id", id, "paid", sess.Paid, "notes_changed", req.Notes != nil)
	writeJSON(w, http.StatusOK, h.board.Entry(sess))
}

func (h *SessionHandler) lookup(w http.ResponseWriter, id string) (*models.Session, bool) {
	sess, err := h.board.Session(id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return nil, false
	}
	return sess, true
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrMissingRequired),
		errors.Is(err, editor.ErrNegativeFee),
		errors.Is(err, editor.ErrDateInPast):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
