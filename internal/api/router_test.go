package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/finance"
	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

func newTestRouter(t *testing.T) (*chi.Mux, *store.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New()
	r := NewRouter(
		st,
		editor.New(st, logger),
		board.New(st, "", logger),
		finance.NewAggregator(st),
		"TL",
		logger,
	)
	return r, st
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createSession(t *testing.T, h http.Handler, body string) *models.Session {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/sessions", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.CreateSessionResponse](t, rec).Session
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "ok", decode[models.HealthResponse](t, rec).Status)
}

func TestCreateSession(t *testing.T) {
	r, st := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/sessions",
		`{"clientName":"Ayşe","sessionTitle":"BDT","date":"2024-06-01","time":"09:00","fee":300,"phone":"+90 532 111 22 33"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[models.CreateSessionResponse](t, rec)
	assert.Equal(t, "Ayşe için seans oluşturuldu!", resp.Message)
	assert.NotEmpty(t, resp.Session.ID)
	assert.False(t, resp.Session.Paid)
	assert.Equal(t, "300", resp.Session.Fee.String())
	assert.Equal(t, 1, st.Len())
}

func TestCreateSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"date":"2024-06-01"}`},
		{"missing date", `{"clientName":"Ayşe"}`},
		{"negative fee", `{"clientName":"Ayşe","date":"2024-06-01","fee":-5}`},
		{"bad date", `{"clientName":"Ayşe","date":"01/06/2024"}`},
		{"unknown field", `{"clientName":"Ayşe","date":"2024-06-01","paid":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, st := newTestRouter(t)
			rec := do(t, r, http.MethodPost, "/sessions", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			assert.Equal(t, 0, st.Len())
		})
	}
}

func TestListSessions(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("empty store shows notice", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/sessions", "")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[models.BoardResponse](t, rec)
		assert.Empty(t, resp.Sessions)
		assert.Equal(t, board.EmptyNotice, resp.Notice)
	})

	createSession(t, r, `{"clientName":"Mehmet","date":"2024-06-02","time":"10:00","fee":500}`)
	createSession(t, r, `{"clientName":"Ayşe","date":"2024-06-01","time":"09:00","fee":300,"phone":"+90 532 111 22 33"}`)

	t.Run("sorted by date and time", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/sessions", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var raw struct {
			Sessions []map[string]any `json:"sessions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		require.Len(t, raw.Sessions, 2)
		assert.Equal(t, "Ayşe", raw.Sessions[0]["clientName"])
		assert.Equal(t, "Mehmet", raw.Sessions[1]["clientName"])
		assert.True(t, strings.HasPrefix(raw.Sessions[0]["reminderLink"].(string), "https://wa.me/905321112233?text="))
		assert.True(t, strings.HasPrefix(raw.Sessions[1]["reminderLink"].(string), "https://wa.me/?text="))
	})
}

func TestUpdateSession(t *testing.T) {
	r, st := newTestRouter(t)
	sess := createSession(t, r, `{"clientName":"Ayşe","date":"2024-06-01","fee":300}`)

	rec := do(t, r, http.MethodPatch, "/sessions/"+sess.ID, `{"paid":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := st.Get(sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	assert.Empty(t, stored.Notes)

	rec = do(t, r, http.MethodPatch, "/sessions/"+sess.ID, `{"notes":"ilk görüşme"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ilk görüşme", stored.Notes)
	assert.True(t, stored.Paid)

	rec = do(t, r, http.MethodGet, "/sessions/"+sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":"ilk görüşme"`)
}

func TestUnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/sessions/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPatch, "/sessions/nope", `{"paid":true}`).Code)
}

func TestFinance(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("empty store warns and computes nothing", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/finance", "")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[models.FinanceResponse](t, rec)
		assert.True(t, resp.Empty)
		assert.Equal(t, finance.EmptyWarning, resp.Warning)
		assert.Nil(t, resp.Totals)
	})

	createSession(t, r, `{"clientName":"Mehmet","date":"2024-06-02","time":"10:00","fee":500}`)
	first := createSession(t, r, `{"clientName":"Ayşe","date":"2024-06-01","time":"09:00","fee":300}`)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPatch, "/sessions/"+first.ID, `{"paid":true}`).Code)

	rec := do(t, r, http.MethodGet, "/finance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.FinanceResponse](t, rec)
	require.NotNil(t, resp.Totals)
	assert.Equal(t, "800", resp.Totals.Expected.String())
	assert.Equal(t, "300", resp.Totals.Received.String())
	assert.Equal(t, "500", resp.Totals.Pending.String())
	assert.Equal(t, "TL", resp.Currency)

	// Table rows stay in store order.
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Mehmet", resp.Rows[0].ClientName)
	assert.True(t, resp.Rows[1].Paid)
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodOptions, "/sessions", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
