package models

import "github.com/shopspring/decimal"

// CreateSessionRequest is the payload for POST /sessions.
type CreateSessionRequest struct {
	ClientName string           `json:"clientName"`
	Title      string           `json:"sessionTitle"`
	Date       Date             `json:"date"`
	Time       Clock            `json:"time"`
	Fee        *decimal.Decimal `json:"fee,omitempty"` // omitted means 0
	Phone      string           `json:"phone"`
	Email      string           `json:"email"`
}

// CreateSessionResponse is returned from POST /sessions.
type CreateSessionResponse struct {
	Session *Session `json:"session"`
	Message string   `json:"message"`
}

// UpdateSessionRequest is the payload for PATCH /sessions/{id}. Nil fields are left alone.
type UpdateSessionRequest struct {
	Paid  *bool   `json:"paid,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// BoardEntry is a session as shown on the board, with its reminder link.
type BoardEntry struct {
	*Session
	Heading      string `json:"heading"`
	ReminderLink string `json:"reminderLink"`
}

// BoardResponse is returned from GET /sessions.
type BoardResponse struct {
	Sessions []BoardEntry `json:"sessions"`
	Notice   string       `json:"notice,omitempty"`
}

// FinanceRow is one line of the session history table.
type FinanceRow struct {
	Date       Date            `json:"date"`
	ClientName string          `json:"clientName"`
	Fee        decimal.Decimal `json:"fee"`
	Paid       bool            `json:"paid"`
	Notes      string          `json:"notes"`
}

// FinanceTotals holds the three derived metrics.
type FinanceTotals struct {
	Expected decimal.Decimal `json:"totalExpected"`
	Received decimal.Decimal `json:"totalReceived"`
	Pending  decimal.Decimal `json:"totalPending"`
}

// FinanceResponse is returned from GET /finance.
type FinanceResponse struct {
	Empty    bool           `json:"empty"`
	Warning  string         `json:"warning,omitempty"`
	Currency string         `json:"currency"`
	Totals   *FinanceTotals `json:"totals,omitempty"`
	Rows     []FinanceRow   `json:"rows"`
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status       string `json:"status"`
	SessionCount int    `json:"sessionCount"`
}
