// Package finance derives income totals from the stored sessions.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

// EmptyWarning is shown when there are no sessions to total.
const EmptyWarning = "Hesaplama için veri yok."

// Report is the finance view's content. Totals is nil when the store is empty.
type Report struct {
	Totals *models.FinanceTotals
	Rows   []models.FinanceRow
}

// Empty reports whether there was anything to compute.
func (r *Report) Empty() bool {
	return r.Totals == nil
}

// Aggregator computes totals over a store.
type Aggregator struct {
	store *store.Store
}

func NewAggregator(st *store.Store) *Aggregator {
	return &Aggregator{store: st}
}

// Report totals every session and lists them in store order.
func (a *Aggregator) Report() *Report {
	sessions := a.store.All()
	if len(sessions) == 0 {
		return &Report{}
	}
	totals := Totals(sessions)
	return &Report{
		Totals: &totals,
		Rows:   Rows(sessions),
	}
}

// Totals sums fees over all sessions and over paid sessions.
func Totals(sessions []*models.Session) models.FinanceTotals {
	expected := decimal.Zero
	received := decimal.Zero
	for _, s := range sessions {
		expected = expected.Add(s.Fee)
		if s.Paid {
			received = received.Add(s.Fee)
		}
	}
	return models.FinanceTotals{
		Expected: expected,
		Received: received,
		Pending:  expected.Sub(received),
	}
}

// Rows projects sessions onto the history table without reordering them.
func Rows(sessions []*models.Session) []models.FinanceRow {
	rows := make([]models.FinanceRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, models.FinanceRow{
			Date:       s.Date,
			ClientName: s.ClientName,
			Fee:        s.Fee,
			Paid:       s.Paid,
			Notes:      s.Notes,
		})
	}
	return rows
}
