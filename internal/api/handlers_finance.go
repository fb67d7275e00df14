package api

import (
	"net/http"

	"github.com/iammorganparry/seans/internal/finance"
	"github.com/iammorganparry/seans/internal/models"
)

// FinanceHandler serves the income summary.
type FinanceHandler struct {
	agg      *finance.Aggregator
	currency string
}

func NewFinanceHandler(agg *finance.Aggregator, currency string) *FinanceHandler {
	return &FinanceHandler{agg: agg, currency: currency}
}

// Summary handles GET /finance
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report := h.agg.Report()
	resp := models.FinanceResponse{
		Currency: h.currency,
		Totals:   report.Totals,
		Rows:     report.Rows,
	}
	if report.Empty() {
		resp.Empty = true
		resp.Warning = finance.EmptyWarning
		resp.Rows = []models.FinanceRow{}
	}
	writeJSON(w, http.StatusOK, resp)
}
