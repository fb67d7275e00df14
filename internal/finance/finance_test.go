package finance

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestReportEmpty(t *testing.T) {
	agg := NewAggregator(store.New())
	report := agg.Report()
	assert.True(t, report.Empty())
	assert.Nil(t, report.Totals)
	assert.Empty(t, report.Rows)
}

func TestTotalsIdentity(t *testing.T) {
	tests := []struct {
		name     string
		fees     []int64
		paid     []bool
		received int64
	}{
		{"none paid", []int64{500, 300}, []bool{false, false}, 0},
		{"all paid", []int64{500, 300}, []bool{true, true}, 800},
		{"mixed", []int64{500, 300, 250, 0}, []bool{true, false, true, true}, 750},
		{"zero fees", []int64{0, 0}, []bool{true, false}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []*models.Session
			for i, f := range tt.fees {
				sessions = append(sessions, &models.Session{Fee: dec(f), Paid: tt.paid[i]})
			}
			totals := Totals(sessions)
			assert.True(t, totals.Received.Equal(dec(tt.received)), "received %s", totals.Received)
			assert.True(t, totals.Expected.Equal(totals.Received.Add(totals.Pending)))
		})
	}
}

func TestTotalsDecimalExact(t *testing.T) {
	sessions := []*models.Session{
		{Fee: decimal.RequireFromString("0.1"), Paid: true},
		{Fee: decimal.RequireFromString("0.2")},
	}
	totals := Totals(sessions)
	assert.Equal(t, "0.3", totals.Expected.String())
	assert.Equal(t, "0.2", totals.Pending.String())
}

func TestRowsKeepStoreOrder(t *testing.T) {
	st := store.New()
	st.Append(&models.Session{ID: "b", ClientName: "B", Date: models.Date{Year: 2024, Month: time.June, Day: 2}, Fee: dec(500)})
	st.Append(&models.Session{ID: "a", ClientName: "A", Date: models.Date{Year: 2024, Month: time.June, Day: 1}, Fee: dec(300), Notes: "n"})

	report := NewAggregator(st).Report()
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "B", report.Rows[0].ClientName)
	assert.Equal(t, "A", report.Rows[1].ClientName)
	assert.Equal(t, "n", report.Rows[1].Notes)
}

// Two sessions entered out of order; the board shows the earlier one first,
// and paying it moves its fee from pending to received.
func TestTwoSessionScenario(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New()
	ed := editor.New(st, logger)
	b := board.New(st, "", logger)
	agg := NewAggregator(st)

	_, err := ed.Submit(editor.Input{
		ClientName: "Mehmet",
		Date:       models.Date{Year: 2024, Month: time.June, Day: 2},
		Time:       models.Clock{Hour: 10},
		Fee:        dec(500),
	})
	require.NoError(t, err)
	_, err = ed.Submit(editor.Input{
		ClientName: "Ayşe",
		Date:       models.Date{Year: 2024, Month: time.June, Day: 1},
		Time:       models.Clock{Hour: 9},
		Fee:        dec(300),
	})
	require.NoError(t, err)

	first := b.Sessions()[0]
	assert.Equal(t, "Ayşe", first.ClientName)

	totals := agg.Report().Totals
	require.NotNil(t, totals)
	assert.True(t, totals.Expected.Equal(dec(800)))
	assert.True(t, totals.Received.Equal(dec(0)))
	assert.True(t, totals.Pending.Equal(dec(800)))

	require.NoError(t, b.SetPaid(first.ID, true))

	totals = agg.Report().Totals
	assert.True(t, totals.Received.Equal(dec(300)))
	assert.True(t, totals.Pending.Equal(dec(500)))
}
