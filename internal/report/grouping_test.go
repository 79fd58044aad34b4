package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldbach8/DespachoComex/internal/bk"
	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/report"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func item(posicion string, fob *float64, provider *string) domain.DespachoItem {
	return domain.DespachoItem{
		DespachoNumber: "24001IC04123456K",
		Posicion:       posicion,
		Currency:       "USD",
		FobAmount:      fob,
		Provider:       provider,
	}
}

func TestGroup_AggregatesByPositionAndProvider(t *testing.T) {
	items := []domain.DespachoItem{
		item("8413.91.90.790R", f(100), s("CATERPILLAR")),
		item("8413.91.90.790R", f(50.555), s("CATERPILLAR")),
		item("8413.91.90.790R", f(30), s("PERKINS")),
		item("8421.23.00.900T", f(20), s("CATERPILLAR")),
	}
	lookup := bk.NewLookup([]string{"8413.91.90"})

	rows := report.Group(items, nil, lookup)
	require.Len(t, rows, 3)

	// Sorted by posición, then provider.
	assert.Equal(t, "8413.91.90.790R", rows[0].Posicion)
	assert.Equal(t, "CATERPILLAR", rows[0].Provider)
	assert.InDelta(t, 150.56, rows[0].TotalFob, 0.001)
	assert.Equal(t, domain.ClassBK, rows[0].Class)

	assert.Equal(t, "PERKINS", rows[1].Provider)
	assert.InDelta(t, 30, rows[1].TotalFob, 0.001)

	assert.Equal(t, "8421.23.00.900T", rows[2].Posicion)
	assert.Equal(t, domain.ClassNoBK, rows[2].Class)
}

func TestGroup_ParentWithSubItemsExcluded(t *testing.T) {
	parent := item("8413.91.90.790R", f(999), s("CATERPILLAR"))
	parent.HasSubItems = true
	sub := item("8413.91.90.790R", f(100), s("CATERPILLAR"))
	sub.IsSubItem = true

	rows := report.Group([]domain.DespachoItem{parent, sub}, nil, bk.NewLookup(nil))
	require.Len(t, rows, 1)
	assert.InDelta(t, 100, rows[0].TotalFob, 0.001, "parent amount must not double-count")
}

func TestGroup_MappingAndUnbrandedFallback(t *testing.T) {
	items := []domain.DespachoItem{
		item("8413.91.90.790R", f(10), s("CAT")),
		item("8413.91.90.790R", f(5), nil),
		item("8413.91.90.790R", f(3), s("  ")),
	}
	mapping := map[string]string{"CAT": "CATERPILLAR INC."}

	rows := report.Group(items, mapping, bk.NewLookup(nil))
	require.Len(t, rows, 2)
	assert.Equal(t, "CATERPILLAR INC.", rows[0].Provider)
	assert.InDelta(t, 10, rows[0].TotalFob, 0.001)
	assert.Equal(t, report.UnbrandedProvider, rows[1].Provider)
	assert.InDelta(t, 8, rows[1].TotalFob, 0.001)
}

func TestGroup_NilAmountCountsAsZero(t *testing.T) {
	items := []domain.DespachoItem{
		item("8413.91.90.790R", nil, s("PERKINS")),
	}
	rows := report.Group(items, nil, bk.NewLookup(nil))
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].TotalFob)
}

func TestProviderSummary_PercentAndOrder(t *testing.T) {
	rows := []report.GroupedRow{
		{Provider: "ALPHA", TotalFob: 300, Class: domain.ClassBK},
		{Provider: "ALPHA", TotalFob: 100, Class: domain.ClassNoBK},
		{Provider: "BETA", TotalFob: 900, Class: domain.ClassNoBK},
	}

	summary := report.ProviderSummary(rows)
	require.Len(t, summary, 2)

	// Sorted by FOB total descending.
	assert.Equal(t, "BETA", summary[0].Provider)
	assert.InDelta(t, 900, summary[0].TotalFob, 0.001)
	assert.Zero(t, summary[0].BKPercent)

	assert.Equal(t, "ALPHA", summary[1].Provider)
	assert.InDelta(t, 400, summary[1].TotalFob, 0.001)
	assert.InDelta(t, 300, summary[1].BKFob, 0.001)
	assert.InDelta(t, 75.0, summary[1].BKPercent, 0.001)
}

func TestProviderSummary_ZeroTotal(t *testing.T) {
	summary := report.ProviderSummary([]report.GroupedRow{
		{Provider: "GAMMA", TotalFob: 0},
	})
	require.Len(t, summary, 1)
	assert.Zero(t, summary[0].BKPercent)
}

func TestReconcile_Matched(t *testing.T) {
	rows := []report.GroupedRow{{TotalFob: 100.10}, {TotalFob: 50.15}}
	rec := report.Reconcile(rows, f(150.25))
	assert.InDelta(t, 150.25, rec.ItemsTotal, 0.001)
	require.NotNil(t, rec.Delta)
	assert.Zero(t, *rec.Delta)
	assert.True(t, rec.Matched)
}

func TestReconcile_Mismatch(t *testing.T) {
	rec := report.Reconcile([]report.GroupedRow{{TotalFob: 100}}, f(150))
	require.NotNil(t, rec.Delta)
	assert.InDelta(t, -50, *rec.Delta, 0.001)
	assert.False(t, rec.Matched)
}

func TestReconcile_NoGlobalFob(t *testing.T) {
	rec := report.Reconcile([]report.GroupedRow{{TotalFob: 100}}, nil)
	assert.Nil(t, rec.Delta)
	assert.False(t, rec.Matched)
	assert.Nil(t, rec.GlobalFob)
}
