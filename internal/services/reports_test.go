package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/helpers"
)

func TestResolveRange(t *testing.T) {
	today := day(2024, 5, 15)

	cases := []struct {
		name     string
		q        dto.ReportQuery
		from, to string
	}{
		{"default last 30 days", dto.ReportQuery{}, "2024-04-16", "2024-05-15"},
		{"this month", dto.ReportQuery{Preset: dto.DateRangeThisMonth}, "2024-05-01", "2024-05-15"},
		{"last month", dto.ReportQuery{Preset: dto.DateRangeLastMonth}, "2024-04-01", "2024-04-30"},
		{"this quarter", dto.ReportQuery{Preset: dto.DateRangeThisQuarter}, "2024-04-01", "2024-05-15"},
		{"last quarter", dto.ReportQuery{Preset: dto.DateRangeLastQuarter}, "2024-01-01", "2024-03-31"},
		{"this year", dto.ReportQuery{Preset: dto.DateRangeThisYear}, "2024-01-01", "2024-05-15"},
		{"last year", dto.ReportQuery{Preset: dto.DateRangeLastYear}, "2023-01-01", "2023-12-31"},
		{"explicit wins over preset", dto.ReportQuery{Preset: dto.DateRangeLastYear, From: "2024-02-01", To: "2024-02-10"}, "2024-02-01", "2024-02-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng, err := ResolveRange(tc.q, today)
			require.NoError(t, err)
			assert.Equal(t, tc.from, rng.From.String())
			assert.Equal(t, tc.to, rng.To.String())
		})
	}

	t.Run("all is unbounded", func(t *testing.T) {
		rng, err := ResolveRange(dto.ReportQuery{Preset: dto.DateRangeAll}, today)
		require.NoError(t, err)
		assert.Nil(t, rng.From)
		assert.Nil(t, rng.To)
	})

	bad := []dto.ReportQuery{
		{Preset: "fortnight"},
		{From: "15/05/2024"},
		{From: "2024-05-10", To: "2024-05-01"},
	}
	for _, q := range bad {
		_, err := ResolveRange(q, today)
		var vErr *errs.ValidationError
		assert.True(t, errors.As(err, &vErr), "%+v", q)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	got := CategoryBreakdown([]models.Expense{
		{Category: "Food", Amount: amt("20")},
		{Category: "Rent", Amount: amt("50")},
		{Category: "Food", Amount: amt("10")},
		{Category: "Fun", Amount: amt("20")},
	})

	assert.Equal(t, "100", got.Total.String())
	require.Len(t, got.Slices, 3)
	assert.Equal(t, "Rent", got.Slices[0].Category)
	assert.Equal(t, "50", got.Slices[0].Percent.String())
	assert.Equal(t, "Food", got.Slices[1].Category)
	assert.Equal(t, "30", got.Slices[1].Total.String())
	assert.Equal(t, "Fun", got.Slices[2].Category)

	thirds := CategoryBreakdown([]models.Expense{
		{Category: "A", Amount: amt("1")},
		{Category: "B", Amount: amt("2")},
	})
	assert.Equal(t, "66.7", thirds.Slices[0].Percent.String())
	assert.Equal(t, "33.3", thirds.Slices[1].Percent.String())

	assert.Empty(t, CategoryBreakdown(nil).Slices)
}

func TestTrend(t *testing.T) {
	income := []models.Income{{Date: day(2024, 1, 5), Amount: amt("100")}, {Date: day(2024, 3, 20), Amount: amt("40")}}
	expenses := []models.Expense{{Date: day(2024, 1, 5), Amount: amt("30")}}

	t.Run("sixty days stays daily", func(t *testing.T) {
		from, to := day(2024, 1, 1), day(2024, 3, 1)
		got := Trend(income, expenses, dto.DateRange{From: &from, To: &to})

		assert.Equal(t, dto.TrendDaily, got.Granularity)
		require.Len(t, got.Buckets, 61)
		assert.Equal(t, "2024-01-05", got.Buckets[4].Key)
		assert.Equal(t, "100", got.Buckets[4].Income.String())
		assert.Equal(t, "30", got.Buckets[4].Expenses.String())
		assert.True(t, got.Buckets[0].Income.IsZero())
	})

	t.Run("longer range is monthly", func(t *testing.T) {
		from, to := day(2024, 1, 1), day(2024, 3, 2)
		got := Trend(income, expenses, dto.DateRange{From: &from, To: &to})

		assert.Equal(t, dto.TrendMonthly, got.Granularity)
		require.Len(t, got.Buckets, 3)
		assert.Equal(t, "2024-01", got.Buckets[0].Key)
		assert.Equal(t, "100", got.Buckets[0].Income.String())
		assert.True(t, got.Buckets[2].Income.IsZero())
	})

	t.Run("open range uses data bounds", func(t *testing.T) {
		got := Trend(income, expenses, dto.DateRange{})

		assert.Equal(t, dto.TrendMonthly, got.Granularity)
		assert.Equal(t, "2024-01-05", got.Range.From.String())
		assert.Equal(t, "2024-03-20", got.Range.To.String())
		require.Len(t, got.Buckets, 3)
		assert.Equal(t, "40", got.Buckets[2].Income.String())
	})

	t.Run("no data", func(t *testing.T) {
		got := Trend(nil, nil, dto.DateRange{})
		assert.Empty(t, got.Buckets)
	})
}

func TestReportService(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Expenses = []models.Expense{
		{Date: day(2024, 5, 1), Category: "Food", Amount: amt("10"), PaymentMethod: strPtr("Card")},
		{Date: day(2024, 5, 2), Category: "Food", Amount: amt("5"), PaymentMethod: strPtr("Cash")},
		{Date: day(2023, 5, 2), Category: "Rent", Amount: amt("500"), PaymentMethod: strPtr("Card")},
	}
	snap.Income = []models.Income{{Date: day(2024, 5, 3), Amount: amt("100"), PaymentMethod: strPtr("UPI")}}
	svc := NewReportService(staticSource{snap: snap}, fixedNow(day(2024, 5, 15)))
	ctx := helpers.TestCtx()

	t.Run("payment methods", func(t *testing.T) {
		assert.Equal(t, []string{"Card", "Cash", "UPI"}, svc.PaymentMethods(ctx))
	})

	t.Run("categories filtered by method and range", func(t *testing.T) {
		got, err := svc.Categories(ctx, dto.ReportQuery{PaymentMethod: "Card"})
		require.NoError(t, err)
		require.Len(t, got.Slices, 1)
		assert.Equal(t, "10", got.Total.String())

		all, err := svc.Categories(ctx, dto.ReportQuery{Preset: dto.DateRangeAll, PaymentMethod: dto.PaymentMethodAll})
		require.NoError(t, err)
		assert.Equal(t, "515", all.Total.String())
	})

	t.Run("trend uses the default window", func(t *testing.T) {
		got, err := svc.Trend(ctx, dto.ReportQuery{})
		require.NoError(t, err)
		assert.Equal(t, dto.TrendDaily, got.Granularity)
		assert.Len(t, got.Buckets, 30)
	})

	t.Run("bad preset is a validation error", func(t *testing.T) {
		_, err := svc.Trend(ctx, dto.ReportQuery{Preset: "nope"})
		var vErr *errs.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestCalendarEvents(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Income = []models.Income{{Description: "Salary", Date: day(2024, 6, 1), Amount: amt("10")}}
	snap.Bills = []models.Bill{{Name: "Power", DueDate: day(2024, 6, 9), Amount: amt("40")}}
	snap.Subscriptions = []models.Subscription{{Name: "Music", NextBill: day(2024, 6, 4), Amount: amt("5")}}
	snap.Recharges = []models.Recharge{{Provider: "Jio", ExpiryDate: day(2024, 6, 30)}, {Provider: "Old", ExpiryDate: day(2024, 5, 30)}}
	snap.Loans = []models.Loan{
		{LenderName: "Bank", IsEMI: true, Payments: []models.EmiPayment{{PaymentDate: day(2024, 6, 2), Amount: amt("100")}}},
		{LenderName: "Friend", Payments: []models.EmiPayment{{PaymentDate: day(2024, 6, 3), Amount: amt("100")}}},
	}

	got := CalendarEvents(snap, 2024, time.June)

	titles := make([]string, 0, len(got))
	for _, e := range got {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"Salary", "EMI: Bank", "Sub: Music", "Bill: Power", "Recharge: Jio"}, titles)
	assert.Nil(t, got[4].Amount)

	svc := NewReportService(staticSource{snap: snap}, fixedNow(day(2024, 6, 1)))
	_, err := svc.Calendar(helpers.TestCtx(), "June")
	var vErr *errs.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestGoalsAndPortfolio(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Goals = []models.Goal{{ID: "g1", Name: "Car", TargetAmount: amt("3000"), CurrentAmount: amt("1000")}}
	snap.Investments = []models.Investment{
		{ID: "a", PurchasePrice: amt("10"), Quantity: amt("5"), CurrentValue: amt("12")},
		{ID: "b", PurchasePrice: amt("100"), Quantity: amt("1"), CurrentValue: amt("80")},
	}

	goals := GoalProgress(snap)
	require.Len(t, goals, 1)
	assert.Equal(t, "33.33", goals[0].Progress.String())
	assert.Equal(t, "2000", goals[0].Remaining.String())

	p := Portfolio(snap)
	assert.Equal(t, "150", p.Invested.String())
	assert.Equal(t, "140", p.Current.String())
	assert.Equal(t, "-10", p.GainLoss.String())
	assert.Equal(t, "10", p.Items[0].GainLoss.String())
}
