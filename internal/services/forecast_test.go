package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

func TestBuildForecast(t *testing.T) {
	today := day(2024, 3, 1)
	base := models.EmptySnapshot()
	base.Income = []models.Income{{ID: "i1", Date: day(2024, 2, 1), Amount: amt("5000")}}
	base.Expenses = []models.Expense{{ID: "e1", Date: day(2024, 2, 2), Amount: amt("1200")}}

	t.Run("window covers thirty unique consecutive days", func(t *testing.T) {
		f := BuildForecast(base, today)

		require.Len(t, f.Points, ForecastHorizonDays)
		assert.Equal(t, today, f.Points[0].Date)
		assert.Equal(t, today.AddDays(29), f.Points[29].Date)
		for i := 1; i < len(f.Points); i++ {
			assert.Equal(t, 1, f.Points[i].Date.DaysSince(f.Points[i-1].Date))
		}
		assert.Equal(t, "1 Mar", f.Points[0].Label)
	})

	t.Run("no outflows is a flat line", func(t *testing.T) {
		f := BuildForecast(base, today)

		assert.True(t, f.HasIncome)
		assert.Equal(t, "3800", f.StartingBalance.String())
		for _, p := range f.Points {
			assert.True(t, p.Balance.Equal(f.StartingBalance), p.Label)
		}
	})

	t.Run("one outflow shifts every later day", func(t *testing.T) {
		snap := base.Clone()
		snap.Subscriptions = []models.Subscription{{ID: "s1", Name: "Gym", Amount: amt("45.50"), Cycle: models.CycleMonthly, NextBill: day(2024, 3, 11)}}

		flat := BuildForecast(base, today)
		f := BuildForecast(snap, today)

		for i, p := range f.Points {
			diff := flat.Points[i].Balance.Sub(p.Balance)
			if i < 10 {
				assert.True(t, diff.IsZero(), p.Label)
			} else {
				assert.Equal(t, "45.5", diff.String(), p.Label)
			}
		}
		require.Len(t, f.Outflows, 1)
		assert.Equal(t, "Gym", f.Outflows[0].Name)
	})

	t.Run("emi and rolled subscription accumulate", func(t *testing.T) {
		snap := base.Clone()
		snap.Loans = []models.Loan{
			emiLoan("l1", "Bank", day(2024, 1, 5), "1000",
				models.EmiPayment{ID: "p1", PaymentDate: day(2024, 2, 5), Amount: amt("1000")}),
			emiLoan("l2", "Later", day(2024, 3, 25), "700"),
		}
		snap.Subscriptions = []models.Subscription{
			{ID: "s1", Name: "Stream", Amount: amt("15"), Cycle: models.CycleMonthly, NextBill: day(2024, 1, 20)},
			{ID: "s2", Name: "Domain", Amount: amt("12"), Cycle: models.CycleYearly, NextBill: day(2024, 6, 1)},
		}

		f := BuildForecast(snap, today)

		assert.Equal(t, "3800", f.Points[3].Balance.String())
		assert.Equal(t, "2800", f.Points[4].Balance.String())
		assert.Equal(t, "2785", f.Points[19].Balance.String())
		assert.Equal(t, "2785", f.Points[29].Balance.String())
		assert.Len(t, f.Outflows, 2)
	})

	t.Run("no income history is flagged", func(t *testing.T) {
		f := BuildForecast(models.EmptySnapshot(), today)

		assert.False(t, f.HasIncome)
		assert.Len(t, f.Points, ForecastHorizonDays)
	})
}
