package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/helpers"
)

func TestUpcomingPayments(t *testing.T) {
	today := day(2024, 5, 10)

	t.Run("drops past items and sorts ascending", func(t *testing.T) {
		snap := models.EmptySnapshot()
		snap.Bills = []models.Bill{
			{ID: "late", Name: "Old", Amount: amt("10"), DueDate: day(2024, 5, 8), Status: models.BillUnpaid},
			{ID: "soon", Name: "Power", Amount: amt("40"), DueDate: day(2024, 5, 12), Status: models.BillUnpaid},
		}
		snap.Subscriptions = []models.Subscription{{ID: "s1", Name: "Music", Amount: amt("5"), Cycle: models.CycleMonthly, NextBill: day(2024, 5, 15)}}

		got := UpcomingPayments(snap, today, UpcomingLimit)

		require.Len(t, got, 2)
		assert.Equal(t, "bill-soon", got[0].ID)
		assert.Equal(t, "sub-s1", got[1].ID)
	})

	t.Run("due today counts and list is truncated", func(t *testing.T) {
		snap := models.EmptySnapshot()
		for i := 0; i < 8; i++ {
			snap.Recharges = append(snap.Recharges, models.Recharge{ID: string(rune('a' + i)), Provider: "P", Service: "S", ExpiryDate: today.AddDays(i)})
		}

		got := UpcomingPayments(snap, today, UpcomingLimit)

		require.Len(t, got, UpcomingLimit)
		assert.Equal(t, today, got[0].DueDate)
		assert.Nil(t, got[0].Amount)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		got := UpcomingPayments(models.EmptySnapshot(), today, UpcomingLimit)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestRecentActivity(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Income = []models.Income{{ID: "i1", Description: "Salary", Date: day(2024, 5, 1), Amount: amt("3000")}}
	snap.Expenses = []models.Expense{
		{ID: "e1", Description: "Rent", Date: day(2024, 5, 2), Amount: amt("1200")},
		{ID: "e2", Description: "Food", Date: day(2024, 4, 2), Amount: amt("50")},
		{ID: "e3", Description: "Fuel", Date: day(2024, 3, 2), Amount: amt("30")},
	}
	snap.Loans = []models.Loan{
		{ID: "l1", Type: models.LoanBorrowed, LenderName: "Bank", Principal: amt("10000"), BorrowingDate: day(2024, 5, 3)},
		{ID: "l2", Type: models.LoanLent, LenderName: "Sam", Principal: amt("200"), BorrowingDate: day(2024, 5, 4)},
	}

	got := RecentActivity(snap, ActivityLimit)

	require.Len(t, got, 5)
	assert.Equal(t, "l2", got[0].ID)
	assert.Equal(t, dto.ActivityLoanGiven, got[0].Kind)
	assert.Equal(t, "-200", got[0].Amount.String())
	assert.Equal(t, "Loan with Sam", got[0].Description)
	assert.Equal(t, dto.ActivityLoanTaken, got[1].Kind)
	assert.Equal(t, "10000", got[1].Amount.String())
	assert.Equal(t, "-1200", got[2].Amount.String())
	assert.Equal(t, "3000", got[3].Amount.String())
	assert.Equal(t, "e2", got[4].ID)
}

func TestBudgetProgress(t *testing.T) {
	today := day(2024, 5, 20)
	snap := models.EmptySnapshot()
	snap.Budgets = []models.Budget{
		{ID: "b1", Category: "Food", Amount: amt("200")},
		{ID: "b2", Category: "Travel", Amount: amt("0")},
		{ID: "b3", Category: "Fun", Amount: amt("50")},
	}
	snap.Expenses = []models.Expense{
		{Category: "Food", Date: day(2024, 5, 1), Amount: amt("50")},
		{Category: "Food", Date: day(2024, 5, 19), Amount: amt("25")},
		{Category: "Food", Date: day(2024, 4, 30), Amount: amt("500")},
		{Category: "Food", Date: day(2023, 5, 10), Amount: amt("500")},
		{Category: "Travel", Date: day(2024, 5, 2), Amount: amt("80")},
		{Category: "Fun", Date: day(2024, 5, 3), Amount: amt("60")},
	}

	got := BudgetProgress(snap, today)

	require.Len(t, got, 3)
	assert.Equal(t, "75", got[0].Spent.String())
	assert.Equal(t, "37.5", got[0].Progress.String())
	assert.Equal(t, "125", got[0].Remaining.String())
	assert.False(t, got[0].Over)

	assert.True(t, got[1].Progress.IsZero())
	assert.Equal(t, "80", got[1].Spent.String())

	assert.Equal(t, "-10", got[2].Remaining.String())
	assert.Equal(t, "120", got[2].Progress.String())
	assert.True(t, got[2].Over)
}

func TestSummary(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Income = []models.Income{{Amount: amt("1000")}, {Amount: amt("500")}}
	snap.Expenses = []models.Expense{{Amount: amt("300")}}
	snap.Transfers = []models.Transfer{{From: "A", To: "B", Amount: amt("999")}}
	snap.Loans = []models.Loan{
		{Type: models.LoanBorrowed, Status: models.LoanOngoing, Principal: amt("1000"), Payments: []models.EmiPayment{{Amount: amt("250")}}},
		{Type: models.LoanBorrowed, Status: models.LoanPaid, Principal: amt("100")},
		{Type: models.LoanLent, Status: models.LoanOngoing, Principal: amt("700")},
	}

	got := Summary(snap)

	assert.Equal(t, "1500", got.TotalIncome.String())
	assert.Equal(t, "300", got.TotalExpenses.String())
	assert.Equal(t, "1200", got.NetBalance.String())
	assert.Equal(t, "750", got.LoansDue.String())
	assert.Equal(t, 1, got.ActiveLoans)
	assert.Equal(t, 2, got.IncomeCount)
	assert.Equal(t, 1, got.ExpenseCount)
}

func TestMonthlyOverview(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Income = []models.Income{
		{Date: day(2024, 2, 10), Amount: amt("100")},
		{Date: day(2023, 2, 10), Amount: amt("999")},
	}
	snap.Expenses = []models.Expense{{Date: day(2023, 12, 31), Amount: amt("40")}}

	got := MonthlyOverview(snap, day(2024, 3, 15), OverviewMonths)

	require.Len(t, got, 6)
	assert.Equal(t, "2023-10", got[0].Month)
	assert.Equal(t, "Oct", got[0].Label)
	assert.Equal(t, "2024-03", got[5].Month)
	assert.Equal(t, "40", got[2].Expenses.String())
	assert.Equal(t, "100", got[4].Income.String())
	assert.True(t, got[4].Expenses.IsZero())
}

func TestDashboardService(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Income = []models.Income{{ID: "i1", Date: day(2024, 5, 1), Amount: amt("100")}}
	svc := NewDashboardService(staticSource{snap: snap}, fixedNow(day(2024, 5, 10)))
	ctx := helpers.TestCtx()

	assert.Equal(t, "100", svc.Summary(ctx).NetBalance.String())
	assert.Equal(t, day(2024, 5, 10), svc.Forecast(ctx).Points[0].Date)
	assert.Len(t, svc.Activity(ctx), 1)
	assert.Empty(t, svc.Upcoming(ctx))
	assert.Empty(t, svc.Budgets(ctx))
	assert.Len(t, svc.Overview(ctx), OverviewMonths)
}
