package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/finance"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

// Dashboard list sizes
const (
	UpcomingLimit     = 5
	ActivityLimit     = 5
	OverviewMonths    = 6
	percentPrecision  = 2
	categoryPercentDP = 1
)

var hundred = decimal.NewFromInt(100)

// snapshotSource is the read side of the repository.
type snapshotSource interface {
	Snapshot() models.Snapshot
}

type dashboardService struct {
	repo snapshotSource
	now  func() time.Time
}

func NewDashboardService(repo snapshotSource, now func() time.Time) *dashboardService {
	return &dashboardService{repo: repo, now: now}
}

func (s *dashboardService) today() civil.Date {
	return finance.Today(s.now())
}

// --- Public service methods ---

func (s *dashboardService) Summary(ctx context.Context) dto.DashboardSummary {
	return Summary(s.repo.Snapshot())
}

func (s *dashboardService) Forecast(ctx context.Context) dto.CashFlowForecast {
	f := BuildForecast(s.repo.Snapshot(), s.today())
	if !f.HasIncome {
		logger.FromContext(ctx).Debug("forecast has no income history")
	}
	return f
}

func (s *dashboardService) Upcoming(ctx context.Context) []dto.UpcomingPayment {
	return UpcomingPayments(s.repo.Snapshot(), s.today(), UpcomingLimit)
}

func (s *dashboardService) Activity(ctx context.Context) []dto.ActivityItem {
	return RecentActivity(s.repo.Snapshot(), ActivityLimit)
}

func (s *dashboardService) Budgets(ctx context.Context) []dto.BudgetProgress {
	return BudgetProgress(s.repo.Snapshot(), s.today())
}

func (s *dashboardService) Overview(ctx context.Context) []dto.MonthTotals {
	return MonthlyOverview(s.repo.Snapshot(), s.today(), OverviewMonths)
}

// --- Views ---

// Summary totals income and expenses and the money still owed on borrowed loans.
func Summary(snap models.Snapshot) dto.DashboardSummary {
	income := sumAmounts(snap.Income, func(i models.Income) decimal.Decimal { return i.Amount })
	expenses := sumAmounts(snap.Expenses, func(e models.Expense) decimal.Decimal { return e.Amount })

	out := dto.DashboardSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetBalance:    income.Sub(expenses),
		LoansDue:      decimal.Zero,
		IncomeCount:   len(snap.Income),
		ExpenseCount:  len(snap.Expenses),
	}
	for _, l := range snap.Loans {
		if l.Type != models.LoanBorrowed || l.Status != models.LoanOngoing {
			continue
		}
		out.ActiveLoans++
		out.LoansDue = out.LoansDue.Add(l.Outstanding())
	}
	return out
}

// UpcomingPayments returns obligations due today or later, soonest first.
func UpcomingPayments(snap models.Snapshot, today civil.Date, limit int) []dto.UpcomingPayment {
	out := []dto.UpcomingPayment{}
	for _, p := range Obligations(snap) {
		if p.DueDate.Before(today) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// RecentActivity merges income, expenses and new loans, newest first. Money
// received is positive: income and borrowed loans.
func RecentActivity(snap models.Snapshot, limit int) []dto.ActivityItem {
	out := make([]dto.ActivityItem, 0, len(snap.Income)+len(snap.Expenses)+len(snap.Loans))
	for _, i := range snap.Income {
		out = append(out, dto.ActivityItem{ID: i.ID, Kind: dto.ActivityIncome, Description: i.Description, Date: i.Date, Amount: i.Amount})
	}
	for _, e := range snap.Expenses {
		out = append(out, dto.ActivityItem{ID: e.ID, Kind: dto.ActivityExpense, Description: e.Description, Date: e.Date, Amount: e.Amount.Neg()})
	}
	for _, l := range snap.Loans {
		item := dto.ActivityItem{
			ID:          l.ID,
			Kind:        dto.ActivityLoanTaken,
			Description: fmt.Sprintf("Loan with %s", l.LenderName),
			Date:        l.BorrowingDate,
			Amount:      l.Principal,
		}
		if l.Type == models.LoanLent {
			item.Kind = dto.ActivityLoanGiven
			item.Amount = l.Principal.Neg()
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BudgetProgress matches each budget against this calendar month's expenses
// in the same category.
func BudgetProgress(snap models.Snapshot, today civil.Date) []dto.BudgetProgress {
	out := make([]dto.BudgetProgress, 0, len(snap.Budgets))
	for _, b := range snap.Budgets {
		spent := decimal.Zero
		for _, e := range snap.Expenses {
			if e.Category == b.Category && finance.SameMonth(e.Date, today) {
				spent = spent.Add(e.Amount)
			}
		}
		out = append(out, dto.BudgetProgress{
			BudgetID:  b.ID,
			Category:  b.Category,
			Amount:    b.Amount,
			Spent:     spent,
			Remaining: b.Amount.Sub(spent),
			Progress:  percent(spent, b.Amount, percentPrecision),
			Over:      spent.GreaterThan(b.Amount),
		})
	}
	return out
}

// MonthlyOverview totals income and expenses for the last n calendar months,
// oldest first, ending with the current month.
func MonthlyOverview(snap models.Snapshot, today civil.Date, n int) []dto.MonthTotals {
	start := finance.AddMonths(finance.MonthStart(today), -(n - 1))
	out := make([]dto.MonthTotals, n)
	index := make(map[string]int, n)
	for i := range out {
		m := finance.AddMonths(start, i)
		key := monthKey(m)
		out[i] = dto.MonthTotals{Month: key, Label: m.Month.String()[:3], Income: decimal.Zero, Expenses: decimal.Zero}
		index[key] = i
	}

	for _, inc := range snap.Income {
		if i, ok := index[monthKey(inc.Date)]; ok {
			out[i].Income = out[i].Income.Add(inc.Amount)
		}
	}
	for _, e := range snap.Expenses {
		if i, ok := index[monthKey(e.Date)]; ok {
			out[i].Expenses = out[i].Expenses.Add(e.Amount)
		}
	}
	return out
}

// --- Helpers ---

// percent returns part/whole*100 rounded to places, zero when whole is not positive.
func percent(part, whole decimal.Decimal, places int32) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(places)
}

func monthKey(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}
