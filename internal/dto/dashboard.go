package dto

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Date range presets
const (
	DateRangeLast30Days  = "last30Days"
	DateRangeThisMonth   = "thisMonth"
	DateRangeLastMonth   = "lastMonth"
	DateRangeThisQuarter = "thisQuarter"
	DateRangeLastQuarter = "lastQuarter"
	DateRangeThisYear    = "thisYear"
	DateRangeLastYear    = "lastYear"
	DateRangeAll         = "all"
)

// Upcoming payment kinds
const (
	PaymentKindLoan         = "loan"
	PaymentKindSubscription = "subscription"
	PaymentKindRecharge     = "recharge"
	PaymentKindBill         = "bill"
)

// Activity kinds
const (
	ActivityIncome    = "Income"
	ActivityExpense   = "Expense"
	ActivityLoanTaken = "Loan Taken"
	ActivityLoanGiven = "Loan Given"
)

type DashboardSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	LoansDue      decimal.Decimal `json:"totalLoansDue"`
	ActiveLoans   int             `json:"activeLoans"`
	IncomeCount   int             `json:"incomeCount"`
	ExpenseCount  int             `json:"expenseCount"`
}

// UpcomingPayment is one due obligation. Amount is nil when unknown, which is
// always the case for recharges.
type UpcomingPayment struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Kind    string           `json:"kind"`
	DueDate civil.Date       `json:"dueDate"`
	Amount  *decimal.Decimal `json:"amount"`
}

// ActivityItem amounts are signed: inflows positive, outflows negative.
type ActivityItem struct {
	ID          string          `json:"id"`
	Kind        string          `json:"type"`
	Description string          `json:"description"`
	Date        civil.Date      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}

type BudgetProgress struct {
	BudgetID  string          `json:"budgetId"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Progress  decimal.Decimal `json:"progress"`
	Over      bool            `json:"over"`
}

type MonthTotals struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
