package dto

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

// PaymentMethodAll disables payment method filtering.
const PaymentMethodAll = "all"

// Trend granularities
const (
	TrendDaily   = "daily"
	TrendMonthly = "monthly"
)

// ReportQuery is the raw report filter as supplied by a caller.
type ReportQuery struct {
	Preset        string
	From          string
	To            string
	PaymentMethod string
}

// DateRange is inclusive. A nil bound is open.
type DateRange struct {
	From *civil.Date `json:"from,omitempty"`
	To   *civil.Date `json:"to,omitempty"`
}

type CategorySlice struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"percent"`
}

type CategoryBreakdown struct {
	Range  DateRange       `json:"range"`
	Total  decimal.Decimal `json:"total"`
	Slices []CategorySlice `json:"slices"`
}

type TrendBucket struct {
	Key      string          `json:"key"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

type Trend struct {
	Range       DateRange     `json:"range"`
	Granularity string        `json:"granularity"`
	Buckets     []TrendBucket `json:"buckets"`
}

type CalendarEvent struct {
	Date   civil.Date       `json:"date"`
	Title  string           `json:"title"`
	Kind   string           `json:"kind"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

type GoalProgress struct {
	GoalID    string          `json:"goalId"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"targetAmount"`
	Current   decimal.Decimal `json:"currentAmount"`
	Remaining decimal.Decimal `json:"remaining"`
	Progress  decimal.Decimal `json:"progress"`
	Deadline  *civil.Date     `json:"deadline,omitempty"`
}

type InvestmentView struct {
	models.Investment
	Invested     decimal.Decimal `json:"investedValue"`
	CurrentTotal decimal.Decimal `json:"currentTotal"`
	GainLoss     decimal.Decimal `json:"gainLoss"`
}

type Portfolio struct {
	Items    []InvestmentView `json:"items"`
	Invested decimal.Decimal  `json:"investedValue"`
	Current  decimal.Decimal  `json:"currentTotal"`
	GainLoss decimal.Decimal  `json:"gainLoss"`
}

type LoanView struct {
	models.Loan
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Balance   decimal.Decimal `json:"balance"`
}
