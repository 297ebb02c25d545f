package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID            string          `json:"id"`
	Date          civil.Date      `json:"date" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
}

type Income struct {
	ID            string          `json:"id"`
	Date          civil.Date      `json:"date" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Source        string          `json:"source" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
}

// Transfer moves money between two account labels. It is informational and
// never counts towards income, expense or balance totals.
type Transfer struct {
	ID     string          `json:"id"`
	From   string          `json:"from" validate:"required"`
	To     string          `json:"to" validate:"required,nefield=From"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Date   civil.Date      `json:"date" validate:"required"`
}

// Budget caps monthly spend for a category. Spend is matched against expenses
// at read time and never stored here.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"gt=0"`
}
