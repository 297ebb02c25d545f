package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type BillingCycle string

const (
	CycleMonthly   BillingCycle = "Monthly"
	CycleQuarterly BillingCycle = "Quarterly"
	CycleYearly    BillingCycle = "Yearly"
)

// Months returns the cycle length in months.
func (c BillingCycle) Months() int {
	switch c {
	case CycleMonthly:
		return 1
	case CycleQuarterly:
		return 3
	case CycleYearly:
		return 12
	default:
		return 0
	}
}

// Subscription bills on a fixed cycle. NextBill is whatever the user last set,
// it is never advanced in storage.
type Subscription struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Cycle     BillingCycle    `json:"cycle" validate:"oneof=Monthly Quarterly Yearly"`
	NextBill  civil.Date      `json:"nextBill" validate:"required"`
	StartDate civil.Date      `json:"startDate" validate:"required"`
}

// Recharge is a prepaid plan. It carries no amount.
type Recharge struct {
	ID         string     `json:"id"`
	Service    string     `json:"service" validate:"required"`
	Provider   string     `json:"provider" validate:"required"`
	Plan       string     `json:"plan" validate:"required"`
	ExpiryDate civil.Date `json:"expiryDate" validate:"required"`
}

type BillStatus string

const (
	BillUnpaid BillStatus = "Unpaid"
	BillPaid   BillStatus = "Paid"
)

// Bill is a one-off obligation, toggled paid by hand.
type Bill struct {
	ID      string          `json:"id"`
	Name    string          `json:"name" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"gt=0"`
	DueDate civil.Date      `json:"dueDate" validate:"required"`
	Status  BillStatus      `json:"status" validate:"omitempty,oneof=Unpaid Paid"`
}

// Toggle flips between Unpaid and Paid.
func (b *Bill) Toggle() {
	if b.Status == BillPaid {
		b.Status = BillUnpaid
		return
	}
	b.Status = BillPaid
}
