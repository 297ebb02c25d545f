package services

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func amt(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func amtPtr(v string) *decimal.Decimal {
	d := amt(v)
	return &d
}

func strPtr(s string) *string {
	return &s
}

type staticSource struct {
	snap models.Snapshot
}

func (s staticSource) Snapshot() models.Snapshot {
	return s.snap.Clone()
}

func fixedNow(d civil.Date) func() time.Time {
	return func() time.Time { return d.In(time.UTC).Add(10 * time.Hour) }
}

func emiLoan(id, lender string, borrowed civil.Date, emi string, payments ...models.EmiPayment) models.Loan {
	l := models.Loan{
		ID:            id,
		Type:          models.LoanBorrowed,
		LenderName:    lender,
		Principal:     amt("100000"),
		BorrowingDate: borrowed,
		IsEMI:         true,
		EMIAmount:     amtPtr(emi),
		Payments:      payments,
	}
	l.RecomputeStatus()
	return l
}
