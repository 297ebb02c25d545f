package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type LoanType string

const (
	LoanBorrowed LoanType = "Borrowed"
	LoanLent     LoanType = "Lent"
)

type LoanStatus string

const (
	LoanOngoing LoanStatus = "Ongoing"
	LoanPaid    LoanStatus = "Paid"
)

type Loan struct {
	ID              string           `json:"id"`
	Type            LoanType         `json:"type" validate:"oneof=Borrowed Lent"`
	LenderName      string           `json:"lenderName" validate:"required"`
	Principal       decimal.Decimal  `json:"principal" validate:"gt=0"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty" validate:"omitempty,gte=0"`
	BorrowingDate   civil.Date       `json:"borrowingDate" validate:"required"`
	Status          LoanStatus       `json:"status"`
	Payments        []EmiPayment     `json:"payments" validate:"omitempty,dive"`
	IsEMI           bool             `json:"isEmi"`
	RepaymentPeriod *int             `json:"repaymentPeriod,omitempty" validate:"omitempty,gt=0,max=1200"`
	EMIAmount       *decimal.Decimal `json:"emiAmount,omitempty" validate:"omitempty,gt=0"`
}

// EmiPayment is a repayment logged against exactly one loan.
type EmiPayment struct {
	ID          string          `json:"id"`
	PaymentDate civil.Date      `json:"paymentDate" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
}

// TotalPaid sums every logged payment.
func (l Loan) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Outstanding is principal minus payments. Overpayment makes it negative.
func (l Loan) Outstanding() decimal.Decimal {
	return l.Principal.Sub(l.TotalPaid())
}

// RecomputeStatus derives Status from the payment history.
func (l *Loan) RecomputeStatus() {
	if l.TotalPaid().GreaterThanOrEqual(l.Principal) {
		l.Status = LoanPaid
		return
	}
	l.Status = LoanOngoing
}

// LatestPaymentDate returns the greatest payment date, regardless of the
// order payments were logged in.
func (l Loan) LatestPaymentDate() (civil.Date, bool) {
	if len(l.Payments) == 0 {
		return civil.Date{}, false
	}
	latest := l.Payments[0].PaymentDate
	for _, p := range l.Payments[1:] {
		if p.PaymentDate.After(latest) {
			latest = p.PaymentDate
		}
	}
	return latest, true
}

// EMIValue returns the configured installment, zero when unset.
func (l Loan) EMIValue() decimal.Decimal {
	if l.EMIAmount == nil {
		return decimal.Zero
	}
	return *l.EMIAmount
}
