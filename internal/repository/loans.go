package repository

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/finance"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/helpers"
)

// AddLoan stores a new loan with no payments. Status is always derived.
func (r *Repository) AddLoan(ctx context.Context, l models.Loan) models.Loan {
	l.ID = r.newID()
	l.Payments = []models.EmiPayment{}
	fillEMIAmount(&l)
	l.RecomputeStatus()

	r.mutate(ctx, "add_loan", func(s *models.Snapshot) bool {
		s.Loans = append(s.Loans, l)
		return true
	})
	return l
}

// UpdateLoan replaces a loan and re-derives its status. A nil payment list
// keeps the payments already on record.
func (r *Repository) UpdateLoan(ctx context.Context, l models.Loan) bool {
	return r.mutate(ctx, "update_loan", func(s *models.Snapshot) bool {
		i := indexOf(s.Loans, l.ID)
		if i < 0 {
			return false
		}
		if l.Payments == nil {
			l.Payments = s.Loans[i].Payments
		} else {
			l.Payments = slices.Clone(l.Payments)
			for j := range l.Payments {
				if l.Payments[j].ID == "" {
					l.Payments[j].ID = r.newID()
				}
			}
		}
		fillEMIAmount(&l)
		l.RecomputeStatus()
		s.Loans[i] = l
		return true
	})
}

// DeleteLoan removes the loan together with its payments.
func (r *Repository) DeleteLoan(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_loan", func(s *models.Snapshot) bool {
		return removeByID(&s.Loans, id)
	})
}

func (r *Repository) Loan(id string) (models.Loan, bool) {
	l, ok := lookup(r, func(s *models.Snapshot) []models.Loan { return s.Loans }, id)
	l.Payments = slices.Clone(l.Payments)
	return l, ok
}

// LogPayment appends a payment to the loan and re-derives its status.
func (r *Repository) LogPayment(ctx context.Context, loanID string, p models.EmiPayment) (models.EmiPayment, bool) {
	p.ID = r.newID()
	ok := r.mutate(ctx, "log_payment", func(s *models.Snapshot) bool {
		i := indexOf(s.Loans, loanID)
		if i < 0 {
			return false
		}
		s.Loans[i].Payments = append(s.Loans[i].Payments, p)
		s.Loans[i].RecomputeStatus()
		return true
	})
	return p, ok
}

// DeletePayment removes one payment from the loan and re-derives its status.
func (r *Repository) DeletePayment(ctx context.Context, loanID, paymentID string) bool {
	return r.mutate(ctx, "delete_payment", func(s *models.Snapshot) bool {
		i := indexOf(s.Loans, loanID)
		if i < 0 {
			return false
		}
		j := slices.IndexFunc(s.Loans[i].Payments, func(p models.EmiPayment) bool { return p.ID == paymentID })
		if j < 0 {
			return false
		}
		s.Loans[i].Payments = slices.Delete(s.Loans[i].Payments, j, j+1)
		s.Loans[i].RecomputeStatus()
		return true
	})
}

// fillEMIAmount sets the installment of an EMI loan from its rate and term
// when the caller left it blank.
func fillEMIAmount(l *models.Loan) {
	if !l.IsEMI || l.EMIAmount != nil || l.RepaymentPeriod == nil {
		return
	}
	res := finance.CalculateEMI(l.Principal, helpers.ValueOr(l.InterestRate, decimal.Zero), *l.RepaymentPeriod)
	if res.EMI.IsPositive() {
		l.EMIAmount = helpers.Ptr(res.EMI.Round(2))
	}
}
