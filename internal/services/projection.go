package services

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/finance"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/helpers"
)

// ForecastHorizonDays is the number of days covered by a forecast, today included.
const ForecastHorizonDays = 30

// EMIQualifies reports whether a loan produces scheduled installments:
// money we borrowed, still outstanding, repaid by a set EMI.
func EMIQualifies(l models.Loan) bool {
	return l.Type == models.LoanBorrowed &&
		l.Status == models.LoanOngoing &&
		l.IsEMI &&
		l.EMIValue().IsPositive()
}

// NextEMIDue is one month after the latest payment, or one month after the
// loan was taken when nothing has been paid yet.
func NextEMIDue(l models.Loan) civil.Date {
	if latest, ok := l.LatestPaymentDate(); ok {
		return finance.AddMonths(latest, 1)
	}
	return finance.AddMonths(l.BorrowingDate, 1)
}

// SubscriptionOccurrences lists billing dates in [from, to]. Monthly and
// quarterly plans advance from the stored next bill by whole cycles, so a bill
// that has already passed rolls forward into the range. Yearly plans only
// contribute their stored date.
func SubscriptionOccurrences(sub models.Subscription, from, to civil.Date) []civil.Date {
	step := sub.Cycle.Months()
	if sub.Cycle == models.CycleYearly || step == 0 {
		if within(sub.NextBill, from, to) {
			return []civil.Date{sub.NextBill}
		}
		return nil
	}

	var out []civil.Date
	for k := 0; ; k++ {
		d := finance.AddMonths(sub.NextBill, k*step)
		if d.After(to) {
			break
		}
		if !d.Before(from) {
			out = append(out, d)
		}
	}
	return out
}

// Obligations lists every known due payment, sorted by due date. Loans count
// when they qualify for EMI projection, bills only while unpaid.
func Obligations(snap models.Snapshot) []dto.UpcomingPayment {
	var out []dto.UpcomingPayment
	for _, l := range snap.Loans {
		if !EMIQualifies(l) {
			continue
		}
		out = append(out, dto.UpcomingPayment{
			ID:      "loan-" + l.ID,
			Name:    fmt.Sprintf("EMI for %s", l.LenderName),
			Kind:    dto.PaymentKindLoan,
			DueDate: NextEMIDue(l),
			Amount:  helpers.Ptr(l.EMIValue()),
		})
	}
	for _, s := range snap.Subscriptions {
		out = append(out, dto.UpcomingPayment{
			ID:      "sub-" + s.ID,
			Name:    s.Name,
			Kind:    dto.PaymentKindSubscription,
			DueDate: s.NextBill,
			Amount:  helpers.Ptr(s.Amount),
		})
	}
	for _, r := range snap.Recharges {
		out = append(out, dto.UpcomingPayment{
			ID:      "recharge-" + r.ID,
			Name:    fmt.Sprintf("%s %s", r.Provider, r.Service),
			Kind:    dto.PaymentKindRecharge,
			DueDate: r.ExpiryDate,
		})
	}
	for _, b := range snap.Bills {
		if b.Status != models.BillUnpaid {
			continue
		}
		out = append(out, dto.UpcomingPayment{
			ID:      "bill-" + b.ID,
			Name:    b.Name,
			Kind:    dto.PaymentKindBill,
			DueDate: b.DueDate,
			Amount:  helpers.Ptr(b.Amount),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

func within(d, from, to civil.Date) bool {
	return !d.Before(from) && !d.After(to)
}

func sumAmounts[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(amount(it))
	}
	return total
}
