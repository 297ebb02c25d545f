package services

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/models"
)

// BuildForecast projects the running balance for ForecastHorizonDays days
// starting today. The starting balance is all-time income minus expenses;
// each day subtracts the EMIs and subscription bills falling on it.
func BuildForecast(snap models.Snapshot, today civil.Date) dto.CashFlowForecast {
	end := today.AddDays(ForecastHorizonDays - 1)

	income := sumAmounts(snap.Income, func(i models.Income) decimal.Decimal { return i.Amount })
	expenses := sumAmounts(snap.Expenses, func(e models.Expense) decimal.Decimal { return e.Amount })

	outflows := scheduledOutflows(snap, today, end)
	byDay := make(map[civil.Date]decimal.Decimal, len(outflows))
	for _, o := range outflows {
		byDay[o.Date] = byDay[o.Date].Add(o.Amount)
	}

	result := dto.CashFlowForecast{
		StartingBalance: income.Sub(expenses),
		HasIncome:       len(snap.Income) > 0,
		Points:          make([]dto.ForecastPoint, 0, ForecastHorizonDays),
		Outflows:        outflows,
	}

	balance := result.StartingBalance
	for d := today; !d.After(end); d = d.AddDays(1) {
		out := byDay[d]
		balance = balance.Sub(out)
		result.Points = append(result.Points, dto.ForecastPoint{
			Date:    d,
			Label:   dayLabel(d),
			Balance: balance,
			Outflow: out,
		})
	}
	return result
}

func scheduledOutflows(snap models.Snapshot, from, to civil.Date) []dto.ScheduledOutflow {
	out := []dto.ScheduledOutflow{}
	for _, l := range snap.Loans {
		if !EMIQualifies(l) {
			continue
		}
		// only the next installment is projected, even if more would fit
		due := NextEMIDue(l)
		if within(due, from, to) {
			out = append(out, dto.ScheduledOutflow{
				Date:   due,
				Name:   fmt.Sprintf("EMI for %s", l.LenderName),
				Kind:   dto.PaymentKindLoan,
				Amount: l.EMIValue(),
			})
		}
	}
	for _, s := range snap.Subscriptions {
		for _, d := range SubscriptionOccurrences(s, from, to) {
			out = append(out, dto.ScheduledOutflow{
				Date:   d,
				Name:   s.Name,
				Kind:   dto.PaymentKindSubscription,
				Amount: s.Amount,
			})
		}
	}
	return out
}

// dayLabel renders "2 Jan".
func dayLabel(d civil.Date) string {
	return fmt.Sprintf("%d %s", d.Day, d.Month.String()[:3])
}
