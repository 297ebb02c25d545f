package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type ContributionType string

const (
	ContributionDeposit    ContributionType = "deposit"
	ContributionWithdrawal ContributionType = "withdrawal"
)

type Goal struct {
	ID            string             `json:"id"`
	Name          string             `json:"name" validate:"required"`
	TargetAmount  decimal.Decimal    `json:"targetAmount" validate:"gt=0"`
	CurrentAmount decimal.Decimal    `json:"currentAmount"`
	Deadline      *civil.Date        `json:"deadline,omitempty"`
	Contributions []GoalContribution `json:"contributions" validate:"omitempty,dive"`
}

type GoalContribution struct {
	ID     string           `json:"id"`
	Date   civil.Date       `json:"date" validate:"required"`
	Amount decimal.Decimal  `json:"amount" validate:"gt=0"`
	Type   ContributionType `json:"type" validate:"oneof=deposit withdrawal"`
}

// RecomputeCurrentAmount replays the full contribution history. The result is
// not clamped, it may be negative or exceed the target.
func (g *Goal) RecomputeCurrentAmount() {
	total := decimal.Zero
	for _, c := range g.Contributions {
		switch c.Type {
		case ContributionDeposit:
			total = total.Add(c.Amount)
		case ContributionWithdrawal:
			total = total.Sub(c.Amount)
		}
	}
	g.CurrentAmount = total
}

// Progress is CurrentAmount as a percentage of TargetAmount, 0 without a target.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}
