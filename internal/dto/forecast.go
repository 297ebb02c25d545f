package dto

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type ForecastPoint struct {
	Date    civil.Date      `json:"date"`
	Label   string          `json:"label"`
	Balance decimal.Decimal `json:"balance"`
	Outflow decimal.Decimal `json:"outflow"`
}

type ScheduledOutflow struct {
	Date   civil.Date      `json:"date"`
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowForecast is a day-by-day projected balance. Callers should treat a
// forecast without income history as insufficient data.
type CashFlowForecast struct {
	StartingBalance decimal.Decimal    `json:"startingBalance"`
	HasIncome       bool               `json:"hasIncome"`
	Points          []ForecastPoint    `json:"points"`
	Outflows        []ScheduledOutflow `json:"outflows"`
}
