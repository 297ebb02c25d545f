package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type InvestmentType string

const (
	InvestmentStock      InvestmentType = "Stock"
	InvestmentMutualFund InvestmentType = "Mutual Fund"
	InvestmentRealEstate InvestmentType = "Real Estate"
	InvestmentCrypto     InvestmentType = "Crypto"
	InvestmentOther      InvestmentType = "Other"
)

// Investment prices are per unit.
type Investment struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" validate:"required"`
	Type          InvestmentType  `json:"type" validate:"oneof=Stock 'Mutual Fund' 'Real Estate' Crypto Other"`
	PurchaseDate  civil.Date      `json:"purchaseDate" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" validate:"gte=0"`
	Quantity      decimal.Decimal `json:"quantity" validate:"gt=0"`
	CurrentValue  decimal.Decimal `json:"currentValue" validate:"gte=0"`
}

func (i Investment) InvestedValue() decimal.Decimal {
	return i.PurchasePrice.Mul(i.Quantity)
}

func (i Investment) CurrentTotal() decimal.Decimal {
	return i.CurrentValue.Mul(i.Quantity)
}

func (i Investment) GainLoss() decimal.Decimal {
	return i.CurrentTotal().Sub(i.InvestedValue())
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Note struct {
	ID        string      `json:"id"`
	Text      string      `json:"text" validate:"required"`
	Completed bool        `json:"completed"`
	Priority  Priority    `json:"priority" validate:"oneof=High Medium Low"`
	DueDate   *civil.Date `json:"dueDate,omitempty"`
}
