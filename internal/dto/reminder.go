package dto

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type Reminder struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     string           `json:"kind"`
	DueDate  civil.Date       `json:"dueDate"`
	Amount   *decimal.Decimal `json:"amount"`
	DaysLeft int              `json:"daysLeft"`
}

type ReminderRun struct {
	Sent    []Reminder `json:"sent"`
	Skipped int        `json:"skipped"`
	Failed  int        `json:"failed"`
}
