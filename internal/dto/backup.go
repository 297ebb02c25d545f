package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

// Backup is the export envelope.
type Backup struct {
	HSBooksData *models.Snapshot `json:"hsBooksData"`
}

// MatchResult reports whether an update or delete found its record.
type MatchResult struct {
	Matched bool `json:"matched"`
}

type EMIQuoteArgs struct {
	Principal decimal.Decimal
	Rate      decimal.Decimal
	Months    int
}
