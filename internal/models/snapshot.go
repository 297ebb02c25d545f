package models

import "slices"

// Snapshot is the complete persisted state: every collection, serialised as a
// single unit.
type Snapshot struct {
	Expenses      []Expense      `json:"expenses"`
	Income        []Income       `json:"income"`
	Loans         []Loan         `json:"loans"`
	Subscriptions []Subscription `json:"subscriptions"`
	Recharges     []Recharge     `json:"recharges"`
	Notes         []Note         `json:"notes"`
	Budgets       []Budget       `json:"budgets"`
	Goals         []Goal         `json:"goals"`
	Investments   []Investment   `json:"investments"`
	Bills         []Bill         `json:"bills"`
	Transfers     []Transfer     `json:"transfers"`
}

// EmptySnapshot has every collection present and empty.
func EmptySnapshot() Snapshot {
	var s Snapshot
	s.Normalize()
	return s
}

// Clone returns a deep copy that shares no slices with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Expenses:      slices.Clone(s.Expenses),
		Income:        slices.Clone(s.Income),
		Loans:         make([]Loan, len(s.Loans)),
		Subscriptions: slices.Clone(s.Subscriptions),
		Recharges:     slices.Clone(s.Recharges),
		Notes:         slices.Clone(s.Notes),
		Budgets:       slices.Clone(s.Budgets),
		Goals:         make([]Goal, len(s.Goals)),
		Investments:   slices.Clone(s.Investments),
		Bills:         slices.Clone(s.Bills),
		Transfers:     slices.Clone(s.Transfers),
	}
	for i, l := range s.Loans {
		l.Payments = slices.Clone(l.Payments)
		out.Loans[i] = l
	}
	for i, g := range s.Goals {
		g.Contributions = slices.Clone(g.Contributions)
		out.Goals[i] = g
	}
	out.Normalize()
	return out
}

// Normalize replaces nil collections with empty ones and re-derives loan
// status and goal balances from their children. Stored derived values are
// never trusted.
func (s *Snapshot) Normalize() {
	s.Expenses = orEmpty(s.Expenses)
	s.Income = orEmpty(s.Income)
	s.Loans = orEmpty(s.Loans)
	s.Subscriptions = orEmpty(s.Subscriptions)
	s.Recharges = orEmpty(s.Recharges)
	s.Notes = orEmpty(s.Notes)
	s.Budgets = orEmpty(s.Budgets)
	s.Goals = orEmpty(s.Goals)
	s.Investments = orEmpty(s.Investments)
	s.Bills = orEmpty(s.Bills)
	s.Transfers = orEmpty(s.Transfers)

	for i := range s.Loans {
		s.Loans[i].Payments = orEmpty(s.Loans[i].Payments)
		s.Loans[i].RecomputeStatus()
	}
	for i := range s.Goals {
		s.Goals[i].Contributions = orEmpty(s.Goals[i].Contributions)
		s.Goals[i].RecomputeCurrentAmount()
	}
	for i := range s.Bills {
		if s.Bills[i].Status == "" {
			s.Bills[i].Status = BillUnpaid
		}
	}
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
