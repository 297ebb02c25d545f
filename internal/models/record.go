package models

// Record is implemented by every top-level entity kept in a Snapshot.
type Record interface {
	RecordID() string
}

func (e Expense) RecordID() string      { return e.ID }
func (i Income) RecordID() string       { return i.ID }
func (l Loan) RecordID() string         { return l.ID }
func (s Subscription) RecordID() string { return s.ID }
func (r Recharge) RecordID() string     { return r.ID }
func (n Note) RecordID() string         { return n.ID }
func (b Budget) RecordID() string       { return b.ID }
func (g Goal) RecordID() string         { return g.ID }
func (i Investment) RecordID() string   { return i.ID }
func (b Bill) RecordID() string         { return b.ID }
func (t Transfer) RecordID() string     { return t.ID }
