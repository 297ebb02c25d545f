package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

// Saver receives a copy of the state after every effective mutation. Save must
// not block the caller.
type Saver interface {
	Save(ctx context.Context, snap models.Snapshot)
}

type nopSaver struct{}

func (nopSaver) Save(context.Context, models.Snapshot) {}

// Repository holds the canonical collections. Each mutation and the derived
// values it invalidates are applied under one write lock.
type Repository struct {
	mu    sync.RWMutex
	data  models.Snapshot
	saver Saver
	newID func() string
}

type Option func(*Repository)

// WithSaver sets the write-back target.
func WithSaver(s Saver) Option {
	return func(r *Repository) { r.saver = s }
}

// WithIDGenerator replaces the default random identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) { r.newID = fn }
}

// WithSnapshot seeds the repository, typically with the state loaded at start.
func WithSnapshot(snap models.Snapshot) Option {
	return func(r *Repository) { r.data = snap.Clone() }
}

func New(opts ...Option) *Repository {
	r := &Repository{
		data:  models.EmptySnapshot(),
		saver: nopSaver{},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot returns a deep copy of the current state.
func (r *Repository) Snapshot() models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data.Clone()
}

// Totals sums income and expenses. Transfers are never counted.
func (r *Repository) Totals() (income, expenses, net decimal.Decimal) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	income, expenses = decimal.Zero, decimal.Zero
	for _, i := range r.data.Income {
		income = income.Add(i.Amount)
	}
	for _, e := range r.data.Expenses {
		expenses = expenses.Add(e.Amount)
	}
	return income, expenses, income.Sub(expenses)
}

// Replace swaps in a whole snapshot, re-deriving every derived field. Records
// with a blank or repeated id, children included, get a fresh id.
func (r *Repository) Replace(ctx context.Context, snap models.Snapshot) {
	next := snap.Clone()
	r.assignIDs(&next)
	r.mutate(ctx, "replace", func(s *models.Snapshot) bool {
		*s = next
		return true
	})
}

func (r *Repository) assignIDs(s *models.Snapshot) {
	uniqueIDs(s.Expenses, func(e *models.Expense) *string { return &e.ID }, r.newID)
	uniqueIDs(s.Income, func(i *models.Income) *string { return &i.ID }, r.newID)
	uniqueIDs(s.Loans, func(l *models.Loan) *string { return &l.ID }, r.newID)
	uniqueIDs(s.Subscriptions, func(sub *models.Subscription) *string { return &sub.ID }, r.newID)
	uniqueIDs(s.Recharges, func(rc *models.Recharge) *string { return &rc.ID }, r.newID)
	uniqueIDs(s.Notes, func(n *models.Note) *string { return &n.ID }, r.newID)
	uniqueIDs(s.Budgets, func(b *models.Budget) *string { return &b.ID }, r.newID)
	uniqueIDs(s.Goals, func(g *models.Goal) *string { return &g.ID }, r.newID)
	uniqueIDs(s.Investments, func(inv *models.Investment) *string { return &inv.ID }, r.newID)
	uniqueIDs(s.Bills, func(b *models.Bill) *string { return &b.ID }, r.newID)
	uniqueIDs(s.Transfers, func(t *models.Transfer) *string { return &t.ID }, r.newID)

	for i := range s.Loans {
		uniqueIDs(s.Loans[i].Payments, func(p *models.EmiPayment) *string { return &p.ID }, r.newID)
	}
	for i := range s.Goals {
		uniqueIDs(s.Goals[i].Contributions, func(c *models.GoalContribution) *string { return &c.ID }, r.newID)
	}
}

// uniqueIDs replaces blank ids and every repeat after the first occurrence.
func uniqueIDs[T any](items []T, id func(*T) *string, newID func() string) {
	seen := make(map[string]bool, len(items))
	for i := range items {
		p := id(&items[i])
		if *p == "" || seen[*p] {
			*p = newID()
		}
		seen[*p] = true
	}
}

// ClearAll empties every collection.
func (r *Repository) ClearAll(ctx context.Context) {
	r.mutate(ctx, "clear_all", func(s *models.Snapshot) bool {
		*s = models.EmptySnapshot()
		return true
	})
}

// mutate runs fn under the write lock and, when fn reports a change, hands a
// copy of the new state to the saver. A false return means nothing matched.
func (r *Repository) mutate(ctx context.Context, op string, fn func(s *models.Snapshot) bool) bool {
	r.mu.Lock()
	changed := fn(&r.data)
	var snap models.Snapshot
	if changed {
		snap = r.data.Clone()
	}
	r.mu.Unlock()

	if !changed {
		logger.FromContext(ctx).Debug("repository: no record matched", "op", op)
		return false
	}
	r.saver.Save(ctx, snap)
	return true
}

func lookup[T models.Record](r *Repository, list func(s *models.Snapshot) []T, id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := list(&r.data)
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func indexOf[T models.Record](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.RecordID() == id })
}

func replaceByID[T models.Record](items []T, rec T) bool {
	i := indexOf(items, rec.RecordID())
	if i < 0 {
		return false
	}
	items[i] = rec
	return true
}

func removeByID[T models.Record](items *[]T, id string) bool {
	i := indexOf(*items, id)
	if i < 0 {
		return false
	}
	*items = slices.Delete(*items, i, i+1)
	return true
}
