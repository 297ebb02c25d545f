package repository

import (
	"context"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

func (r *Repository) AddExpense(ctx context.Context, e models.Expense) models.Expense {
	e.ID = r.newID()
	r.mutate(ctx, "add_expense", func(s *models.Snapshot) bool {
		s.Expenses = append(s.Expenses, e)
		return true
	})
	return e
}

func (r *Repository) UpdateExpense(ctx context.Context, e models.Expense) bool {
	return r.mutate(ctx, "update_expense", func(s *models.Snapshot) bool {
		return replaceByID(s.Expenses, e)
	})
}

func (r *Repository) DeleteExpense(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_expense", func(s *models.Snapshot) bool {
		return removeByID(&s.Expenses, id)
	})
}

func (r *Repository) Expense(id string) (models.Expense, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Expense { return s.Expenses }, id)
}

func (r *Repository) AddIncome(ctx context.Context, i models.Income) models.Income {
	i.ID = r.newID()
	r.mutate(ctx, "add_income", func(s *models.Snapshot) bool {
		s.Income = append(s.Income, i)
		return true
	})
	return i
}

func (r *Repository) UpdateIncome(ctx context.Context, i models.Income) bool {
	return r.mutate(ctx, "update_income", func(s *models.Snapshot) bool {
		return replaceByID(s.Income, i)
	})
}

func (r *Repository) DeleteIncome(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_income", func(s *models.Snapshot) bool {
		return removeByID(&s.Income, id)
	})
}

func (r *Repository) Income(id string) (models.Income, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Income { return s.Income }, id)
}

func (r *Repository) AddTransfer(ctx context.Context, t models.Transfer) models.Transfer {
	t.ID = r.newID()
	r.mutate(ctx, "add_transfer", func(s *models.Snapshot) bool {
		s.Transfers = append(s.Transfers, t)
		return true
	})
	return t
}

func (r *Repository) UpdateTransfer(ctx context.Context, t models.Transfer) bool {
	return r.mutate(ctx, "update_transfer", func(s *models.Snapshot) bool {
		return replaceByID(s.Transfers, t)
	})
}

func (r *Repository) DeleteTransfer(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_transfer", func(s *models.Snapshot) bool {
		return removeByID(&s.Transfers, id)
	})
}

func (r *Repository) Transfer(id string) (models.Transfer, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Transfer { return s.Transfers }, id)
}

func (r *Repository) AddBudget(ctx context.Context, b models.Budget) models.Budget {
	b.ID = r.newID()
	r.mutate(ctx, "add_budget", func(s *models.Snapshot) bool {
		s.Budgets = append(s.Budgets, b)
		return true
	})
	return b
}

func (r *Repository) UpdateBudget(ctx context.Context, b models.Budget) bool {
	return r.mutate(ctx, "update_budget", func(s *models.Snapshot) bool {
		return replaceByID(s.Budgets, b)
	})
}

func (r *Repository) DeleteBudget(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_budget", func(s *models.Snapshot) bool {
		return removeByID(&s.Budgets, id)
	})
}

func (r *Repository) Budget(id string) (models.Budget, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Budget { return s.Budgets }, id)
}
