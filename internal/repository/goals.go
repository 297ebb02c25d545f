package repository

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

// AddGoal stores a goal with an empty contribution history.
func (r *Repository) AddGoal(ctx context.Context, g models.Goal) models.Goal {
	g.ID = r.newID()
	g.Contributions = []models.GoalContribution{}
	g.CurrentAmount = decimal.Zero

	r.mutate(ctx, "add_goal", func(s *models.Snapshot) bool {
		s.Goals = append(s.Goals, g)
		return true
	})
	return g
}

// UpdateGoal edits name, target and deadline. Contributions and the derived
// current amount are kept.
func (r *Repository) UpdateGoal(ctx context.Context, g models.Goal) bool {
	return r.mutate(ctx, "update_goal", func(s *models.Snapshot) bool {
		i := indexOf(s.Goals, g.ID)
		if i < 0 {
			return false
		}
		s.Goals[i].Name = g.Name
		s.Goals[i].TargetAmount = g.TargetAmount
		s.Goals[i].Deadline = g.Deadline
		return true
	})
}

func (r *Repository) DeleteGoal(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_goal", func(s *models.Snapshot) bool {
		return removeByID(&s.Goals, id)
	})
}

func (r *Repository) Goal(id string) (models.Goal, bool) {
	g, ok := lookup(r, func(s *models.Snapshot) []models.Goal { return s.Goals }, id)
	g.Contributions = slices.Clone(g.Contributions)
	return g, ok
}

// AddContribution appends to the goal's history and replays it.
func (r *Repository) AddContribution(ctx context.Context, goalID string, c models.GoalContribution) (models.GoalContribution, bool) {
	c.ID = r.newID()
	ok := r.mutate(ctx, "add_contribution", func(s *models.Snapshot) bool {
		i := indexOf(s.Goals, goalID)
		if i < 0 {
			return false
		}
		s.Goals[i].Contributions = append(s.Goals[i].Contributions, c)
		s.Goals[i].RecomputeCurrentAmount()
		return true
	})
	return c, ok
}

// DeleteContribution removes one entry from the goal's history and replays it.
func (r *Repository) DeleteContribution(ctx context.Context, goalID, contributionID string) bool {
	return r.mutate(ctx, "delete_contribution", func(s *models.Snapshot) bool {
		i := indexOf(s.Goals, goalID)
		if i < 0 {
			return false
		}
		j := slices.IndexFunc(s.Goals[i].Contributions, func(c models.GoalContribution) bool { return c.ID == contributionID })
		if j < 0 {
			return false
		}
		s.Goals[i].Contributions = slices.Delete(s.Goals[i].Contributions, j, j+1)
		s.Goals[i].RecomputeCurrentAmount()
		return true
	})
}
