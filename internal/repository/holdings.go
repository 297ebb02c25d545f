package repository

import (
	"context"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

func (r *Repository) AddInvestment(ctx context.Context, inv models.Investment) models.Investment {
	inv.ID = r.newID()
	r.mutate(ctx, "add_investment", func(s *models.Snapshot) bool {
		s.Investments = append(s.Investments, inv)
		return true
	})
	return inv
}

func (r *Repository) UpdateInvestment(ctx context.Context, inv models.Investment) bool {
	return r.mutate(ctx, "update_investment", func(s *models.Snapshot) bool {
		return replaceByID(s.Investments, inv)
	})
}

func (r *Repository) DeleteInvestment(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_investment", func(s *models.Snapshot) bool {
		return removeByID(&s.Investments, id)
	})
}

func (r *Repository) Investment(id string) (models.Investment, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Investment { return s.Investments }, id)
}

// AddNote stores a new note as not completed.
func (r *Repository) AddNote(ctx context.Context, n models.Note) models.Note {
	n.ID = r.newID()
	n.Completed = false
	r.mutate(ctx, "add_note", func(s *models.Snapshot) bool {
		s.Notes = append(s.Notes, n)
		return true
	})
	return n
}

func (r *Repository) UpdateNote(ctx context.Context, n models.Note) bool {
	return r.mutate(ctx, "update_note", func(s *models.Snapshot) bool {
		return replaceByID(s.Notes, n)
	})
}

func (r *Repository) DeleteNote(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_note", func(s *models.Snapshot) bool {
		return removeByID(&s.Notes, id)
	})
}

func (r *Repository) Note(id string) (models.Note, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Note { return s.Notes }, id)
}

// ToggleNote flips a note's completed flag.
func (r *Repository) ToggleNote(ctx context.Context, id string) bool {
	return r.mutate(ctx, "toggle_note", func(s *models.Snapshot) bool {
		i := indexOf(s.Notes, id)
		if i < 0 {
			return false
		}
		s.Notes[i].Completed = !s.Notes[i].Completed
		return true
	})
}
