package repository

import (
	"context"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

func (r *Repository) AddSubscription(ctx context.Context, sub models.Subscription) models.Subscription {
	sub.ID = r.newID()
	r.mutate(ctx, "add_subscription", func(s *models.Snapshot) bool {
		s.Subscriptions = append(s.Subscriptions, sub)
		return true
	})
	return sub
}

func (r *Repository) UpdateSubscription(ctx context.Context, sub models.Subscription) bool {
	return r.mutate(ctx, "update_subscription", func(s *models.Snapshot) bool {
		return replaceByID(s.Subscriptions, sub)
	})
}

func (r *Repository) DeleteSubscription(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_subscription", func(s *models.Snapshot) bool {
		return removeByID(&s.Subscriptions, id)
	})
}

func (r *Repository) Subscription(id string) (models.Subscription, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Subscription { return s.Subscriptions }, id)
}

func (r *Repository) AddRecharge(ctx context.Context, rc models.Recharge) models.Recharge {
	rc.ID = r.newID()
	r.mutate(ctx, "add_recharge", func(s *models.Snapshot) bool {
		s.Recharges = append(s.Recharges, rc)
		return true
	})
	return rc
}

func (r *Repository) UpdateRecharge(ctx context.Context, rc models.Recharge) bool {
	return r.mutate(ctx, "update_recharge", func(s *models.Snapshot) bool {
		return replaceByID(s.Recharges, rc)
	})
}

func (r *Repository) DeleteRecharge(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_recharge", func(s *models.Snapshot) bool {
		return removeByID(&s.Recharges, id)
	})
}

func (r *Repository) Recharge(id string) (models.Recharge, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Recharge { return s.Recharges }, id)
}

// AddBill stores a new bill as Unpaid.
func (r *Repository) AddBill(ctx context.Context, b models.Bill) models.Bill {
	b.ID = r.newID()
	b.Status = models.BillUnpaid
	r.mutate(ctx, "add_bill", func(s *models.Snapshot) bool {
		s.Bills = append(s.Bills, b)
		return true
	})
	return b
}

// UpdateBill replaces a bill. An empty status keeps the stored one.
func (r *Repository) UpdateBill(ctx context.Context, b models.Bill) bool {
	return r.mutate(ctx, "update_bill", func(s *models.Snapshot) bool {
		i := indexOf(s.Bills, b.ID)
		if i < 0 {
			return false
		}
		if b.Status == "" {
			b.Status = s.Bills[i].Status
		}
		s.Bills[i] = b
		return true
	})
}

func (r *Repository) DeleteBill(ctx context.Context, id string) bool {
	return r.mutate(ctx, "delete_bill", func(s *models.Snapshot) bool {
		return removeByID(&s.Bills, id)
	})
}

func (r *Repository) Bill(id string) (models.Bill, bool) {
	return lookup(r, func(s *models.Snapshot) []models.Bill { return s.Bills }, id)
}

// ToggleBillStatus flips a bill between Unpaid and Paid.
func (r *Repository) ToggleBillStatus(ctx context.Context, id string) bool {
	return r.mutate(ctx, "toggle_bill", func(s *models.Snapshot) bool {
		i := indexOf(s.Bills, id)
		if i < 0 {
			return false
		}
		s.Bills[i].Toggle()
		return true
	})
}
