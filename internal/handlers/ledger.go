package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/finance"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/internal/repository"
	"github.com/GregMSThompson/hsbooks/internal/response"
)

type ledgerHandlers struct {
	ResponseHandler response.ResponseHandler
	Repo            *repository.Repository
	ReportSvc       reportService
	validate        *validator.Validate
}

func NewLedgerHandlers(deps *Deps) *ledgerHandlers {
	return &ledgerHandlers{
		ResponseHandler: deps.ResponseHandler,
		Repo:            deps.Repo,
		ReportSvc:       deps.ReportSvc,
		validate:        newValidator(),
	}
}

// LedgerRoutes mounts the record collections. Routes with static segments are
// registered before the generic /{id} handlers of their kind.
func (h *ledgerHandlers) LedgerRoutes(r chi.Router) {
	repo := h.Repo

	r.Route("/expenses", newResource(h, "expense",
		func(s models.Snapshot) []models.Expense { return s.Expenses },
		repo.Expense, repo.AddExpense,
		func(ctx context.Context, id string, e models.Expense) bool {
			e.ID = id
			return repo.UpdateExpense(ctx, e)
		},
		repo.DeleteExpense).routes)

	r.Route("/income", newResource(h, "income",
		func(s models.Snapshot) []models.Income { return s.Income },
		repo.Income, repo.AddIncome,
		func(ctx context.Context, id string, i models.Income) bool {
			i.ID = id
			return repo.UpdateIncome(ctx, i)
		},
		repo.DeleteIncome).routes)

	r.Route("/transfers", newResource(h, "transfer",
		func(s models.Snapshot) []models.Transfer { return s.Transfers },
		repo.Transfer, repo.AddTransfer,
		func(ctx context.Context, id string, t models.Transfer) bool {
			t.ID = id
			return repo.UpdateTransfer(ctx, t)
		},
		repo.DeleteTransfer).routes)

	r.Route("/budgets", newResource(h, "budget",
		func(s models.Snapshot) []models.Budget { return s.Budgets },
		repo.Budget, repo.AddBudget,
		func(ctx context.Context, id string, b models.Budget) bool {
			b.ID = id
			return repo.UpdateBudget(ctx, b)
		},
		repo.DeleteBudget).routes)

	r.Route("/loans", func(r chi.Router) {
		r.Get("/emi", h.QuoteEMI)
		r.Get("/balances", h.LoanBalances)
		r.Post("/{id}/payments", h.LogPayment)
		r.Delete("/{id}/payments/{paymentId}", h.DeletePayment)
		newResource(h, "loan",
			func(s models.Snapshot) []models.Loan { return s.Loans },
			repo.Loan, repo.AddLoan,
			func(ctx context.Context, id string, l models.Loan) bool {
			l.ID = id
			return repo.UpdateLoan(ctx, l)
		},
			repo.DeleteLoan).routes(r)
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/progress", h.GoalProgress)
		r.Post("/{id}/contributions", h.AddContribution)
		r.Delete("/{id}/contributions/{contributionId}", h.DeleteContribution)
		newResource(h, "goal",
			func(s models.Snapshot) []models.Goal { return s.Goals },
			repo.Goal, repo.AddGoal,
			func(ctx context.Context, id string, g models.Goal) bool {
			g.ID = id
			return repo.UpdateGoal(ctx, g)
		},
			repo.DeleteGoal).routes(r)
	})

	r.Route("/subscriptions", newResource(h, "subscription",
		func(s models.Snapshot) []models.Subscription { return s.Subscriptions },
		repo.Subscription, repo.AddSubscription,
		func(ctx context.Context, id string, sub models.Subscription) bool {
			sub.ID = id
			return repo.UpdateSubscription(ctx, sub)
		},
		repo.DeleteSubscription).routes)

	r.Route("/recharges", newResource(h, "recharge",
		func(s models.Snapshot) []models.Recharge { return s.Recharges },
		repo.Recharge, repo.AddRecharge,
		func(ctx context.Context, id string, rc models.Recharge) bool {
			rc.ID = id
			return repo.UpdateRecharge(ctx, rc)
		},
		repo.DeleteRecharge).routes)

	r.Route("/bills", func(r chi.Router) {
		r.Post("/{id}/toggle", h.toggle(repo.ToggleBillStatus))
		newResource(h, "bill",
			func(s models.Snapshot) []models.Bill { return s.Bills },
			repo.Bill, repo.AddBill,
			func(ctx context.Context, id string, b models.Bill) bool {
			b.ID = id
			return repo.UpdateBill(ctx, b)
		},
			repo.DeleteBill).routes(r)
	})

	r.Route("/investments", func(r chi.Router) {
		r.Get("/portfolio", h.Portfolio)
		newResource(h, "investment",
			func(s models.Snapshot) []models.Investment { return s.Investments },
			repo.Investment, repo.AddInvestment,
			func(ctx context.Context, id string, inv models.Investment) bool {
				inv.ID = id
				return repo.UpdateInvestment(ctx, inv)
			},
			repo.DeleteInvestment).routes(r)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/{id}/toggle", h.toggle(repo.ToggleNote))
		newResource(h, "note",
			func(s models.Snapshot) []models.Note { return s.Notes },
			repo.Note, repo.AddNote,
			func(ctx context.Context, id string, n models.Note) bool {
			n.ID = id
			return repo.UpdateNote(ctx, n)
		},
			repo.DeleteNote).routes(r)
	})
}

func newResource[T models.Record](
	h *ledgerHandlers,
	kind string,
	pick func(models.Snapshot) []T,
	get func(string) (T, bool),
	add func(context.Context, T) T,
	update func(context.Context, string, T) bool,
	remove func(context.Context, string) bool,
) *resource[T] {
	return &resource[T]{
		ResponseHandler: h.ResponseHandler,
		validate:        h.validate,
		kind:            kind,
		list:            func() []T { return pick(h.Repo.Snapshot()) },
		get:             get,
		add:             add,
		update:          update,
		remove:          remove,
	}
}

func (h *ledgerHandlers) LogPayment(w http.ResponseWriter, r *http.Request) {
	p, err := decodeRecord[models.EmiPayment](w, r, h.validate)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	saved, ok := h.Repo.LogPayment(r.Context(), chi.URLParam(r, "id"), p)
	if !ok {
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: false})
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, saved)
}

func (h *ledgerHandlers) DeletePayment(w http.ResponseWriter, r *http.Request) {
	matched := h.Repo.DeletePayment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "paymentId"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: matched})
}

func (h *ledgerHandlers) AddContribution(w http.ResponseWriter, r *http.Request) {
	c, err := decodeRecord[models.GoalContribution](w, r, h.validate)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	saved, ok := h.Repo.AddContribution(r.Context(), chi.URLParam(r, "id"), c)
	if !ok {
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: false})
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, saved)
}

func (h *ledgerHandlers) DeleteContribution(w http.ResponseWriter, r *http.Request) {
	matched := h.Repo.DeleteContribution(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "contributionId"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: matched})
}

func (h *ledgerHandlers) toggle(fn func(ctx context.Context, id string) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matched := fn(r.Context(), chi.URLParam(r, "id"))
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: matched})
	}
}

// QuoteEMI previews the installment for ?principal=&rate=&months= without
// storing anything.
func (h *ledgerHandlers) QuoteEMI(w http.ResponseWriter, r *http.Request) {
	args, err := parseEMIQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, finance.CalculateEMI(args.Principal, args.Rate, args.Months))
}

func parseEMIQuery(r *http.Request) (dto.EMIQuoteArgs, error) {
	q := r.URL.Query()
	principal, err := decimal.NewFromString(q.Get("principal"))
	if err != nil {
		return dto.EMIQuoteArgs{}, errs.NewValidationError("principal must be a number")
	}
	rate := decimal.Zero
	if raw := q.Get("rate"); raw != "" {
		if rate, err = decimal.NewFromString(raw); err != nil {
			return dto.EMIQuoteArgs{}, errs.NewValidationError("rate must be a number")
		}
	}
	months, err := strconv.Atoi(q.Get("months"))
	if err != nil {
		return dto.EMIQuoteArgs{}, errs.NewValidationError("months must be a whole number")
	}
	if months > finance.MaxTermMonths {
		return dto.EMIQuoteArgs{}, errs.NewValidationError(fmt.Sprintf("months must be at most %d", finance.MaxTermMonths))
	}
	return dto.EMIQuoteArgs{Principal: principal, Rate: rate, Months: months}, nil
}
