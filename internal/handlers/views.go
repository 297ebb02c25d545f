package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/response"
)

type dashboardService interface {
	Summary(ctx context.Context) dto.DashboardSummary
	Forecast(ctx context.Context) dto.CashFlowForecast
	Upcoming(ctx context.Context) []dto.UpcomingPayment
	Activity(ctx context.Context) []dto.ActivityItem
	Budgets(ctx context.Context) []dto.BudgetProgress
	Overview(ctx context.Context) []dto.MonthTotals
}

type reportService interface {
	Categories(ctx context.Context, q dto.ReportQuery) (dto.CategoryBreakdown, error)
	Trend(ctx context.Context, q dto.ReportQuery) (dto.Trend, error)
	PaymentMethods(ctx context.Context) []string
	Calendar(ctx context.Context, month string) ([]dto.CalendarEvent, error)
	Goals(ctx context.Context) []dto.GoalProgress
	Portfolio(ctx context.Context) dto.Portfolio
	Loans(ctx context.Context) []dto.LoanView
}

type viewHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    dashboardService
	ReportSvc       reportService
}

func NewViewHandlers(deps *Deps) *viewHandlers {
	return &viewHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *viewHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", serve(h.ResponseHandler, h.DashboardSvc.Summary))
	r.Get("/forecast", serve(h.ResponseHandler, h.DashboardSvc.Forecast))
	r.Get("/upcoming", serve(h.ResponseHandler, h.DashboardSvc.Upcoming))
	r.Get("/activity", serve(h.ResponseHandler, h.DashboardSvc.Activity))
	r.Get("/budgets", serve(h.ResponseHandler, h.DashboardSvc.Budgets))
	r.Get("/overview", serve(h.ResponseHandler, h.DashboardSvc.Overview))
	return r
}

func (h *viewHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/categories", h.Categories)
	r.Get("/trend", h.Trend)
	r.Get("/payment-methods", serve(h.ResponseHandler, h.ReportSvc.PaymentMethods))
	return r
}

// serve adapts an infallible view to a handler.
func serve[T any](rh response.ResponseHandler, view func(ctx context.Context) T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rh.WriteSuccess(w, r, http.StatusOK, view(r.Context()))
	}
}

func reportQuery(r *http.Request) dto.ReportQuery {
	q := r.URL.Query()
	return dto.ReportQuery{
		Preset:        q.Get("preset"),
		From:          q.Get("from"),
		To:            q.Get("to"),
		PaymentMethod: q.Get("paymentMethod"),
	}
}

func (h *viewHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportSvc.Categories(r.Context(), reportQuery(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *viewHandlers) Trend(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportSvc.Trend(r.Context(), reportQuery(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *viewHandlers) Calendar(w http.ResponseWriter, r *http.Request) {
	events, err := h.ReportSvc.Calendar(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, events)
}

func (h *ledgerHandlers) GoalProgress(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ReportSvc.Goals(r.Context()))
}

func (h *ledgerHandlers) Portfolio(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ReportSvc.Portfolio(r.Context()))
}

func (h *ledgerHandlers) LoanBalances(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ReportSvc.Loans(r.Context()))
}
