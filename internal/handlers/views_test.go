package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/response"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m int, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

type stubDashboardService struct {
	summary dto.DashboardSummary
}

func (s *stubDashboardService) Summary(context.Context) dto.DashboardSummary { return s.summary }
func (s *stubDashboardService) Forecast(context.Context) dto.CashFlowForecast { return dto.CashFlowForecast{} }
func (s *stubDashboardService) Upcoming(context.Context) []dto.UpcomingPayment { return nil }
func (s *stubDashboardService) Activity(context.Context) []dto.ActivityItem { return nil }
func (s *stubDashboardService) Budgets(context.Context) []dto.BudgetProgress { return nil }
func (s *stubDashboardService) Overview(context.Context) []dto.MonthTotals { return nil }

type stubReportService struct {
	lastQuery dto.ReportQuery
	lastMonth string
	err       error
}

func (s *stubReportService) Categories(_ context.Context, q dto.ReportQuery) (dto.CategoryBreakdown, error) {
	s.lastQuery = q
	return dto.CategoryBreakdown{}, s.err
}

func (s *stubReportService) Trend(_ context.Context, q dto.ReportQuery) (dto.Trend, error) {
	s.lastQuery = q
	return dto.Trend{Granularity: dto.TrendDaily}, s.err
}

func (s *stubReportService) PaymentMethods(context.Context) []string { return []string{"Card", "Cash"} }

func (s *stubReportService) Calendar(_ context.Context, month string) ([]dto.CalendarEvent, error) {
	s.lastMonth = month
	return nil, s.err
}

func (s *stubReportService) Goals(context.Context) []dto.GoalProgress { return nil }
func (s *stubReportService) Portfolio(context.Context) dto.Portfolio { return dto.Portfolio{} }
func (s *stubReportService) Loans(context.Context) []dto.LoanView { return nil }

func newViewServer(dash *stubDashboardService, reports *stubReportService) http.Handler {
	deps := &Deps{
		ResponseHandler: response.New(slog.New(logger.NewTestHandler(slog.LevelInfo))),
		DashboardSvc:    dash,
		ReportSvc:       reports,
	}
	vh := NewViewHandlers(deps)
	r := chi.NewRouter()
	r.Mount("/dashboard", vh.DashboardRoutes())
	r.Mount("/reports", vh.ReportRoutes())
	r.Get("/calendar", vh.Calendar)
	return r
}

func TestDashboardRoutes(t *testing.T) {
	dash := &stubDashboardService{summary: dto.DashboardSummary{ActiveLoans: 2}}
	h := newViewServer(dash, &stubReportService{})

	for _, p := range []string{"summary", "forecast", "upcoming", "activity", "budgets", "overview"} {
		rr := do(t, h, http.MethodGet, "/dashboard/"+p, "")
		assert.Equal(t, http.StatusOK, rr.Code, p)
	}

	rr := do(t, h, http.MethodGet, "/dashboard/summary", "")
	var got dto.DashboardSummary
	decodeData(t, rr, &got)
	assert.Equal(t, 2, got.ActiveLoans)
}

func TestReportQueryParams(t *testing.T) {
	reports := &stubReportService{}
	h := newViewServer(&stubDashboardService{}, reports)

	rr := do(t, h, http.MethodGet, "/reports/categories?preset=thisMonth&paymentMethod=Card", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, dto.ReportQuery{Preset: "thisMonth", PaymentMethod: "Card"}, reports.lastQuery)

	rr = do(t, h, http.MethodGet, "/reports/trend?from=2024-01-01&to=2024-02-01", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-01-01", reports.lastQuery.From)
	assert.Equal(t, "2024-02-01", reports.lastQuery.To)

	rr = do(t, h, http.MethodGet, "/reports/payment-methods", "")
	var methods []string
	decodeData(t, rr, &methods)
	assert.Equal(t, []string{"Card", "Cash"}, methods)
}

func TestReportErrors(t *testing.T) {
	reports := &stubReportService{err: errs.NewValidationError("bad range")}
	h := newViewServer(&stubDashboardService{}, reports)

	rr := do(t, h, http.MethodGet, "/reports/trend?from=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/calendar?month=2024-13", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "2024-13", reports.lastMonth)
}
