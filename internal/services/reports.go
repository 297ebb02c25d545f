package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/finance"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/helpers"
)

// dailyTrendMaxDays is the longest range still bucketed by day.
const dailyTrendMaxDays = 60

type reportService struct {
	repo snapshotSource
	now  func() time.Time
}

func NewReportService(repo snapshotSource, now func() time.Time) *reportService {
	return &reportService{repo: repo, now: now}
}

// --- Public service methods ---

func (s *reportService) Categories(ctx context.Context, q dto.ReportQuery) (dto.CategoryBreakdown, error) {
	rng, err := ResolveRange(q, finance.Today(s.now()))
	if err != nil {
		return dto.CategoryBreakdown{}, err
	}
	expenses, _ := filterCashflow(s.repo.Snapshot(), rng, q.PaymentMethod)
	out := CategoryBreakdown(expenses)
	out.Range = rng
	return out, nil
}

func (s *reportService) Trend(ctx context.Context, q dto.ReportQuery) (dto.Trend, error) {
	rng, err := ResolveRange(q, finance.Today(s.now()))
	if err != nil {
		return dto.Trend{}, err
	}
	expenses, income := filterCashflow(s.repo.Snapshot(), rng, q.PaymentMethod)
	return Trend(income, expenses, rng), nil
}

func (s *reportService) PaymentMethods(ctx context.Context) []string {
	return PaymentMethods(s.repo.Snapshot())
}

func (s *reportService) Calendar(ctx context.Context, month string) ([]dto.CalendarEvent, error) {
	m, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, errs.NewValidationError("month must be formatted YYYY-MM")
	}
	return CalendarEvents(s.repo.Snapshot(), m.Year(), m.Month()), nil
}

func (s *reportService) Goals(ctx context.Context) []dto.GoalProgress {
	return GoalProgress(s.repo.Snapshot())
}

func (s *reportService) Portfolio(ctx context.Context) dto.Portfolio {
	return Portfolio(s.repo.Snapshot())
}

func (s *reportService) Loans(ctx context.Context) []dto.LoanView {
	snap := s.repo.Snapshot()
	out := make([]dto.LoanView, 0, len(snap.Loans))
	for _, l := range snap.Loans {
		out = append(out, dto.LoanView{Loan: l, TotalPaid: l.TotalPaid(), Balance: l.Outstanding()})
	}
	return out
}

// --- Views ---

// CategoryBreakdown groups expenses by category, largest first. Percentages
// are of the filtered total, to one decimal place.
func CategoryBreakdown(expenses []models.Expense) dto.CategoryBreakdown {
	totals := map[string]decimal.Decimal{}
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	grand := sumAmounts(expenses, func(e models.Expense) decimal.Decimal { return e.Amount })

	out := dto.CategoryBreakdown{Total: grand, Slices: make([]dto.CategorySlice, 0, len(totals))}
	for cat, total := range totals {
		out.Slices = append(out.Slices, dto.CategorySlice{
			Category: cat,
			Total:    total,
			Percent:  percent(total, grand, categoryPercentDP),
		})
	}
	sort.Slice(out.Slices, func(i, j int) bool {
		if c := out.Slices[i].Total.Cmp(out.Slices[j].Total); c != 0 {
			return c > 0
		}
		return out.Slices[i].Category < out.Slices[j].Category
	})
	return out
}

// Trend buckets income and expenses over the range, daily when it spans at
// most dailyTrendMaxDays and monthly otherwise. Open bounds fall back to the
// earliest and latest dated record. Every bucket in range is present.
func Trend(income []models.Income, expenses []models.Expense, rng dto.DateRange) dto.Trend {
	from, to, ok := trendBounds(income, expenses, rng)
	out := dto.Trend{Range: rng, Granularity: dto.TrendDaily, Buckets: []dto.TrendBucket{}}
	if !ok {
		return out
	}
	out.Range = dto.DateRange{From: helpers.Ptr(from), To: helpers.Ptr(to)}

	key := func(d civil.Date) string { return d.String() }
	if to.DaysSince(from) > dailyTrendMaxDays {
		out.Granularity = dto.TrendMonthly
		key = monthKey
		for m := finance.MonthStart(from); !m.After(to); m = finance.AddMonths(m, 1) {
			out.Buckets = append(out.Buckets, emptyBucket(key(m)))
		}
	} else {
		for d := from; !d.After(to); d = d.AddDays(1) {
			out.Buckets = append(out.Buckets, emptyBucket(key(d)))
		}
	}

	index := make(map[string]int, len(out.Buckets))
	for i, b := range out.Buckets {
		index[b.Key] = i
	}
	for _, inc := range income {
		if i, ok := index[key(inc.Date)]; ok && within(inc.Date, from, to) {
			out.Buckets[i].Income = out.Buckets[i].Income.Add(inc.Amount)
		}
	}
	for _, e := range expenses {
		if i, ok := index[key(e.Date)]; ok && within(e.Date, from, to) {
			out.Buckets[i].Expenses = out.Buckets[i].Expenses.Add(e.Amount)
		}
	}
	return out
}

// PaymentMethods lists the distinct payment methods on record, sorted.
func PaymentMethods(snap models.Snapshot) []string {
	seen := map[string]bool{}
	for _, e := range snap.Expenses {
		if m := helpers.Value(e.PaymentMethod); m != "" {
			seen[m] = true
		}
	}
	for _, i := range snap.Income {
		if m := helpers.Value(i.PaymentMethod); m != "" {
			seen[m] = true
		}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// CalendarEvents lists everything dated within the month.
func CalendarEvents(snap models.Snapshot, year int, month time.Month) []dto.CalendarEvent {
	first := civil.Date{Year: year, Month: month, Day: 1}
	last := finance.MonthEnd(first)
	out := []dto.CalendarEvent{}
	add := func(d civil.Date, title, kind string, amount *decimal.Decimal) {
		if within(d, first, last) {
			out = append(out, dto.CalendarEvent{Date: d, Title: title, Kind: kind, Amount: amount})
		}
	}

	for _, i := range snap.Income {
		add(i.Date, i.Description, "income", helpers.Ptr(i.Amount))
	}
	for _, e := range snap.Expenses {
		add(e.Date, e.Description, "expense", helpers.Ptr(e.Amount))
	}
	for _, b := range snap.Bills {
		add(b.DueDate, "Bill: "+b.Name, dto.PaymentKindBill, helpers.Ptr(b.Amount))
	}
	for _, s := range snap.Subscriptions {
		add(s.NextBill, "Sub: "+s.Name, dto.PaymentKindSubscription, helpers.Ptr(s.Amount))
	}
	for _, r := range snap.Recharges {
		add(r.ExpiryDate, "Recharge: "+r.Provider, dto.PaymentKindRecharge, nil)
	}
	for _, l := range snap.Loans {
		if !l.IsEMI {
			continue
		}
		for _, p := range l.Payments {
			add(p.PaymentDate, "EMI: "+l.LenderName, dto.PaymentKindLoan, helpers.Ptr(p.Amount))
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func GoalProgress(snap models.Snapshot) []dto.GoalProgress {
	out := make([]dto.GoalProgress, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		out = append(out, dto.GoalProgress{
			GoalID:    g.ID,
			Name:      g.Name,
			Target:    g.TargetAmount,
			Current:   g.CurrentAmount,
			Remaining: g.TargetAmount.Sub(g.CurrentAmount),
			Progress:  g.Progress().Round(percentPrecision),
			Deadline:  g.Deadline,
		})
	}
	return out
}

func Portfolio(snap models.Snapshot) dto.Portfolio {
	out := dto.Portfolio{
		Items:    make([]dto.InvestmentView, 0, len(snap.Investments)),
		Invested: decimal.Zero,
		Current:  decimal.Zero,
		GainLoss: decimal.Zero,
	}
	for _, inv := range snap.Investments {
		v := dto.InvestmentView{
			Investment:   inv,
			Invested:     inv.InvestedValue(),
			CurrentTotal: inv.CurrentTotal(),
			GainLoss:     inv.GainLoss(),
		}
		out.Items = append(out.Items, v)
		out.Invested = out.Invested.Add(v.Invested)
		out.Current = out.Current.Add(v.CurrentTotal)
	}
	out.GainLoss = out.Current.Sub(out.Invested)
	return out
}

// --- Filtering ---

// ResolveRange turns a report query into concrete bounds. Explicit from/to win
// over a preset; no input at all means the last 30 days.
func ResolveRange(q dto.ReportQuery, today civil.Date) (dto.DateRange, error) {
	if q.From != "" || q.To != "" {
		return explicitRange(q.From, q.To)
	}
	preset := q.Preset
	if preset == "" {
		preset = dto.DateRangeLast30Days
	}
	return resolvePreset(preset, today)
}

func explicitRange(fromStr, toStr string) (dto.DateRange, error) {
	var rng dto.DateRange
	if fromStr != "" {
		d, err := civil.ParseDate(fromStr)
		if err != nil {
			return rng, errs.NewValidationError("from must be formatted YYYY-MM-DD")
		}
		rng.From = &d
	}
	if toStr != "" {
		d, err := civil.ParseDate(toStr)
		if err != nil {
			return rng, errs.NewValidationError("to must be formatted YYYY-MM-DD")
		}
		rng.To = &d
	}
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		return rng, errs.NewValidationError("to must not be before from")
	}
	return rng, nil
}

func resolvePreset(preset string, today civil.Date) (dto.DateRange, error) {
	span := func(from, to civil.Date) (dto.DateRange, error) {
		return dto.DateRange{From: &from, To: &to}, nil
	}
	switch preset {
	case dto.DateRangeLast30Days:
		return span(today.AddDays(-29), today)
	case dto.DateRangeThisMonth:
		return span(finance.MonthStart(today), today)
	case dto.DateRangeLastMonth:
		prev := finance.AddMonths(finance.MonthStart(today), -1)
		return span(prev, finance.MonthEnd(prev))
	case dto.DateRangeThisQuarter:
		return span(firstOfQuarter(today), today)
	case dto.DateRangeLastQuarter:
		f, l := prevQuarter(today)
		return span(f, l)
	case dto.DateRangeThisYear:
		return span(civil.Date{Year: today.Year, Month: time.January, Day: 1}, today)
	case dto.DateRangeLastYear:
		return span(civil.Date{Year: today.Year - 1, Month: time.January, Day: 1},
			civil.Date{Year: today.Year - 1, Month: time.December, Day: 31})
	case dto.DateRangeAll:
		return dto.DateRange{}, nil
	}
	return dto.DateRange{}, errs.NewValidationError("unknown date range preset: " + preset)
}

func firstOfQuarter(d civil.Date) civil.Date {
	qStart := ((int(d.Month)-1)/3)*3 + 1
	return civil.Date{Year: d.Year, Month: time.Month(qStart), Day: 1}
}

func prevQuarter(d civil.Date) (first, last civil.Date) {
	last = firstOfQuarter(d).AddDays(-1)
	first = firstOfQuarter(last)
	return
}

func filterCashflow(snap models.Snapshot, rng dto.DateRange, method string) ([]models.Expense, []models.Income) {
	keep := func(d civil.Date, pm *string) bool {
		if rng.From != nil && d.Before(*rng.From) {
			return false
		}
		if rng.To != nil && d.After(*rng.To) {
			return false
		}
		if method != "" && !strings.EqualFold(method, dto.PaymentMethodAll) && helpers.Value(pm) != method {
			return false
		}
		return true
	}

	var expenses []models.Expense
	for _, e := range snap.Expenses {
		if keep(e.Date, e.PaymentMethod) {
			expenses = append(expenses, e)
		}
	}
	var income []models.Income
	for _, i := range snap.Income {
		if keep(i.Date, i.PaymentMethod) {
			income = append(income, i)
		}
	}
	return expenses, income
}

// trendBounds fills open range bounds from the data.
func trendBounds(income []models.Income, expenses []models.Expense, rng dto.DateRange) (from, to civil.Date, ok bool) {
	var dates []civil.Date
	for _, i := range income {
		dates = append(dates, i.Date)
	}
	for _, e := range expenses {
		dates = append(dates, e.Date)
	}

	if rng.From != nil && rng.To != nil {
		return *rng.From, *rng.To, true
	}
	if len(dates) == 0 {
		return from, to, false
	}
	lo, hi := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(lo) {
			lo = d
		}
		if d.After(hi) {
			hi = d
		}
	}
	if rng.From != nil {
		lo = *rng.From
	}
	if rng.To != nil {
		hi = *rng.To
	}
	if hi.Before(lo) {
		return from, to, false
	}
	return lo, hi, true
}

func emptyBucket(key string) dto.TrendBucket {
	return dto.TrendBucket{Key: key, Income: decimal.Zero, Expenses: decimal.Zero}
}

