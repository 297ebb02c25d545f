package finance

import "github.com/shopspring/decimal"

// powScale bounds the digits kept while compounding the monthly rate.
const powScale = 20

// MaxTermMonths is the longest term accepted, 100 years.
const MaxTermMonths = 1200

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// EMIResult is the amortisation summary of an equated monthly installment loan.
type EMIResult struct {
	EMI           decimal.Decimal `json:"emi"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalPayment  decimal.Decimal `json:"totalPayment"`
}

// CalculateEMI returns the monthly installment for principal borrowed at
// annualRatePercent over months. The installment is rounded to cents and the
// totals are derived from the rounded value.
//
// Partially filled input (principal <= 0, negative rate, months outside
// 1..MaxTermMonths) yields a zero installment with TotalPayment equal to
// principal. At zero rate the installment is the exact quotient principal/months.
func CalculateEMI(principal, annualRatePercent decimal.Decimal, months int) EMIResult {
	if !principal.IsPositive() || annualRatePercent.IsNegative() || months <= 0 || months > MaxTermMonths {
		return EMIResult{EMI: decimal.Zero, TotalInterest: decimal.Zero, TotalPayment: principal}
	}

	n := decimal.NewFromInt(int64(months))
	if annualRatePercent.IsZero() {
		return EMIResult{
			EMI:           principal.Div(n),
			TotalInterest: decimal.Zero,
			TotalPayment:  principal,
		}
	}

	r := annualRatePercent.Div(twelve).Div(hundred)
	growth := compound(decimal.NewFromInt(1).Add(r), months)
	emi := principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1))).Round(2)

	total := emi.Mul(n)
	return EMIResult{
		EMI:           emi,
		TotalInterest: total.Sub(principal),
		TotalPayment:  total,
	}
}

// compound raises base to n by squaring, truncating every product to powScale.
func compound(base decimal.Decimal, n int) decimal.Decimal {
	out := decimal.NewFromInt(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			out = out.Mul(base).Truncate(powScale)
		}
		base = base.Mul(base).Truncate(powScale)
	}
	return out
}
