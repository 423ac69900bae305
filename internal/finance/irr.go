package finance

import "github.com/shopspring/decimal"

// Rate is the outcome of an IRR computation. Valid is false when the
// rate is undefined: the cash-flow stream never changes sign, the root
// lies outside the search interval, or the solver exhausts its
// iteration budget. An undefined IRR is an expected economic outcome,
// not an error.
type Rate struct {
	Value decimal.Decimal
	Valid bool
}

// Search domain and budget for the bisection. A real root below -99%
// or above 1000% is not a rate anyone acts on, and the fixed iteration
// cap guarantees termination.
var (
	irrLowerBound = decimal.NewFromFloat(-0.99)
	irrUpperBound = decimal.NewFromInt(10)
	irrTolerance  = decimal.New(1, -7)
)

const irrMaxIterations = 200

// InternalRateOfReturn solves sum CF_t/(1+r)^t == 0 for r by bisection
// over the bounded domain above. flows[0] is the year-0 flow.
func InternalRateOfReturn(flows []decimal.Decimal) Rate {
	if !hasSignChange(flows) {
		return Rate{}
	}
	lo, hi := irrLowerBound, irrUpperBound
	flo := netPresentValue(flows, lo)
	fhi := netPresentValue(flows, hi)
	if flo.IsZero() {
		return Rate{Value: lo, Valid: true}
	}
	if fhi.IsZero() {
		return Rate{Value: hi, Valid: true}
	}
	if flo.Sign() == fhi.Sign() {
		return Rate{}
	}
	for i := 0; i < irrMaxIterations; i++ {
		mid := lo.Add(hi).DivRound(two, divPrecision)
		fmid := netPresentValue(flows, mid)
		if fmid.IsZero() {
			return Rate{Value: mid, Valid: true}
		}
		if fmid.Sign() == flo.Sign() {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
		if hi.Sub(lo).LessThan(irrTolerance) {
			return Rate{Value: lo.Add(hi).DivRound(two, divPrecision), Valid: true}
		}
	}
	return Rate{}
}

// netPresentValue accumulates the discount factor period by period
// instead of raising (1+r) to each power separately.
func netPresentValue(flows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	onePlus := one.Add(rate)
	factor := one
	total := flows[0]
	for _, flow := range flows[1:] {
		factor = factor.DivRound(onePlus, divPrecision)
		total = total.Add(flow.Mul(factor))
	}
	return total
}

// hasSignChange reports whether the stream contains both positive and
// negative flows. Without both, the present value cannot cross zero at
// any rate.
func hasSignChange(flows []decimal.Decimal) bool {
	sign := 0
	for _, flow := range flows {
		s := flow.Sign()
		if s == 0 {
			continue
		}
		if sign == 0 {
			sign = s
			continue
		}
		if s != sign {
			return true
		}
	}
	return false
}
