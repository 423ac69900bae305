package finance

import "github.com/shopspring/decimal"

var (
	one      = decimal.NewFromInt(1)
	two      = decimal.NewFromInt(2)
	twelve   = decimal.NewFromInt(12)
	minusOne = decimal.NewFromInt(-1)
)

// divPrecision is the number of fractional digits carried through
// divisions. Compounding runs over hundreds of periods, so the default
// 16 digits would let residue build up in the amortization schedule.
const divPrecision = 28

// powInt raises base to a non-negative integer power by squaring.
// Integer exponents are the only ones the model needs, and this keeps
// them exact.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}
