package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// balanceResidue is the largest end-of-term balance treated as rounding
// residue of an exact payoff.
var balanceResidue = decimal.New(1, -6)

// Mortgage models a fixed-rate, fully amortizing loan against a House.
// The payment and the full amortization schedule are derived once at
// construction; instances are immutable afterwards.
type Mortgage struct {
	house              *House
	interestRate       decimal.Decimal
	termYears          int
	downPaymentPercent decimal.Decimal

	payment decimal.Decimal

	// per-year schedule, index 0 holds year 1
	interestPaid  []decimal.Decimal
	principalPaid []decimal.Decimal
	endBalance    []decimal.Decimal
}

// NewMortgage validates the loan configuration, computes the fixed
// payment and the amortization schedule, and returns an immutable
// Mortgage.
func NewMortgage(house *House, interestRate decimal.Decimal, termYears int, downPaymentPercent decimal.Decimal) (*Mortgage, error) {
	if house == nil {
		return nil, fmt.Errorf("mortgage requires a house")
	}
	if interestRate.IsNegative() {
		return nil, fmt.Errorf("interest rate must not be negative, got %s", interestRate)
	}
	if termYears <= 0 {
		return nil, fmt.Errorf("term must be a positive number of years, got %d", termYears)
	}
	if downPaymentPercent.IsNegative() || downPaymentPercent.GreaterThan(one) {
		return nil, fmt.Errorf("down payment must be within [0, 1], got %s", downPaymentPercent)
	}
	m := &Mortgage{
		house:              house,
		interestRate:       interestRate,
		termYears:          termYears,
		downPaymentPercent: downPaymentPercent,
	}
	m.payment = m.annuityPayment()
	m.amortize()
	return m, nil
}

// House returns the financed property.
func (m *Mortgage) House() *House { return m.house }

// TermYears returns the fixed loan term.
func (m *Mortgage) TermYears() int { return m.termYears }

// LoanPrincipal is the financed share of the purchase price.
func (m *Mortgage) LoanPrincipal() decimal.Decimal {
	return m.house.Price().Mul(one.Sub(m.downPaymentPercent))
}

// DownPayment is the buyer's share of the purchase price.
func (m *Mortgage) DownPayment() decimal.Decimal {
	return m.house.Price().Mul(m.downPaymentPercent)
}

// MonthlyPayment returns the fixed monthly payment.
func (m *Mortgage) MonthlyPayment() decimal.Decimal { return m.payment }

func (m *Mortgage) monthlyRate() decimal.Decimal {
	return m.interestRate.DivRound(twelve, divPrecision)
}

// annuityPayment computes the standard fixed-payment formula
// M = P*r*(1+r)^n / ((1+r)^n - 1) with n = 12*term and r the monthly
// rate, degrading to straight-line P/n when the rate is zero.
func (m *Mortgage) annuityPayment() decimal.Decimal {
	principal := m.LoanPrincipal()
	months := decimal.NewFromInt(int64(m.termYears) * 12)
	if m.interestRate.IsZero() {
		return principal.DivRound(months, divPrecision)
	}
	r := m.monthlyRate()
	compound := powInt(one.Add(r), m.termYears*12)
	return principal.Mul(r).Mul(compound).DivRound(compound.Sub(one), divPrecision)
}

// amortize walks the schedule month by month, splitting every payment
// into interest on the current balance and principal, and records the
// yearly totals. The final balance carries a sub-cent residue from the
// payment's fixed division precision; it is clamped so the loan pays
// off exactly at term.
func (m *Mortgage) amortize() {
	m.interestPaid = make([]decimal.Decimal, m.termYears)
	m.principalPaid = make([]decimal.Decimal, m.termYears)
	m.endBalance = make([]decimal.Decimal, m.termYears)

	r := m.monthlyRate()
	balance := m.LoanPrincipal()
	for year := 0; year < m.termYears; year++ {
		interest := decimal.Zero
		principal := decimal.Zero
		for month := 0; month < 12; month++ {
			monthInterest := balance.Mul(r)
			monthPrincipal := m.payment.Sub(monthInterest)
			interest = interest.Add(monthInterest)
			principal = principal.Add(monthPrincipal)
			balance = balance.Sub(monthPrincipal)
		}
		m.interestPaid[year] = interest
		m.principalPaid[year] = principal
		m.endBalance[year] = balance
	}
	if m.endBalance[m.termYears-1].Abs().LessThan(balanceResidue) {
		m.endBalance[m.termYears-1] = decimal.Zero
	}
}

// RemainingBalanceAtYear reports the balance left after the given
// year's 12 payments. Year 0 is the full principal; at and beyond the
// term the balance is zero.
func (m *Mortgage) RemainingBalanceAtYear(year int) decimal.Decimal {
	if year <= 0 {
		return m.LoanPrincipal()
	}
	if year >= m.termYears {
		return decimal.Zero
	}
	return m.endBalance[year-1]
}

// YearlyInterestPaid is the interest portion of the year's 12 payments;
// zero outside 1..term.
func (m *Mortgage) YearlyInterestPaid(year int) decimal.Decimal {
	if year < 1 || year > m.termYears {
		return decimal.Zero
	}
	return m.interestPaid[year-1]
}

// YearlyPrincipalPaid is the principal portion of the year's 12
// payments; zero outside 1..term.
func (m *Mortgage) YearlyPrincipalPaid(year int) decimal.Decimal {
	if year < 1 || year > m.termYears {
		return decimal.Zero
	}
	return m.principalPaid[year-1]
}
