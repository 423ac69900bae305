package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Investment ties a House and its Mortgage to the owner's tax situation
// and the rent alternative, producing the yearly cash-flow stream of
// owning versus renting and the internal rate of return of that stream.
type Investment struct {
	house           *House
	mortgage        *Mortgage
	closingCostRate decimal.Decimal
	alternativeRent decimal.Decimal
	realtorCostRate decimal.Decimal
	federalTaxRate  decimal.Decimal
	stateTaxRate    decimal.Decimal
}

// NewInvestment validates the configuration and returns an immutable
// Investment. alternativeRent is the yearly rent avoided by owning.
func NewInvestment(house *House, mortgage *Mortgage, closingCostRate, alternativeRent, realtorCostRate, federalTaxRate, stateTaxRate decimal.Decimal) (*Investment, error) {
	if house == nil || mortgage == nil {
		return nil, fmt.Errorf("investment requires a house and a mortgage")
	}
	if closingCostRate.IsNegative() {
		return nil, fmt.Errorf("closing cost rate must not be negative, got %s", closingCostRate)
	}
	if alternativeRent.IsNegative() {
		return nil, fmt.Errorf("alternative rent must not be negative, got %s", alternativeRent)
	}
	if realtorCostRate.IsNegative() {
		return nil, fmt.Errorf("realtor cost rate must not be negative, got %s", realtorCostRate)
	}
	if federalTaxRate.IsNegative() || federalTaxRate.GreaterThan(one) {
		return nil, fmt.Errorf("federal tax rate must be within [0, 1], got %s", federalTaxRate)
	}
	if stateTaxRate.IsNegative() || stateTaxRate.GreaterThan(one) {
		return nil, fmt.Errorf("state tax rate must be within [0, 1], got %s", stateTaxRate)
	}
	return &Investment{
		house:           house,
		mortgage:        mortgage,
		closingCostRate: closingCostRate,
		alternativeRent: alternativeRent,
		realtorCostRate: realtorCostRate,
		federalTaxRate:  federalTaxRate,
		stateTaxRate:    stateTaxRate,
	}, nil
}

// Mortgage returns the loan backing the purchase.
func (inv *Investment) Mortgage() *Mortgage { return inv.mortgage }

// CashFlowsAndIRR returns two sequences indexed by year 0..term:
//
//   - the IRR sequence: entry k is the rate of return if the house were
//     sold at the end of year k (year 0 has no defined return), and
//   - the cash-flow stream: the signed flow of each year, with the net
//     sale proceeds included only in the final year.
//
// The computation is pure; calling it twice yields identical results.
func (inv *Investment) CashFlowsAndIRR() ([]Rate, []decimal.Decimal) {
	horizon := inv.mortgage.TermYears()

	flows := make([]decimal.Decimal, horizon+1)
	flows[0] = inv.mortgage.DownPayment().Add(inv.closingCostRate.Mul(inv.house.Price())).Neg()

	// Interest is deductible, principal is not.
	taxRate := inv.federalTaxRate.Add(inv.stateTaxRate)
	yearlyMortgage := inv.mortgage.MonthlyPayment().Mul(twelve)
	for year := 1; year <= horizon; year++ {
		shield := inv.mortgage.YearlyInterestPaid(year).Mul(taxRate)
		flows[year] = inv.alternativeRent.
			Add(shield).
			Sub(yearlyMortgage).
			Sub(inv.house.YearlyCostAtYear(year))
	}

	// The IRR at year k prices in a sale at k: the truncated stream gets
	// the net sale proceeds added to its last entry, then has them
	// stripped again before the next truncation.
	irrs := make([]Rate, horizon+1)
	truncated := make([]decimal.Decimal, 1, horizon+1)
	truncated[0] = flows[0]
	for year := 1; year <= horizon; year++ {
		truncated = append(truncated, flows[year].Add(inv.saleProceedsAtYear(year)))
		irrs[year] = InternalRateOfReturn(truncated)
		truncated[year] = flows[year]
	}

	flows[horizon] = flows[horizon].Add(inv.saleProceedsAtYear(horizon))
	return irrs, flows
}

// saleProceedsAtYear is the seller's net: appreciated value less the
// realtor's cut, less the outstanding loan balance.
func (inv *Investment) saleProceedsAtYear(year int) decimal.Decimal {
	net := inv.house.ValueAtYear(year).Mul(one.Sub(inv.realtorCostRate))
	return net.Sub(inv.mortgage.RemainingBalanceAtYear(year))
}
