package service

import (
	"github.com/shopspring/decimal"

	"github.com/hindsightlabs/mortgage-irr/internal/models"
)

// appreciationStep is the shift applied for the high/low appreciation
// sensitivity runs.
var appreciationStep = decimal.New(1, -2)

// A scenario rebuilds the investment from the base parameters with one
// return driver switched off; the IRR delta against the base case then
// isolates that driver's contribution to the overall return.
//
// apply receives the parameters by value and returns the modified copy,
// so the base set is never mutated.
type scenario struct {
	name   string
	apply  func(models.Parameters) models.Parameters
	assign func(*models.Report, []models.Percent)
}

var driverScenarios = []scenario{
	{
		name: "mortgage_driver_irr",
		apply: func(p models.Parameters) models.Parameters {
			p.InterestRate = decimal.Zero
			p.DownPaymentPercent = decimal.NewFromInt(1)
			return p
		},
		assign: func(r *models.Report, irr []models.Percent) { r.MortgageDriverIRR = irr },
	},
	{
		name: "alternative_rent_driver_irr",
		apply: func(p models.Parameters) models.Parameters {
			p.AlternativeRent = decimal.Zero
			return p
		},
		assign: func(r *models.Report, irr []models.Percent) { r.AlternativeRentDriverIRR = irr },
	},
	{
		name: "tax_shield_driver_irr",
		apply: func(p models.Parameters) models.Parameters {
			p.FederalTaxRate = decimal.Zero
			p.StateTaxRate = decimal.Zero
			return p
		},
		assign: func(r *models.Report, irr []models.Percent) { r.TaxShieldDriverIRR = irr },
	},
	{
		name: "appreciation_driver_irr",
		apply: func(p models.Parameters) models.Parameters {
			p.AppreciationRate = decimal.Zero
			return p
		},
		assign: func(r *models.Report, irr []models.Percent) { r.AppreciationDriverIRR = irr },
	},
	{
		name: "expenses_driver_irr",
		apply: func(p models.Parameters) models.Parameters {
			p.PropertyTaxRate = decimal.Zero
			p.MaintenanceRate = decimal.Zero
			p.InsuranceRate = decimal.Zero
			p.ClosingCostRate = decimal.Zero
			return p
		},
		assign: func(r *models.Report, irr []models.Percent) { r.ExpensesDriverIRR = irr },
	},
}

// withAppreciationShift nudges the base appreciation rate for the
// high/low sensitivity runs.
func withAppreciationShift(p models.Parameters, step decimal.Decimal) models.Parameters {
	p.AppreciationRate = p.AppreciationRate.Add(step)
	return p
}
