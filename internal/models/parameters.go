package models

import "github.com/shopspring/decimal"

// Parameters is the flat, normalized input set for one evaluation:
// monetary amounts are positive numbers, percentage fields are
// fractions in [0, 1] and AlternativeRent is the yearly amount. The
// struct is passed by value everywhere so scenario overrides can never
// touch the caller's copy.
type Parameters struct {
	Price              decimal.Decimal `json:"price"`
	AppreciationRate   decimal.Decimal `json:"appreciation_rate"`
	PropertyTaxRate    decimal.Decimal `json:"property_tax_rate"`
	MaintenanceRate    decimal.Decimal `json:"maintenance_rate"`
	InsuranceRate      decimal.Decimal `json:"insurance_rate"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TermYears          int             `json:"term_years"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"`
	ClosingCostRate    decimal.Decimal `json:"closing_cost_rate"`
	AlternativeRent    decimal.Decimal `json:"alternative_rent"`
	RealtorCostRate    decimal.Decimal `json:"realtor_cost_rate"`
	FederalTaxRate     decimal.Decimal `json:"federal_tax_rate"`
	StateTaxRate       decimal.Decimal `json:"state_tax_rate"`
}
