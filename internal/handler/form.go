package handler

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hindsightlabs/mortgage-irr/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// federalTaxBrackets is the fixed bracket table; the form accepts only
// these values, entered as whole percents.
var federalTaxBrackets = map[string]bool{
	"10": true,
	"12": true,
	"22": true,
	"24": true,
	"32": true,
	"35": true,
	"37": true,
}

// formErrors maps field names to validation messages.
type formErrors map[string]string

// parseInvestmentForm decodes and validates the query parameters,
// normalizing percent fields to fractions and the monthly rent to a
// yearly amount. TermYears is left for the caller to fill from
// configuration.
func parseInvestmentForm(query url.Values) (models.Parameters, formErrors) {
	errs := formErrors{}
	params := models.Parameters{}

	params.Price = parsePositiveInt(query, "price", errs)
	monthlyRent := parseNonNegativeInt(query, "alternative_rent", errs)
	params.AlternativeRent = monthlyRent.Mul(twelve)

	params.ClosingCostRate = parsePercent(query, "closing_cost", errs)
	params.MaintenanceRate = parsePercent(query, "maintenance_cost", errs)
	params.PropertyTaxRate = parsePercent(query, "property_tax", errs)
	params.DownPaymentPercent = parsePercent(query, "down_payment", errs)
	params.InterestRate = parsePercent(query, "interest_rate", errs)
	params.AppreciationRate = parsePercent(query, "yearly_appreciation", errs)
	params.RealtorCostRate = parsePercent(query, "realtor_cost", errs)
	params.StateTaxRate = parsePercent(query, "state_tax_bracket", errs)
	params.InsuranceRate = parsePercent(query, "insurance", errs)
	params.FederalTaxRate = parseFederalBracket(query, errs)

	if len(errs) > 0 {
		return models.Parameters{}, errs
	}
	return params, nil
}

// parsePercent reads a whole-percent field in [0, 100] and normalizes
// it to a fraction.
func parsePercent(query url.Values, field string, errs formErrors) decimal.Decimal {
	raw := query.Get(field)
	if raw == "" {
		errs[field] = "this field is required"
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		errs[field] = "enter a number"
		return decimal.Zero
	}
	if value.IsNegative() || value.GreaterThan(hundred) {
		errs[field] = "enter a percentage between 0 and 100"
		return decimal.Zero
	}
	return value.Shift(-2)
}

func parseFederalBracket(query url.Values, errs formErrors) decimal.Decimal {
	raw := query.Get("federal_tax_bracket")
	if raw == "" {
		errs["federal_tax_bracket"] = "this field is required"
		return decimal.Zero
	}
	if !federalTaxBrackets[raw] {
		errs["federal_tax_bracket"] = "choose one of the listed brackets"
		return decimal.Zero
	}
	value, _ := decimal.NewFromString(raw)
	return value.Shift(-2)
}

func parsePositiveInt(query url.Values, field string, errs formErrors) decimal.Decimal {
	n, ok := parseInt(query, field, errs)
	if ok && n <= 0 {
		errs[field] = "enter a positive whole number"
		return decimal.Zero
	}
	return decimal.NewFromInt(n)
}

func parseNonNegativeInt(query url.Values, field string, errs formErrors) decimal.Decimal {
	n, ok := parseInt(query, field, errs)
	if ok && n < 0 {
		errs[field] = "enter a whole number of at least 0"
		return decimal.Zero
	}
	return decimal.NewFromInt(n)
}

func parseInt(query url.Values, field string, errs formErrors) (int64, bool) {
	raw := query.Get(field)
	if raw == "" {
		errs[field] = "this field is required"
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs[field] = "enter a whole number"
		return 0, false
	}
	return n, true
}
