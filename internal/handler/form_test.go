package handler

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

func validQuery() url.Values {
	q := url.Values{}
	q.Set("price", "300000")
	q.Set("alternative_rent", "2000")
	q.Set("closing_cost", "3")
	q.Set("maintenance_cost", "1")
	q.Set("property_tax", "1.25")
	q.Set("down_payment", "20")
	q.Set("interest_rate", "4")
	q.Set("yearly_appreciation", "3")
	q.Set("realtor_cost", "6")
	q.Set("federal_tax_bracket", "24")
	q.Set("state_tax_bracket", "6")
	q.Set("insurance", "0.5")
	return q
}

func TestParseInvestmentFormNormalizes(t *testing.T) {
	params, errs := parseInvestmentForm(validQuery())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if !params.Price.Equal(decimal.NewFromInt(300000)) {
		t.Errorf("price: got %s", params.Price)
	}
	// Monthly rent becomes a yearly amount.
	if !params.AlternativeRent.Equal(decimal.NewFromInt(24000)) {
		t.Errorf("alternative rent: want 24000, got %s", params.AlternativeRent)
	}
	// Whole percents become fractions.
	if !params.DownPaymentPercent.Equal(decimal.NewFromFloat(0.20)) {
		t.Errorf("down payment: want 0.2, got %s", params.DownPaymentPercent)
	}
	if !params.PropertyTaxRate.Equal(decimal.NewFromFloat(0.0125)) {
		t.Errorf("property tax: want 0.0125, got %s", params.PropertyTaxRate)
	}
	if !params.FederalTaxRate.Equal(decimal.NewFromFloat(0.24)) {
		t.Errorf("federal tax: want 0.24, got %s", params.FederalTaxRate)
	}
	if !params.InsuranceRate.Equal(decimal.NewFromFloat(0.005)) {
		t.Errorf("insurance: want 0.005, got %s", params.InsuranceRate)
	}
}

func TestParseInvestmentFormErrors(t *testing.T) {
	tests := []struct {
		field string
		value string
		desc  string
	}{
		{"price", "", "missing price"},
		{"price", "abc", "non-numeric price"},
		{"price", "-5", "negative price"},
		{"price", "0", "zero price"},
		{"alternative_rent", "-100", "negative rent"},
		{"down_payment", "150", "percent above 100"},
		{"interest_rate", "-1", "negative percent"},
		{"federal_tax_bracket", "23", "bracket not in the table"},
		{"federal_tax_bracket", "", "missing bracket"},
		{"insurance", "x", "non-numeric percent"},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			q := validQuery()
			if tc.value == "" {
				q.Del(tc.field)
			} else {
				q.Set(tc.field, tc.value)
			}
			_, errs := parseInvestmentForm(q)
			if errs[tc.field] == "" {
				t.Errorf("expected an error on %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestParseInvestmentFormAllowsZeroRent(t *testing.T) {
	q := validQuery()
	q.Set("alternative_rent", "0")
	params, errs := parseInvestmentForm(q)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !params.AlternativeRent.IsZero() {
		t.Errorf("want zero rent, got %s", params.AlternativeRent)
	}
}
