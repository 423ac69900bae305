package models

import "github.com/shopspring/decimal"

// Percent is a nullable percentage. It marshals as a bare number
// rounded to two decimals, or null when the underlying rate is
// undefined, so callers can tell "0.00%" apart from "no defined rate".
type Percent struct {
	Value decimal.Decimal
	Valid bool
}

// NewPercent returns a defined percentage.
func NewPercent(value decimal.Decimal) Percent {
	return Percent{Value: value, Valid: true}
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(p.Value.StringFixed(2)), nil
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent{}
		return nil
	}
	value, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	*p = Percent{Value: value, Valid: true}
	return nil
}

// Amount is a monetary value that marshals rounded to two decimals.
type Amount struct {
	decimal.Decimal
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

// Report is the response contract of one evaluation: the base case
// cash flows and IRR, the appreciation sensitivity runs, and the
// per-driver IRR deltas. IRR sequences are indexed by year starting at
// 0 (year 0 is always null); delta sequences start at year 1.
type Report struct {
	BaseIRR         []Percent `json:"base_irr"`
	CashStream      []Amount  `json:"cash_stream"`
	MortgagePayment int64     `json:"mortgage_payment"`

	HighIRR []Percent `json:"high_irr"`
	LowIRR  []Percent `json:"low_irr"`

	MortgageDriverIRR        []Percent `json:"mortgage_driver_irr"`
	AlternativeRentDriverIRR []Percent `json:"alternative_rent_driver_irr"`
	TaxShieldDriverIRR       []Percent `json:"tax_shield_driver_irr"`
	AppreciationDriverIRR    []Percent `json:"appreciation_driver_irr"`
	ExpensesDriverIRR        []Percent `json:"expenses_driver_irr"`
}
