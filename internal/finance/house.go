package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// House models a property: its appreciated value over time and the
// recurring ownership costs that scale with that value.
type House struct {
	price            decimal.Decimal
	appreciationRate decimal.Decimal
	propertyTaxRate  decimal.Decimal
	maintenanceRate  decimal.Decimal
	insuranceRate    decimal.Decimal
}

// NewHouse validates the configuration and returns an immutable House.
// All rates are fractions of the property value (0.01 == 1%). The
// appreciation rate may be negative but must keep the value positive.
func NewHouse(price, appreciationRate, propertyTaxRate, maintenanceRate, insuranceRate decimal.Decimal) (*House, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("house price must be positive, got %s", price)
	}
	if appreciationRate.LessThanOrEqual(minusOne) {
		return nil, fmt.Errorf("appreciation rate must be greater than -1, got %s", appreciationRate)
	}
	if propertyTaxRate.IsNegative() {
		return nil, fmt.Errorf("property tax rate must not be negative, got %s", propertyTaxRate)
	}
	if maintenanceRate.IsNegative() {
		return nil, fmt.Errorf("maintenance rate must not be negative, got %s", maintenanceRate)
	}
	if insuranceRate.IsNegative() {
		return nil, fmt.Errorf("insurance rate must not be negative, got %s", insuranceRate)
	}
	return &House{
		price:            price,
		appreciationRate: appreciationRate,
		propertyTaxRate:  propertyTaxRate,
		maintenanceRate:  maintenanceRate,
		insuranceRate:    insuranceRate,
	}, nil
}

// Price returns the purchase price.
func (h *House) Price() decimal.Decimal { return h.price }

// ValueAtYear compounds the purchase price by the appreciation rate.
// Year 0 is the purchase price itself.
func (h *House) ValueAtYear(year int) decimal.Decimal {
	return h.price.Mul(powInt(one.Add(h.appreciationRate), year))
}

// YearlyCostAtYear returns property tax, maintenance and insurance for
// the year, each charged against the appreciated value rather than the
// purchase price.
func (h *House) YearlyCostAtYear(year int) decimal.Decimal {
	costRate := h.propertyTaxRate.Add(h.maintenanceRate).Add(h.insuranceRate)
	return costRate.Mul(h.ValueAtYear(year))
}
