package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func flows(vs ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = dec(v)
	}
	return out
}

func TestInternalRateOfReturn(t *testing.T) {
	tests := []struct {
		flows []decimal.Decimal
		want  float64
		desc  string
	}{
		{flows(-100, 110), 0.10, "single period at 10%"},
		{flows(-100, 0, 121), 0.10, "two periods compound to 10%"},
		{flows(-100, 0, 0, 100), 0, "recovering the outlay is break-even"},
		{flows(-1000, 600, 600), 0.1306623, "split repayment"},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			rate := InternalRateOfReturn(tc.flows)
			if !rate.Valid {
				t.Fatal("expected a defined rate")
			}
			assertClose(t, tc.want, rate.Value, 1e-6, "rate")
		})
	}
}

func TestInternalRateOfReturnUndefined(t *testing.T) {
	tests := []struct {
		flows []decimal.Decimal
		desc  string
	}{
		{flows(-100, -50, -10), "never turns positive"},
		{flows(100, 50, 10), "never negative"},
		{flows(0, 0, 0), "all zero"},
		{flows(-1, 1000), "root above the search domain"},
		{flows(-100, 201, -100.5), "no bracketed root at the domain bounds"},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			if rate := InternalRateOfReturn(tc.flows); rate.Valid {
				t.Errorf("expected an undefined rate, got %s", rate.Value)
			}
		})
	}
}

func TestInternalRateOfReturnIsDeterministic(t *testing.T) {
	stream := flows(-69000, 4600, 4700, 60000)
	first := InternalRateOfReturn(stream)
	second := InternalRateOfReturn(stream)
	if first.Valid != second.Valid || !first.Value.Equal(second.Value) {
		t.Errorf("repeated solves disagree: %v vs %v", first, second)
	}
}
