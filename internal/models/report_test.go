package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

// A computed zero and an undefined rate must stay distinguishable on
// the wire.
func TestPercentZeroVersusNull(t *testing.T) {
	zero, err := json.Marshal(NewPercent(decimal.Zero))
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(zero) != "0.00" {
		t.Errorf("zero percent: want 0.00, got %s", zero)
	}

	undefined, err := json.Marshal(Percent{})
	if err != nil {
		t.Fatalf("marshal undefined: %v", err)
	}
	if string(undefined) != "null" {
		t.Errorf("undefined percent: want null, got %s", undefined)
	}
}

func TestPercentRoundsAtTheBoundary(t *testing.T) {
	p := NewPercent(decimal.NewFromFloat(12.3456))
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "12.35" {
		t.Errorf("want 12.35, got %s", b)
	}
	// The stored value keeps its full precision.
	if !p.Value.Equal(decimal.NewFromFloat(12.3456)) {
		t.Error("marshaling must not round the stored value")
	}
}

func TestPercentUnmarshal(t *testing.T) {
	var p Percent
	if err := json.Unmarshal([]byte("null"), &p); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if p.Valid {
		t.Error("null must unmarshal as undefined")
	}
	if err := json.Unmarshal([]byte("-3.50"), &p); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if !p.Valid || !p.Value.Equal(decimal.NewFromFloat(-3.5)) {
		t.Errorf("want -3.5, got %+v", p)
	}
}

func TestAmountMarshalsRounded(t *testing.T) {
	b, err := json.Marshal(Amount{decimal.NewFromFloat(-69000.005)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "-69000.01" && string(b) != "-69000.00" {
		t.Errorf("want a two-decimal number, got %s", b)
	}
}
