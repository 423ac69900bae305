package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hindsightlabs/mortgage-irr/internal/repository"
	"github.com/hindsightlabs/mortgage-irr/internal/service"
)

func newTestHandler() *Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := service.NewService(repository.NewMemoryCache(), log)
	return NewHandler(svc, 30, log)
}

func TestInvestmentHandler_OK(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/investment?"+validQuery().Encode(), nil)
	w := httptest.NewRecorder()
	h.Investment(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	baseIRR, ok := body["base_irr"].([]any)
	if !ok || len(baseIRR) != 31 {
		t.Fatalf("base_irr: want 31 entries, got %v", body["base_irr"])
	}
	if baseIRR[0] != nil {
		t.Errorf("base_irr year 0: want null, got %v", baseIRR[0])
	}
	if stream, ok := body["cash_stream"].([]any); !ok || len(stream) != 31 {
		t.Errorf("cash_stream: want 31 entries, got %v", body["cash_stream"])
	}
	if payment, ok := body["mortgage_payment"].(float64); !ok || payment != 1146 {
		t.Errorf("mortgage_payment: want 1146, got %v", body["mortgage_payment"])
	}

	for _, key := range []string{"high_irr", "low_irr"} {
		if seq, ok := body[key].([]any); !ok || len(seq) != 31 {
			t.Errorf("%s: want 31 entries, got %v", key, body[key])
		}
	}
	for _, key := range []string{
		"mortgage_driver_irr",
		"alternative_rent_driver_irr",
		"tax_shield_driver_irr",
		"appreciation_driver_irr",
		"expenses_driver_irr",
	} {
		if seq, ok := body[key].([]any); !ok || len(seq) != 30 {
			t.Errorf("%s: want 30 entries, got %v", key, body[key])
		}
	}
}

func TestInvestmentHandler_BadRequest(t *testing.T) {
	h := newTestHandler()

	q := validQuery()
	q.Del("price")
	q.Set("down_payment", "150")

	req := httptest.NewRequest(http.MethodGet, "/investment?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	h.Investment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var errs map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &errs); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	if errs["price"] == "" || errs["down_payment"] == "" {
		t.Errorf("expected errors on price and down_payment, got %v", errs)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body)
	}
}
