package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hindsightlabs/mortgage-irr/internal/service"
)

// Handler exposes the investment engine over HTTP.
type Handler struct {
	svc       *service.Service
	termYears int
	log       *logrus.Logger
}

// NewHandler initializes a new handler. termYears is the configured
// mortgage term, which also bounds the projection horizon.
func NewHandler(svc *service.Service, termYears int, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, termYears: termYears, log: log}
}

// Investment handles GET /investment: it validates the query form, runs
// the base case plus the scenario variants, and returns the combined
// report.
func (h *Handler) Investment(w http.ResponseWriter, r *http.Request) {
	params, errs := parseInvestmentForm(r.URL.Query())
	if len(errs) > 0 {
		h.log.Debugf("Rejected investment form: %v", errs)
		h.writeJSON(w, http.StatusBadRequest, errs)
		return
	}
	params.TermYears = h.termYears

	report, err := h.svc.Evaluate(params)
	if err != nil {
		h.log.Errorf("Evaluation failed: %v", err)
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
