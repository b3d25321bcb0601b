package handler

import (
	"errors"
	"net/http"

	"github.com/growai/fincoach/internal/tax"
)

type taxRequest struct {
	Income   int    `json:"income"`
	Category string `json:"category,omitempty"`
}

// EstimateTax handles POST /api/tax
func (h *Handler) EstimateTax(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if !h.decode(w, r, &req) {
		return
	}

	estimate, err := h.svc.EstimateTax(req.Income, req.Category)
	if errors.Is(err, tax.ErrInvalidIncome) {
		h.respondError(w, http.StatusBadRequest, "Invalid income")
		return
	}
	if err != nil {
		h.log.Errorf("Tax estimate failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to estimate tax")
		return
	}

	h.respondJSON(w, http.StatusOK, estimate)
}
