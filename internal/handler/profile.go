package handler

import (
	"errors"
	"net/http"

	"github.com/growai/fincoach/internal/models"
	"github.com/growai/fincoach/internal/repository"
	"github.com/growai/fincoach/internal/templates"
)

type profileRequest struct {
	ProfileType   string            `json:"financial_profile_type"`
	SelectedBanks []string          `json:"selected_banks"`
	Overrides     *models.Overrides `json:"overrides,omitempty"`
}

type profileResponse struct {
	User          *models.User              `json:"user"`
	FinancialData *models.FinancialSnapshot `json:"financial_data,omitempty"`
}

type dashboardResponse struct {
	FinancialData *models.FinancialSnapshot `json:"financial_data"`
	TaxEstimate   *models.TaxEstimate       `json:"tax_estimate,omitempty"`
	Nudges        []models.Nudge            `json:"nudges"`
}

// GetProfile handles GET /api/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, snap, err := h.svc.Profile(userID)
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Profile lookup failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profileResponse{User: user, FinancialData: snap})
}

// UpdateProfile handles PUT /api/profile: it stores the setup selections and
// returns the freshly generated snapshot.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req profileRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ProfileType == "" {
		h.respondError(w, http.StatusBadRequest, "financial_profile_type is required")
		return
	}

	snap, err := h.svc.SetupProfile(userID, req.ProfileType, req.SelectedBanks, req.Overrides)
	if errors.Is(err, templates.ErrUnknownProfile) {
		h.respondError(w, http.StatusBadRequest, "Unknown financial profile type")
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Profile setup failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to set up profile")
		return
	}

	h.respondJSON(w, http.StatusOK, snap)
}

// RegenerateSnapshot handles POST /api/profile/regenerate
func (h *Handler) RegenerateSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	snap, err := h.svc.Regenerate(userID)
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Snapshot regeneration failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to regenerate snapshot")
		return
	}

	h.respondJSON(w, http.StatusOK, snap)
}

// Dashboard handles GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	snap, estimate, nudges, err := h.svc.Dashboard(userID)
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Dashboard failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboardResponse{
		FinancialData: snap,
		TaxEstimate:   estimate,
		Nudges:        nudges,
	})
}

// Nudges handles GET /api/nudges
func (h *Handler) Nudges(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	nudges, err := h.svc.Nudges(userID)
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Nudges failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to compute nudges")
		return
	}
	if nudges == nil {
		nudges = []models.Nudge{}
	}

	h.respondJSON(w, http.StatusOK, nudges)
}
