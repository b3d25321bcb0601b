package handler

import (
	"errors"
	"net/http"

	"github.com/growai/fincoach/internal/repository"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat handles POST /api/chat. Advisor failures never surface here: the
// service substitutes the local fallback reply.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req chatRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Message == "" {
		h.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.svc.Chat(r.Context(), userID, req.Message)
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Chat failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Chat failed")
		return
	}

	h.respondJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
