package handler

import (
	"errors"
	"net/http"

	"github.com/growai/fincoach/internal/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		h.respondError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		h.log.Errorf("Register failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.respondJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.log.Errorf("Login failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
