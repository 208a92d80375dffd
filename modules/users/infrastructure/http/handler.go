// Package http provides HTTP handlers for the users module.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/internal/platform/token"
	"github.com/Ron9508/bookstore-backend/modules/users/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/users/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

type Handler struct {
	registerUser *commands.RegisterUserHandler
	login        *commands.LoginHandler
	getProfile   *queries.GetProfileHandler
}

// RegisterRoutes registers the users module routes to the given mux.
// Signup and login are the only public write endpoints in the system;
// the profile read requires authentication.
func RegisterRoutes(
	mux *http.ServeMux,
	requireAuth httpserver.MiddlewareFunc,
	registerUser *commands.RegisterUserHandler,
	login *commands.LoginHandler,
	getProfile *queries.GetProfileHandler,
) {
	h := &Handler{
		registerUser: registerUser,
		login:        login,
		getProfile:   getProfile,
	}

	mux.HandleFunc("POST /signup", h.handleSignup)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.Handle("GET /me", requireAuth(http.HandlerFunc(h.handleGetProfile)))
}

// Request/Response DTOs

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID string `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	id, err := h.registerUser.Handle(r.Context(), cmd)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{ID: id})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}
	result, err := h.login.Handle(r.Context(), cmd)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := token.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.getProfile.Handle(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidUserID):
		writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
	case errors.Is(err, domain.ErrMissingLoginField),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrNameLength),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrPasswordRequired),
		errors.Is(err, domain.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
