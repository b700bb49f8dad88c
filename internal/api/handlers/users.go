package handlers

import (
	"errors"
	"net/http"

	"github.com/eventdesk/server/internal/api/middleware"
	"github.com/eventdesk/server/internal/api/problem"
	"github.com/eventdesk/server/internal/domain/users"
	"github.com/eventdesk/server/internal/validation"
)

type UsersHandler struct {
	Service *users.Service
	Env     string
}

func NewUsersHandler(service *users.Service, env string) *UsersHandler {
	return &UsersHandler{Service: service, Env: env}
}

func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.Env)
	if !ok {
		return
	}

	user, err := h.Service.AuthenticatedUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			problem.Write(w, r, http.StatusNotFound, problem.TypeNotFound, "Not found", err, h.Env,
				problem.WithDetail("User not found"))
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update modifies the caller's own profile; tokens for other user IDs get 403.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.Env)
	if !ok {
		return
	}

	callerID, ok := middleware.UserID(r)
	if !ok {
		problem.Write(w, r, http.StatusUnauthorized, problem.TypeUnauthorized, "Unauthorized", nil, h.Env)
		return
	}
	if callerID != id {
		problem.Write(w, r, http.StatusForbidden, problem.TypeUnauthorized, "Forbidden", nil, h.Env,
			problem.WithDetail("Cannot modify another user's profile"))
		return
	}

	var input users.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env)
		return
	}
	if err := validation.Struct(input); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env,
			problem.WithErrors(validation.FieldErrors(err)))
		return
	}

	user, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			problem.Write(w, r, http.StatusNotFound, problem.TypeNotFound, "Not found", err, h.Env,
				problem.WithDetail("User not found"))
		case errors.Is(err, users.ErrEmailTaken):
			problem.Write(w, r, http.StatusConflict, problem.TypeConflict, "Conflict", err, h.Env,
				problem.WithDetail("An account with this email already exists"))
		default:
			problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}
