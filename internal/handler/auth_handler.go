package handlers

import (
	"context"
	"errors"
	"net/http"

	"wuddevdet/internal/forms"
	"wuddevdet/internal/models"
	"wuddevdet/internal/service"
)

type AuthResponse struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
	Role    models.Role    `json:"role"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var form forms.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.AuthService.Login(r.Context(), form.Email, form.Password).Wait(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			WriteError(w, "Invalid email or password", http.StatusForbidden)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			WriteError(w, "Request cancelled", http.StatusRequestTimeout)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, AuthResponse{
		Token:   result.Token,
		Session: result.Session,
		Role:    result.Session.Role(),
	}, http.StatusOK)
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var form forms.SignupForm
	if err := decodeJSON(r, &form); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.AuthService.Signup(r.Context(), form.Input()).Wait(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, result, http.StatusCreated)
}
