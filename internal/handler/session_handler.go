package handlers

import (
	"errors"
	"net/http"

	"wuddevdet/internal/models"
	"wuddevdet/internal/service"
)

type SessionResponse struct {
	Session models.Session `json:"session"`
	Role    models.Role    `json:"role"`
	Token   string         `json:"token,omitempty"`
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	s := h.SessionService.Session(r.Context())
	writeSuccess(w, SessionResponse{Session: s, Role: s.Role()}, http.StatusOK)
}

// ToggleLogin flips the demo login switch and hands back a token for the
// resulting session.
func (h *Handlers) ToggleLogin(w http.ResponseWriter, r *http.Request) {
	s := h.SessionService.ToggleLogin(h.SessionService.Session(r.Context()))
	if s.LoggedIn && s.UserID == "" {
		s.UserID = service.CurrentUserID
	}
	if !s.LoggedIn {
		s.UserID, s.Email = "", ""
	}
	h.writeSession(w, s)
}

func (h *Handlers) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	s, err := h.SessionService.ToggleAdmin(h.SessionService.Session(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrAdminToggleDisabled) {
			WriteError(w, "Log in before switching admin mode", http.StatusConflict)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSession(w, s)
}

func (h *Handlers) writeSession(w http.ResponseWriter, s models.Session) {
	token, err := h.TokenService.Issue(s)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeSuccess(w, SessionResponse{Session: s, Role: s.Role(), Token: token}, http.StatusOK)
}
