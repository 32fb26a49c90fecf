package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"wuddevdet/internal/forms"
	"wuddevdet/internal/service"
)

func (h *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	s := h.SessionService.Session(r.Context())

	view, err := h.BoardService.View(r.Context(), s, r.URL.Query().Get("tab"))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, view, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var form forms.PostForm
	if err := decodeJSON(r, &form); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	input, err := form.Input()
	if err != nil {
		writeValidationError(w, err)
		return
	}

	s := h.SessionService.Session(r.Context())
	post, err := h.BoardService.CreatePost(r.Context(), input, h.SessionService.ActingAuthor(r.Context(), s))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.BoardService.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) TogglePin(w http.ResponseWriter, r *http.Request) {
	if err := h.BoardService.TogglePin(r.Context(), mux.Vars(r)["id"]); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	var form forms.CommentForm
	if err := decodeJSON(r, &form); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	s := h.SessionService.Session(r.Context())
	comment, err := h.BoardService.AddComment(r.Context(), mux.Vars(r)["id"], form.Content, h.SessionService.ActingAuthor(r.Context(), s))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			WriteError(w, "Comment cannot be empty", http.StatusBadRequest)
		case errors.Is(err, service.ErrPostNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

// SubmitGuestMessage waits for the simulated delivery while the client is
// connected. A client that leaves early does not stop the delivery.
func (h *Handlers) SubmitGuestMessage(w http.ResponseWriter, r *http.Request) {
	var form forms.GuestForm
	if err := decodeJSON(r, &form); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	receipt, err := h.BoardService.SubmitGuestMessage(r.Context(), form.Input()).Wait(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			WriteError(w, "Request cancelled", http.StatusRequestTimeout)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, receipt, http.StatusAccepted)
}

func (h *Handlers) ToggleGuestMessageResponded(w http.ResponseWriter, r *http.Request) {
	if err := h.BoardService.ToggleGuestMessageResponded(r.Context(), mux.Vars(r)["id"]); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
