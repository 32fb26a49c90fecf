package handlers

import (
	"errors"
	"net/http"

	"wuddevdet/internal/storage"
)

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1024)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		WriteError(w, "File is too large or the form is malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Avatar file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		WriteError(w, "File is too large", http.StatusBadRequest)
		return
	}

	s := h.SessionService.Session(r.Context())
	avatarURL, err := h.ProfileService.UploadAvatar(r.Context(), s, header.Filename, file, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrStorageUnavailable):
			WriteError(w, "Avatar uploads are not available", http.StatusServiceUnavailable)
		case errors.Is(err, storage.ErrUnsupportedImage):
			WriteError(w, "Avatar must be a JPEG, PNG, GIF or WebP image", http.StatusBadRequest)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, AvatarResponse{AvatarURL: avatarURL}, http.StatusOK)
}
