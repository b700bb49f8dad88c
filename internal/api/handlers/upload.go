package handlers

import (
	"errors"
	"net/http"

	"github.com/eventdesk/server/internal/api/problem"
	"github.com/eventdesk/server/internal/upload"
)

type UploadHandler struct {
	Store *upload.Store
	Env   string
}

func NewUploadHandler(store *upload.Store, env string) *UploadHandler {
	return &UploadHandler{Store: store, Env: env}
}

// Image accepts a multipart form with one "image" part and stores it.
func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env,
			problem.WithDetail("Multipart form must contain an \"image\" file"))
		return
	}
	defer func() { _ = file.Close() }()

	stored, err := h.Store.Save(file)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, h.Env,
				problem.WithDetail("Only png and jpeg images are accepted"))
		case errors.Is(err, upload.ErrTooLarge):
			problem.Write(w, r, http.StatusRequestEntityTooLarge, problem.TypeValidation, "Payload too large", err, h.Env,
				problem.WithDetail("Image exceeds the 5MB size limit"))
		default:
			problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, h.Env)
		}
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}
