package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"blogql/internal/apperr"
	"blogql/internal/service"
)

type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath,omitempty"`
}

// UploadImage handles PUT /post/post-image: stores one image behind auth and
// best-effort deletes a previously referenced file.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := service.IdentityFromContext(r.Context()); !ok {
		writeAppError(w, apperr.NotAuthenticated())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeSuccess(w, UploadResponse{Message: "No file provided."}, http.StatusOK)
			return
		}
		writeError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeError(w, "Only image files are allowed!", http.StatusUnprocessableEntity)
		return
	}

	// deletion of the replaced file is best effort, failures are logged only
	if oldPath := r.FormValue("oldPath"); oldPath != "" {
		if err := h.Storage.Delete(r.Context(), oldPath); err != nil {
			log.Printf("Warning: could not delete old image %s: %v", oldPath, err)
		}
	}

	filePath, err := h.Storage.Save(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, UploadResponse{Message: "File stored.", FilePath: filePath}, http.StatusCreated)
}
