package handlers

import (
	"net/http"
	"strings"

	"blogql/internal/config"
	"blogql/internal/service"
	"blogql/internal/storage"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	UserService service.UserService
	Storage     storage.Storage
	Cfg         *config.Config
}

func NewHandlers(services *service.Service, storage storage.Storage, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		PostService: services.Post,
		UserService: services.User,
		Storage:     storage,
		Cfg:         cfg,
	}
}

// imageURL turns a storage path into the URL stored on posts. MinIO paths are
// already absolute, local ones are served from the public directory.
func (h *Handlers) imageURL(filePath string) string {
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return filePath
	}
	return strings.TrimSuffix(h.Cfg.BaseURL, "/") + "/" + filePath
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
