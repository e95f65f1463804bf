package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"blogql/internal/apperr"
	"blogql/internal/models"
	"blogql/internal/service"

	"github.com/gorilla/mux"
)

// feedPageSize is the REST page size; the GraphQL surface pages by 2 at its
// own call site.
const feedPageSize = 4

type FeedResponse struct {
	Posts      []*models.Post `json:"posts"`
	TotalItems int            `json:"totalItems"`
}

type PostResponse struct {
	Message string       `json:"message"`
	Post    *models.Post `json:"post"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	posts, total, err := h.PostService.List(r.Context(), page, feedPageSize)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, FeedResponse{Posts: posts, TotalItems: total}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postID"]

	post, err := h.PostService.Get(r.Context(), postID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, map[string]*models.Post{"post": post}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := service.IdentityFromContext(r.Context())
	if !ok {
		writeAppError(w, apperr.NotAuthenticated())
		return
	}

	input, err := h.postInputFromForm(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	post, err := h.PostService.Create(r.Context(), *input, identity.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, PostResponse{Message: "Post created successfully!", Post: post}, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := service.IdentityFromContext(r.Context())
	if !ok {
		writeAppError(w, apperr.NotAuthenticated())
		return
	}

	postID := mux.Vars(r)["postID"]

	input, err := h.postInputFromForm(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	post, err := h.PostService.Update(r.Context(), postID, *input, identity.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, PostResponse{Message: "Update successful", Post: post}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := service.IdentityFromContext(r.Context())
	if !ok {
		writeAppError(w, apperr.NotAuthenticated())
		return
	}

	postID := mux.Vars(r)["postID"]

	err := h.PostService.Delete(r.Context(), postID, identity.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Deleting process is successful"}, http.StatusOK)
}

// postInputFromForm reads title, content and the optional image file from a
// multipart form. An empty image reference means the service retains the
// stored one on update.
func (h *Handlers) postInputFromForm(w http.ResponseWriter, r *http.Request) (*service.PostInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		return nil, apperr.Invalid("Invalid input.", []apperr.FieldError{{Message: "Request must be multipart form data."}})
	}

	input := &service.PostInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return input, nil
		}
		return nil, apperr.Invalid("Invalid input.", []apperr.FieldError{{Message: "Image upload is malformed."}})
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return nil, apperr.Invalid("Invalid input.", []apperr.FieldError{{Message: "Only image files are allowed!"}})
	}

	filePath, err := h.Storage.Save(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		return nil, err
	}

	input.ImageURL = h.imageURL(filePath)
	return input, nil
}
