package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"posts-api/middlewares"
	"posts-api/models"
	"posts-api/validation"
)

// maxBodyBytes caps the size of a create request body.
const maxBodyBytes = 1 << 20

// PostRepository is the data access the post handlers depend on.
type PostRepository interface {
	FetchPosts(ctx context.Context, opts models.FilterOptions) (*models.PostListResponse, error)
	CreatePost(ctx context.Context, input models.CreatePostSchema) (*models.SinglePostResponse, error)
	GetPost(ctx context.Context, id string) (*models.SinglePostResponse, error)
}

type PostHandler struct {
	Store PostRepository
}

func (h *PostHandler) SetupPostRoutes(r *mux.Router) {
	postsRouter := r.PathPrefix("/posts").Subrouter()
	postsRouter.HandleFunc("", h.GetPosts).Methods(http.MethodGet)
	postsRouter.HandleFunc("", h.CreatePost).Methods(http.MethodPost)
	postsRouter.HandleFunc("/{id}", h.GetPost).Methods(http.MethodGet)
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	opts, err := validation.ParseFilterOptions(r.URL.Query())
	if err != nil {
		middlewares.HandleError(w, r, errors.Wrap(middlewares.ErrInvalidQuery, err.Error()))
		return
	}

	posts, err := h.Store.FetchPosts(r.Context(), opts)
	if err != nil {
		middlewares.HandleError(w, r, err)
		return
	}

	middlewares.RespondJSON(w, r, posts, http.StatusOK)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body models.CreatePostSchema
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		middlewares.HandleError(w, r, errors.Wrap(middlewares.ErrInvalidBody, err.Error()))
		return
	}

	if err := validation.ValidateCreatePost(body); err != nil {
		middlewares.HandleError(w, r, errors.Wrap(middlewares.ErrInvalidBody, err.Error()))
		return
	}

	post, err := h.Store.CreatePost(r.Context(), body)
	if err != nil {
		middlewares.HandleError(w, r, err)
		return
	}

	middlewares.RespondJSON(w, r, post, http.StatusCreated)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.Store.GetPost(r.Context(), id)
	if err != nil {
		middlewares.HandleError(w, r, err)
		return
	}

	if post == nil {
		middlewares.RespondError(w, r, fmt.Sprintf("Post with ID: %s not found", id), http.StatusNotFound)
		return
	}

	middlewares.RespondJSON(w, r, post, http.StatusOK)
}
