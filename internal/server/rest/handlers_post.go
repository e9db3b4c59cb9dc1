package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

type postRequest struct {
	ProductType  string  `json:"productType"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Units        int     `json:"units"`
	Location     string  `json:"location"`
}

func (p postRequest) toModel() *models.Post {
	return &models.Post{
		ProductType:  p.ProductType,
		PricePerUnit: p.PricePerUnit,
		Units:        p.Units,
		Location:     p.Location,
	}
}

func (s *RestServer) addPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := s.posts.Create(r.Context(), userIDFromContext(r.Context()), req.toModel())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostJSON(post))
}

func (s *RestServer) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostList(posts))
}

func (s *RestServer) listOwnPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListByOwner(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostList(posts))
}

func (s *RestServer) editPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := s.posts.Edit(r.Context(), chi.URLParam(r, "postID"), userIDFromContext(r.Context()), req.toModel())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostJSON(post))
}

func (s *RestServer) removePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Remove(r.Context(), chi.URLParam(r, "postID"), userIDFromContext(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
