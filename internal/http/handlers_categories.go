package http

import (
	"encoding/json"
	"net/http"

	"fincheck/internal/core"
)

type createCategoryRequest struct {
	Name     string          `json:"name"`
	ParentID *int64          `json:"parentId"`
	Meta     json.RawMessage `json:"meta"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	category := core.Category{
		Name:     sanitizeInput(req.Name),
		ParentID: req.ParentID,
		Meta:     req.Meta,
	}
	if err := category.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	// Parent existence rides the foreign key: a single atomic insert,
	// no check-then-act window.
	created, err := s.store.CreateCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	category, err := s.store.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
