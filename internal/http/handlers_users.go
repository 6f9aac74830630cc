package http

import (
	"net/http"
	"strings"

	"fincheck/internal/core"
)

type createUserRequest struct {
	Name     string    `json:"name"`
	Role     core.Role `json:"role"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
}

// handleCreateUser creates a user record without issuing a token (the
// admin path, as opposed to /auth/register). Passwords, when present,
// run through the same bcrypt routine as registration.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Name == "" || req.Role == "" {
		writeError(w, r, core.Invalid("name and role required"))
		return
	}

	user := core.User{
		Name:  sanitizeInput(req.Name),
		Email: sanitizeInput(req.Email),
		Role:  req.Role,
	}
	if err := user.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	if req.Password != "" {
		hash, err := s.auth.HashPassword(req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		user.PasswordHash = hash
	}

	created, err := s.store.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	role := core.Role(strings.TrimSpace(query.Get("role")))
	if role != "" && !role.Valid() {
		writeError(w, r, core.Invalid("unknown role %q", role))
		return
	}
	search := strings.TrimSpace(query.Get("search"))

	users, err := s.store.ListUsers(r.Context(), role, search)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
