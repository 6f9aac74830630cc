package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fincheck/internal/core"
)

type registerRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     core.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string    `json:"token"`
	User  core.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.Email == "" {
		writeError(w, r, core.Invalid("email required"))
		return
	}
	if req.Role == "" {
		req.Role = core.RoleEmployee
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user := core.User{
		Name:         sanitizeInput(req.Name),
		Email:        sanitizeInput(req.Email),
		Role:         req.Role,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.store.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := s.auth.IssueToken(created.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "User registered", "id", created.ID, "role", created.Role)
	writeJSON(w, http.StatusCreated, tokenResponse{Token: token, User: created})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, r, core.Invalid("email and password required"))
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		// Unknown email and bad password are indistinguishable to
		// the caller.
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, r, fmt.Errorf("%w: bad credentials", core.ErrUnauthorized))
			return
		}
		writeError(w, r, err)
		return
	}

	if err := s.auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := s.auth.IssueToken(user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "User logged in", "id", user.ID)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token, User: user})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		writeError(w, r, core.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type forgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// handleForgotPassword issues a short-lived reset token. There is no
// mailer in this deployment; the token rides the response, and unknown
// emails get the same 200 shape to avoid account probing.
func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Email == "" {
		writeError(w, r, core.Invalid("email required"))
		return
	}

	resp := forgotPasswordResponse{Message: "if the account exists, a reset token has been issued"}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err == nil {
		token, tokenErr := s.auth.IssueResetToken(user.ID)
		if tokenErr != nil {
			writeError(w, r, tokenErr)
			return
		}
		resp.ResetToken = token
		slog.InfoContext(r.Context(), "Password reset token issued", "user_id", user.ID)
	} else if !errors.Is(err, core.ErrNotFound) {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Token == "" || req.Password == "" {
		writeError(w, r, core.Invalid("token and password required"))
		return
	}

	userID, err := s.auth.VerifyResetToken(req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.store.UpdateUserPassword(r.Context(), userID, hash); err != nil {
		writeError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "Password reset", "user_id", userID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
