package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fincheck/internal/core"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the core error taxonomy to HTTP statuses. Anything
// unclassified is logged and reported as a bare 500 so internals never
// leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, core.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, core.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, core.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "Unhandled error",
			"error", err,
			"method", r.Method,
			"url", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
