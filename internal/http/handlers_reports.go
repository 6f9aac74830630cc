package http

import (
	"net/http"
)

// Report handlers cache their aggregates keyed by the raw query string.
// Entries live for the cache TTL or until the next transaction
// mutation, whichever comes first.

func (s *Server) handleTotalBalance(w http.ResponseWriter, r *http.Request) {
	key := "balance?" + r.URL.RawQuery
	if summary, ok := s.balanceCache.Get(key); ok {
		writeJSON(w, http.StatusOK, summary)
		return
	}

	from, to, err := parseDateRange(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := s.store.TotalBalance(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.balanceCache.Set(key, summary)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleUserExpenses(w http.ResponseWriter, r *http.Request) {
	key := "user-expenses?" + r.URL.RawQuery
	if summaries, ok := s.expensesCache.Get(key); ok {
		writeJSON(w, http.StatusOK, summaries)
		return
	}

	query := r.URL.Query()
	userID, err := parseOptionalID(query, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	from, to, err := parseDateRange(query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summaries, err := s.store.UserExpenses(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.expensesCache.Set(key, summaries)
	writeJSON(w, http.StatusOK, summaries)
}
