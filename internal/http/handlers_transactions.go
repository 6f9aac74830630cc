package http

import (
	"net/http"

	"fincheck/internal/core"
	"fincheck/internal/storage"
)

type transactionRequest struct {
	Type          core.TransactionType `json:"type"`
	Amount        core.Money           `json:"amount"`
	Date          core.Date            `json:"date"`
	CategoryID    int64                `json:"categoryId"`
	SubcategoryID *int64               `json:"subcategoryId"`
	InvoiceID     *int64               `json:"invoiceId"`
	Note          string               `json:"note"`
	Employee      string               `json:"employee"`
	Reference     string               `json:"reference"`
}

func (req transactionRequest) toTransaction(createdByID int64) core.Transaction {
	return core.Transaction{
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          req.Date,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		InvoiceID:     req.InvoiceID,
		Note:          sanitizeInput(req.Note),
		Employee:      sanitizeInput(req.Employee),
		Reference:     sanitizeInput(req.Reference),
		CreatedByID:   createdByID,
	}
}

// handleCreateTransaction records a transaction for the authenticated
// user. Category and invoice references are enforced by the schema.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		writeError(w, r, core.ErrUnauthorized)
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tx := req.toTransaction(user.ID)
	if err := tx.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.txService.Create(r.Context(), tx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateReportCaches()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID, err := parseOptionalID(query, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	categoryID, err := parseOptionalID(query, "categoryId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	from, to, err := parseDateRange(query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := parseLimit(query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	transactions, err := s.store.ListTransactions(r.Context(), storage.TransactionFilter{
		UserID:     userID,
		CategoryID: categoryID,
		From:       from,
		To:         to,
		Limit:      limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tx, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// handleUpdateTransaction replaces the mutable fields of a transaction.
// The creator stays whoever originally recorded it.
func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	existing, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tx := req.toTransaction(existing.CreatedByID)
	tx.ID = id
	if err := tx.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.txService.Update(r.Context(), tx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateReportCaches()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.txService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateReportCaches()
	w.WriteHeader(http.StatusNoContent)
}
