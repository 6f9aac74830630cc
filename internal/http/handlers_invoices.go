package http

import (
	"net/http"

	"fincheck/internal/core"
)

type createInvoiceRequest struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	Vendor        string    `json:"vendor"`
	IssuedAt      core.Date `json:"issuedAt"`
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	invoice := core.Invoice{
		InvoiceNumber: sanitizeInput(req.InvoiceNumber),
		Vendor:        sanitizeInput(req.Vendor),
		IssuedAt:      req.IssuedAt,
	}
	if err := invoice.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.store.CreateInvoice(r.Context(), invoice)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	invoice, err := s.store.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := s.store.ListInvoices(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}
