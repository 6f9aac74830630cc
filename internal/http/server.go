// Package http exposes the bookkeeping REST API: auth, users,
// categories, invoices, transactions and reports, JSON in and out.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"fincheck/internal/auth"
	"fincheck/internal/cache"
	"fincheck/internal/core"
	"fincheck/internal/services"
	"fincheck/internal/storage"
)

type Server struct {
	http.Server
	store       *storage.SQLiteRepository
	txService   *services.TransactionService
	auth        *auth.Service
	rateLimiter *rateLimiter

	// Report aggregates are cached briefly and purged on every
	// transaction mutation, so SQL stays the only source of numbers.
	balanceCache  *cache.LRUCache[core.BalanceSummary]
	expensesCache *cache.LRUCache[[]core.UserExpenseSummary]
	cacheManager  *cache.Manager

	shutdownOnce sync.Once
}

// NewServer wires routes and middleware, returning a ready-to-run
// server. Everything outside /auth/* and the health probes requires a
// bearer token.
func NewServer(addr string, store *storage.SQLiteRepository, txService *services.TransactionService, authService *auth.Service) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:         store,
		txService:     txService,
		auth:          authService,
		rateLimiter:   newRateLimiter(60),
		balanceCache:  cache.NewLRUCache[core.BalanceSummary](100, 30*time.Second),
		expensesCache: cache.NewLRUCache[[]core.UserExpenseSummary](100, 30*time.Second),
		cacheManager:  cache.NewManager(),
	}
	s.cacheManager.Register(s.balanceCache)
	s.cacheManager.Register(s.expensesCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /auth/register", s.withCommon(s.handleRegister))
	mux.HandleFunc("POST /auth/login", s.withCommon(s.handleLogin))
	mux.HandleFunc("POST /auth/forgot-password", s.withCommon(s.handleForgotPassword))
	mux.HandleFunc("POST /auth/reset-password", s.withCommon(s.handleResetPassword))
	mux.HandleFunc("GET /auth/me", s.withCommon(s.requireAuth(s.handleMe)))

	mux.HandleFunc("GET /users", s.withCommon(s.requireAuth(s.handleListUsers)))
	mux.HandleFunc("POST /users", s.withCommon(s.requireAuth(s.handleCreateUser)))

	mux.HandleFunc("GET /categories", s.withCommon(s.requireAuth(s.handleListCategories)))
	mux.HandleFunc("POST /categories", s.withCommon(s.requireAuth(s.handleCreateCategory)))
	mux.HandleFunc("GET /categories/{id}", s.withCommon(s.requireAuth(s.handleGetCategory)))

	mux.HandleFunc("GET /invoices", s.withCommon(s.requireAuth(s.handleListInvoices)))
	mux.HandleFunc("POST /invoices", s.withCommon(s.requireAuth(s.handleCreateInvoice)))
	mux.HandleFunc("GET /invoices/{id}", s.withCommon(s.requireAuth(s.handleGetInvoice)))

	mux.HandleFunc("GET /transactions", s.withCommon(s.requireAuth(s.handleListTransactions)))
	mux.HandleFunc("POST /transactions", s.withCommon(s.requireAuth(s.handleCreateTransaction)))
	mux.HandleFunc("GET /transactions/{id}", s.withCommon(s.requireAuth(s.handleGetTransaction)))
	mux.HandleFunc("PUT /transactions/{id}", s.withCommon(s.requireAuth(s.handleUpdateTransaction)))
	mux.HandleFunc("DELETE /transactions/{id}", s.withCommon(s.requireAuth(s.handleDeleteTransaction)))

	mux.HandleFunc("GET /reports/balance", s.withCommon(s.requireAuth(s.handleTotalBalance)))
	mux.HandleFunc("GET /reports/user-expenses", s.withCommon(s.requireAuth(s.handleUserExpenses)))

	return s
}

// Shutdown stops background goroutines and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.stop()
		s.cacheManager.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// invalidateReportCaches drops every cached aggregate. Called after
// any transaction mutation.
func (s *Server) invalidateReportCaches() {
	s.balanceCache.Purge()
	s.expensesCache.Purge()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
