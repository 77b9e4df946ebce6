package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finvision/corpledger/internal/adapter/http/handler"
	"github.com/finvision/corpledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler  *handler.LedgerHandler
	CompanyHandler *handler.CompanyHandler
	ReportHandler  *handler.ReportHandler
	CloseHandler   *handler.CloseHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Entries
		r.Route("/incomes", func(r chi.Router) {
			r.Post("/", cfg.LedgerHandler.CreateIncome)
			r.Get("/", cfg.LedgerHandler.ListIncomes)
			r.Delete("/{id}", cfg.LedgerHandler.DeleteIncome)
		})
		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.LedgerHandler.CreateExpense)
			r.Get("/", cfg.LedgerHandler.ListExpenses)
			r.Delete("/{id}", cfg.LedgerHandler.DeleteExpense)
		})
		r.Get("/balance", cfg.LedgerHandler.Balance)

		// Company configuration
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.CompanyHandler.CreateAccount)
			r.Get("/", cfg.CompanyHandler.ListAccounts)
		})
		r.Route("/departments", func(r chi.Router) {
			r.Post("/", cfg.CompanyHandler.CreateDepartment)
			r.Get("/", cfg.CompanyHandler.ListDepartments)
		})
		r.Route("/employees", func(r chi.Router) {
			r.Post("/", cfg.CompanyHandler.CreateEmployee)
			r.Get("/", cfg.CompanyHandler.ListEmployees)
		})
		r.Route("/taxes", func(r chi.Router) {
			r.Post("/", cfg.CompanyHandler.CreateTaxRule)
			r.Get("/", cfg.CompanyHandler.ListTaxRules)
		})
		r.Put("/budget", cfg.CompanyHandler.SetBudget)
		r.Put("/profile", cfg.CompanyHandler.SetProfile)
		r.Post("/categories/income", cfg.CompanyHandler.AddIncomeCategory)
		r.Post("/categories/expense", cfg.CompanyHandler.AddExpenseCategory)

		// Reports and close
		r.Get("/report", cfg.ReportHandler.Get)
		r.Post("/close", cfg.CloseHandler.Close)
		r.Route("/archives", func(r chi.Router) {
			r.Get("/", cfg.CloseHandler.ListArchives)
			r.Get("/{period}", cfg.CloseHandler.GetArchive)
		})
	})

	return r
}
