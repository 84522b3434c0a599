package ui

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"nptest/adapters/excel"
	"nptest/app"
	"nptest/ports"
)

// App represents the HTTP application exposing the analysis engine.
type App struct {
	router    *chi.Mux
	analyses  *app.AnalysisService
	writer    ports.TableWriterPort
	exportDir string
}

// Config holds HTTP application configuration
type Config struct {
	Port      string
	Shards    int
	ExportDir string
}

// NewApp creates the HTTP application around an analysis service.
func NewApp(config Config) (*App, error) {
	exportDir := config.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	a := &App{
		router:    chi.NewRouter(),
		analyses:  app.NewAnalysisService(config.Shards),
		writer:    excel.NewTableWriter(),
		exportDir: exportDir,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	// API endpoints
	a.router.Post("/api/analyses", a.handleAnalyze)
	a.router.Post("/api/analyses/select", a.handleSelect)
	a.router.Get("/api/analyses/binomial", a.handleBinomial)
	a.router.Post("/api/analyses/report", a.handleReport)
	a.router.Post("/api/analyses/export", a.handleExport)
}

// Start runs the HTTP server on the configured port.
func (a *App) Start(port string) error {
	addr := fmt.Sprintf(":%s", port)
	log.Printf("[UI] Listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for tests and embedding.
func (a *App) Router() http.Handler {
	return a.router
}
