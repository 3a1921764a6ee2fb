// Package ui exposes the dashboard data core over HTTP: module
// listings, typed tables, and per-module summaries as JSON.
package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"painel/app"
)

// Config holds UI application configuration
type Config struct {
	Port string
}

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	service *app.DataService
	port    string
}

// NewApp creates the HTTP application around a data service.
func NewApp(service *app.DataService, config Config) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		port:    config.Port,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
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

	a.router.Get("/api/modules", a.handleModules)
	a.router.Get("/api/modules/{name}", a.handleModule)
	a.router.Get("/api/modules/{name}/summary", a.handleSummary)
}

// Router exposes the handler for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("Starting dashboard data server on %s (session %s)", addr, a.service.SessionID())
	return http.ListenAndServe(addr, a.router)
}
