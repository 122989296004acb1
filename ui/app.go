package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"desa/adapters/tabular"
	"desa/domain/survey"
	"desa/internal/config"
	"desa/internal/summarize"
)

//go:embed templates/* static/* help.md
var embeddedFiles embed.FS

// App is the web application: upload form, summary tables, charts and
// CSV downloads.
type App struct {
	router    *chi.Mux
	templates *template.Template
	pipeline  *summarize.Pipeline
	cfg       *config.Config
	aboutHTML template.HTML

	// The most recent report is the whole in-memory session: downloads
	// and re-renders serve from it until the next upload replaces it.
	mu     sync.RWMutex
	report *summarize.Report
}

// NewApp creates a new UI application
func NewApp(cfg *config.Config) (*App, error) {
	loader := tabular.NewCachingLoader(cfg.Loader.CacheEntries)
	pipeline := summarize.New(loader, survey.DefaultRules())

	funcMap := template.FuncMap{
		"fmt2": func(v *float64) string {
			if v == nil {
				return "—"
			}
			return fmt.Sprintf("%.2f", *v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	helpSource, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read help text: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		pipeline:  pipeline,
		cfg:       cfg,
		aboutHTML: template.HTML(markdown.ToHTML(helpSource, nil, nil)),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/upload", a.handleUpload)
	a.router.Get("/download/{kind}.csv", a.handleDownload)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.cfg.Server.Port
	log.Printf("Starting DESA UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) setReport(report *summarize.Report) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.report = report
}

func (a *App) currentReport() *summarize.Report {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.report
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
