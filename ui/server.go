package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"diamonddash/internal"
	"diamonddash/internal/dashboard"
	"diamonddash/ui/middleware"
	"diamonddash/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

//go:embed templates static
var embeddedFiles embed.FS

// Server serves the dashboard page and its callback endpoints
type Server struct {
	router    *gin.Engine
	dash      *dashboard.Dashboard
	templates *template.Template
	debug     bool
	log       *internal.Logger
}

// Config holds server settings
type Config struct {
	// GinMode is one of gin.DebugMode, gin.ReleaseMode, gin.TestMode
	GinMode string
	// Debug puts internal error details into responses
	Debug bool
}

// NewServer parses the embedded templates and wires routes for dash
func NewServer(dash *dashboard.Dashboard, config Config) (*Server, error) {
	if config.GinMode == "" {
		config.GinMode = gin.DebugMode
	}
	gin.SetMode(config.GinMode)

	funcMap := template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"fmtNum": func(v float64) string {
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	for _, name := range fragments.GetAllTemplateNames() {
		if templates.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}

	s := &Server{
		router:    gin.New(),
		dash:      dash,
		templates: templates,
		debug:     config.Debug,
		log:       internal.DefaultLogger.With("Server"),
	}

	s.router.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())
	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	// HTMX callback endpoints
	s.router.GET("/fragments/content", s.handleContentFragment)
	s.router.GET("/fragments/graph", s.handleGraphFragment)

	// JSON mirrors of the callbacks
	s.router.GET("/api/layout", s.handleLayoutJSON)
	s.router.GET("/api/content", s.handleContentJSON)
	s.router.GET("/api/figure", s.handleFigureJSON)

	s.router.GET("/figures/histogram.svg", s.handleHistogramSVG)
}

// Handler exposes the router for an http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}
