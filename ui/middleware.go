package ui

import (
	"io/fs"
	"net/http"
)

// setupMiddleware serves the embedded static assets
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.log.Error("Error creating static filesystem: %v", err)
		return
	}
	s.log.Debug("Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}
