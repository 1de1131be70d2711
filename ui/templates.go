package ui

import (
	"bytes"
	"net/http"

	"diamonddash/internal/errors"
	"diamonddash/ui/middleware"
	"diamonddash/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a failing
// template never leaves a half-written response.
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.log.Error("Template error for %s: %v", templateName, err)
		s.log.Debug("Template data type: %T", data)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "code": errors.CodeInternalError})
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// errorView is the data of the error fragment
type errorView struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (s *Server) describeError(c *gin.Context, err error) errorView {
	status := errors.HTTPStatus(err)
	view := errorView{
		Status:    status,
		Code:      errors.GetCode(err),
		Message:   err.Error(),
		RequestID: c.GetString(middleware.ContextKeyRequestID),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("%s %s failed (request %s): %v", c.Request.Method, c.Request.URL.Path, view.RequestID, err)
		if !s.debug {
			view.Message = http.StatusText(status)
		}
	} else {
		s.log.Debug("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	return view
}

// failFragment answers an HTMX request with an error fragment
func (s *Server) failFragment(c *gin.Context, err error) {
	view := s.describeError(c, err)
	s.renderTemplate(c, view.Status, fragments.Error, view)
}

// failJSON answers an API request with {"error", "code"}
func (s *Server) failJSON(c *gin.Context, err error) {
	view := s.describeError(c, err)
	c.AbortWithStatusJSON(view.Status, gin.H{
		"error":      view.Message,
		"code":       view.Code,
		"request_id": view.RequestID,
	})
}
