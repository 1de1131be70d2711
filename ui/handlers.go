package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"diamonddash/domain/view"
	"diamonddash/internal/dashboard"
	"diamonddash/internal/errors"
	"diamonddash/internal/figure"
	"diamonddash/internal/metrics"
	"diamonddash/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// indexView is the data of the page template
type indexView struct {
	Title  string
	Layout view.Node
}

// graphView is the data of the graph fragment
type graphView struct {
	Figure *figure.Figure
	SVG    template.HTML
}

// handleIndex renders the page with the default tab already filled in
func (s *Server) handleIndex(c *gin.Context) {
	content, err := s.dash.RenderContent(dashboard.DefaultTab)
	if err != nil {
		s.failFragment(c, err)
		return
	}

	layout, ok := s.dash.Layout().WithChildren(dashboard.IDContent, content)
	if !ok {
		s.failFragment(c, errors.InternalError("layout has no content placeholder"))
		return
	}

	s.renderTemplate(c, http.StatusOK, fragments.Index, indexView{
		Title:  s.dash.Title(),
		Layout: layout,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   s.dash.Table().RowCount(),
		"source": s.dash.Table().Source(),
	})
}

// handleContentFragment is the tab-switch callback
func (s *Server) handleContentFragment(c *gin.Context) {
	fragment, err := s.content(c)
	if err != nil {
		s.failFragment(c, err)
		return
	}
	s.renderTemplate(c, http.StatusOK, fragments.Node, fragment)
}

// handleGraphFragment is the column-switch callback
func (s *Server) handleGraphFragment(c *gin.Context) {
	fig, err := s.histogram(c)
	if err != nil {
		s.failFragment(c, err)
		return
	}

	var svg bytes.Buffer
	if err := figure.RenderSVG(fig, &svg); err != nil {
		s.failFragment(c, err)
		return
	}

	s.renderTemplate(c, http.StatusOK, fragments.Graph, graphView{
		Figure: fig,
		SVG:    template.HTML(svg.String()),
	})
}

func (s *Server) handleLayoutJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.dash.Layout())
}

func (s *Server) handleContentJSON(c *gin.Context) {
	fragment, err := s.content(c)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, fragment)
}

func (s *Server) handleFigureJSON(c *gin.Context) {
	fig, err := s.histogram(c)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, fig)
}

func (s *Server) handleHistogramSVG(c *gin.Context) {
	fig, err := s.histogram(c)
	if err != nil {
		s.failJSON(c, err)
		return
	}

	var svg bytes.Buffer
	if err := figure.RenderSVG(fig, &svg); err != nil {
		s.failJSON(c, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", svg.Bytes())
}

// content runs the tab callback for the ?tab= query value
func (s *Server) content(c *gin.Context) (fragment view.Node, err error) {
	defer func(started time.Time) { metrics.ObserveCallback(metrics.CallbackContent, started, err) }(time.Now())

	tab, err := dashboard.ParseTab(c.Query("tab"))
	if err != nil {
		return view.Node{}, err
	}
	return s.dash.RenderContent(tab)
}

// histogram runs the graph callback for the ?column= and ?bins= query values
func (s *Server) histogram(c *gin.Context) (fig *figure.Figure, err error) {
	defer func(started time.Time) { metrics.ObserveCallback(metrics.CallbackGraph, started, err) }(time.Now())

	bins, err := parseBins(c.Query("bins"))
	if err != nil {
		return nil, err
	}
	return s.dash.Histogram(c.Query("column"), bins)
}

// parseBins reads the optional bucket count; empty means automatic
func parseBins(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	bins, err := strconv.Atoi(raw)
	if err != nil || bins < 1 || bins > figure.MaxBins {
		return 0, errors.InvalidInput(fmt.Sprintf("bins must be an integer between 1 and %d", figure.MaxBins))
	}
	return bins, nil
}
