package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"diamonddash/adapters/tabular"
	"diamonddash/domain/dataset"
	"diamonddash/internal/dashboard"
	"diamonddash/internal/errors"
	"diamonddash/internal/figure"
	"diamonddash/ui/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	table, err := tabular.NewDataReader(filepath.Join("..", "data", "diamonds.csv")).ReadTable()
	require.NoError(t, err)

	dash, err := dashboard.New(table, dashboard.DefaultOptions())
	require.NoError(t, err)

	s, err := NewServer(dash, Config{GinMode: gin.TestMode})
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Diamond Data Dashboard</h1>")
	assert.Contains(t, body, `id="tabs"`)
	assert.Contains(t, body, `hx-get="/fragments/content?tab=visualization"`)
	assert.Contains(t, body, "<h2>Data Table</h2>")
	assert.Contains(t, body, `id="data-table"`)

	// the hidden visualization block stays out of the page, so the dropdown
	// neither fires on load nor duplicates the visualization tab's ids
	assert.NotContains(t, body, `id="visualization-content"`)
	assert.NotContains(t, body, `id="column-dropdown"`)
	assert.NotContains(t, body, `hx-get="/fragments/graph"`)
}

func TestContentFragments(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		tab      string
		contains []string
	}{
		{"table", []string{"<h2>Data Table</h2>", "<th>clarity</th>", "<td>Premium</td>"}},
		{"description", []string{"<h2>Variable Descriptions</h2>", "<p>This dataset contains information about diamonds"}},
		{"visualization", []string{"<h2>Column Graph</h2>", `<option value="price">price</option>`, `class="graph"`}},
		{"", []string{"<h2>Data Table</h2>"}},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			rec := get(t, s, "/fragments/content?tab="+tt.tab)
			require.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestVisualizationFragmentListsOnlyNumericColumns(t *testing.T) {
	s := newTestServer(t)
	body := get(t, s, "/fragments/content?tab=visualization").Body.String()

	assert.Equal(t, 1, strings.Count(body, `id="visualization-content"`))
	assert.Equal(t, 1, strings.Count(body, `id="column-dropdown"`))
	assert.Contains(t, body, `<option value="carat" selected>carat</option>`)

	assert.NotContains(t, body, `<option value="cut"`)
	assert.NotContains(t, body, `<option value="color"`)
	assert.NotContains(t, body, `<option value="clarity"`)
}

func TestContentFragmentUnknownTab(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/fragments/content?tab=charts")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="error"`)
	assert.Contains(t, rec.Body.String(), "unknown tab")
	assert.Contains(t, rec.Body.String(), errors.CodeInvalidInput)
}

func TestGraphFragment(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/fragments/graph?column=price")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<figcaption>Histogram of price</figcaption>")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "<dt>count</dt><dd>40</dd>")
}

func TestGraphFragmentRejectsUnknownColumn(t *testing.T) {
	s := newTestServer(t)

	for _, column := range []string{"weight", "cut"} {
		rec := get(t, s, "/fragments/graph?column="+column)
		assert.Equal(t, http.StatusBadRequest, rec.Code, column)
		assert.Contains(t, rec.Body.String(), `class="error"`)
		assert.NotContains(t, rec.Body.String(), "<svg")
	}
}

func TestFigureJSON(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/figure?column=carat&bins=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var fig figure.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.Equal(t, "Histogram of carat", fig.Title)
	assert.Len(t, fig.Bins, 3)
	assert.Equal(t, 40, fig.TotalCount())

	again := get(t, s, "/api/figure?column=carat&bins=3")
	assert.JSONEq(t, rec.Body.String(), again.Body.String())
}

func TestFigureJSONErrors(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/api/figure?column=weight",
		"/api/figure?column=carat&bins=abc",
		"/api/figure?column=carat&bins=0",
		"/api/figure?column=carat&bins=1000",
	} {
		rec := get(t, s, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, errors.CodeInvalidInput, body["code"], target)
		assert.NotEmpty(t, body["error"])
		assert.NotEmpty(t, body["request_id"])
	}
}

func TestServerErrorDetailFollowsDebug(t *testing.T) {
	table, err := dataset.NewTable("memory", []dataset.Column{
		dataset.NewNumericColumn("carat", []string{"-1e308", "1e308"}, []float64{-1e308, 1e308}),
	})
	require.NoError(t, err)
	dash, err := dashboard.New(table, dashboard.DefaultOptions())
	require.NoError(t, err)

	tests := []struct {
		name    string
		debug   bool
		message string
	}{
		{"release", false, http.StatusText(http.StatusInternalServerError)},
		{"debug", true, `column "carat" range overflows float64`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(dash, Config{GinMode: gin.TestMode, Debug: tt.debug})
			require.NoError(t, err)

			rec := get(t, s, "/api/figure?column=carat")
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, errors.CodeDataInvalid, body["code"])
			assert.Equal(t, tt.message, body["error"])

			rec = get(t, s, "/fragments/graph?column=carat")
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), `class="error"`)
		})
	}
}

func TestLayoutAndContentJSON(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/layout")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"column-dropdown"`)
	assert.Contains(t, rec.Body.String(), `"display":"none"`)

	rec = get(t, s, "/api/content?tab=description")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"Variable Descriptions"`)

	rec = get(t, s, "/api/content?tab=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistogramSVG(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/figures/histogram.svg?column=depth")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestRequestIDAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
	assert.Contains(t, rec.Body.String(), `"rows":40`)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.HeaderRequestID))
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/static/css/dashboard.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".tabs")
}
