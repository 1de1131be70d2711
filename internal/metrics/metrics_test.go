package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCallback(t *testing.T) {
	okBefore := testutil.ToFloat64(metricCallbacks.WithLabelValues(CallbackGraph, "ok"))
	errBefore := testutil.ToFloat64(metricCallbacks.WithLabelValues(CallbackGraph, "error"))

	ObserveCallback(CallbackGraph, time.Now(), nil)
	ObserveCallback(CallbackGraph, time.Now(), errors.New("unknown column"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metricCallbacks.WithLabelValues(CallbackGraph, "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metricCallbacks.WithLabelValues(CallbackGraph, "error")))
}

func TestOpsRouter(t *testing.T) {
	SetDatasetRows(40)
	router := NewOpsRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "diamonddash_dataset_rows 40")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
