package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "diamonddash",
		Name:      "callbacks_total",
		Help:      "Number of dashboard callback invocations by callback and outcome.",
	}, []string{"callback", "outcome"})
	metricCallbackDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "diamonddash",
		Name:      "callback_duration_seconds",
		Help:      "Time spent computing a dashboard callback result.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"callback"})
	metricDatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "diamonddash",
		Name:      "dataset_rows",
		Help:      "Rows in the loaded dataset.",
	})
)

// Callback names used as label values
const (
	CallbackContent = "content"
	CallbackGraph   = "graph"
)

// ObserveCallback records one callback invocation
func ObserveCallback(callback string, started time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metricCallbacks.WithLabelValues(callback, outcome).Inc()
	metricCallbackDuration.WithLabelValues(callback).Observe(time.Since(started).Seconds())
}

// SetDatasetRows publishes the size of the loaded dataset
func SetDatasetRows(rows int) {
	metricDatasetRows.Set(float64(rows))
}
