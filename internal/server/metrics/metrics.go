// Package metrics provides Prometheus metrics for the collab server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RPC metrics
	rpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collab_rpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	rpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collab_rpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Resource metrics
	rowsInsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collab_rows_inserted_total",
			Help: "Total rows inserted per table",
		},
		[]string{"table"},
	)

	rowsSelectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collab_rows_selected_total",
			Help: "Total rows returned by Select per table",
		},
		[]string{"table"},
	)

	// Upload metrics
	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collab_uploads_total",
			Help: "Upload lifecycle events",
		},
		[]string{"stage", "status"},
	)

	s3OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collab_s3_operation_duration_seconds",
			Help:    "S3 operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRPC records one finished gRPC call.
func RecordRPC(method, code string, duration time.Duration) {
	rpcRequestsTotal.WithLabelValues(method, code).Inc()
	rpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func RecordInsert(table string) {
	rowsInsertedTotal.WithLabelValues(table).Inc()
}

func RecordSelect(table string, rows int) {
	rowsSelectedTotal.WithLabelValues(table).Add(float64(rows))
}

// RecordUpload records a presign or complete step of an upload.
func RecordUpload(stage string, success bool) {
	uploadsTotal.WithLabelValues(stage, statusLabel(success)).Inc()
}

// RecordS3Operation records an S3 operation duration.
func RecordS3Operation(operation string, duration time.Duration) {
	s3OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
