package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets covering response times from milliseconds (local
	// handler work) up to tens of seconds (Google Sheets reads, WhatsApp sends)
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Sheets Client Metrics
	SheetsRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sheets_client_operation_duration_seconds",
			Help:    "Google Sheets client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	SheetsRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheets_client_operation_total",
			Help: "Total number of Google Sheets client operations",
		},
		[]string{"operation", "status"},
	)

	// Dispatch Metrics
	MessagesDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatsapp_messages_dispatched_total",
			Help: "Total number of WhatsApp messages dispatched",
		},
		[]string{"template", "status"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whatsapp_dispatch_duration_seconds",
			Help:    "WhatsApp dispatch duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"template"},
	)

	// Business Metrics
	BroadcastRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_runs_total",
			Help: "Total number of bulk broadcast runs",
		},
		[]string{"status"},
	)

	BroadcastRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_records_total",
			Help: "Per-record outcomes across bulk broadcast runs",
		},
		[]string{"outcome"},
	)

	SheetSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_submissions_total",
			Help: "Total number of rows submitted for appending to the sheet",
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
