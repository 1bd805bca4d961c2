package metrics

import (
	"time"

	"github.com/riftlens/riftlens/internal/observability"
)

// Application-level metrics following Prometheus conventions
var (
	// Lookup metrics
	LookupsTotal        = "app_lookups_total"
	LookupDuration      = "app_lookup_duration_ms"
	UpstreamErrorsTotal = "app_upstream_errors_total"

	// Scheduler metrics
	DispatchesTotal = "app_scheduler_dispatches_total"
	QueueDepth      = "app_scheduler_queue_depth"

	// Health check metrics
	HealthCheckTotal    = "app_health_check_total"
	HealthCheckDuration = "app_health_check_duration_ms"

	// Server lifecycle metrics
	ServerStartTime = "app_server_start_time_seconds"
	ServerUptime    = "app_server_uptime_seconds"
)

// RecordLookup records a ranked lookup with its data source and outcome.
func RecordLookup(source string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			LookupsTotal,
			1,
			map[string]string{
				"source": source,
				"status": status,
			},
		)
		_ = observability.TelemetrySystem.Histogram(
			LookupDuration,
			duration,
			map[string]string{
				"source": source,
			},
		)
	}
}

// RecordUpstreamError records an upstream API failure by kind. A
// rate_limited kind here means the client-side quota configuration does
// not match the key's registered limits.
func RecordUpstreamError(kind string) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			UpstreamErrorsTotal,
			1,
			map[string]string{
				"kind": kind,
			},
		)
	}
}

// RecordDispatch records one scheduler dispatch.
func RecordDispatch() {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(DispatchesTotal, 1, nil)
	}
}

// SetQueueDepth records the current scheduler queue depth.
func SetQueueDepth(depth int) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(QueueDepth, float64(depth), nil)
	}
}

// RecordHealthCheck records a health check execution
func RecordHealthCheck(checkName string, healthy bool, duration time.Duration) {
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			HealthCheckTotal,
			1,
			map[string]string{
				"check":  checkName,
				"status": status,
			},
		)

		_ = observability.TelemetrySystem.Histogram(
			HealthCheckDuration,
			duration,
			map[string]string{
				"check": checkName,
			},
		)
	}
}

// SetServerStartTime records the server start time (Unix timestamp)
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ServerStartTime,
			float64(timestamp),
			nil,
		)
	}
}

// SetServerUptime records the server uptime in seconds
func SetServerUptime(seconds int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ServerUptime,
			float64(seconds),
			nil,
		)
	}
}
