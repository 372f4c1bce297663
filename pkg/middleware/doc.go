// Package middleware provides HTTP middleware for the docsite preview server.
//
// This package includes:
//   - OpenTelemetry request tracing
//   - Prometheus render metrics
//   - Structured request logging with log/slog
//
// All middleware has the func(http.Handler) http.Handler shape and is meant
// to be installed on a chi router with Use, so route patterns are available
// for span names and metric labels.
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("docsite-preview"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
//	metrics := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(metrics.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// Metrics collected:
//   - docsite_renders_total{route,status}
//   - docsite_render_duration_seconds{route}
//   - docsite_config_reloads_total{status}
package middleware
