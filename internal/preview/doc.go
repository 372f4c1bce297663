// Package preview serves live previews of the site footer.
//
// Routes:
//
//	GET /                 full preview page with the footer
//	GET /footer           footer HTML fragment
//	GET /footer.json      footer view tree as JSON
//	GET /healthz          liveness probe
//	GET /metrics          Prometheus metrics
//	GET /_docsite/reload  live reload WebSocket (when enabled)
//
// Every footer render runs inside a "footer.render" OpenTelemetry span.
package preview
