// Package server exposes a scoreboard over HTTP.
//
// The JSON API lives under /api/v1, Prometheus metrics under /metrics and a
// WebSocket live feed of the ranked summary under /ws. Every route passes
// through request IDs, panic recovery, security headers, CORS, a
// process-wide rate limiter, access logging and request metrics.
package server
