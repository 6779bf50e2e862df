// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Vote and feedback uploads to Irys
//   - Upload receipt lookups
//   - Liveness and readiness checks
//   - Prometheus metrics
package http
