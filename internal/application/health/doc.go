// Package health implements the dependency health monitor.
//
// The monitor runs a set of named checks (Redis ping, uploader node ping)
// on a fixed interval and keeps the last result. That result backs:
//   - The /ready HTTP endpoint
//   - The gRPC health service status
//   - The irys_dependency_up gauge
package health
