// Package ports declares the interfaces the relay depends on.
//
// Adapters under pkg/adapters implement them:
//   - Uploader: irys (upload node over HTTP), memory
//   - ReceiptStore: redis, memory
//   - EventBus: redis streams, memory
//   - MetricsCollector: prometheus
package ports
