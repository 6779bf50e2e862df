// Package events provides event bus implementations.
//
// Implementations:
//   - redis: Redis Streams, every subscriber sees every event
//   - memory: In-memory fan-out, used when no Redis server is configured
package events
