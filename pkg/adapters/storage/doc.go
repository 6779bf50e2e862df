// Package storage provides receipt store implementations.
//
// Implementations:
//   - redis: Redis with JSON serialization, TTL and a per-record index
//   - memory: In-memory, used when no Redis server is configured and in tests
package storage
