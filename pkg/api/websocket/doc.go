// Package websocket provides real-time upload events via WebSocket.
//
// Clients can connect to /api/uploads/ws to receive upload.completed and
// upload.failed events as they happen.
package websocket
