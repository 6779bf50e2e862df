// Package grpc provides the gRPC server of the relay.
//
// Only the standard health service is registered; its status follows the
// dependency health monitor so orchestrators can query the relay over gRPC.
package grpc
