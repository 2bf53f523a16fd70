// Package client contains the CLI's connection to the collab backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Select,
//     Insert, Upload, Ping and Close.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, applies a per-call timeout, performs the presigned-PUT
//     upload dance and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrInvalidRequest, ErrNotFound.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
