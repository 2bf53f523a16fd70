package grpc

import (
	"context"
	"path"
	"time"

	"github.com/innovatehub/collab/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// loggingInterceptor logs every unary call and records its RPC metrics.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	method := path.Base(info.FullMethod)
	code := status.Code(err)
	metrics.RecordRPC(method, code.String(), elapsed)

	args := []any{"method", method, "code", code.String(), "duration", elapsed}
	switch {
	case err == nil:
		s.logger.Debug(ctx, "rpc", args...)
	case code == codes.Internal || code == codes.Unknown:
		s.logger.Error(ctx, "rpc failed", append(args, "error", err)...)
	default:
		s.logger.Warn(ctx, "rpc rejected", append(args, "error", err)...)
	}
	return resp, err
}

// recoveryInterceptor turns a handler panic into codes.Internal.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", p)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}
