package grpc

import (
	"context"
	"errors"

	"github.com/innovatehub/collab/internal/common"
	pb "github.com/innovatehub/collab/internal/proto"
	"github.com/innovatehub/collab/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Select(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	table, columns, err := pb.ParseSelectRequest(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	rows, err := s.resources.Select(ctx, table, columns)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	list, err := pb.RowsToList(rows)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return list, nil
}

func (s *GRPCServer) Insert(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	table, row, err := pb.ParseInsertRequest(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	stored, err := s.resources.Insert(ctx, table, row)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Inserted", "table", table, "id", stored["id"])
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) PresignUpload(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	u, err := pb.ParseUploadRequest(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	url, err := s.resources.PresignUpload(ctx, services.Upload{Bucket: u.Bucket, Key: u.Key, Name: u.Name, FileType: u.FileType})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return wrapperspb.String(url), nil
}

func (s *GRPCServer) CompleteUpload(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	u, err := pb.ParseUploadRequest(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if err := s.resources.CompleteUpload(ctx, u.Bucket, u.Key); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Upload completed", "bucket", u.Bucket, "key", u.Key)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}

var invalidArgument = []error{
	pb.ErrMalformed,
	common.ErrUnknownTable,
	common.ErrUnknownColumn,
	common.ErrInvalidRow,
	common.ErrReadOnlyTable,
	common.ErrBucketMismatch,
	common.ErrEmptyKey,
}

// toStatus maps service errors onto gRPC status codes. Unexpected errors are
// logged and reported as a bare Internal so storage details do not leak.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
	}
	if errors.Is(err, common.ErrorNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
