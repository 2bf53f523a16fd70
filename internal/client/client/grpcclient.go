package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/netx"
	pb "github.com/innovatehub/collab/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// backend is the subset of *pb.BackendClient used here.
type backend interface {
	Select(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	PresignUpload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	CompleteUpload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      backend
	httpClient  *http.Client
	timeout     time.Duration
}

// NewGRPCClient connects lazily to endpointURL. timeout bounds every remote
// call (zero means no extra bound); extra dial options are appended.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout, httpClient: http.DefaultClient}
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewBackendClient(conn)
	return c, nil
}

// WithHTTPClient sets the client used for presigned PUTs.
func (s *GRPCClient) WithHTTPClient(hc *http.Client) *GRPCClient {
	s.httpClient = hc
	return s
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Select(ctx context.Context, table string, columns []string) ([]models.Row, error) {
	req, err := pb.NewSelectRequest(table, columns)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Select(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	rows, err := pb.ListToRows(resp)
	if err != nil {
		return nil, err
	}
	out := make([]models.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Row(r))
	}
	return out, nil
}

func (s *GRPCClient) Insert(ctx context.Context, table string, row models.Row) error {
	req, err := pb.NewInsertRequest(table, row)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Insert(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

// Upload asks the backend for a presigned URL, PUTs the bytes there and
// then confirms the upload so the file becomes visible to Select.
func (s *GRPCClient) Upload(ctx context.Context, bucket, key string, file *models.FileHandle) error {
	if file == nil {
		return fmt.Errorf("%w: no file", ErrInvalidRequest)
	}
	req, err := pb.NewUploadRequest(pb.UploadRequest{Bucket: bucket, Key: key, Name: file.Name, FileType: file.ContentType})
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	url, err := s.client.PresignUpload(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if err := netx.UploadToPresignedURL(ctx, s.httpClient, url.GetValue(), file.ContentType, file.Data); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	if _, err := s.client.CompleteUpload(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Ping(ctx, &emptypb.Empty{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	default:
		return err
	}
}
