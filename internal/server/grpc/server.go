package grpc

import (
	"context"
	"net"

	"github.com/innovatehub/collab/internal/logging"
	pb "github.com/innovatehub/collab/internal/proto"
	"github.com/innovatehub/collab/internal/server/services"
	"google.golang.org/grpc"
)

// Resources is the backend surface the handlers delegate to.
// *services.ResourceService implements it.
type Resources interface {
	Select(ctx context.Context, table string, columns []string) ([]map[string]any, error)
	Insert(ctx context.Context, table string, row map[string]any) (map[string]any, error)
	PresignUpload(ctx context.Context, u services.Upload) (string, error)
	CompleteUpload(ctx context.Context, bucket, key string) error
}

type GRPCServer struct {
	pb.UnimplementedBackendServer
	address   string
	resources Resources
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, r Resources) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		resources: r,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.recoveryInterceptor))
	pb.RegisterBackendServer(srv, s)
	return srv
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
