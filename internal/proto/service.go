// Package proto describes the collab.v1.Backend gRPC service.
//
// The service carries protobuf well-known types only (Struct, ListValue,
// StringValue, Empty), so the descriptor and the client stub below are
// written by hand instead of being generated from a .proto file.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "collab.v1.Backend"

const (
	Backend_Select_FullMethodName         = "/collab.v1.Backend/Select"
	Backend_Insert_FullMethodName         = "/collab.v1.Backend/Insert"
	Backend_PresignUpload_FullMethodName  = "/collab.v1.Backend/PresignUpload"
	Backend_CompleteUpload_FullMethodName = "/collab.v1.Backend/CompleteUpload"
	Backend_Ping_FullMethodName           = "/collab.v1.Backend/Ping"
)

// BackendServer is the server API for the collab.v1.Backend service.
type BackendServer interface {
	// Select returns every row of a table, projected onto the requested columns.
	Select(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	// Insert creates one row; the server assigns id and created_at.
	Insert(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	// PresignUpload records a pending file and returns a presigned PUT URL.
	PresignUpload(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	// CompleteUpload makes a pending file visible to Select.
	CompleteUpload(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedBackendServer can be embedded to have forward compatible implementations.
type UnimplementedBackendServer struct{}

func (UnimplementedBackendServer) Select(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Select not implemented")
}
func (UnimplementedBackendServer) Insert(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedBackendServer) PresignUpload(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method PresignUpload not implemented")
}
func (UnimplementedBackendServer) CompleteUpload(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteUpload not implemented")
}
func (UnimplementedBackendServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterBackendServer(s grpc.ServiceRegistrar, srv BackendServer) {
	s.RegisterService(&Backend_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](method string, call func(BackendServer, context.Context, *Req) (*Resp, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BackendServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(BackendServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Backend_ServiceDesc is the grpc.ServiceDesc for the collab.v1.Backend service.
var Backend_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BackendServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Select",
			Handler:    unaryHandler(Backend_Select_FullMethodName, BackendServer.Select),
		},
		{
			MethodName: "Insert",
			Handler:    unaryHandler(Backend_Insert_FullMethodName, BackendServer.Insert),
		},
		{
			MethodName: "PresignUpload",
			Handler:    unaryHandler(Backend_PresignUpload_FullMethodName, BackendServer.PresignUpload),
		},
		{
			MethodName: "CompleteUpload",
			Handler:    unaryHandler(Backend_CompleteUpload_FullMethodName, BackendServer.CompleteUpload),
		},
		{
			MethodName: "Ping",
			Handler:    unaryHandler(Backend_Ping_FullMethodName, BackendServer.Ping),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collab/v1/backend",
}

// BackendClient is the client API for the collab.v1.Backend service.
type BackendClient struct {
	cc grpc.ClientConnInterface
}

func NewBackendClient(cc grpc.ClientConnInterface) *BackendClient {
	return &BackendClient{cc: cc}
}

func (c *BackendClient) Select(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, Backend_Select_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, Backend_Insert_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) PresignUpload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, Backend_PresignUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) CompleteUpload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, Backend_CompleteUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, Backend_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
