// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: resumes/v1/resumes.proto

package resumesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ResumeService_CreateResume_FullMethodName       = "/resumes.v1.ResumeService/CreateResume"
	ResumeService_GetResume_FullMethodName          = "/resumes.v1.ResumeService/GetResume"
	ResumeService_ListResumes_FullMethodName        = "/resumes.v1.ResumeService/ListResumes"
	ResumeService_ListResumesForUser_FullMethodName = "/resumes.v1.ResumeService/ListResumesForUser"
	ResumeService_TransitionStatus_FullMethodName   = "/resumes.v1.ResumeService/TransitionStatus"
	ResumeService_SoftDeleteResume_FullMethodName   = "/resumes.v1.ResumeService/SoftDeleteResume"
	ResumeService_ExportResumes_FullMethodName      = "/resumes.v1.ResumeService/ExportResumes"
)

// ResumeServiceClient is the client API for ResumeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ResumeService is the caller-facing surface over the resume lifecycle.
// Authentication happens upstream; the authenticated principal travels as
// actor_id / actor_email on mutating requests.
type ResumeServiceClient interface {
	CreateResume(ctx context.Context, in *CreateResumeRequest, opts ...grpc.CallOption) (*CreateResumeResponse, error)
	GetResume(ctx context.Context, in *GetResumeRequest, opts ...grpc.CallOption) (*GetResumeResponse, error)
	ListResumes(ctx context.Context, in *ListResumesRequest, opts ...grpc.CallOption) (*ListResumesResponse, error)
	ListResumesForUser(ctx context.Context, in *ListResumesForUserRequest, opts ...grpc.CallOption) (*ListResumesForUserResponse, error)
	TransitionStatus(ctx context.Context, in *TransitionStatusRequest, opts ...grpc.CallOption) (*TransitionStatusResponse, error)
	SoftDeleteResume(ctx context.Context, in *SoftDeleteResumeRequest, opts ...grpc.CallOption) (*SoftDeleteResumeResponse, error)
	ExportResumes(ctx context.Context, in *ExportResumesRequest, opts ...grpc.CallOption) (*ExportResumesResponse, error)
}

type resumeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewResumeServiceClient(cc grpc.ClientConnInterface) ResumeServiceClient {
	return &resumeServiceClient{cc}
}

func (c *resumeServiceClient) CreateResume(ctx context.Context, in *CreateResumeRequest, opts ...grpc.CallOption) (*CreateResumeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateResumeResponse)
	err := c.cc.Invoke(ctx, ResumeService_CreateResume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) GetResume(ctx context.Context, in *GetResumeRequest, opts ...grpc.CallOption) (*GetResumeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetResumeResponse)
	err := c.cc.Invoke(ctx, ResumeService_GetResume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) ListResumes(ctx context.Context, in *ListResumesRequest, opts ...grpc.CallOption) (*ListResumesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResumesResponse)
	err := c.cc.Invoke(ctx, ResumeService_ListResumes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) ListResumesForUser(ctx context.Context, in *ListResumesForUserRequest, opts ...grpc.CallOption) (*ListResumesForUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResumesForUserResponse)
	err := c.cc.Invoke(ctx, ResumeService_ListResumesForUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) TransitionStatus(ctx context.Context, in *TransitionStatusRequest, opts ...grpc.CallOption) (*TransitionStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransitionStatusResponse)
	err := c.cc.Invoke(ctx, ResumeService_TransitionStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) SoftDeleteResume(ctx context.Context, in *SoftDeleteResumeRequest, opts ...grpc.CallOption) (*SoftDeleteResumeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SoftDeleteResumeResponse)
	err := c.cc.Invoke(ctx, ResumeService_SoftDeleteResume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) ExportResumes(ctx context.Context, in *ExportResumesRequest, opts ...grpc.CallOption) (*ExportResumesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResumesResponse)
	err := c.cc.Invoke(ctx, ResumeService_ExportResumes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResumeServiceServer is the server API for ResumeService service.
// All implementations must embed UnimplementedResumeServiceServer
// for forward compatibility.
//
// ResumeService is the caller-facing surface over the resume lifecycle.
// Authentication happens upstream; the authenticated principal travels as
// actor_id / actor_email on mutating requests.
type ResumeServiceServer interface {
	CreateResume(context.Context, *CreateResumeRequest) (*CreateResumeResponse, error)
	GetResume(context.Context, *GetResumeRequest) (*GetResumeResponse, error)
	ListResumes(context.Context, *ListResumesRequest) (*ListResumesResponse, error)
	ListResumesForUser(context.Context, *ListResumesForUserRequest) (*ListResumesForUserResponse, error)
	TransitionStatus(context.Context, *TransitionStatusRequest) (*TransitionStatusResponse, error)
	SoftDeleteResume(context.Context, *SoftDeleteResumeRequest) (*SoftDeleteResumeResponse, error)
	ExportResumes(context.Context, *ExportResumesRequest) (*ExportResumesResponse, error)
	mustEmbedUnimplementedResumeServiceServer()
}

// UnimplementedResumeServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedResumeServiceServer struct{}

func (UnimplementedResumeServiceServer) CreateResume(context.Context, *CreateResumeRequest) (*CreateResumeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateResume not implemented")
}
func (UnimplementedResumeServiceServer) GetResume(context.Context, *GetResumeRequest) (*GetResumeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetResume not implemented")
}
func (UnimplementedResumeServiceServer) ListResumes(context.Context, *ListResumesRequest) (*ListResumesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResumes not implemented")
}
func (UnimplementedResumeServiceServer) ListResumesForUser(context.Context, *ListResumesForUserRequest) (*ListResumesForUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResumesForUser not implemented")
}
func (UnimplementedResumeServiceServer) TransitionStatus(context.Context, *TransitionStatusRequest) (*TransitionStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionStatus not implemented")
}
func (UnimplementedResumeServiceServer) SoftDeleteResume(context.Context, *SoftDeleteResumeRequest) (*SoftDeleteResumeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SoftDeleteResume not implemented")
}
func (UnimplementedResumeServiceServer) ExportResumes(context.Context, *ExportResumesRequest) (*ExportResumesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportResumes not implemented")
}
func (UnimplementedResumeServiceServer) mustEmbedUnimplementedResumeServiceServer() {}
func (UnimplementedResumeServiceServer) testEmbeddedByValue()                       {}

// UnsafeResumeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ResumeServiceServer will
// result in compilation errors.
type UnsafeResumeServiceServer interface {
	mustEmbedUnimplementedResumeServiceServer()
}

func RegisterResumeServiceServer(s grpc.ServiceRegistrar, srv ResumeServiceServer) {
	// If the following call pancis, it indicates UnimplementedResumeServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ResumeService_ServiceDesc, srv)
}

func _ResumeService_CreateResume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).CreateResume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_CreateResume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).CreateResume(ctx, req.(*CreateResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResumeService_GetResume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).GetResume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_GetResume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).GetResume(ctx, req.(*GetResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResumeService_ListResumes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResumesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).ListResumes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_ListResumes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).ListResumes(ctx, req.(*ListResumesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResumeService_ListResumesForUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResumesForUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).ListResumesForUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_ListResumesForUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).ListResumesForUser(ctx, req.(*ListResumesForUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResumeService_TransitionStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransitionStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).TransitionStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_TransitionStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).TransitionStatus(ctx, req.(*TransitionStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResumeService_SoftDeleteResume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SoftDeleteResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).SoftDeleteResume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_SoftDeleteResume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).SoftDeleteResume(ctx, req.(*SoftDeleteResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ResumeService_ExportResumes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportResumesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).ExportResumes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResumeService_ExportResumes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).ExportResumes(ctx, req.(*ExportResumesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ResumeService_ServiceDesc is the grpc.ServiceDesc for ResumeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ResumeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "resumes.v1.ResumeService",
	HandlerType: (*ResumeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateResume",
			Handler:    _ResumeService_CreateResume_Handler,
		},
		{
			MethodName: "GetResume",
			Handler:    _ResumeService_GetResume_Handler,
		},
		{
			MethodName: "ListResumes",
			Handler:    _ResumeService_ListResumes_Handler,
		},
		{
			MethodName: "ListResumesForUser",
			Handler:    _ResumeService_ListResumesForUser_Handler,
		},
		{
			MethodName: "TransitionStatus",
			Handler:    _ResumeService_TransitionStatus_Handler,
		},
		{
			MethodName: "SoftDeleteResume",
			Handler:    _ResumeService_SoftDeleteResume_Handler,
		},
		{
			MethodName: "ExportResumes",
			Handler:    _ResumeService_ExportResumes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "resumes/v1/resumes.proto",
}
