package countdownv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AdminService_SetEndDelay_FullMethodName         = "/countdown.v1.AdminService/SetEndDelay"
	AdminService_SetCoolDownDuration_FullMethodName = "/countdown.v1.AdminService/SetCoolDownDuration"
	AdminService_SetStakeAmount_FullMethodName      = "/countdown.v1.AdminService/SetStakeAmount"
	AdminService_SetTreasury_FullMethodName         = "/countdown.v1.AdminService/SetTreasury"
	AdminService_Ban_FullMethodName                 = "/countdown.v1.AdminService/Ban"
	AdminService_Unban_FullMethodName               = "/countdown.v1.AdminService/Unban"
	AdminService_ListBlacklisted_FullMethodName     = "/countdown.v1.AdminService/ListBlacklisted"
)

type AdminServiceClient interface {
	SetEndDelay(ctx context.Context, in *SetEndDelayRequest, opts ...grpc.CallOption) (*SetEndDelayResponse, error)
	SetCoolDownDuration(ctx context.Context, in *SetCoolDownDurationRequest, opts ...grpc.CallOption) (*SetCoolDownDurationResponse, error)
	SetStakeAmount(ctx context.Context, in *SetStakeAmountRequest, opts ...grpc.CallOption) (*SetStakeAmountResponse, error)
	SetTreasury(ctx context.Context, in *SetTreasuryRequest, opts ...grpc.CallOption) (*SetTreasuryResponse, error)
	Ban(ctx context.Context, in *BanRequest, opts ...grpc.CallOption) (*BanResponse, error)
	Unban(ctx context.Context, in *UnbanRequest, opts ...grpc.CallOption) (*UnbanResponse, error)
	ListBlacklisted(ctx context.Context, in *ListBlacklistedRequest, opts ...grpc.CallOption) (*ListBlacklistedResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) SetEndDelay(ctx context.Context, in *SetEndDelayRequest, opts ...grpc.CallOption) (*SetEndDelayResponse, error) {
	out := new(SetEndDelayResponse)
	err := c.cc.Invoke(ctx, AdminService_SetEndDelay_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetCoolDownDuration(ctx context.Context, in *SetCoolDownDurationRequest, opts ...grpc.CallOption) (*SetCoolDownDurationResponse, error) {
	out := new(SetCoolDownDurationResponse)
	err := c.cc.Invoke(ctx, AdminService_SetCoolDownDuration_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetStakeAmount(ctx context.Context, in *SetStakeAmountRequest, opts ...grpc.CallOption) (*SetStakeAmountResponse, error) {
	out := new(SetStakeAmountResponse)
	err := c.cc.Invoke(ctx, AdminService_SetStakeAmount_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetTreasury(ctx context.Context, in *SetTreasuryRequest, opts ...grpc.CallOption) (*SetTreasuryResponse, error) {
	out := new(SetTreasuryResponse)
	err := c.cc.Invoke(ctx, AdminService_SetTreasury_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) Ban(ctx context.Context, in *BanRequest, opts ...grpc.CallOption) (*BanResponse, error) {
	out := new(BanResponse)
	err := c.cc.Invoke(ctx, AdminService_Ban_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) Unban(ctx context.Context, in *UnbanRequest, opts ...grpc.CallOption) (*UnbanResponse, error) {
	out := new(UnbanResponse)
	err := c.cc.Invoke(ctx, AdminService_Unban_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListBlacklisted(ctx context.Context, in *ListBlacklistedRequest, opts ...grpc.CallOption) (*ListBlacklistedResponse, error) {
	out := new(ListBlacklistedResponse)
	err := c.cc.Invoke(ctx, AdminService_ListBlacklisted_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type AdminServiceServer interface {
	SetEndDelay(context.Context, *SetEndDelayRequest) (*SetEndDelayResponse, error)
	SetCoolDownDuration(context.Context, *SetCoolDownDurationRequest) (*SetCoolDownDurationResponse, error)
	SetStakeAmount(context.Context, *SetStakeAmountRequest) (*SetStakeAmountResponse, error)
	SetTreasury(context.Context, *SetTreasuryRequest) (*SetTreasuryResponse, error)
	Ban(context.Context, *BanRequest) (*BanResponse, error)
	Unban(context.Context, *UnbanRequest) (*UnbanResponse, error)
	ListBlacklisted(context.Context, *ListBlacklistedRequest) (*ListBlacklistedResponse, error)
}

// UnimplementedAdminServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) SetEndDelay(context.Context, *SetEndDelayRequest) (*SetEndDelayResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetEndDelay not implemented")
}
func (UnimplementedAdminServiceServer) SetCoolDownDuration(context.Context, *SetCoolDownDurationRequest) (*SetCoolDownDurationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetCoolDownDuration not implemented")
}
func (UnimplementedAdminServiceServer) SetStakeAmount(context.Context, *SetStakeAmountRequest) (*SetStakeAmountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetStakeAmount not implemented")
}
func (UnimplementedAdminServiceServer) SetTreasury(context.Context, *SetTreasuryRequest) (*SetTreasuryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetTreasury not implemented")
}
func (UnimplementedAdminServiceServer) Ban(context.Context, *BanRequest) (*BanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ban not implemented")
}
func (UnimplementedAdminServiceServer) Unban(context.Context, *UnbanRequest) (*UnbanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Unban not implemented")
}
func (UnimplementedAdminServiceServer) ListBlacklisted(context.Context, *ListBlacklistedRequest) (*ListBlacklistedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBlacklisted not implemented")
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_SetEndDelay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetEndDelayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetEndDelay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetEndDelay_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetEndDelay(ctx, req.(*SetEndDelayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetCoolDownDuration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetCoolDownDurationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetCoolDownDuration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetCoolDownDuration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetCoolDownDuration(ctx, req.(*SetCoolDownDurationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetStakeAmount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetStakeAmountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetStakeAmount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetStakeAmount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetStakeAmount(ctx, req.(*SetStakeAmountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetTreasury_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTreasuryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetTreasury(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetTreasury_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetTreasury(ctx, req.(*SetTreasuryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_Ban_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).Ban(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_Ban_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).Ban(ctx, req.(*BanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_Unban_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnbanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).Unban(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_Unban_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).Unban(ctx, req.(*UnbanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListBlacklisted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBlacklistedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListBlacklisted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListBlacklisted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListBlacklisted(ctx, req.(*ListBlacklistedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "countdown.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SetEndDelay",
			Handler:    _AdminService_SetEndDelay_Handler,
		},
		{
			MethodName: "SetCoolDownDuration",
			Handler:    _AdminService_SetCoolDownDuration_Handler,
		},
		{
			MethodName: "SetStakeAmount",
			Handler:    _AdminService_SetStakeAmount_Handler,
		},
		{
			MethodName: "SetTreasury",
			Handler:    _AdminService_SetTreasury_Handler,
		},
		{
			MethodName: "Ban",
			Handler:    _AdminService_Ban_Handler,
		},
		{
			MethodName: "Unban",
			Handler:    _AdminService_Unban_Handler,
		},
		{
			MethodName: "ListBlacklisted",
			Handler:    _AdminService_ListBlacklisted_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "countdown/v1/admin.proto",
}
