package countdownv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CountdownService_GetInfo_FullMethodName         = "/countdown.v1.CountdownService/GetInfo"
	CountdownService_GetRound_FullMethodName        = "/countdown.v1.CountdownService/GetRound"
	CountdownService_GetBalance_FullMethodName      = "/countdown.v1.CountdownService/GetBalance"
	CountdownService_ListEvents_FullMethodName      = "/countdown.v1.CountdownService/ListEvents"
	CountdownService_Participate_FullMethodName     = "/countdown.v1.CountdownService/Participate"
	CountdownService_ClaimReward_FullMethodName     = "/countdown.v1.CountdownService/ClaimReward"
	CountdownService_SubscribeEvents_FullMethodName = "/countdown.v1.CountdownService/SubscribeEvents"
)

type CountdownServiceClient interface {
	GetInfo(ctx context.Context, in *GetInfoRequest, opts ...grpc.CallOption) (*GetInfoResponse, error)
	GetRound(ctx context.Context, in *GetRoundRequest, opts ...grpc.CallOption) (*GetRoundResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	Participate(ctx context.Context, in *ParticipateRequest, opts ...grpc.CallOption) (*ParticipateResponse, error)
	ClaimReward(ctx context.Context, in *ClaimRewardRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error)
	SubscribeEvents(ctx context.Context, in *SubscribeEventsRequest, opts ...grpc.CallOption) (CountdownService_SubscribeEventsClient, error)
}

type countdownServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCountdownServiceClient(cc grpc.ClientConnInterface) CountdownServiceClient {
	return &countdownServiceClient{cc}
}

func (c *countdownServiceClient) GetInfo(ctx context.Context, in *GetInfoRequest, opts ...grpc.CallOption) (*GetInfoResponse, error) {
	out := new(GetInfoResponse)
	err := c.cc.Invoke(ctx, CountdownService_GetInfo_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) GetRound(ctx context.Context, in *GetRoundRequest, opts ...grpc.CallOption) (*GetRoundResponse, error) {
	out := new(GetRoundResponse)
	err := c.cc.Invoke(ctx, CountdownService_GetRound_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	err := c.cc.Invoke(ctx, CountdownService_GetBalance_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	out := new(ListEventsResponse)
	err := c.cc.Invoke(ctx, CountdownService_ListEvents_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) Participate(ctx context.Context, in *ParticipateRequest, opts ...grpc.CallOption) (*ParticipateResponse, error) {
	out := new(ParticipateResponse)
	err := c.cc.Invoke(ctx, CountdownService_Participate_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) ClaimReward(ctx context.Context, in *ClaimRewardRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error) {
	out := new(ClaimRewardResponse)
	err := c.cc.Invoke(ctx, CountdownService_ClaimReward_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) SubscribeEvents(ctx context.Context, in *SubscribeEventsRequest, opts ...grpc.CallOption) (CountdownService_SubscribeEventsClient, error) {
	stream, err := c.cc.NewStream(ctx, &CountdownService_ServiceDesc.Streams[0], CountdownService_SubscribeEvents_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &countdownServiceSubscribeEventsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type CountdownService_SubscribeEventsClient interface {
	Recv() (*Event, error)
	grpc.ClientStream
}

type countdownServiceSubscribeEventsClient struct {
	grpc.ClientStream
}

func (x *countdownServiceSubscribeEventsClient) Recv() (*Event, error) {
	m := new(Event)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type CountdownServiceServer interface {
	GetInfo(context.Context, *GetInfoRequest) (*GetInfoResponse, error)
	GetRound(context.Context, *GetRoundRequest) (*GetRoundResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	Participate(context.Context, *ParticipateRequest) (*ParticipateResponse, error)
	ClaimReward(context.Context, *ClaimRewardRequest) (*ClaimRewardResponse, error)
	SubscribeEvents(*SubscribeEventsRequest, CountdownService_SubscribeEventsServer) error
}

// UnimplementedCountdownServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedCountdownServiceServer struct{}

func (UnimplementedCountdownServiceServer) GetInfo(context.Context, *GetInfoRequest) (*GetInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInfo not implemented")
}
func (UnimplementedCountdownServiceServer) GetRound(context.Context, *GetRoundRequest) (*GetRoundResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRound not implemented")
}
func (UnimplementedCountdownServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedCountdownServiceServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEvents not implemented")
}
func (UnimplementedCountdownServiceServer) Participate(context.Context, *ParticipateRequest) (*ParticipateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Participate not implemented")
}
func (UnimplementedCountdownServiceServer) ClaimReward(context.Context, *ClaimRewardRequest) (*ClaimRewardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClaimReward not implemented")
}
func (UnimplementedCountdownServiceServer) SubscribeEvents(*SubscribeEventsRequest, CountdownService_SubscribeEventsServer) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeEvents not implemented")
}

func RegisterCountdownServiceServer(s grpc.ServiceRegistrar, srv CountdownServiceServer) {
	s.RegisterService(&CountdownService_ServiceDesc, srv)
}

func _CountdownService_GetInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CountdownServiceServer).GetInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CountdownService_GetInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CountdownServiceServer).GetInfo(ctx, req.(*GetInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CountdownService_GetRound_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRoundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CountdownServiceServer).GetRound(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CountdownService_GetRound_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CountdownServiceServer).GetRound(ctx, req.(*GetRoundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CountdownService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CountdownServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CountdownService_GetBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CountdownServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CountdownService_ListEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CountdownServiceServer).ListEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CountdownService_ListEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CountdownServiceServer).ListEvents(ctx, req.(*ListEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CountdownService_Participate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParticipateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CountdownServiceServer).Participate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CountdownService_Participate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CountdownServiceServer).Participate(ctx, req.(*ParticipateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CountdownService_ClaimReward_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimRewardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CountdownServiceServer).ClaimReward(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CountdownService_ClaimReward_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CountdownServiceServer).ClaimReward(ctx, req.(*ClaimRewardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CountdownService_SubscribeEvents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(CountdownServiceServer).SubscribeEvents(m, &countdownServiceSubscribeEventsServer{stream})
}

type CountdownService_SubscribeEventsServer interface {
	Send(*Event) error
	grpc.ServerStream
}

type countdownServiceSubscribeEventsServer struct {
	grpc.ServerStream
}

func (x *countdownServiceSubscribeEventsServer) Send(m *Event) error {
	return x.ServerStream.SendMsg(m)
}

var CountdownService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "countdown.v1.CountdownService",
	HandlerType: (*CountdownServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetInfo",
			Handler:    _CountdownService_GetInfo_Handler,
		},
		{
			MethodName: "GetRound",
			Handler:    _CountdownService_GetRound_Handler,
		},
		{
			MethodName: "GetBalance",
			Handler:    _CountdownService_GetBalance_Handler,
		},
		{
			MethodName: "ListEvents",
			Handler:    _CountdownService_ListEvents_Handler,
		},
		{
			MethodName: "Participate",
			Handler:    _CountdownService_Participate_Handler,
		},
		{
			MethodName: "ClaimReward",
			Handler:    _CountdownService_ClaimReward_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeEvents",
			Handler:       _CountdownService_SubscribeEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "countdown/v1/service.proto",
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{CallOption()}, opts...)
}
