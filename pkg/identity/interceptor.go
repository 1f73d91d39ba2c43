package identity

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryClientInterceptor signs every outgoing unary call with the given
// signer. The payload is the json serialization of the request message.
func UnaryClientInterceptor(signer *Signer) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption,
	) error {
		payload, err := json.Marshal(req)
		if err != nil {
			return err
		}
		for k, v := range signer.Headers(method, payload) {
			ctx = metadata.AppendToOutgoingContext(ctx, k, v)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
