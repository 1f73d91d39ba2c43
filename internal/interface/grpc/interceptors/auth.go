package interceptors

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/interface/grpc/permissions"
	"github.com/ark-network/countdown/pkg/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type callerKey struct{}

// CallerFromContext returns the authenticated caller of the current call.
func CallerFromContext(ctx context.Context) (domain.Identity, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Identity)
	return caller, ok
}

// Auth tells how callers are authenticated. With NoAuth the address header
// is trusted as is.
type Auth struct {
	NoAuth  bool
	MaxSkew time.Duration
}

func unaryAuthHandler(auth Auth) grpc.UnaryServerInterceptor {
	var replays *replayCache
	if !auth.NoAuth {
		replays = newReplayCache(auth.MaxSkew)
	}
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		ctx, err := authenticate(ctx, info.FullMethod, req, auth, replays)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func streamAuthHandler(
	srv interface{},
	ss grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {
	if _, ok := permissions.Whitelist()[info.FullMethod]; !ok {
		return status.Errorf(
			codes.PermissionDenied, "%s: streams require no authentication", info.FullMethod,
		)
	}
	return handler(srv, ss)
}

func authenticate(
	ctx context.Context, method string, req interface{}, auth Auth,
	replays *replayCache,
) (context.Context, error) {
	if _, ok := permissions.Whitelist()[method]; ok {
		return ctx, nil
	}
	if _, ok := permissions.AllPermissionsByMethod()[method]; !ok {
		return nil, status.Errorf(
			codes.PermissionDenied, "%s: unknown permissions required for method", method,
		)
	}

	md, _ := metadata.FromIncomingContext(ctx)
	address := firstValue(md, identity.AddressHeader)
	if address == "" {
		return nil, status.Error(codes.Unauthenticated, "missing caller address")
	}
	caller, err := domain.ParseIdentity(address)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	if !auth.NoAuth {
		digest, err := verify(md, caller, method, req, auth.MaxSkew)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		if replays.seen(caller.Hex(), digest) {
			return nil, status.Error(codes.Unauthenticated, "request already processed")
		}
	}

	return context.WithValue(ctx, callerKey{}, caller), nil
}

func verify(
	md metadata.MD, caller domain.Identity, method string, req interface{},
	maxSkew time.Duration,
) ([]byte, error) {
	ts := firstValue(md, identity.TimestampHeader)
	nonce := firstValue(md, identity.NonceHeader)
	sig := firstValue(md, identity.SignatureHeader)
	if ts == "" || nonce == "" || sig == "" {
		return nil, fmt.Errorf("missing signature")
	}
	timestamp, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp")
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %s", err)
	}
	if err := identity.Verify(
		caller, method, timestamp, nonce, payload, sig, time.Now(), maxSkew,
	); err != nil {
		return nil, err
	}
	return identity.Digest(method, timestamp, nonce, payload), nil
}

func firstValue(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) <= 0 {
		return ""
	}
	return values[0]
}
