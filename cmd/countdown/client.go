package main

import (
	"fmt"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/ark-network/countdown/pkg/identity"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func getSigner(ctx *cli.Context) (*identity.Signer, error) {
	privateKey := ctx.String(privateKeyFlag.Name)
	if privateKey == "" {
		return nil, fmt.Errorf("missing private key")
	}
	return identity.NewSignerFromHex(privateKey)
}

func getConn(ctx *cli.Context, withSigner bool) (*grpc.ClientConn, error) {
	url := ctx.String(urlFlag.Name)
	if url == "" {
		return nil, fmt.Errorf("missing url")
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if withSigner {
		signer, err := getSigner(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.WithUnaryInterceptor(identity.UnaryClientInterceptor(signer)))
	}

	conn, err := grpc.NewClient(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %s", url, err)
	}
	return conn, nil
}

func getClient(
	ctx *cli.Context, withSigner bool,
) (countdownv1.CountdownServiceClient, func(), error) {
	conn, err := getConn(ctx, withSigner)
	if err != nil {
		return nil, nil, err
	}
	// nolint:all
	return countdownv1.NewCountdownServiceClient(conn), func() { conn.Close() }, nil
}

func getAdminClient(
	ctx *cli.Context,
) (countdownv1.AdminServiceClient, func(), error) {
	conn, err := getConn(ctx, true)
	if err != nil {
		return nil, nil, err
	}
	// nolint:all
	return countdownv1.NewAdminServiceClient(conn), func() { conn.Close() }, nil
}
