package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/ark-network/countdown/pkg/identity"
	"github.com/urfave/cli/v2"
)

const (
	UrlEnvVar        = "COUNTDOWN_URL"
	PrivateKeyEnvVar = "COUNTDOWN_PRIVATE_KEY"
)

var (
	version = "alpha"

	cntx = context.Background()
)

var (
	infoCommand = cli.Command{
		Name:  "info",
		Usage: "Shows the game parameters and whether there is a winner",
		Action: func(ctx *cli.Context) error {
			return info(ctx)
		},
	}

	roundCommand = cli.Command{
		Name:  "round",
		Usage: "Shows the current leader and the round deadline",
		Action: func(ctx *cli.Context) error {
			return round(ctx)
		},
	}

	balanceCommand = cli.Command{
		Name:  "balance",
		Usage: "Shows the credited balance of an account, yours by default",
		Action: func(ctx *cli.Context) error {
			return balance(ctx)
		},
		Flags: []cli.Flag{&addressFlag},
	}

	eventsCommand = cli.Command{
		Name:  "events",
		Usage: "Lists the recorded bid and win events",
		Action: func(ctx *cli.Context) error {
			return events(ctx)
		},
		Flags: []cli.Flag{&fromSeqFlag, &limitFlag},
	}

	watchCommand = cli.Command{
		Name:  "watch",
		Usage: "Streams bid and win events as they happen",
		Action: func(ctx *cli.Context) error {
			return watch(ctx)
		},
	}

	participateCommand = cli.Command{
		Name:  "participate",
		Usage: "Deposits the stake and becomes the round leader",
		Action: func(ctx *cli.Context) error {
			return participate(ctx)
		},
		Flags: []cli.Flag{&amountFlag},
	}

	claimCommand = cli.Command{
		Name:  "claim",
		Usage: "Pays out the winner of a settled round",
		Action: func(ctx *cli.Context) error {
			return claim(ctx)
		},
	}

	keygenCommand = cli.Command{
		Name:  "keygen",
		Usage: "Generates a new private key and prints its address",
		Action: func(ctx *cli.Context) error {
			return keygen(ctx)
		},
	}
)

var (
	urlFlag = &cli.StringFlag{
		Name:    "url",
		Usage:   "the address of the countdown daemon",
		Value:   "localhost:7171",
		EnvVars: []string{UrlEnvVar},
	}
	privateKeyFlag = &cli.StringFlag{
		Name:    "private-key",
		Usage:   "hex encoded secp256k1 private key used to sign requests",
		EnvVars: []string{PrivateKeyEnvVar},
	}
	addressFlag = cli.StringFlag{
		Name:  "address",
		Usage: "account address, defaults to the one of the private key",
	}
	fromSeqFlag = cli.Uint64Flag{
		Name:  "from",
		Usage: "sequence number of the first event to list",
	}
	limitFlag = cli.IntFlag{
		Name:  "limit",
		Usage: "max number of events to list",
		Value: 100,
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "amount to deposit in base units, defaults to the current stake amount",
	}
)

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "countdown"
	app.Usage = "command line interface of the countdown game"
	app.Commands = append(
		app.Commands,
		&infoCommand,
		&roundCommand,
		&balanceCommand,
		&eventsCommand,
		&watchCommand,
		&participateCommand,
		&claimCommand,
		&adminCommand,
		&keygenCommand,
	)
	app.Flags = []cli.Flag{
		urlFlag,
		privateKeyFlag,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(fmt.Errorf("error: %v", err))
		os.Exit(1)
	}
}

func info(ctx *cli.Context) error {
	client, closeFn, err := getClient(ctx, false)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := client.GetInfo(cntx, &countdownv1.GetInfoRequest{})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func round(ctx *cli.Context) error {
	client, closeFn, err := getClient(ctx, false)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := client.GetRound(cntx, &countdownv1.GetRoundRequest{})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func balance(ctx *cli.Context) error {
	address := ctx.String(addressFlag.Name)
	if address == "" {
		signer, err := getSigner(ctx)
		if err != nil {
			return fmt.Errorf("missing address, either use --address or --private-key")
		}
		address = signer.Address().Hex()
	}

	client, closeFn, err := getClient(ctx, false)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := client.GetBalance(cntx, &countdownv1.GetBalanceRequest{Address: address})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func events(ctx *cli.Context) error {
	client, closeFn, err := getClient(ctx, false)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := client.ListEvents(cntx, &countdownv1.ListEventsRequest{
		FromSeq: ctx.Uint64(fromSeqFlag.Name),
		Limit:   int32(ctx.Int(limitFlag.Name)),
	})
	if err != nil {
		return err
	}
	return printJSON(resp.Events)
}

func watch(ctx *cli.Context) error {
	client, closeFn, err := getClient(ctx, false)
	if err != nil {
		return err
	}
	defer closeFn()

	stream, err := client.SubscribeEvents(ctx.Context, &countdownv1.SubscribeEventsRequest{})
	if err != nil {
		return err
	}
	for {
		event, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := printJSON(event); err != nil {
			return err
		}
	}
}

func participate(ctx *cli.Context) error {
	client, closeFn, err := getClient(ctx, true)
	if err != nil {
		return err
	}
	defer closeFn()

	amount := ctx.String(amountFlag.Name)
	if amount == "" {
		info, err := client.GetInfo(cntx, &countdownv1.GetInfoRequest{})
		if err != nil {
			return err
		}
		amount = info.StakeAmount
	}

	resp, err := client.Participate(cntx, &countdownv1.ParticipateRequest{Amount: amount})
	if err != nil {
		return err
	}
	return printJSON(resp.Event)
}

func claim(ctx *cli.Context) error {
	client, closeFn, err := getClient(ctx, true)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := client.ClaimReward(cntx, &countdownv1.ClaimRewardRequest{})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func keygen(_ *cli.Context) error {
	signer, err := identity.NewSigner()
	if err != nil {
		return err
	}
	return printJSON(map[string]string{
		"private_key": signer.PrivateKeyHex(),
		"address":     signer.Address().Hex(),
	})
}

func printJSON(resp interface{}) error {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		return err
	}

	fmt.Println(string(jsonBytes))
	return nil
}
