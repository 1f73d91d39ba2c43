package main

import (
	"fmt"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/urfave/cli/v2"
)

// flags
var (
	endDelayFlag = &cli.Uint64Flag{
		Name:     "end-delay",
		Usage:    "seconds after the last deposit before the round settles",
		Required: true,
	}
	coolDownFlag = &cli.Uint64Flag{
		Name:     "cooldown",
		Usage:    "seconds after a claim before deposits reopen",
		Required: true,
	}
	stakeFlag = &cli.StringFlag{
		Name:     "stake",
		Usage:    "required deposit in base units",
		Required: true,
	}
	treasuryFlag = &cli.StringFlag{
		Name:     "treasury",
		Usage:    "address receiving the treasury share",
		Required: true,
	}
	accountFlag = &cli.StringFlag{
		Name:     "address",
		Usage:    "address of the player",
		Required: true,
	}
)

// commands
var (
	adminCommand = cli.Command{
		Name:  "admin",
		Usage: "Manage the game parameters and the blacklist",
		Subcommands: append(
			cli.Commands{},
			setEndDelayCmd,
			setCoolDownCmd,
			setStakeCmd,
			setTreasuryCmd,
			banCmd,
			unbanCmd,
			blacklistCmd,
		),
	}
	setEndDelayCmd = &cli.Command{
		Name:   "set-end-delay",
		Usage:  "Update the end delay",
		Action: setEndDelayAction,
		Flags:  []cli.Flag{endDelayFlag},
	}
	setCoolDownCmd = &cli.Command{
		Name:   "set-cooldown",
		Usage:  "Update the cooldown duration",
		Action: setCoolDownAction,
		Flags:  []cli.Flag{coolDownFlag},
	}
	setStakeCmd = &cli.Command{
		Name:   "set-stake",
		Usage:  "Update the stake amount",
		Action: setStakeAction,
		Flags:  []cli.Flag{stakeFlag},
	}
	setTreasuryCmd = &cli.Command{
		Name:   "set-treasury",
		Usage:  "Update the treasury address",
		Action: setTreasuryAction,
		Flags:  []cli.Flag{treasuryFlag},
	}
	banCmd = &cli.Command{
		Name:   "ban",
		Usage:  "Add a player to the blacklist",
		Action: banAction,
		Flags:  []cli.Flag{accountFlag},
	}
	unbanCmd = &cli.Command{
		Name:   "unban",
		Usage:  "Remove a player from the blacklist",
		Action: unbanAction,
		Flags:  []cli.Flag{accountFlag},
	}
	blacklistCmd = &cli.Command{
		Name:   "blacklist",
		Usage:  "List the blacklisted players",
		Action: blacklistAction,
	}
)

func setEndDelayAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := client.SetEndDelay(cntx, &countdownv1.SetEndDelayRequest{
		EndDelay: ctx.Uint64(endDelayFlag.Name),
	}); err != nil {
		return err
	}

	fmt.Println("end delay updated")
	return nil
}

func setCoolDownAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := client.SetCoolDownDuration(cntx, &countdownv1.SetCoolDownDurationRequest{
		CoolDownDuration: ctx.Uint64(coolDownFlag.Name),
	}); err != nil {
		return err
	}

	fmt.Println("cooldown duration updated")
	return nil
}

func setStakeAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := client.SetStakeAmount(cntx, &countdownv1.SetStakeAmountRequest{
		StakeAmount: ctx.String(stakeFlag.Name),
	}); err != nil {
		return err
	}

	fmt.Println("stake amount updated")
	return nil
}

func setTreasuryAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := client.SetTreasury(cntx, &countdownv1.SetTreasuryRequest{
		Treasury: ctx.String(treasuryFlag.Name),
	}); err != nil {
		return err
	}

	fmt.Println("treasury updated")
	return nil
}

func banAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	address := ctx.String(accountFlag.Name)
	if _, err := client.Ban(cntx, &countdownv1.BanRequest{Address: address}); err != nil {
		return err
	}

	fmt.Printf("%s banned\n", address)
	return nil
}

func unbanAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	address := ctx.String(accountFlag.Name)
	if _, err := client.Unban(cntx, &countdownv1.UnbanRequest{Address: address}); err != nil {
		return err
	}

	fmt.Printf("%s unbanned\n", address)
	return nil
}

func blacklistAction(ctx *cli.Context) error {
	client, closeFn, err := getAdminClient(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := client.ListBlacklisted(cntx, &countdownv1.ListBlacklistedRequest{})
	if err != nil {
		return err
	}
	return printJSON(resp.Addresses)
}
