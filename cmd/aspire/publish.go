package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var publish = cli.Command{
	Name:  "publish",
	Usage: "publish contract code on the chain",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address publishing the contract",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "code-hex",
			Usage:    "the contract code as a hexadecimal string",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "gasprice",
			Usage: "the price per unit of gas, in base units",
		},
		&cli.Uint64Flag{
			Name:  "startgas",
			Usage: "the maximum gas the contract may consume",
		},
		&cli.Uint64Flag{
			Name:  "endowment",
			Usage: "the quantity of base units endowed to the contract",
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: publishAction,
}

func publishAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	codeHex := ctx.String("code-hex")
	if _, err := hex.DecodeString(codeHex); err != nil {
		return fmt.Errorf("invalid code hex: %w", err)
	}
	fee, err := parseFee(ctx.String("fee"))
	if err != nil {
		return err
	}

	return composeAndExecute(ctx, svc, application.PublishParams{
		SourceAddr: ctx.String("source"),
		GasPrice:   ctx.Uint64("gasprice"),
		StartGas:   ctx.Uint64("startgas"),
		Endowment:  ctx.Uint64("endowment"),
		CodeHex:    codeHex,
		Fee:        fee,
	})
}
