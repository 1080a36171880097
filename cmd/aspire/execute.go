package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var execute = cli.Command{
	Name:  "execute",
	Usage: "execute contract code published on the chain",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address funding the execution",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "contract-id",
			Usage:    "the identifier of the contract to execute",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "payload-hex",
			Usage: "the call payload as a hexadecimal string",
		},
		&cli.Uint64Flag{
			Name:  "gasprice",
			Usage: "the price per unit of gas, in base units",
		},
		&cli.Uint64Flag{
			Name:  "startgas",
			Usage: "the maximum gas the execution may consume",
		},
		&cli.Uint64Flag{
			Name:  "value",
			Usage: "the quantity of base units sent with the call",
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: executeAction,
}

func executeAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	payloadHex := ctx.String("payload-hex")
	if _, err := hex.DecodeString(payloadHex); err != nil {
		return fmt.Errorf("invalid payload hex: %w", err)
	}
	fee, err := parseFee(ctx.String("fee"))
	if err != nil {
		return err
	}

	return composeAndExecute(ctx, svc, application.ExecuteParams{
		SourceAddr: ctx.String("source"),
		ContractID: ctx.String("contract-id"),
		GasPrice:   ctx.Uint64("gasprice"),
		StartGas:   ctx.Uint64("startgas"),
		Value:      ctx.Uint64("value"),
		PayloadHex: payloadHex,
		Fee:        fee,
	})
}
