package main

import (
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var issuance = cli.Command{
	Name:  "issuance",
	Usage: "issue a new asset, issue more of an existing asset, or transfer issuance rights",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address issuing the asset",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the name of the asset to issue",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "quantity",
			Usage: "the quantity of the asset to issue",
			Value: "0",
		},
		&cli.BoolFlag{
			Name:  "divisible",
			Usage: "make the asset divisible into base units",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "a textual description of the asset",
		},
		&cli.StringFlag{
			Name:  "transfer-destination",
			Usage: "transfer issuance rights of the asset to this address",
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: issuanceAction,
}

func issuanceAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	fee, err := parseFee(ctx.String("fee"))
	if err != nil {
		return err
	}
	// The asset may not exist yet, so divisibility comes from the flag
	// rather than the protocol server.
	quantity, err := scaleQuantity(ctx.String("quantity"), ctx.Bool("divisible"))
	if err != nil {
		return err
	}

	return composeAndExecute(ctx, svc, application.IssuanceParams{
		SourceAddr:          ctx.String("source"),
		Asset:               ctx.String("asset"),
		Quantity:            quantity,
		Divisible:           ctx.Bool("divisible"),
		Description:         ctx.String("description"),
		TransferDestination: ctx.String("transfer-destination"),
		Fee:                 fee,
	})
}
