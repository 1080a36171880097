package main

import (
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var dividend = cli.Command{
	Name:  "dividend",
	Usage: "pay dividends to the holders of an asset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address paying the dividend",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the asset whose holders receive the dividend",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "dividend-asset",
			Usage:    "the asset the dividend is paid in",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "quantity-per-unit",
			Usage:    "the quantity of the dividend asset paid per unit held",
			Required: true,
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: dividendAction,
}

func dividendAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	fee, err := parseFee(ctx.String("fee"))
	if err != nil {
		return err
	}
	quantityPerUnit, err := parseQuantity(
		ctx, svc, ctx.String("dividend-asset"), ctx.String("quantity-per-unit"),
	)
	if err != nil {
		return err
	}

	return composeAndExecute(ctx, svc, application.DividendParams{
		SourceAddr:      ctx.String("source"),
		Asset:           ctx.String("asset"),
		DividendAsset:   ctx.String("dividend-asset"),
		QuantityPerUnit: quantityPerUnit,
		Fee:             fee,
	})
}
