package main

import (
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var destroy = cli.Command{
	Name:  "destroy",
	Usage: "destroy a quantity of an asset forever",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address destroying the asset",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the name of the asset to destroy",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "quantity",
			Usage:    "the quantity of the asset to destroy",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "tag",
			Usage: "an optional tag explaining the destruction",
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: destroyAction,
}

func destroyAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	fee, err := parseFee(ctx.String("fee"))
	if err != nil {
		return err
	}
	quantity, err := parseQuantity(ctx, svc, ctx.String("asset"), ctx.String("quantity"))
	if err != nil {
		return err
	}

	return composeAndExecute(ctx, svc, application.DestroyParams{
		SourceAddr: ctx.String("source"),
		Asset:      ctx.String("asset"),
		Quantity:   quantity,
		Tag:        ctx.String("tag"),
		Fee:        fee,
	})
}
