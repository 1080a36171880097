package main

import (
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var send = cli.Command{
	Name:  "send",
	Usage: "send a quantity of an asset to a destination address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address sending the asset",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "destination",
			Usage:    "the address receiving the asset",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "quantity",
			Usage:    "the quantity of the asset to send",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the name of the asset to send",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "memo",
			Usage: "an optional memo to attach to the send",
		},
		&cli.BoolFlag{
			Name:  "memo-is-hex",
			Usage: "interpret the memo as hexadecimal bytes",
		},
		&cli.BoolFlag{
			Name:  "no-use-enhanced-send",
			Usage: "use the legacy send message format",
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
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

	return composeAndExecute(ctx, svc, application.SendParams{
		SourceAddr:      ctx.String("source"),
		Destination:     ctx.String("destination"),
		Asset:           ctx.String("asset"),
		Quantity:        quantity,
		Memo:            ctx.String("memo"),
		MemoIsHex:       ctx.Bool("memo-is-hex"),
		UseEnhancedSend: !ctx.Bool("no-use-enhanced-send"),
		Fee:             fee,
	})
}
