package main

import (
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/core/application"
)

var broadcast = cli.Command{
	Name:  "broadcast",
	Usage: "broadcast textual and numerical information to the network",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "source",
			Usage:    "the address broadcasting the message",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "text",
			Usage:    "the textual part of the broadcast",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  "value",
			Usage: "the numerical value of the broadcast",
		},
		&feeFlag,
		&unsignedFlag,
	},
	Action: broadcastAction,
}

func broadcastAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	fee, err := parseFee(ctx.String("fee"))
	if err != nil {
		return err
	}

	return composeAndExecute(ctx, svc, application.BroadcastParams{
		SourceAddr: ctx.String("source"),
		Text:       ctx.String("text"),
		Value:      ctx.Float64("value"),
		Fee:        fee,
	})
}
