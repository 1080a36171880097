package main

import (
	"github.com/urfave/cli/v2"
)

var balances = cli.Command{
	Name:      "balances",
	Usage:     "display the asset balances of an address",
	ArgsUsage: "<address>",
	Action:    balancesAction,
}

func balancesAction(ctx *cli.Context) error {
	address := ctx.Args().First()
	if address == "" {
		return &invalidUsageError{ctx, "balances"}
	}

	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.dispatcher.Dispatch(ctx.Context, "get_balances", map[string]interface{}{
		"filters": []interface{}{
			[]interface{}{"address", "==", address},
		},
	})
	if err != nil {
		return err
	}
	return printResult(ctx, result)
}
