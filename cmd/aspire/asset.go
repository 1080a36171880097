package main

import (
	"github.com/urfave/cli/v2"
)

var asset = cli.Command{
	Name:      "asset",
	Usage:     "display the basic properties of an asset",
	ArgsUsage: "<asset>",
	Action:    assetAction,
}

func assetAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return &invalidUsageError{ctx, "asset"}
	}

	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.dispatcher.Dispatch(ctx.Context, "get_asset_info", map[string]interface{}{
		"assets": []string{name},
	})
	if err != nil {
		return err
	}
	return printResult(ctx, result)
}
