package main

import (
	"github.com/urfave/cli/v2"
)

var getinfo = cli.Command{
	Name:   "getinfo",
	Usage:  "display the status of the protocol server",
	Action: getinfoAction,
}

func getinfoAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.dispatcher.Dispatch(ctx.Context, "get_running_info", nil)
	if err != nil {
		return err
	}
	return printResult(ctx, result)
}
