package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"
)

var gettxinfo = cli.Command{
	Name:      "get_tx_info",
	Usage:     "decode a raw transaction and display the message it carries",
	ArgsUsage: "<tx_hex>",
	Action:    gettxinfoAction,
}

func gettxinfoAction(ctx *cli.Context) error {
	txHex := ctx.Args().First()
	if txHex == "" {
		return &invalidUsageError{ctx, "get_tx_info"}
	}
	if _, err := hex.DecodeString(txHex); err != nil {
		return fmt.Errorf("invalid transaction hex: %w", err)
	}

	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.dispatcher.Dispatch(ctx.Context, "get_tx_info", map[string]interface{}{
		"tx_hex": txHex,
	})
	if err != nil {
		return err
	}
	return printResult(ctx, result)
}
