package main

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var walletView = cli.Command{
	Name:   "wallet",
	Usage:  "list the addresses of the backend wallet along with their balances",
	Action: walletAction,
}

func walletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := svc.dispatcher.Dispatch(ctx.Context, "get_wallet_addresses", nil)
	if err != nil {
		return err
	}
	addresses, ok := res.([]string)
	if !ok {
		return fmt.Errorf("unexpected wallet addresses response")
	}

	view := map[string]map[string]interface{}{}
	for _, address := range addresses {
		entry := map[string]interface{}{}

		coins, err := svc.dispatcher.Dispatch(ctx.Context, "get_gasp_balance", map[string]interface{}{
			"address": address,
		})
		if err != nil {
			return err
		}
		if amount, ok := coins.(uint64); ok && amount > 0 {
			entry["GASP"] = decimal.NewFromInt(int64(amount)).Div(coinUnit).String()
		}

		rows, err := svc.dispatcher.Dispatch(ctx.Context, "get_balances", map[string]interface{}{
			"filters": []interface{}{
				[]interface{}{"address", "==", address},
			},
		})
		if err != nil {
			return err
		}
		raw, ok := rows.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected balances response")
		}
		var held []struct {
			Asset    string      `json:"asset"`
			Quantity json.Number `json:"quantity"`
		}
		if err := json.Unmarshal(raw, &held); err != nil {
			return fmt.Errorf("unmarshal balances: %w", err)
		}
		for _, balance := range held {
			entry[balance.Asset] = balance.Quantity
		}

		if len(entry) > 0 {
			view[address] = entry
		}
	}

	return printJSON(view)
}
