package main

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

// coinUnit is the number of base units per whole coin or divisible asset.
var coinUnit = decimal.New(1, 8)

// parseQuantity converts a user-entered decimal amount of an asset into
// integer base units, asking the protocol server whether the asset is
// divisible.
func parseQuantity(ctx *cli.Context, svc *services, asset, value string) (uint64, error) {
	divisible, err := assetDivisible(ctx, svc, asset)
	if err != nil {
		return 0, err
	}
	return scaleQuantity(value, divisible)
}

// scaleQuantity converts a decimal amount into integer base units. Divisible
// quantities are scaled by the coin unit first.
func scaleQuantity(value string, divisible bool) (uint64, error) {
	quantity, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %s: %w", value, err)
	}
	if quantity.IsNegative() {
		return 0, fmt.Errorf("invalid quantity %s: must not be negative", value)
	}
	if divisible {
		quantity = quantity.Mul(coinUnit)
	}
	if !quantity.IsInteger() {
		return 0, fmt.Errorf("invalid quantity %s", value)
	}
	return uint64(quantity.IntPart()), nil
}

func assetDivisible(ctx *cli.Context, svc *services, asset string) (bool, error) {
	result, err := svc.dispatcher.Dispatch(ctx.Context, "get_asset_info", map[string]interface{}{
		"assets": []string{asset},
	})
	if err != nil {
		return false, err
	}

	var infos []struct {
		Divisible bool `json:"divisible"`
	}
	if err := json.Unmarshal(result.(json.RawMessage), &infos); err != nil {
		return false, fmt.Errorf("unmarshal asset info: %w", err)
	}
	if len(infos) == 0 {
		return false, fmt.Errorf("unknown asset %s", asset)
	}
	return infos[0].Divisible, nil
}

// parseFee converts an optional decimal fee in whole coins into base units.
func parseFee(value string) (*uint64, error) {
	if value == "" {
		return nil, nil
	}
	fee, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid fee %s: %w", value, err)
	}
	scaled := fee.Mul(coinUnit)
	if scaled.IsNegative() || !scaled.IsInteger() {
		return nil, fmt.Errorf("invalid fee %s", value)
	}
	result := uint64(scaled.IntPart())
	return &result, nil
}
