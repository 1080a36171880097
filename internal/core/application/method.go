package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

// MethodKind classifies an API method for routing.
type MethodKind int

const (
	// KindRead is any remote method forwarded verbatim to the protocol
	// server.
	KindRead MethodKind = iota
	// KindWalletLocal is a method served by the wallet backend.
	KindWalletLocal
	// KindConstruction is a remote method building an unsigned transaction;
	// it gets pubkeys injected and its response validated.
	KindConstruction
)

// Construction method names. The create_ prefix is part of the wire protocol.
const (
	MethodCreateSend      = "create_send"
	MethodCreateIssuance  = "create_issuance"
	MethodCreateBroadcast = "create_broadcast"
	MethodCreateDividend  = "create_dividend"
	MethodCreateDestroy   = "create_destroy"
	MethodCreatePublish   = "create_publish"
	MethodCreateExecute   = "create_execute"
)

type walletHandler func(
	ctx context.Context, svc ports.WalletService, args map[string]interface{},
) (interface{}, error)

// walletMethods is the closed dispatch table of wallet-local methods. Adding
// an entry here is the only way to route a method to the wallet.
var walletMethods = map[string]walletHandler{
	"get_wallet_addresses": func(ctx context.Context, svc ports.WalletService, _ map[string]interface{}) (interface{}, error) {
		return svc.Addresses(ctx)
	},
	"get_gasp_balance": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		address, err := stringArg(args, "address")
		if err != nil {
			return nil, err
		}
		return svc.Balance(ctx, address)
	},
	"get_gasp_balances": func(ctx context.Context, svc ports.WalletService, _ map[string]interface{}) (interface{}, error) {
		return svc.Balances(ctx)
	},
	"get_pubkey": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		address, err := stringArg(args, "address")
		if err != nil {
			return nil, err
		}
		return svc.Pubkey(ctx, address)
	},
	"is_valid": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		address, err := stringArg(args, "address")
		if err != nil {
			return nil, err
		}
		return svc.IsValid(ctx, address)
	},
	"is_mine": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		address, err := stringArg(args, "address")
		if err != nil {
			return nil, err
		}
		return svc.IsMine(ctx, address)
	},
	"is_locked": func(ctx context.Context, svc ports.WalletService, _ map[string]interface{}) (interface{}, error) {
		return svc.IsLocked(ctx)
	},
	"unlock": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		passphrase, err := stringArg(args, "passphrase")
		if err != nil {
			return nil, err
		}
		duration := 60 * time.Second
		if seconds, ok := numberArg(args, "duration"); ok {
			duration = time.Duration(seconds) * time.Second
		}
		return nil, svc.Unlock(ctx, passphrase, duration)
	},
	"sign_raw_transaction": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		txHex, err := stringArg(args, "tx_hex")
		if err != nil {
			return nil, err
		}
		if wif, ok := args["private_key_wif"].(string); ok && wif != "" {
			return svc.SignTransactionWithKey(ctx, txHex, wif)
		}
		return svc.SignTransaction(ctx, txHex)
	},
	"send_raw_transaction": func(ctx context.Context, svc ports.WalletService, args map[string]interface{}) (interface{}, error) {
		txHex, err := stringArg(args, "tx_hex")
		if err != nil {
			return nil, err
		}
		return svc.SendTransaction(ctx, txHex)
	},
	"wallet_last_block": func(ctx context.Context, svc ports.WalletService, _ map[string]interface{}) (interface{}, error) {
		return svc.LastBlock(ctx)
	},
}

var constructionMethods = map[string]struct{}{
	MethodCreateSend:      {},
	MethodCreateIssuance:  {},
	MethodCreateBroadcast: {},
	MethodCreateDividend:  {},
	MethodCreateDestroy:   {},
	MethodCreatePublish:   {},
	MethodCreateExecute:   {},
}

// KindOf returns the routing kind of a method name.
func KindOf(method string) MethodKind {
	if _, ok := walletMethods[method]; ok {
		return KindWalletLocal
	}
	if _, ok := constructionMethods[method]; ok {
		return KindConstruction
	}
	return KindRead
}

func stringArg(args map[string]interface{}, name string) (string, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return value, nil
}

func numberArg(args map[string]interface{}, name string) (int64, bool) {
	switch value := args[name].(type) {
	case int:
		return int64(value), true
	case int64:
		return value, true
	case float64:
		return int64(value), true
	case json.Number:
		parsed, err := value.Int64()
		return parsed, err == nil
	default:
		return 0, false
	}
}
