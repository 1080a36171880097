package application

import (
	"context"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

// pubkeyArgKey is the reserved argument the resolved pubkey sequence is
// injected under before forwarding a construction call.
const pubkeyArgKey = "pubkey"

// Dispatcher is the single call-routing entry point of the client: it routes
// wallet-local methods to the wallet backend, augments and validates
// construction calls, and forwards everything else to the protocol server.
// It keeps no state between calls.
type Dispatcher struct {
	protocol ports.ProtocolService
	wallet   ports.WalletService
	lookup   ports.PubkeyLookup
}

func NewDispatcher(
	protocol ports.ProtocolService,
	wallet ports.WalletService,
	lookup ports.PubkeyLookup,
) *Dispatcher {
	return &Dispatcher{protocol: protocol, wallet: wallet, lookup: lookup}
}

// Dispatch routes a single method call. Wallet-local results and errors are
// propagated unchanged; construction calls return a *ports.ComposeResult
// that has passed response validation.
func (d *Dispatcher) Dispatch(
	ctx context.Context, method string, args map[string]interface{},
) (interface{}, error) {
	switch KindOf(method) {
	case KindWalletLocal:
		return walletMethods[method](ctx, d.wallet, args)
	case KindConstruction:
		return d.compose(ctx, method, args)
	default:
		return d.protocol.Call(ctx, method, args)
	}
}

// Compose dispatches a typed construction request.
func (d *Dispatcher) Compose(
	ctx context.Context, req ComposeRequest,
) (*ports.ComposeResult, error) {
	args, err := req.Params()
	if err != nil {
		return nil, err
	}
	return d.compose(ctx, req.Method(), args)
}

func (d *Dispatcher) compose(
	ctx context.Context, method string, args map[string]interface{},
) (*ports.ComposeResult, error) {
	pubkeys := []string{}
	for _, slot := range []string{"source", "destination"} {
		address, ok := args[slot].(string)
		if !ok || address == "" {
			continue
		}
		// A mono-sig destination needs no pubkey.
		if slot == "destination" && !domain.IsMultisig(address) {
			continue
		}
		resolved, err := ResolvePubkeys(ctx, address, d.lookup)
		if err != nil {
			return nil, err
		}
		pubkeys = append(pubkeys, resolved...)
	}

	augmented := make(map[string]interface{}, len(args)+1)
	for key, value := range args {
		augmented[key] = value
	}
	augmented[pubkeyArgKey] = pubkeys

	result, err := d.protocol.Compose(ctx, method, augmented)
	if err != nil {
		return nil, err
	}
	if err := checkComposeResult(method, args, result); err != nil {
		return nil, err
	}
	return result, nil
}
