package application

import (
	"context"
	"errors"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

// ResolvePubkeys returns the ordered public keys of an address. A multisig
// descriptor yields one key per member, in declared order; a plain address
// yields exactly one. All lookups go through the injected capability.
func ResolvePubkeys(
	ctx context.Context, address string, lookup ports.PubkeyLookup,
) ([]string, error) {
	if lookup == nil {
		return nil, &domain.ResolutionError{
			Address: address, Err: errors.New("no pubkey lookup provided"),
		}
	}

	if !domain.IsMultisig(address) {
		pubkey, err := resolveOne(ctx, address, lookup)
		if err != nil {
			return nil, err
		}
		return []string{pubkey}, nil
	}

	_, members, err := domain.ParseMultisig(address)
	if err != nil {
		return nil, &domain.ResolutionError{Address: address, Err: err}
	}

	pubkeys := make([]string, 0, len(members))
	for _, member := range members {
		pubkey, err := resolveOne(ctx, member, lookup)
		if err != nil {
			return nil, err
		}
		pubkeys = append(pubkeys, pubkey)
	}
	return pubkeys, nil
}

func resolveOne(
	ctx context.Context, address string, lookup ports.PubkeyLookup,
) (string, error) {
	pubkey, err := lookup(ctx, address)
	if err != nil {
		return "", &domain.ResolutionError{Address: address, Err: err}
	}
	if pubkey == "" {
		return "", &domain.ResolutionError{Address: address}
	}
	if err := domain.ValidatePubkey(pubkey); err != nil {
		return "", &domain.ResolutionError{Address: address, Err: err}
	}
	return pubkey, nil
}
