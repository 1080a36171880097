package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

/*
 * ProtocolService
 */
type mockProtocolService struct {
	mock.Mock
}

func (m *mockProtocolService) Call(
	ctx context.Context, method string, params map[string]interface{},
) (json.RawMessage, error) {
	args := m.Called(ctx, method, params)

	var res json.RawMessage
	if a := args.Get(0); a != nil {
		res = a.(json.RawMessage)
	}
	return res, args.Error(1)
}

func (m *mockProtocolService) Compose(
	ctx context.Context, method string, params map[string]interface{},
) (*ports.ComposeResult, error) {
	args := m.Called(ctx, method, params)

	var res *ports.ComposeResult
	if a := args.Get(0); a != nil {
		res = a.(*ports.ComposeResult)
	}
	return res, args.Error(1)
}

/*
 * WalletService
 */
type mockWalletService struct {
	mock.Mock
}

func (m *mockWalletService) Addresses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var res []string
	if a := args.Get(0); a != nil {
		res = a.([]string)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) Balance(ctx context.Context, address string) (uint64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockWalletService) Balances(ctx context.Context) ([]ports.Balance, error) {
	args := m.Called(ctx)

	var res []ports.Balance
	if a := args.Get(0); a != nil {
		res = a.([]ports.Balance)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) Pubkey(ctx context.Context, address string) (string, error) {
	args := m.Called(ctx, address)
	return args.String(0), args.Error(1)
}

func (m *mockWalletService) IsMine(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *mockWalletService) IsValid(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *mockWalletService) IsLocked(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockWalletService) Unlock(
	ctx context.Context, passphrase string, duration time.Duration,
) error {
	args := m.Called(ctx, passphrase, duration)
	return args.Error(0)
}

func (m *mockWalletService) SignTransaction(
	ctx context.Context, unsignedHex string,
) (string, error) {
	args := m.Called(ctx, unsignedHex)
	return args.String(0), args.Error(1)
}

func (m *mockWalletService) SignTransactionWithKey(
	ctx context.Context, unsignedHex, privateKeyWIF string,
) (string, error) {
	args := m.Called(ctx, unsignedHex, privateKeyWIF)
	return args.String(0), args.Error(1)
}

func (m *mockWalletService) SendTransaction(
	ctx context.Context, signedHex string,
) (string, error) {
	args := m.Called(ctx, signedHex)
	return args.String(0), args.Error(1)
}

func (m *mockWalletService) LastBlock(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

/*
 * Interaction
 */
type mockInteraction struct {
	mock.Mock
}

func (m *mockInteraction) Confirm(message string) (bool, error) {
	args := m.Called(message)
	return args.Bool(0), args.Error(1)
}

func (m *mockInteraction) PromptSecret(message string) (string, error) {
	args := m.Called(message)
	return args.String(0), args.Error(1)
}

func (m *mockInteraction) PromptText(message string) (string, error) {
	args := m.Called(message)
	return args.String(0), args.Error(1)
}

// lookupFromMap returns a PubkeyLookup backed by a fixed address->pubkey map.
func lookupFromMap(pubkeys map[string]string) ports.PubkeyLookup {
	return func(_ context.Context, address string) (string, error) {
		return pubkeys[address], nil
	}
}
