package ports

import (
	"context"
	"time"
)

// Balance is the spendable amount of the chain's base currency held by a
// wallet address, in base units.
type Balance struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// WalletService is the key-custody backend: address enumeration, signing,
// broadcast and lock management.
type WalletService interface {
	Addresses(ctx context.Context) ([]string, error)
	Balance(ctx context.Context, address string) (uint64, error)
	Balances(ctx context.Context) ([]Balance, error)
	Pubkey(ctx context.Context, address string) (string, error)
	IsMine(ctx context.Context, address string) (bool, error)
	IsValid(ctx context.Context, address string) (bool, error)

	IsLocked(ctx context.Context) (bool, error)
	// Unlock makes the wallet able to sign for the given duration. The
	// unlock window is a shared resource; callers must not assume it
	// outlives one signing call.
	Unlock(ctx context.Context, passphrase string, duration time.Duration) error

	SignTransaction(ctx context.Context, unsignedHex string) (string, error)
	SignTransactionWithKey(ctx context.Context, unsignedHex, privateKeyWIF string) (string, error)
	SendTransaction(ctx context.Context, signedHex string) (string, error)

	LastBlock(ctx context.Context) (uint64, error)
}
