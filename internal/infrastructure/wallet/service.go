package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AspireOrg/aspire-cli/internal/config"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
	"github.com/AspireOrg/aspire-cli/pkg/jsonrpc"
)

// satoshisPerCoin converts the node's floating point amounts to base units.
var satoshisPerCoin = decimal.New(1, 8)

type service struct {
	client  *jsonrpc.Client
	account string
}

// backendName is the only wallet backend this adapter speaks to.
const backendName = "bitcoincore"

// NewService returns the node-backed implementation of ports.WalletService
// bound to the wallet endpoint of the configuration.
func NewService(cfg *config.Config) (ports.WalletService, error) {
	if name := cfg.WalletName(); name != backendName {
		return nil, fmt.Errorf("unsupported wallet backend %s", name)
	}

	opts := []jsonrpc.Option{jsonrpc.WithTimeout(cfg.RequestTimeout())}
	if cfg.WalletTLSSkipVerify() {
		opts = append(opts, jsonrpc.WithInsecureSkipVerify())
	}

	client, err := jsonrpc.NewClient(cfg.WalletURL(), opts...)
	if err != nil {
		return nil, err
	}
	return &service{client: client, account: ""}, nil
}

func (s *service) Addresses(ctx context.Context) ([]string, error) {
	raw, err := s.client.Call(ctx, "getaddressesbyaccount", []interface{}{s.account})
	if err != nil {
		return nil, err
	}

	var addresses []string
	if err := json.Unmarshal(raw, &addresses); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return addresses, nil
}

type unspent struct {
	Address       string          `json:"address"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations int64           `json:"confirmations"`
}

func (s *service) Balance(ctx context.Context, address string) (uint64, error) {
	unspents, err := s.listUnspent(ctx, []string{address})
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, u := range unspents {
		total = total.Add(u.Amount)
	}
	return uint64(total.Mul(satoshisPerCoin).IntPart()), nil
}

func (s *service) Balances(ctx context.Context) ([]ports.Balance, error) {
	unspents, err := s.listUnspent(ctx, nil)
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, u := range unspents {
		if _, seen := totals[u.Address]; !seen {
			order = append(order, u.Address)
		}
		totals[u.Address] = totals[u.Address].Add(u.Amount)
	}

	balances := make([]ports.Balance, 0, len(order))
	for _, address := range order {
		balances = append(balances, ports.Balance{
			Address: address,
			Amount:  uint64(totals[address].Mul(satoshisPerCoin).IntPart()),
		})
	}
	return balances, nil
}

func (s *service) listUnspent(ctx context.Context, addresses []string) ([]unspent, error) {
	params := []interface{}{0, 9999999}
	if len(addresses) > 0 {
		params = append(params, addresses)
	}
	raw, err := s.client.Call(ctx, "listunspent", params)
	if err != nil {
		return nil, err
	}

	var unspents []unspent
	if err := json.Unmarshal(raw, &unspents); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return unspents, nil
}

type addressInfo struct {
	IsValid bool   `json:"isvalid"`
	IsMine  bool   `json:"ismine"`
	Pubkey  string `json:"pubkey"`
}

func (s *service) validateAddress(ctx context.Context, address string) (*addressInfo, error) {
	raw, err := s.client.Call(ctx, "validateaddress", []interface{}{address})
	if err != nil {
		return nil, err
	}

	info := &addressInfo{}
	if err := json.Unmarshal(raw, info); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return info, nil
}

func (s *service) Pubkey(ctx context.Context, address string) (string, error) {
	info, err := s.validateAddress(ctx, address)
	if err != nil {
		return "", err
	}
	if info.Pubkey == "" {
		return "", fmt.Errorf("wallet holds no pubkey for address %s", address)
	}
	return info.Pubkey, nil
}

func (s *service) IsMine(ctx context.Context, address string) (bool, error) {
	info, err := s.validateAddress(ctx, address)
	if err != nil {
		return false, err
	}
	return info.IsMine, nil
}

func (s *service) IsValid(ctx context.Context, address string) (bool, error) {
	info, err := s.validateAddress(ctx, address)
	if err != nil {
		return false, err
	}
	return info.IsValid, nil
}

type walletInfo struct {
	UnlockedUntil *int64 `json:"unlocked_until"`
}

func (s *service) IsLocked(ctx context.Context) (bool, error) {
	raw, err := s.client.Call(ctx, "getwalletinfo", nil)
	if err != nil {
		return false, err
	}

	info := walletInfo{}
	if err := json.Unmarshal(raw, &info); err != nil {
		return false, fmt.Errorf("unmarshal: %w", err)
	}
	// An unencrypted wallet reports no unlocked_until at all.
	if info.UnlockedUntil == nil {
		return false, nil
	}
	return *info.UnlockedUntil == 0, nil
}

func (s *service) Unlock(
	ctx context.Context, passphrase string, duration time.Duration,
) error {
	_, err := s.client.Call(ctx, "walletpassphrase", []interface{}{
		passphrase, int(duration.Seconds()),
	})
	return err
}

type signResult struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

func (s *service) SignTransaction(ctx context.Context, unsignedHex string) (string, error) {
	return s.sign(ctx, []interface{}{unsignedHex})
}

func (s *service) SignTransactionWithKey(
	ctx context.Context, unsignedHex, privateKeyWIF string,
) (string, error) {
	return s.sign(ctx, []interface{}{
		unsignedHex, []interface{}{}, []interface{}{privateKeyWIF},
	})
}

func (s *service) sign(ctx context.Context, params []interface{}) (string, error) {
	raw, err := s.client.Call(ctx, "signrawtransaction", params)
	if err != nil {
		return "", err
	}

	result := signResult{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}
	if !result.Complete {
		return "", fmt.Errorf("wallet could not fully sign the transaction")
	}
	return result.Hex, nil
}

func (s *service) SendTransaction(ctx context.Context, signedHex string) (string, error) {
	raw, err := s.client.Call(ctx, "sendrawtransaction", []interface{}{signedHex})
	if err != nil {
		return "", err
	}

	var txHash string
	if err := json.Unmarshal(raw, &txHash); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}
	return txHash, nil
}

func (s *service) LastBlock(ctx context.Context) (uint64, error) {
	raw, err := s.client.Call(ctx, "getblockcount", nil)
	if err != nil {
		return 0, err
	}

	var height uint64
	if err := json.Unmarshal(raw, &height); err != nil {
		return 0, fmt.Errorf("unmarshal: %w", err)
	}
	return height, nil
}
