package application

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ComposeRequest is a typed construction request: one implementation per
// transaction type. Params flattens the request into the argument mapping
// sent over the wire.
type ComposeRequest interface {
	Method() string
	Source() string
	Params() (map[string]interface{}, error)
}

// SendParams composes a *send* of an asset quantity to a destination.
type SendParams struct {
	SourceAddr      string  `json:"source"`
	Destination     string  `json:"destination"`
	Asset           string  `json:"asset"`
	Quantity        uint64  `json:"quantity"`
	Memo            string  `json:"memo,omitempty"`
	MemoIsHex       bool    `json:"memo_is_hex,omitempty"`
	UseEnhancedSend bool    `json:"use_enhanced_send"`
	Fee             *uint64 `json:"fee,omitempty"`
}

func (p SendParams) Method() string { return MethodCreateSend }
func (p SendParams) Source() string { return p.SourceAddr }
func (p SendParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// IssuanceParams issues a new asset, issues more of an existing one, or
// transfers issuance rights.
type IssuanceParams struct {
	SourceAddr          string  `json:"source"`
	Asset               string  `json:"asset"`
	Quantity            uint64  `json:"quantity"`
	Divisible           bool    `json:"divisible"`
	Description         string  `json:"description"`
	TransferDestination string  `json:"transfer_destination,omitempty"`
	Fee                 *uint64 `json:"fee,omitempty"`
}

func (p IssuanceParams) Method() string { return MethodCreateIssuance }
func (p IssuanceParams) Source() string { return p.SourceAddr }
func (p IssuanceParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// BroadcastParams publishes textual and numerical information to the network.
type BroadcastParams struct {
	SourceAddr string  `json:"source"`
	Text       string  `json:"text"`
	Value      float64 `json:"value"`
	Fee        *uint64 `json:"fee,omitempty"`
}

func (p BroadcastParams) Method() string { return MethodCreateBroadcast }
func (p BroadcastParams) Source() string { return p.SourceAddr }
func (p BroadcastParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// DividendParams pays dividends to the holders of an asset.
type DividendParams struct {
	SourceAddr      string  `json:"source"`
	Asset           string  `json:"asset"`
	DividendAsset   string  `json:"dividend_asset"`
	QuantityPerUnit uint64  `json:"quantity_per_unit"`
	Fee             *uint64 `json:"fee,omitempty"`
}

func (p DividendParams) Method() string { return MethodCreateDividend }
func (p DividendParams) Source() string { return p.SourceAddr }
func (p DividendParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// DestroyParams destroys a quantity of an asset.
type DestroyParams struct {
	SourceAddr string  `json:"source"`
	Asset      string  `json:"asset"`
	Quantity   uint64  `json:"quantity"`
	Tag        string  `json:"tag,omitempty"`
	Fee        *uint64 `json:"fee,omitempty"`
}

func (p DestroyParams) Method() string { return MethodCreateDestroy }
func (p DestroyParams) Source() string { return p.SourceAddr }
func (p DestroyParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// PublishParams publishes contract code on the chain.
type PublishParams struct {
	SourceAddr string  `json:"source"`
	GasPrice   uint64  `json:"gasprice"`
	StartGas   uint64  `json:"startgas"`
	Endowment  uint64  `json:"endowment"`
	CodeHex    string  `json:"code_hex"`
	Fee        *uint64 `json:"fee,omitempty"`
}

func (p PublishParams) Method() string { return MethodCreatePublish }
func (p PublishParams) Source() string { return p.SourceAddr }
func (p PublishParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// ExecuteParams executes published contract code.
type ExecuteParams struct {
	SourceAddr string  `json:"source"`
	ContractID string  `json:"contract_id"`
	GasPrice   uint64  `json:"gasprice"`
	StartGas   uint64  `json:"startgas"`
	Value      uint64  `json:"value"`
	PayloadHex string  `json:"payload_hex"`
	Fee        *uint64 `json:"fee,omitempty"`
}

func (p ExecuteParams) Method() string { return MethodCreateExecute }
func (p ExecuteParams) Source() string { return p.SourceAddr }
func (p ExecuteParams) Params() (map[string]interface{}, error) {
	return toArgs(p)
}

// toArgs flattens a typed params struct into an argument mapping. Numbers are
// kept as json.Number so no precision is lost on the round trip.
func toArgs(params interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal params: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	args := map[string]interface{}{}
	if err := decoder.Decode(&args); err != nil {
		return nil, fmt.Errorf("unmarshal params: %w", err)
	}
	return args, nil
}
