package ports

import (
	"context"
	"encoding/json"
)

// ComposeResult is the envelope returned by every construction method of the
// protocol server: the unsigned transaction hex plus the server's echo of the
// request parameters, used to validate the construction before any money
// moves.
type ComposeResult struct {
	TxHex string                 `json:"tx_hex"`
	Echo  map[string]interface{} `json:"params"`
}

// ProtocolService is the JSON-RPC read/construct API of the protocol server.
type ProtocolService interface {
	// Call forwards a read method verbatim and returns the raw result.
	Call(ctx context.Context, method string, params map[string]interface{}) (json.RawMessage, error)
	// Compose invokes a construction method and returns its envelope.
	Compose(ctx context.Context, method string, params map[string]interface{}) (*ComposeResult, error)
}
