package protoserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/AspireOrg/aspire-cli/internal/config"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
	"github.com/AspireOrg/aspire-cli/pkg/jsonrpc"
)

type service struct {
	client *jsonrpc.Client
}

// NewService returns the JSON-RPC implementation of ports.ProtocolService
// bound to the protocol-server endpoint of the configuration.
func NewService(cfg *config.Config) (ports.ProtocolService, error) {
	opts := []jsonrpc.Option{jsonrpc.WithTimeout(cfg.RequestTimeout())}
	if cfg.ProtocolTLSSkipVerify() {
		opts = append(opts, jsonrpc.WithInsecureSkipVerify())
	}

	client, err := jsonrpc.NewClient(cfg.ProtocolURL(), opts...)
	if err != nil {
		return nil, err
	}
	return &service{client: client}, nil
}

func (s *service) Call(
	ctx context.Context, method string, params map[string]interface{},
) (json.RawMessage, error) {
	return s.client.Call(ctx, method, params)
}

func (s *service) Compose(
	ctx context.Context, method string, params map[string]interface{},
) (*ports.ComposeResult, error) {
	raw, err := s.client.Call(ctx, method, params)
	if err != nil {
		return nil, err
	}

	// Numbers in the echo stay json.Number so they compare exactly against
	// the request values.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	result := &ports.ComposeResult{}
	if err := decoder.Decode(result); err != nil {
		return nil, fmt.Errorf("%s: unmarshal envelope: %w", method, err)
	}
	return result, nil
}
