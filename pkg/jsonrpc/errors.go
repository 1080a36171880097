package jsonrpc

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEndpoint = errors.New("missing endpoint")
	ErrMissingHost     = errors.New("endpoint must contain the host part")
	ErrMissingPort     = errors.New("endpoint must contain the port part")
	ErrUnauthorized    = errors.New("authentication failed, check RPC user and password")
)

// RPCError is the error member of a JSON-RPC response, or a synthetic error
// built from a non-2xx HTTP status.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
