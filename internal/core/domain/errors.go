package domain

import "fmt"

// ResolutionError reports a public key that could not be resolved for an
// address. It aborts the in-flight composition.
type ResolutionError struct {
	Address string
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve pubkey for address %s: %s", e.Address, e.Err)
	}
	return fmt.Sprintf("cannot resolve pubkey for address %s", e.Address)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// TransactionError aborts a transaction workflow before any signing or
// broadcast happens.
type TransactionError struct {
	Reason string
}

func NewTransactionError(format string, args ...interface{}) *TransactionError {
	return &TransactionError{Reason: fmt.Sprintf(format, args...)}
}

func (e *TransactionError) Error() string {
	return e.Reason
}
