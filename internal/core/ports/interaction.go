package ports

import "context"

// PubkeyLookup resolves the public key of a single address. It is an
// externally supplied capability: wallet, chain scan or cache.
type PubkeyLookup func(ctx context.Context, address string) (string, error)

// Interaction abstracts the blocking prompts of the transaction workflow so
// the orchestrator can run headless in tests.
type Interaction interface {
	Confirm(message string) (bool, error)
	PromptSecret(message string) (string, error)
	PromptText(message string) (string, error)
}
