package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

func TestCheckComposeResult(t *testing.T) {
	args := map[string]interface{}{
		"source":      "addrA",
		"destination": "addrB",
		"asset":       "FOO",
		"quantity":    json.Number("10"),
	}

	t.Run("should pass when the server echoes the request", func(t *testing.T) {
		err := checkComposeResult(MethodCreateSend, args, &ports.ComposeResult{
			TxHex: "beef",
			Echo: map[string]interface{}{
				"source": "addrA", "destination": "addrB",
				"asset": "FOO", "quantity": float64(10),
			},
		})
		assert.NoError(t, err)
	})

	t.Run("should fail with a TransactionError on a quantity mismatch", func(t *testing.T) {
		err := checkComposeResult(MethodCreateSend, args, &ports.ComposeResult{
			TxHex: "beef",
			Echo: map[string]interface{}{
				"source": "addrA", "destination": "addrB",
				"asset": "FOO", "quantity": float64(11),
			},
		})
		var txErr *domain.TransactionError
		require.ErrorAs(t, err, &txErr)
	})

	t.Run("should fail on a mismatched address", func(t *testing.T) {
		err := checkComposeResult(MethodCreateSend, args, &ports.ComposeResult{
			TxHex: "beef",
			Echo: map[string]interface{}{
				"source": "addrA", "destination": "addrC",
				"asset": "FOO", "quantity": float64(10),
			},
		})
		var txErr *domain.TransactionError
		require.ErrorAs(t, err, &txErr)
	})

	t.Run("should fail if a requested field is not echoed at all", func(t *testing.T) {
		err := checkComposeResult(MethodCreateSend, args, &ports.ComposeResult{
			TxHex: "beef",
			Echo: map[string]interface{}{
				"source": "addrA", "destination": "addrB", "asset": "FOO",
			},
		})
		var txErr *domain.TransactionError
		require.ErrorAs(t, err, &txErr)
	})

	t.Run("should fail if the response carries no transaction hex", func(t *testing.T) {
		err := checkComposeResult(MethodCreateSend, args, &ports.ComposeResult{
			Echo: map[string]interface{}{
				"source": "addrA", "destination": "addrB",
				"asset": "FOO", "quantity": float64(10),
			},
		})
		var txErr *domain.TransactionError
		require.ErrorAs(t, err, &txErr)
	})
}
