package application

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

// echoedFields are the request fields a construction response must echo
// unchanged. Silently composing a transaction that disagrees with the request
// on any of them would commit funds to the wrong action.
var echoedFields = []string{
	"source",
	"destination",
	"asset",
	"quantity",
	"dividend_asset",
	"quantity_per_unit",
	"value",
	"text",
	"description",
	"transfer_destination",
	"tag",
	"contract_id",
}

// checkComposeResult structurally validates a construction response against
// the request that produced it.
func checkComposeResult(
	method string, args map[string]interface{}, result *ports.ComposeResult,
) error {
	if result == nil || result.TxHex == "" {
		return domain.NewTransactionError("%s returned no transaction hex", method)
	}

	for _, field := range echoedFields {
		requested, ok := args[field]
		if !ok {
			continue
		}
		echoed, ok := result.Echo[field]
		if !ok {
			return domain.NewTransactionError(
				"%s response does not echo the %s parameter", method, field,
			)
		}
		if canonical(requested) != canonical(echoed) {
			return domain.NewTransactionError(
				"%s response mismatch on %s: requested %v, server composed %v",
				method, field, requested, echoed,
			)
		}
	}
	return nil
}

// canonical renders a JSON scalar in a representation-independent form, so a
// json.Number request value compares equal to a float64 echo of it.
func canonical(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
