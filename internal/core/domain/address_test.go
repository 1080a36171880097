package domain

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeAddress(version byte) string {
	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	return base58.CheckEncode(payload, version)
}

func TestIsMultisig(t *testing.T) {
	addr := encodeAddress(MainnetParams().AddressVersion)
	assert.Equal(t, false, IsMultisig(addr))
	assert.Equal(t, true, IsMultisig("2_"+addr+"_"+addr+"_"+addr+"_3"))
}

func TestParseMultisig(t *testing.T) {
	a := encodeAddress(MainnetParams().AddressVersion)
	b := encodeAddress(MainnetParams().P2SHAddressVersion)

	t.Run("should preserve the declared member order", func(t *testing.T) {
		required, members, err := ParseMultisig("2_" + a + "_" + b + "_2")
		require.NoError(t, err)
		assert.Equal(t, 2, required)
		assert.Equal(t, []string{a, b}, members)
	})

	t.Run("should reject a descriptor whose count disagrees with its members", func(t *testing.T) {
		_, _, err := ParseMultisig("2_" + a + "_3")
		assert.Error(t, err)
	})

	t.Run("should reject m greater than n", func(t *testing.T) {
		_, _, err := ParseMultisig("3_" + a + "_" + b + "_2")
		assert.Error(t, err)
	})
}

func TestValidateAddress(t *testing.T) {
	params := MainnetParams()

	t.Run("should accept addresses with a known version byte", func(t *testing.T) {
		assert.NoError(t, ValidateAddress(encodeAddress(params.AddressVersion), params))
		assert.NoError(t, ValidateAddress(encodeAddress(params.P2SHAddressVersion), params))
	})

	t.Run("should reject addresses of the other network", func(t *testing.T) {
		testnetAddr := encodeAddress(TestnetParams().AddressVersion)
		assert.Error(t, ValidateAddress(testnetAddr, params))
	})

	t.Run("should validate every member of a multisig descriptor", func(t *testing.T) {
		good := encodeAddress(params.AddressVersion)
		bad := encodeAddress(TestnetParams().AddressVersion)
		assert.NoError(t, ValidateAddress("1_"+good+"_"+good+"_2", params))
		assert.Error(t, ValidateAddress("1_"+good+"_"+bad+"_2", params))
	})
}

func TestValidatePubkey(t *testing.T) {
	// Generator point of secp256k1, compressed.
	const valid = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

	assert.NoError(t, ValidatePubkey(valid))
	assert.Error(t, ValidatePubkey("zz"))
	assert.Error(t, ValidatePubkey("02ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"))
}
