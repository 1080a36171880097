package domain

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// A multisig address is a descriptor of the form m_addr1_..._addrN_n,
// declaring an m-of-n scheme over the listed member addresses.
const multisigSeparator = "_"

// IsMultisig returns whether the address is a multisig descriptor.
func IsMultisig(address string) bool {
	return strings.Contains(address, multisigSeparator)
}

// ParseMultisig unpacks a multisig descriptor into its required-signature
// count and its member addresses, preserving the declared order.
func ParseMultisig(address string) (int, []string, error) {
	parts := strings.Split(address, multisigSeparator)
	if len(parts) < 4 {
		return 0, nil, fmt.Errorf("invalid multisig address %s", address)
	}

	required, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid multisig address %s: %s", address, parts[0])
	}
	total, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid multisig address %s: %s", address, parts[len(parts)-1])
	}

	members := parts[1 : len(parts)-1]
	if total != len(members) || required < 1 || required > total {
		return 0, nil, fmt.Errorf(
			"invalid multisig address %s: %d-of-%d over %d members",
			address, required, total, len(members),
		)
	}
	return required, members, nil
}

// ValidateAddress checks that a plain address is well-formed base58check data
// carrying one of the version bytes of the given network.
func ValidateAddress(address string, params ChainParams) error {
	if IsMultisig(address) {
		_, members, err := ParseMultisig(address)
		if err != nil {
			return err
		}
		for _, member := range members {
			if err := ValidateAddress(member, params); err != nil {
				return err
			}
		}
		return nil
	}

	_, version, err := base58.CheckDecode(address)
	if err != nil {
		return fmt.Errorf("invalid address %s: %w", address, err)
	}
	if version != params.AddressVersion && version != params.P2SHAddressVersion {
		return fmt.Errorf(
			"invalid address %s: version byte %d does not belong to %s",
			address, version, params.Name,
		)
	}
	return nil
}

// ValidatePubkey checks that the hex string is a parsable secp256k1 public
// key.
func ValidatePubkey(pubkeyHex string) error {
	raw, err := hex.DecodeString(pubkeyHex)
	if err != nil {
		return fmt.Errorf("invalid pubkey %s: %w", pubkeyHex, err)
	}
	if _, err := btcec.ParsePubKey(raw); err != nil {
		return fmt.Errorf("invalid pubkey %s: %w", pubkeyHex, err)
	}
	return nil
}
