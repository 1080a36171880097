package domain

// ChainParams is the set of protocol parameters bound to a network mode.
// Exactly one set is selected when the configuration is resolved and it never
// changes for the lifetime of the process.
type ChainParams struct {
	Name               string
	MagicBytes         uint32
	AddressVersion     byte
	P2SHAddressVersion byte
	BlockFirst         uint32
	Unspendable        string
}

// MainnetParams returns the protocol parameters of the main network.
func MainnetParams() ChainParams {
	return ChainParams{
		Name:               "mainnet",
		MagicBytes:         0xa5a51217,
		AddressVersion:     0x17,
		P2SHAddressVersion: 0x05,
		BlockFirst:         1,
		Unspendable:        "GAspUnspendableBurnAddrXXXXXZfdVdL",
	}
}

// TestnetParams returns the protocol parameters of the test network.
func TestnetParams() ChainParams {
	return ChainParams{
		Name:               "testnet",
		MagicBytes:         0x05231107,
		AddressVersion:     0x6f,
		P2SHAddressVersion: 0xc4,
		BlockFirst:         310000,
		Unspendable:        "mvAspireTestUnspendableXXXXXuAd3jJ",
	}
}
