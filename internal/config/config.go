package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
)

const (
	// DefaultRequestTimeout bounds every HTTP request made against the
	// protocol server and the wallet.
	DefaultRequestTimeout = 5 * time.Second
	// DefaultUnlockDuration is how long a wallet unlock is requested for
	// before signing.
	DefaultUnlockDuration = 60 * time.Second

	defaultHost         = "localhost"
	defaultProtocolUser = "rpc"
	defaultWalletUser   = "gasprpc"
	defaultWalletName   = "bitcoincore"

	defaultProtocolPort        = 4000
	defaultProtocolPortTestnet = 14000
	defaultWalletPort          = 8332
	defaultWalletPortTestnet   = 18332

	protocolPath = "/rpc/"
)

// Options carries the raw connection parameters of both backends, as gathered
// from flags, environment and the optional configuration file.
type Options struct {
	Testnet bool

	ProtocolHost      string
	ProtocolPort      int
	ProtocolUser      string
	ProtocolPassword  string
	ProtocolSSL       bool
	ProtocolSSLVerify bool

	WalletName      string
	WalletHost      string
	WalletPort      int
	WalletUser      string
	WalletPassword  string
	WalletSSL       bool
	WalletSSLVerify bool

	RequestTimeout time.Duration
	UnlockDuration time.Duration
	PubkeyCacheDir string
}

// Config is the immutable result of resolving Options: the selected chain
// parameters and the derived endpoint of each backend. It is built once at
// startup and passed explicitly to every component.
type Config struct {
	chain       domain.ChainParams
	protocolURL string
	walletURL   string
	walletName  string

	protocolSkipVerify bool
	walletSkipVerify   bool

	timeout        time.Duration
	unlockDuration time.Duration
	pubkeyCacheDir string
}

// Resolve validates the options and derives the two service endpoints. The
// wallet password is required; every explicit port must be inside (1, 65535).
func Resolve(opts Options) (*Config, error) {
	chain := domain.MainnetParams()
	if opts.Testnet {
		chain = domain.TestnetParams()
	}

	protocolPort := opts.ProtocolPort
	if protocolPort == 0 {
		protocolPort = defaultProtocolPort
		if opts.Testnet {
			protocolPort = defaultProtocolPortTestnet
		}
	}
	if err := validatePort("aspire-rpc-port", protocolPort); err != nil {
		return nil, err
	}

	walletPort := opts.WalletPort
	if walletPort == 0 {
		walletPort = defaultWalletPort
		if opts.Testnet {
			walletPort = defaultWalletPortTestnet
		}
	}
	if err := validatePort("wallet-port", walletPort); err != nil {
		return nil, err
	}

	if opts.WalletPassword == "" {
		return nil, NewConfigError(
			"wallet RPC password not set (use the configuration file or --wallet-password)",
		)
	}

	protocolHost := opts.ProtocolHost
	if protocolHost == "" {
		protocolHost = defaultHost
	}
	protocolUser := opts.ProtocolUser
	if protocolUser == "" {
		protocolUser = defaultProtocolUser
	}

	walletHost := opts.WalletHost
	if walletHost == "" {
		walletHost = defaultHost
	}
	walletUser := opts.WalletUser
	if walletUser == "" {
		walletUser = defaultWalletUser
	}
	walletName := opts.WalletName
	if walletName == "" {
		walletName = defaultWalletName
	}

	timeout := opts.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}
	unlockDuration := opts.UnlockDuration
	if unlockDuration == 0 {
		unlockDuration = DefaultUnlockDuration
	}

	// The protocol server is queried anonymously when no password is set.
	protocolCreds := ""
	if opts.ProtocolPassword != "" {
		protocolCreds = encodeCredentials(protocolUser, opts.ProtocolPassword)
	}

	return &Config{
		chain: chain,
		protocolURL: buildEndpoint(
			opts.ProtocolSSL, protocolCreds, protocolHost, protocolPort, protocolPath,
		),
		walletURL: buildEndpoint(
			opts.WalletSSL, encodeCredentials(walletUser, opts.WalletPassword),
			walletHost, walletPort, "",
		),
		walletName:         walletName,
		protocolSkipVerify: opts.ProtocolSSL && !opts.ProtocolSSLVerify,
		walletSkipVerify:   opts.WalletSSL && !opts.WalletSSLVerify,
		timeout:            timeout,
		unlockDuration:     unlockDuration,
		pubkeyCacheDir:     opts.PubkeyCacheDir,
	}, nil
}

// ChainParams returns the protocol parameter set bound at resolve time.
func (c *Config) ChainParams() domain.ChainParams {
	return c.chain
}

// ProtocolURL returns the full endpoint of the protocol server, credentials
// included.
func (c *Config) ProtocolURL() string {
	return c.protocolURL
}

// WalletURL returns the full endpoint of the wallet service, credentials
// included.
func (c *Config) WalletURL() string {
	return c.walletURL
}

func (c *Config) WalletName() string {
	return c.walletName
}

// ProtocolTLSSkipVerify reports whether certificate verification must be
// skipped on the protocol endpoint, to support self-signed certificates.
func (c *Config) ProtocolTLSSkipVerify() bool {
	return c.protocolSkipVerify
}

func (c *Config) WalletTLSSkipVerify() bool {
	return c.walletSkipVerify
}

func (c *Config) RequestTimeout() time.Duration {
	return c.timeout
}

func (c *Config) UnlockDuration() time.Duration {
	return c.unlockDuration
}

// PubkeyCacheDir returns the directory of the on-disk pubkey cache, empty if
// caching is disabled.
func (c *Config) PubkeyCacheDir() string {
	return c.pubkeyCacheDir
}

func validatePort(name string, port int) error {
	if port <= 1 || port >= 65535 {
		return NewConfigError("please specify a valid %s port number, got %d", name, port)
	}
	return nil
}

func encodeCredentials(user, password string) string {
	return url.QueryEscape(user) + ":" + url.QueryEscape(password)
}

func buildEndpoint(ssl bool, creds, host string, port int, path string) string {
	scheme := "http"
	if ssl {
		scheme = "https"
	}
	authority := fmt.Sprintf("%s:%d", host, port)
	if creds != "" {
		authority = creds + "@" + authority
	}
	return scheme + "://" + authority + path
}
