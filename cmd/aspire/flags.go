package main

import (
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/config"
)

var aspireDataDir = btcutil.AppDataDir("aspire", false)

var configFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "set log level to debug",
	},
	&cli.BoolFlag{
		Name:  "testnet",
		Usage: "use testnet addresses and block numbers",
	},
	&cli.BoolFlag{
		Name:  "json-output",
		Usage: "display results in JSON format",
	},
	&cli.StringFlag{
		Name:  "config-file",
		Usage: "the location of the configuration file",
	},

	&cli.StringFlag{
		Name:  "aspire-rpc-connect",
		Usage: "the hostname or IP of the Aspire JSON-RPC server",
	},
	&cli.IntFlag{
		Name:  "aspire-rpc-port",
		Usage: "the port of the Aspire JSON-RPC server",
	},
	&cli.StringFlag{
		Name:  "aspire-rpc-user",
		Usage: "the username for the Aspire JSON-RPC server",
	},
	&cli.StringFlag{
		Name:  "aspire-rpc-password",
		Usage: "the password for the Aspire JSON-RPC server",
	},
	&cli.BoolFlag{
		Name:  "aspire-rpc-ssl",
		Usage: "use SSL to connect to the Aspire server",
	},
	&cli.BoolFlag{
		Name:  "aspire-rpc-ssl-verify",
		Usage: "verify the SSL certificate of the Aspire server; disallow self-signed certificates",
	},

	&cli.StringFlag{
		Name:  "wallet-name",
		Usage: "the wallet name to connect to",
	},
	&cli.StringFlag{
		Name:  "wallet-connect",
		Usage: "the hostname or IP of the wallet server",
	},
	&cli.IntFlag{
		Name:  "wallet-port",
		Usage: "the wallet port to connect to",
	},
	&cli.StringFlag{
		Name:  "wallet-user",
		Usage: "the username used to communicate with the wallet",
	},
	&cli.StringFlag{
		Name:  "wallet-password",
		Usage: "the password used to communicate with the wallet",
	},
	&cli.BoolFlag{
		Name:  "wallet-ssl",
		Usage: "use SSL to connect to the wallet",
	},
	&cli.BoolFlag{
		Name:  "wallet-ssl-verify",
		Usage: "verify the SSL certificate of the wallet; disallow self-signed certificates",
	},

	&cli.IntFlag{
		Name:  "requests-timeout",
		Usage: "timeout in seconds used for all HTTP requests",
	},
	&cli.StringFlag{
		Name:  "pubkey-cache",
		Usage: "directory of the on-disk pubkey cache; empty disables caching",
	},
}

// Flags shared by every construction command.
var (
	feeFlag = cli.StringFlag{
		Name:  "fee",
		Usage: "the exact fee to pay to miners, in whole coins",
	}
	unsignedFlag = cli.BoolFlag{
		Name:  "unsigned",
		Usage: "print the unsigned transaction hex and stop before signing",
	}
)

// loadOptions merges CLI flags over environment variables (ASPIRE_ prefix)
// and the optional configuration file. An explicitly set flag always wins.
func loadOptions(ctx *cli.Context) (config.Options, error) {
	vip := viper.New()
	vip.SetEnvPrefix("ASPIRE")
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if path := ctx.String("config-file"); path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return config.Options{}, err
		}
	} else {
		vip.SetConfigName("client")
		vip.SetConfigType("toml")
		vip.AddConfigPath(aspireDataDir)
		// A missing default configuration file is fine.
		_ = vip.ReadInConfig()
	}

	return config.Options{
		Testnet: ctx.Bool("testnet") || vip.GetBool("testnet"),

		ProtocolHost:      stringOption(ctx, vip, "aspire-rpc-connect"),
		ProtocolPort:      intOption(ctx, vip, "aspire-rpc-port"),
		ProtocolUser:      stringOption(ctx, vip, "aspire-rpc-user"),
		ProtocolPassword:  stringOption(ctx, vip, "aspire-rpc-password"),
		ProtocolSSL:       ctx.Bool("aspire-rpc-ssl") || vip.GetBool("aspire-rpc-ssl"),
		ProtocolSSLVerify: ctx.Bool("aspire-rpc-ssl-verify") || vip.GetBool("aspire-rpc-ssl-verify"),

		WalletName:      stringOption(ctx, vip, "wallet-name"),
		WalletHost:      stringOption(ctx, vip, "wallet-connect"),
		WalletPort:      intOption(ctx, vip, "wallet-port"),
		WalletUser:      stringOption(ctx, vip, "wallet-user"),
		WalletPassword:  stringOption(ctx, vip, "wallet-password"),
		WalletSSL:       ctx.Bool("wallet-ssl") || vip.GetBool("wallet-ssl"),
		WalletSSLVerify: ctx.Bool("wallet-ssl-verify") || vip.GetBool("wallet-ssl-verify"),

		RequestTimeout: time.Duration(intOption(ctx, vip, "requests-timeout")) * time.Second,
		PubkeyCacheDir: stringOption(ctx, vip, "pubkey-cache"),
	}, nil
}

func stringOption(ctx *cli.Context, vip *viper.Viper, key string) string {
	if ctx.IsSet(key) {
		return ctx.String(key)
	}
	return vip.GetString(key)
}

func intOption(ctx *cli.Context, vip *viper.Viper, key string) int {
	if ctx.IsSet(key) {
		return ctx.Int(key)
	}
	return vip.GetInt(key)
}
