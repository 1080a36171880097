package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AspireOrg/aspire-cli/internal/config"
	"github.com/AspireOrg/aspire-cli/internal/core/application"
	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
	"github.com/AspireOrg/aspire-cli/internal/infrastructure/protoserver"
	"github.com/AspireOrg/aspire-cli/internal/infrastructure/pubkeystore"
	"github.com/AspireOrg/aspire-cli/internal/infrastructure/terminal"
	"github.com/AspireOrg/aspire-cli/internal/infrastructure/wallet"
)

const appVersion = "1.0.0"

func main() {
	app := cli.NewApp()

	app.Version = appVersion
	app.Name = "aspire-cli"
	app.Usage = "Command line interface for the Aspire protocol server and wallet"
	app.Flags = configFlags
	app.Before = func(ctx *cli.Context) error {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if ctx.Bool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = append(
		app.Commands,
		&send,
		&issuance,
		&broadcast,
		&dividend,
		&destroy,
		&publish,
		&execute,
		&balances,
		&asset,
		&walletView,
		&getrows,
		&getinfo,
		&gettxinfo,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// services bundles everything a command needs, built once per invocation from
// the resolved configuration.
type services struct {
	cfg          *config.Config
	dispatcher   *application.Dispatcher
	orchestrator *application.Orchestrator
}

func getServices(ctx *cli.Context) (*services, func(), error) {
	opts, err := loadOptions(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Resolve(opts)
	if err != nil {
		return nil, nil, err
	}

	protocolSvc, err := protoserver.NewService(cfg)
	if err != nil {
		return nil, nil, err
	}
	walletSvc, err := wallet.NewService(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	lookup := ports.PubkeyLookup(walletSvc.Pubkey)
	if dir := cfg.PubkeyCacheDir(); dir != "" {
		store, err := pubkeystore.NewStore(dir)
		if err != nil {
			return nil, nil, err
		}
		lookup = store.Wrap(lookup)
		cleanup = func() { _ = store.Close() }
	}

	dispatcher := application.NewDispatcher(protocolSvc, walletSvc, lookup)
	orchestrator := application.NewOrchestrator(
		dispatcher, walletSvc, terminal.New(), cfg.UnlockDuration(),
	)

	return &services{
		cfg:          cfg,
		dispatcher:   dispatcher,
		orchestrator: orchestrator,
	}, cleanup, nil
}

// composeAndExecute runs the full transaction workflow for a construction
// command.
func composeAndExecute(ctx *cli.Context, svc *services, req application.ComposeRequest) error {
	if err := domain.ValidateAddress(req.Source(), svc.cfg.ChainParams()); err != nil {
		return err
	}

	outcome, err := svc.orchestrator.Execute(ctx.Context, req, ctx.Bool("unsigned"))
	if err != nil {
		return err
	}
	if ctx.Bool("json-output") {
		return printJSON(map[string]interface{}{
			"state":        outcome.State.String(),
			"unsigned_hex": outcome.Tx.UnsignedHex,
			"signed_hex":   outcome.Tx.SignedHex,
			"tx_hash":      outcome.Tx.TxHash,
		})
	}
	return nil
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[aspire] %v\n", err)
	}
	os.Exit(1)
}
