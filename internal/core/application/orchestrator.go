package application

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

// Outcome is the terminal result of a transaction workflow: the state it
// stopped in plus every artifact produced before stopping. A failed broadcast
// still carries the signed hex, so nothing valid is ever silently discarded.
type Outcome struct {
	State domain.State
	Tx    domain.Transaction
}

// Orchestrator drives the compose, confirm, sign and broadcast workflow. One
// workflow runs per invocation; every prompt is synchronous on the calling
// goroutine.
type Orchestrator struct {
	dispatcher     *Dispatcher
	wallet         ports.WalletService
	interaction    ports.Interaction
	unlockDuration time.Duration
}

func NewOrchestrator(
	dispatcher *Dispatcher,
	wallet ports.WalletService,
	interaction ports.Interaction,
	unlockDuration time.Duration,
) *Orchestrator {
	if unlockDuration <= 0 {
		unlockDuration = 60 * time.Second
	}
	return &Orchestrator{
		dispatcher:     dispatcher,
		wallet:         wallet,
		interaction:    interaction,
		unlockDuration: unlockDuration,
	}
}

// Execute runs the workflow for one construction request.
//
// Terminal states:
//   - StateComposed with unsignedOnly: the caller asked for the hex only.
//   - StateManualHandoff: multisig source, signing happens out of band.
//   - StateAborted: construction failed, the confirmation was declined, or a
//     later step errored; a declined confirmation returns a nil error.
//   - StateBroadcast: the signed transaction was accepted by the network.
func (o *Orchestrator) Execute(
	ctx context.Context, req ComposeRequest, unsignedOnly bool,
) (*Outcome, error) {
	outcome := &Outcome{State: domain.StateComposing}

	result, err := o.dispatcher.Compose(ctx, req)
	if err != nil {
		outcome.State = domain.StateAborted
		return outcome, err
	}
	outcome.Tx.UnsignedHex = result.TxHex
	outcome.State = domain.StateComposed
	log.Infof("transaction (unsigned): %s", result.TxHex)

	if unsignedOnly {
		return outcome, nil
	}

	if domain.IsMultisig(req.Source()) {
		log.Info("multisignature transactions are signed and broadcasted manually")
		outcome.State = domain.StateManualHandoff
		return outcome, nil
	}

	confirmed, err := o.interaction.Confirm("Sign and broadcast?")
	if err != nil {
		outcome.State = domain.StateAborted
		return outcome, err
	}
	if !confirmed {
		// A decline is an intentional stop, not an error.
		outcome.State = domain.StateAborted
		return outcome, nil
	}

	signedHex, err := o.sign(ctx, req.Source(), outcome.Tx.UnsignedHex)
	if err != nil {
		outcome.State = domain.StateAborted
		return outcome, err
	}
	outcome.Tx.SignedHex = signedHex
	outcome.State = domain.StateSigned
	log.Infof("transaction (signed): %s", signedHex)

	txHash, err := o.wallet.SendTransaction(ctx, signedHex)
	if err != nil {
		return outcome, fmt.Errorf("broadcast failed, signed hex preserved above: %w", err)
	}
	outcome.Tx.TxHash = txHash
	outcome.State = domain.StateBroadcast
	log.Infof("hash of transaction (broadcasted): %s", txHash)

	return outcome, nil
}

// sign invokes exactly one signing path, depending on the custody of the
// source address.
func (o *Orchestrator) sign(
	ctx context.Context, source, unsignedHex string,
) (string, error) {
	mine, err := o.wallet.IsMine(ctx, source)
	if err != nil {
		return "", err
	}

	if mine {
		locked, err := o.wallet.IsLocked(ctx)
		if err != nil {
			return "", err
		}
		if locked {
			passphrase, err := o.interaction.PromptSecret("Enter your wallet passphrase:")
			if err != nil {
				return "", err
			}
			log.Infof("unlocking wallet for %d (more) seconds", int(o.unlockDuration.Seconds()))
			if err := o.wallet.Unlock(ctx, passphrase, o.unlockDuration); err != nil {
				return "", err
			}
		}
		return o.wallet.SignTransaction(ctx, unsignedHex)
	}

	wif, err := o.interaction.PromptText(fmt.Sprintf(
		"Source address not in wallet. Please enter the private key in WIF format for %s:",
		source,
	))
	if err != nil {
		return "", err
	}
	if wif == "" {
		return "", domain.NewTransactionError("invalid private key")
	}
	if _, err := btcutil.DecodeWIF(wif); err != nil {
		return "", domain.NewTransactionError("invalid private key: %s", err)
	}
	return o.wallet.SignTransactionWithKey(ctx, unsignedHex, wif)
}
