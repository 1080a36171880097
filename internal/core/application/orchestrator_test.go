package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AspireOrg/aspire-cli/internal/core/domain"
	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

const validWIF = "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"

type orchestratorFixture struct {
	orchestrator *Orchestrator
	protocol     *mockProtocolService
	wallet       *mockWalletService
	interaction  *mockInteraction
}

func newOrchestratorFixture() *orchestratorFixture {
	protocol := &mockProtocolService{}
	wallet := &mockWalletService{}
	interaction := &mockInteraction{}
	lookup := lookupFromMap(map[string]string{
		"addrA": pubkeyA,
		"addrB": pubkeyB,
		"addrC": pubkeyC,
	})
	dispatcher := NewDispatcher(protocol, wallet, lookup)
	return &orchestratorFixture{
		orchestrator: NewOrchestrator(dispatcher, wallet, interaction, 60*time.Second),
		protocol:     protocol,
		wallet:       wallet,
		interaction:  interaction,
	}
}

func sendRequest(source string) SendParams {
	return SendParams{
		SourceAddr:      source,
		Destination:     "addrB",
		Asset:           "FOO",
		Quantity:        10,
		UseEnhancedSend: true,
	}
}

func (f *orchestratorFixture) expectCompose(source string, quantity float64) {
	f.protocol.On("Compose", mock.Anything, MethodCreateSend, mock.Anything).
		Return(&ports.ComposeResult{
			TxHex: "beef",
			Echo: map[string]interface{}{
				"source":      source,
				"destination": "addrB",
				"asset":       "FOO",
				"quantity":    quantity,
			},
		}, nil)
}

// Scenario: single-key source, plain destination, unlocked wallet.
func TestExecuteSignsAndBroadcasts(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	f.expectCompose("addrA", 10)
	f.interaction.On("Confirm", mock.Anything).Return(true, nil)
	f.wallet.On("IsMine", mock.Anything, "addrA").Return(true, nil)
	f.wallet.On("IsLocked", mock.Anything).Return(false, nil)
	f.wallet.On("SignTransaction", mock.Anything, "beef").Return("s1gned", nil)
	f.wallet.On("SendTransaction", mock.Anything, "s1gned").Return("deadbeef", nil)

	outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
	require.NoError(t, err)

	assert.Equal(t, domain.StateBroadcast, outcome.State)
	assert.Equal(t, "beef", outcome.Tx.UnsignedHex)
	assert.Equal(t, "s1gned", outcome.Tx.SignedHex)
	assert.Equal(t, "deadbeef", outcome.Tx.TxHash)

	// Exactly one pubkey was injected for the single-key source.
	sent := f.protocol.Calls[0].Arguments.Get(2).(map[string]interface{})
	assert.Equal(t, []string{pubkeyA}, sent[pubkeyArgKey])

	f.wallet.AssertNotCalled(t, "Unlock")
	f.wallet.AssertNotCalled(t, "SignTransactionWithKey")
}

// Scenario: multisig source goes to manual handoff, no automated action.
func TestExecuteMultisigManualHandoff(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	f.expectCompose("2_addrA_addrB_addrC_3", 10)

	outcome, err := f.orchestrator.Execute(ctx, sendRequest("2_addrA_addrB_addrC_3"), false)
	require.NoError(t, err)

	assert.Equal(t, domain.StateManualHandoff, outcome.State)
	assert.Equal(t, "beef", outcome.Tx.UnsignedHex)
	assert.Equal(t, "", outcome.Tx.SignedHex)

	f.interaction.AssertNotCalled(t, "Confirm")
	f.wallet.AssertNotCalled(t, "IsMine")
	f.wallet.AssertNotCalled(t, "Unlock")
	f.wallet.AssertNotCalled(t, "SignTransaction")
	f.wallet.AssertNotCalled(t, "SendTransaction")
}

// Scenario: locked wallet is unlocked before signing; a failed unlock
// prevents signing entirely.
func TestExecuteUnlocksBeforeSigning(t *testing.T) {
	t.Run("unlock succeeds", func(t *testing.T) {
		f := newOrchestratorFixture()
		ctx := context.Background()

		f.expectCompose("addrA", 10)
		f.interaction.On("Confirm", mock.Anything).Return(true, nil)
		f.interaction.On("PromptSecret", mock.Anything).Return("passphrase", nil)
		f.wallet.On("IsMine", mock.Anything, "addrA").Return(true, nil)
		f.wallet.On("IsLocked", mock.Anything).Return(true, nil)
		f.wallet.On("Unlock", mock.Anything, "passphrase", 60*time.Second).Return(nil)
		f.wallet.On("SignTransaction", mock.Anything, "beef").Return("s1gned", nil)
		f.wallet.On("SendTransaction", mock.Anything, "s1gned").Return("deadbeef", nil)

		outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
		require.NoError(t, err)
		assert.Equal(t, domain.StateBroadcast, outcome.State)
		f.wallet.AssertCalled(t, "Unlock", mock.Anything, "passphrase", 60*time.Second)
	})

	t.Run("unlock fails", func(t *testing.T) {
		f := newOrchestratorFixture()
		ctx := context.Background()

		f.expectCompose("addrA", 10)
		f.interaction.On("Confirm", mock.Anything).Return(true, nil)
		f.interaction.On("PromptSecret", mock.Anything).Return("wrong", nil)
		f.wallet.On("IsMine", mock.Anything, "addrA").Return(true, nil)
		f.wallet.On("IsLocked", mock.Anything).Return(true, nil)
		f.wallet.On("Unlock", mock.Anything, "wrong", 60*time.Second).
			Return(errors.New("passphrase is not valid"))

		outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
		require.Error(t, err)
		assert.Equal(t, domain.StateAborted, outcome.State)
		assert.Equal(t, "beef", outcome.Tx.UnsignedHex)
		f.wallet.AssertNotCalled(t, "SignTransaction")
		f.wallet.AssertNotCalled(t, "SendTransaction")
	})
}

// Scenario: echoed quantity differs from the requested one.
func TestExecuteAbortsOnEchoMismatch(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	f.expectCompose("addrA", 11)

	outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
	var txErr *domain.TransactionError
	require.ErrorAs(t, err, &txErr)

	assert.Equal(t, domain.StateAborted, outcome.State)
	f.interaction.AssertNotCalled(t, "Confirm")
	f.wallet.AssertNotCalled(t, "SignTransaction")
	f.wallet.AssertNotCalled(t, "SendTransaction")
}

func TestExecuteUnsignedOnly(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	f.expectCompose("addrA", 10)

	outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), true)
	require.NoError(t, err)

	assert.Equal(t, domain.StateComposed, outcome.State)
	assert.Equal(t, "beef", outcome.Tx.UnsignedHex)
	f.interaction.AssertNotCalled(t, "Confirm")
}

func TestExecuteDeclinedConfirmation(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	f.expectCompose("addrA", 10)
	f.interaction.On("Confirm", mock.Anything).Return(false, nil)

	outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
	require.NoError(t, err)

	// A decline is a silent, intentional stop, distinguishable by state.
	assert.Equal(t, domain.StateAborted, outcome.State)
	f.wallet.AssertNotCalled(t, "IsMine")
	f.wallet.AssertNotCalled(t, "SignTransaction")
}

func TestExecuteExternalKey(t *testing.T) {
	t.Run("should sign with the supplied private key", func(t *testing.T) {
		f := newOrchestratorFixture()
		ctx := context.Background()

		f.expectCompose("addrA", 10)
		f.interaction.On("Confirm", mock.Anything).Return(true, nil)
		f.interaction.On("PromptText", mock.Anything).Return(validWIF, nil)
		f.wallet.On("IsMine", mock.Anything, "addrA").Return(false, nil)
		f.wallet.On("SignTransactionWithKey", mock.Anything, "beef", validWIF).
			Return("s1gned", nil)
		f.wallet.On("SendTransaction", mock.Anything, "s1gned").Return("deadbeef", nil)

		outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
		require.NoError(t, err)
		assert.Equal(t, domain.StateBroadcast, outcome.State)
		f.wallet.AssertNotCalled(t, "SignTransaction")
		f.wallet.AssertNotCalled(t, "IsLocked")
	})

	t.Run("should fail with a TransactionError on empty input", func(t *testing.T) {
		f := newOrchestratorFixture()
		ctx := context.Background()

		f.expectCompose("addrA", 10)
		f.interaction.On("Confirm", mock.Anything).Return(true, nil)
		f.interaction.On("PromptText", mock.Anything).Return("", nil)
		f.wallet.On("IsMine", mock.Anything, "addrA").Return(false, nil)

		outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
		var txErr *domain.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, domain.StateAborted, outcome.State)
		f.wallet.AssertNotCalled(t, "SignTransactionWithKey")
	})
}

func TestExecuteBroadcastFailureKeepsSignedHex(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	f.expectCompose("addrA", 10)
	f.interaction.On("Confirm", mock.Anything).Return(true, nil)
	f.wallet.On("IsMine", mock.Anything, "addrA").Return(true, nil)
	f.wallet.On("IsLocked", mock.Anything).Return(false, nil)
	f.wallet.On("SignTransaction", mock.Anything, "beef").Return("s1gned", nil)
	f.wallet.On("SendTransaction", mock.Anything, "s1gned").
		Return("", errors.New("connection refused"))

	outcome, err := f.orchestrator.Execute(ctx, sendRequest("addrA"), false)
	require.Error(t, err)

	assert.Equal(t, domain.StateSigned, outcome.State)
	assert.Equal(t, "s1gned", outcome.Tx.SignedHex)
	assert.Equal(t, "", outcome.Tx.TxHash)
}
