package domain

// State is the stage a transaction workflow has reached.
type State int

const (
	StateComposing State = iota
	StateComposed
	// StateManualHandoff is the deliberate, non-error exit taken when the
	// source is multisig: the unsigned hex is handed off for out-of-band
	// cosigning.
	StateManualHandoff
	StateAborted
	StateSigned
	StateBroadcast
)

func (s State) String() string {
	switch s {
	case StateComposing:
		return "composing"
	case StateComposed:
		return "composed"
	case StateManualHandoff:
		return "manual_handoff"
	case StateAborted:
		return "aborted"
	case StateSigned:
		return "signed"
	case StateBroadcast:
		return "broadcast"
	default:
		return "unknown"
	}
}

// Transaction tracks the artifacts produced along the compose, sign and
// broadcast workflow. Fields are filled in order and never cleared, so the
// last successfully produced artifact is always available to the caller.
type Transaction struct {
	UnsignedHex string
	SignedHex   string
	TxHash      string
}
