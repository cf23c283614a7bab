package channel

import "errors"

// Outcome is the per-recipient result of one channel delivery attempt.
type Outcome int

const (
	// OutcomeSent means at least one message left through the transport.
	OutcomeSent Outcome = iota
	// OutcomeSkipped means the channel had nowhere to deliver (no address,
	// no tokens). Not an error.
	OutcomeSkipped
	// OutcomeFailed means the transport rejected every attempt.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrInvalidToken marks a push token the provider no longer recognizes.
// The token is disposable: delivery moves on to the next token and the
// dead one is revoked at the token store.
var ErrInvalidToken = errors.New("invalid or expired token")
