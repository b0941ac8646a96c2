package models

// Outcome classifies how the processor handled a single action. Every
// rejection is silent at the stream level; the outcome exists so callers and
// tests can observe why an action did not change state.
type Outcome int

const (
	// OutcomeAccepted means the action was applied in full.
	OutcomeAccepted Outcome = iota
	// OutcomeRejectedShape means the action's fields did not match its
	// declared type (missing, extra, or non-positive amount; unknown type).
	OutcomeRejectedShape
	// OutcomeRejectedReference means the action referenced a transaction id
	// that does not exist, belongs to another client, or is already taken.
	OutcomeRejectedReference
	// OutcomeRejectedInsufficientFunds means a balance guard refused the
	// mutation (unknown account, or available/held below the amount).
	OutcomeRejectedInsufficientFunds
	// OutcomeRejectedLocked means the account is locked and the ledger is
	// configured to refuse further activity on locked accounts.
	OutcomeRejectedLocked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejectedShape:
		return "rejected_shape"
	case OutcomeRejectedReference:
		return "rejected_reference"
	case OutcomeRejectedInsufficientFunds:
		return "rejected_insufficient_funds"
	case OutcomeRejectedLocked:
		return "rejected_locked"
	default:
		return "unknown"
	}
}

// Accepted reports whether the action was applied.
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted
}
