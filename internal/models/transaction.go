package models

import (
	"github.com/shopspring/decimal"
)

// TransactionRecord is the immutable provenance of an accepted deposit or
// withdrawal, retained for the lifetime of a run so that later
// dispute-lifecycle actions can reference it by transaction id.
type TransactionRecord struct {
	TxID     uint32
	ClientID uint16
	Type     ActionType
	Amount   decimal.Decimal
}
