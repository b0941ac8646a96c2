package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ActionType identifies the kind of an incoming transaction action.
type ActionType string

const (
	ActionDeposit    ActionType = "deposit"
	ActionWithdrawal ActionType = "withdrawal"
	ActionDispute    ActionType = "dispute"
	ActionResolve    ActionType = "resolve"
	ActionChargeback ActionType = "chargeback"
	ActionUnknown    ActionType = "unknown"
)

// ParseActionType maps a raw type field to an ActionType. Anything
// unrecognized becomes ActionUnknown rather than an error, so that a single
// bad row cannot abort a batch.
func ParseActionType(raw string) ActionType {
	switch strings.TrimSpace(raw) {
	case "deposit":
		return ActionDeposit
	case "withdrawal":
		return ActionWithdrawal
	case "dispute":
		return ActionDispute
	case "resolve":
		return ActionResolve
	case "chargeback":
		return ActionChargeback
	default:
		return ActionUnknown
	}
}

// Action is a single record pulled from the transaction stream.
// Amount is only meaningful for deposits and withdrawals; dispute-lifecycle
// actions must not carry one.
type Action struct {
	Type     ActionType
	ClientID uint16
	TxID     uint32
	Amount   *decimal.Decimal
}
