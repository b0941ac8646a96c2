package models

import (
	"github.com/shopspring/decimal"
)

// Account is the balance state of a single client.
//
// Total must equal Available + Held at every externally observable point;
// every ledger operation updates the pair together. Locked is set by a
// chargeback and is never cleared.
type Account struct {
	ClientID  uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
