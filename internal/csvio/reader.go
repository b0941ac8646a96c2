// Package csvio adapts the transaction CSV format to and from the typed
// records the processor works with.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paystream/txprocessor/internal/models"
)

// Reader parses a whole transactions document up front and hands out actions
// one at a time in document order.
//
// Expected columns: type, client, tx, amount. The amount column may be absent
// or empty on dispute-lifecycle rows. Whitespace around any field is
// tolerated. An unrecognized type string becomes an Unknown action for the
// processor to reject; an unparsable client, tx, or amount field is a fatal
// document error.
type Reader struct {
	actions []models.Action
	idx     int
}

// NewReader reads every row from r. It fails on the first malformed row; a
// corrupt document aborts a run before processing begins.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	amountCol, hasAmountCol := columns["amount"]

	minFields := columns["type"]
	for _, col := range []int{columns["client"], columns["tx"]} {
		if col > minFields {
			minFields = col
		}
	}
	minFields++

	var actions []models.Action
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if len(record) < minFields {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d", row, minFields, len(record))
		}

		clientID, err := parseUint(record[columns["client"]], 16)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid client id: %w", row, err)
		}
		txID, err := parseUint(record[columns["tx"]], 32)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid transaction id: %w", row, err)
		}

		action := models.Action{
			Type:     models.ParseActionType(record[columns["type"]]),
			ClientID: uint16(clientID),
			TxID:     uint32(txID),
		}
		if hasAmountCol && amountCol < len(record) {
			if raw := strings.TrimSpace(record[amountCol]); raw != "" {
				amount, err := decimal.NewFromString(raw)
				if err != nil {
					return nil, fmt.Errorf("row %d: invalid amount: %w", row, err)
				}
				action.Amount = &amount
			}
		}
		actions = append(actions, action)
	}

	return &Reader{actions: actions}, nil
}

// Next returns the next action in document order, or false at end of stream.
func (r *Reader) Next() (models.Action, bool) {
	if r.idx >= len(r.actions) {
		return models.Action{}, false
	}
	action := r.actions[r.idx]
	r.idx++
	return action, true
}

func parseUint(raw string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(raw), 10, bits)
}
