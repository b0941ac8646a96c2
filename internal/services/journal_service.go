package services

import (
	"errors"

	"github.com/paystream/txprocessor/internal/models"
)

var (
	// ErrDuplicateTransaction is returned when a transaction id is already
	// journaled. Ids are globally unique, even across clients.
	ErrDuplicateTransaction = errors.New("transaction id already exists")
	// ErrNotJournalable is returned for records that are not deposits or
	// withdrawals, or that carry a negative amount.
	ErrNotJournalable = errors.New("record is not journalable")
)

// JournalService keeps the provenance of every accepted deposit and
// withdrawal, keyed by transaction id. Records are immutable once stored and
// never expire: any later action in the stream may reference them.
type JournalService struct {
	records map[uint32]models.TransactionRecord
}

// NewJournalService creates an empty journal.
func NewJournalService() *JournalService {
	return &JournalService{
		records: make(map[uint32]models.TransactionRecord),
	}
}

// Record stores a deposit or withdrawal under its transaction id. A duplicate
// id is rejected unconditionally; the stored record keeps its original amount.
func (s *JournalService) Record(record models.TransactionRecord) error {
	if record.Type != models.ActionDeposit && record.Type != models.ActionWithdrawal {
		return ErrNotJournalable
	}
	if record.Amount.IsNegative() {
		return ErrNotJournalable
	}
	if _, ok := s.records[record.TxID]; ok {
		return ErrDuplicateTransaction
	}

	s.records[record.TxID] = record
	return nil
}

// Lookup returns the record for txID if it exists and belongs to clientID.
// A reference to another client's transaction behaves exactly like a
// reference to a missing one.
func (s *JournalService) Lookup(txID uint32, clientID uint16) (models.TransactionRecord, bool) {
	record, ok := s.records[txID]
	if !ok || record.ClientID != clientID {
		return models.TransactionRecord{}, false
	}
	return record, true
}

// Exists reports whether txID is already journaled for any client.
func (s *JournalService) Exists(txID uint32) bool {
	_, ok := s.records[txID]
	return ok
}
