package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paystream/txprocessor/internal/models"
)

// ActionSource produces actions in stream order. Next returns false once the
// stream is exhausted.
type ActionSource interface {
	Next() (models.Action, bool)
}

// ProcessorService consumes an action stream and dispatches each action to
// the ledger and journal. Actions are evaluated exactly once, in stream
// order; a rejection never aborts the run and is only logged.
type ProcessorService struct {
	ledger    *LedgerService
	journal   *JournalService
	validator *ValidationHelper
	logger    *zap.Logger
}

// NewProcessorService wires a processor to its ledger and journal. Each
// processor owns its stores for the duration of one run.
func NewProcessorService(ledger *LedgerService, journal *JournalService, logger *zap.Logger) *ProcessorService {
	return &ProcessorService{
		ledger:    ledger,
		journal:   journal,
		validator: NewValidationHelper(),
		logger:    logger.With(zap.String("run_id", uuid.NewString())),
	}
}

// Drain applies every action the source produces, in order, until the source
// is exhausted.
func (s *ProcessorService) Drain(source ActionSource) {
	for {
		action, ok := source.Next()
		if !ok {
			return
		}
		if outcome := s.Apply(action); !outcome.Accepted() {
			s.logger.Debug("action rejected",
				zap.String("type", string(action.Type)),
				zap.Uint16("client", action.ClientID),
				zap.Uint32("tx", action.TxID),
				zap.Stringer("outcome", outcome),
			)
		}
	}
}

// Apply dispatches a single action by type and reports how it was handled.
func (s *ProcessorService) Apply(action models.Action) models.Outcome {
	if err := s.validator.ValidateStruct(&action); err != nil {
		return models.OutcomeRejectedShape
	}

	switch action.Type {
	case models.ActionDeposit:
		return s.applyTransaction(action, s.ledger.Deposit)
	case models.ActionWithdrawal:
		return s.applyTransaction(action, s.ledger.Withdraw)
	case models.ActionDispute:
		return s.applyDisputeLifecycle(action, s.ledger.OpenDispute)
	case models.ActionResolve:
		return s.applyDisputeLifecycle(action, s.ledger.ResolveDispute)
	case models.ActionChargeback:
		return s.applyDisputeLifecycle(action, s.ledger.Chargeback)
	default:
		return models.OutcomeRejectedShape
	}
}

// applyTransaction handles deposits and withdrawals: mutate the ledger, then
// journal the record under its transaction id.
//
// The two steps are not transactional, but the journal insert cannot fail
// here: Exists rules out a duplicate id, the shape validation rules out a
// missing or non-positive amount, and those are the only conditions Record
// rejects. If that proof is ever broken the ledger mutation stands and the
// gap is logged; the deposit or withdrawal is still considered applied.
func (s *ProcessorService) applyTransaction(action models.Action, op func(uint16, decimal.Decimal) error) models.Outcome {
	if s.journal.Exists(action.TxID) {
		return models.OutcomeRejectedReference
	}

	if err := op(action.ClientID, *action.Amount); err != nil {
		return s.outcomeForLedgerError(err)
	}

	if err := s.journal.Record(models.TransactionRecord{
		TxID:     action.TxID,
		ClientID: action.ClientID,
		Type:     action.Type,
		Amount:   *action.Amount,
	}); err != nil {
		s.logger.Warn("ledger mutated but journal insert failed",
			zap.Uint32("tx", action.TxID),
			zap.Error(err),
		)
	}
	return models.OutcomeAccepted
}

// applyDisputeLifecycle handles dispute, resolve, and chargeback: the amount
// comes from the journaled original, never from the incoming action, and the
// referenced transaction must belong to the acting client.
func (s *ProcessorService) applyDisputeLifecycle(action models.Action, op func(uint16, decimal.Decimal) error) models.Outcome {
	record, ok := s.journal.Lookup(action.TxID, action.ClientID)
	if !ok {
		return models.OutcomeRejectedReference
	}

	if err := op(action.ClientID, record.Amount); err != nil {
		return s.outcomeForLedgerError(err)
	}
	return models.OutcomeAccepted
}

func (s *ProcessorService) outcomeForLedgerError(err error) models.Outcome {
	switch {
	case errors.Is(err, ErrAccountLocked):
		return models.OutcomeRejectedLocked
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrInsufficientAvailable),
		errors.Is(err, ErrInsufficientHeld):
		return models.OutcomeRejectedInsufficientFunds
	default:
		return models.OutcomeRejectedInsufficientFunds
	}
}
