package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/paystream/txprocessor/internal/models"
)

var (
	// ErrAccountNotFound is returned when an operation targets a client that
	// has never received a deposit.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientAvailable is returned when available funds do not cover
	// the requested withdrawal or dispute.
	ErrInsufficientAvailable = errors.New("insufficient available funds")
	// ErrInsufficientHeld is returned when held funds do not cover the
	// requested resolve or chargeback.
	ErrInsufficientHeld = errors.New("insufficient held funds")
	// ErrAccountLocked is returned only when the ledger is configured to
	// reject activity on locked accounts.
	ErrAccountLocked = errors.New("account is locked")
)

// LedgerService owns the per-client balance state. Operations either apply in
// full or leave the account untouched; Total always equals Available + Held.
//
// By default a locked account still accepts every operation, matching the
// processing rules for chargeback-locked accounts. Setting rejectLocked makes
// every operation on a locked account fail with ErrAccountLocked instead.
type LedgerService struct {
	accounts     map[uint16]*models.Account
	rejectLocked bool
}

// NewLedgerService creates an empty ledger.
func NewLedgerService(rejectLocked bool) *LedgerService {
	return &LedgerService{
		accounts:     make(map[uint16]*models.Account),
		rejectLocked: rejectLocked,
	}
}

// Deposit credits available funds, creating the account on first use.
func (s *LedgerService) Deposit(clientID uint16, amount decimal.Decimal) error {
	account, ok := s.accounts[clientID]
	if !ok {
		account = &models.Account{ClientID: clientID}
		s.accounts[clientID] = account
	}
	if s.rejectLocked && account.Locked {
		return ErrAccountLocked
	}

	account.Available = account.Available.Add(amount)
	account.Total = account.Total.Add(amount)
	return nil
}

// Withdraw debits available funds. Available must cover the full amount.
func (s *LedgerService) Withdraw(clientID uint16, amount decimal.Decimal) error {
	account, err := s.account(clientID)
	if err != nil {
		return err
	}
	if account.Available.LessThan(amount) {
		return ErrInsufficientAvailable
	}

	account.Available = account.Available.Sub(amount)
	account.Total = account.Total.Sub(amount)
	return nil
}

// OpenDispute moves funds from available to held. Total is unchanged.
func (s *LedgerService) OpenDispute(clientID uint16, amount decimal.Decimal) error {
	account, err := s.account(clientID)
	if err != nil {
		return err
	}
	if account.Available.LessThan(amount) {
		return ErrInsufficientAvailable
	}

	account.Available = account.Available.Sub(amount)
	account.Held = account.Held.Add(amount)
	return nil
}

// ResolveDispute moves funds from held back to available, reversing
// OpenDispute. Total is unchanged.
func (s *LedgerService) ResolveDispute(clientID uint16, amount decimal.Decimal) error {
	account, err := s.account(clientID)
	if err != nil {
		return err
	}
	if account.Held.LessThan(amount) {
		return ErrInsufficientHeld
	}

	account.Available = account.Available.Add(amount)
	account.Held = account.Held.Sub(amount)
	return nil
}

// Chargeback removes disputed funds from held and total and locks the
// account. Available is untouched: the disputed funds leave the account, they
// are not refunded. The lock is permanent.
func (s *LedgerService) Chargeback(clientID uint16, amount decimal.Decimal) error {
	account, err := s.account(clientID)
	if err != nil {
		return err
	}
	if account.Held.LessThan(amount) {
		return ErrInsufficientHeld
	}

	account.Held = account.Held.Sub(amount)
	account.Total = account.Total.Sub(amount)
	account.Locked = true
	return nil
}

// Snapshot returns a copy of every account's current state, unordered.
func (s *LedgerService) Snapshot() []models.Account {
	snapshot := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		snapshot = append(snapshot, *account)
	}
	return snapshot
}

func (s *LedgerService) account(clientID uint16) (*models.Account, error) {
	account, ok := s.accounts[clientID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if s.rejectLocked && account.Locked {
		return nil, ErrAccountLocked
	}
	return account, nil
}
