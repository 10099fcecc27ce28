package ledger

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"fintrack/internal/models"
)

var (
	ErrIndexOutOfBounds = errors.New("reorder index out of bounds")
	ErrDuplicateID      = errors.New("transaction id already present in ledger")
)

// Listener receives exactly one notification per applied store mutation.
// The snapshot argument is a defensive copy of the canonical order after the
// mutation; listeners may retain it. Notifications run on the mutating
// goroutine, outside the store lock.
type Listener interface {
	TransactionAdded(tx models.Transaction, snapshot []models.Transaction)
	TransactionRemoved(id uuid.UUID, snapshot []models.Transaction)
	LedgerReordered(snapshot []models.Transaction)
}

// Store owns the canonical ordered collection of transactions. The order is
// the manual order: newest additions first, mutable only through Reorder.
// All other components receive read-only copies and derive their views from
// them. Mutations are serialized by the store's mutex and therefore applied
// in the order issued.
type Store struct {
	mu           sync.Mutex
	transactions []models.Transaction
	listener     Listener
}

// NewStore creates an empty ledger store. The listener may be nil, in which
// case mutations are applied without persistence notifications.
func NewStore(listener Listener) *Store {
	return &Store{listener: listener}
}

// Seed replaces the ledger contents from a restored snapshot. It bypasses
// the listener: seeding is the result of persistence, not a new mutation.
func (s *Store) Seed(transactions []models.Transaction) error {
	seen := make(map[uuid.UUID]struct{}, len(transactions))
	for _, t := range transactions {
		if _, dup := seen[t.ID]; dup {
			return ErrDuplicateID
		}
		seen[t.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = make([]models.Transaction, len(transactions))
	copy(s.transactions, transactions)
	return nil
}

// Add prepends a validated transaction to the canonical order and notifies
// the listener once. The transaction must already have passed
// models.ValidateAndNormalize; the store only guards id uniqueness.
func (s *Store) Add(tx models.Transaction) error {
	s.mu.Lock()
	if s.indexOf(tx.ID) >= 0 {
		s.mu.Unlock()
		return ErrDuplicateID
	}
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.TransactionAdded(tx, snapshot)
	}
	return nil
}

// Remove deletes a transaction by id. An absent id is a silent no-op: the
// ledger is unchanged and the listener is not notified.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.TransactionRemoved(id, snapshot)
	}
}

// Reorder removes the element at from and reinserts it at to. Both indices
// address the canonical order, not any filtered or sorted display view;
// mapping display positions back to canonical positions is the caller's
// responsibility. Out-of-range indices are rejected before any mutation.
func (s *Store) Reorder(from, to int) error {
	s.mu.Lock()
	if from < 0 || from >= len(s.transactions) || to < 0 || to >= len(s.transactions) {
		s.mu.Unlock()
		return ErrIndexOutOfBounds
	}
	if from == to {
		s.mu.Unlock()
		return nil
	}

	moved := s.transactions[from]
	rest := append(s.transactions[:from], s.transactions[from+1:]...)
	s.transactions = append(rest[:to], append([]models.Transaction{moved}, rest[to:]...)...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.LedgerReordered(snapshot)
	}
	return nil
}

// Snapshot returns a copy of the canonical order.
func (s *Store) Snapshot() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the number of transactions in the ledger.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

func (s *Store) snapshotLocked() []models.Transaction {
	snapshot := make([]models.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	return snapshot
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
