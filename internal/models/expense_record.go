package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidRecordAmount = errors.New("record amount must be positive")
	ErrInvalidRecordType   = errors.New("invalid record type")
)

// ExpenseRecord is a transaction as the expense service stores it. The
// service side keeps its own row identity; clients may supply an id at
// creation time so later deletes and updates can address the same record.
type ExpenseRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(20);not null;default:'expense'" json:"type"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for ExpenseRecord
func (r *ExpenseRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Type == "" {
		r.Type = TransactionTypeExpense
	}
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	return r.Validate()
}

// BeforeUpdate hook for ExpenseRecord
func (r *ExpenseRecord) BeforeUpdate(tx *gorm.DB) error {
	// Skip validation for map-based updates: the receiver is an empty model
	// and the fields being written live in the map.
	if tx != nil && tx.Statement != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return r.Validate()
}

// Validate validates the record fields
func (r *ExpenseRecord) Validate() error {
	if !IsValidTransactionType(r.Type) {
		return ErrInvalidRecordType
	}
	if r.Amount.Sign() <= 0 {
		return ErrInvalidRecordAmount
	}
	if r.Category == "" {
		return errors.New("record category is required")
	}
	return nil
}

// TableName returns the table name for ExpenseRecord
func (r *ExpenseRecord) TableName() string {
	return "expenses"
}

// ToTransaction converts a stored record into the ledger entity.
func (r *ExpenseRecord) ToTransaction() Transaction {
	return Transaction{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
		Date:        r.Date,
	}
}
