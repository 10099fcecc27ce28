package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *ExpenseRecord {
	return &ExpenseRecord{
		Description: "Groceries",
		Amount:      decimal.RequireFromString("42.50"),
		Type:        TransactionTypeExpense,
		Category:    "Food",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestExpenseRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ExpenseRecord)
		wantErr error
	}{
		{
			name:   "valid record",
			mutate: func(*ExpenseRecord) {},
		},
		{
			name:    "zero amount",
			mutate:  func(r *ExpenseRecord) { r.Amount = decimal.Zero },
			wantErr: ErrInvalidRecordAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(r *ExpenseRecord) { r.Amount = decimal.NewFromInt(-10) },
			wantErr: ErrInvalidRecordAmount,
		},
		{
			name:    "unknown type",
			mutate:  func(r *ExpenseRecord) { r.Type = "transfer" },
			wantErr: ErrInvalidRecordType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			err := record.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExpenseRecord_ValidateMissingCategory(t *testing.T) {
	record := validRecord()
	record.Category = ""

	assert.Error(t, record.Validate())
}

func TestExpenseRecord_BeforeCreateDefaults(t *testing.T) {
	record := &ExpenseRecord{
		Description: "Groceries",
		Amount:      decimal.NewFromInt(10),
		Category:    "Food",
	}

	require.NoError(t, record.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, TransactionTypeExpense, record.Type)
	assert.False(t, record.Date.IsZero())
}

func TestExpenseRecord_BeforeCreateKeepsExistingValues(t *testing.T) {
	id := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	record := &ExpenseRecord{
		ID:          id,
		Description: "Salary",
		Amount:      decimal.NewFromInt(2500),
		Type:        TransactionTypeIncome,
		Category:    "Salary",
		Date:        date,
	}

	require.NoError(t, record.BeforeCreate(nil))

	assert.Equal(t, id, record.ID)
	assert.Equal(t, TransactionTypeIncome, record.Type)
	assert.Equal(t, date, record.Date)
}

func TestExpenseRecord_TableName(t *testing.T) {
	assert.Equal(t, "expenses", (&ExpenseRecord{}).TableName())
}

func TestExpenseRecord_ToTransaction(t *testing.T) {
	record := validRecord()
	record.ID = uuid.New()

	tx := record.ToTransaction()

	assert.Equal(t, record.ID, tx.ID)
	assert.Equal(t, record.Description, tx.Description)
	assert.True(t, record.Amount.Equal(tx.Amount))
	assert.Equal(t, record.Type, tx.Type)
	assert.Equal(t, record.Category, tx.Category)
	assert.True(t, record.Date.Equal(tx.Date))
}
