package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Date layouts accepted on the submission path. Interactive collaborators
// submit plain dates, the remote service round-trips RFC 3339.
var acceptedDateLayouts = []string{"2006-01-02", time.RFC3339}

// amountPattern enforces plain decimal notation with at most two fractional
// digits. A bare fraction like ".5" is accepted; exponents are not.
var amountPattern = regexp.MustCompile(`^(\d+(\.\d{1,2})?|\.\d{1,2})$`)

// Transaction represents one income or expense record. A transaction is
// immutable once created; edits replace the record wholesale.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// RawTransaction carries unvalidated form input. Amount and Date stay as
// strings until validation coerces them.
type RawTransaction struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// ValidateAndNormalize turns raw form input into a canonical Transaction.
// It assigns a fresh id, coerces the amount to a decimal and normalizes the
// date to an absolute UTC timestamp. Validation happens before any state
// mutation; a failure returns a *ValidationError and nothing is created.
func ValidateAndNormalize(raw RawTransaction) (*Transaction, error) {
	amount, err := validateAmount(raw.Amount)
	if err != nil {
		return nil, err
	}

	date, err := validateDate(raw.Date)
	if err != nil {
		return nil, err
	}

	if raw.Description == "" {
		return nil, NewValidationError(FieldDescription, ReasonMissingDescription, "description is required")
	}

	if !IsValidTransactionType(raw.Type) {
		return nil, NewValidationError(FieldType, ReasonInvalidType, "type must be 'income' or 'expense'")
	}

	if !IsValidCategoryForType(raw.Type, raw.Category) {
		return nil, NewValidationError(FieldCategory, ReasonInvalidCategory, "category does not belong to the "+raw.Type+" category set")
	}

	return &Transaction{
		ID:          uuid.New(),
		Description: raw.Description,
		Amount:      amount,
		Type:        raw.Type,
		Category:    raw.Category,
		Date:        date,
	}, nil
}

func validateAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, NewValidationError(FieldAmount, ReasonInvalidAmount, "amount is required")
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(FieldAmount, ReasonInvalidAmount, "amount must be a number")
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, NewValidationError(FieldAmount, ReasonInvalidAmount, "amount must be positive")
	}
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, NewValidationError(FieldAmount, ReasonInvalidAmount, "amount must be a plain number with at most two decimal places")
	}
	return amount, nil
}

func validateDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, NewValidationError(FieldDate, ReasonInvalidDate, "date is required")
	}

	var parsed time.Time
	var err error
	for _, layout := range acceptedDateLayouts {
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, NewValidationError(FieldDate, ReasonInvalidDate, "date must be YYYY-MM-DD or RFC 3339")
	}

	if parsed.After(time.Now()) {
		return time.Time{}, NewValidationError(FieldDate, ReasonInvalidDate, "date cannot be in the future")
	}

	return parsed.UTC(), nil
}

// Equal reports whether two transactions carry the same id and field values.
// Amounts compare by numeric value, dates by instant.
func (t Transaction) Equal(other Transaction) bool {
	return t.ID == other.ID &&
		t.Description == other.Description &&
		t.Amount.Equal(other.Amount) &&
		t.Type == other.Type &&
		t.Category == other.Category &&
		t.Date.Equal(other.Date)
}

// IsIncome returns true for income transactions
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
