package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// ExpenseRequest is the request body for create and update calls. Clients
// may supply their own id on create; the service assigns one otherwise.
type ExpenseRequest struct {
	ID          string          `json:"id,omitempty" validate:"omitempty,uuid"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Type        string          `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Category    string          `json:"category" validate:"required"`
	Date        time.Time       `json:"date"`
}

// ExpenseResponse is an expense record as returned by the service.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MessageResponse carries the fixed confirmation message of the delete call.
type MessageResponse struct {
	Message string `json:"message"`
}

// FromRecord converts a stored record into the wire representation.
func FromRecord(record *models.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:          record.ID.String(),
		Description: record.Description,
		Amount:      record.Amount,
		Type:        record.Type,
		Category:    record.Category,
		Date:        record.Date,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// FromRecords converts a record list, preserving order.
func FromRecords(records []models.ExpenseRecord) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(records))
	for i := range records {
		responses = append(responses, FromRecord(&records[i]))
	}
	return responses
}
