package repositories

import (
	"github.com/google/uuid"

	"fintrack/internal/models"
)

// ExpenseRepositoryInterface defines the storage contract for expense records
type ExpenseRepositoryInterface interface {
	Create(record *models.ExpenseRecord) error
	GetByID(id uuid.UUID) (*models.ExpenseRecord, error)
	List() ([]models.ExpenseRecord, error)
	Update(record *models.ExpenseRecord) error
	Delete(id uuid.UUID) error
	CreateBatch(records []models.ExpenseRecord) error
}
