package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintrack/internal/models"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense record
func (r *expenseRepository) Create(record *models.ExpenseRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense record by ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.ExpenseRecord, error) {
	record := &models.ExpenseRecord{}
	if err := r.db.First(record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return record, nil
}

// List retrieves all expense records ordered by date descending. The
// ordering is part of the service contract: clients treat it as
// authoritative.
func (r *expenseRepository) List() ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	if err := r.db.Order("date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return records, nil
}

// Update replaces the mutable fields of an expense record
func (r *expenseRepository) Update(record *models.ExpenseRecord) error {
	result := r.db.Model(&models.ExpenseRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"description": record.Description,
			"amount":      record.Amount,
			"type":        record.Type,
			"category":    record.Category,
			"date":        record.Date,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense record by ID. Deleting an absent id is not an
// error; the remote contract treats it as an idempotent no-op.
func (r *expenseRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.ExpenseRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// CreateBatch creates multiple expense records in a single database transaction
func (r *expenseRepository) CreateBatch(records []models.ExpenseRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to create batch expenses: %w", err)
		}
		return nil
	})
}
