package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

// ExpenseHandler handles the expense CRUD endpoints
type ExpenseHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseRepo repositories.ExpenseRepositoryInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseRepo: expenseRepo,
	}
}

// CreateExpense stores a new expense record.
//
// Method: POST /api/expenses
// Success: 201 with the created record, including the assigned id.
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral)
	}
	if err := c.Validate(&req); err != nil {
		return SendErrorMessage(c, errors.ValidationGeneral, err.Error())
	}

	record, err := recordFromRequest(&req)
	if err != nil {
		return SendErrorMessage(c, errors.ValidationGeneral, err.Error())
	}

	if err := h.expenseRepo.Create(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.FromRecord(record))
}

// ListExpenses returns all records ordered by date descending.
//
// Method: GET /api/expenses
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	records, err := h.expenseRepo.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromRecords(records))
}

// UpdateExpense replaces the fields of an existing record.
//
// Method: PUT /api/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral)
	}
	if err := c.Validate(&req); err != nil {
		return SendErrorMessage(c, errors.ValidationGeneral, err.Error())
	}

	record, err := recordFromRequest(&req)
	if err != nil {
		return SendErrorMessage(c, errors.ValidationGeneral, err.Error())
	}
	record.ID = id

	if err := h.expenseRepo.Update(record); err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	updated, err := h.expenseRepo.GetByID(id)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromRecord(updated))
}

// DeleteExpense removes a record by id. An unknown id still gets the fixed
// confirmation message, keeping deletes idempotent for the client.
//
// Method: DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseRepo.Delete(id); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

func recordFromRequest(req *dto.ExpenseRequest) (*models.ExpenseRecord, error) {
	record := &models.ExpenseRecord{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        req.Date,
	}

	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		record.ID = id
	}
	if record.Type == "" {
		record.Type = models.TransactionTypeExpense
	}
	if record.Date.IsZero() {
		record.Date = time.Now().UTC()
	}

	return record, nil
}
