package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"
)

// DevHandler handles development-only endpoints. These are never routed in
// production environments.
type DevHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	generator   services.SampleGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(expenseRepo repositories.ExpenseRepositoryInterface) *DevHandler {
	return &DevHandler{
		expenseRepo: expenseRepo,
		generator:   services.NewSampleGenerator(time.Now().UnixNano()),
	}
}

// SeedSampleData generates realistic sample expense data.
//
// Method: POST /api/dev/seed?count=25
// Environment: development only
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	count := 0
	if countStr := c.QueryParam("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 1 {
			return SendErrorMessage(c, errors.ValidationGeneral, "count must be a positive integer")
		}
		count = parsed
	}

	records := h.generator.GenerateRecords(count)
	if err := h.expenseRepo.CreateBatch(records); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"seeded":   len(records),
		"expenses": dto.FromRecords(records),
	})
}
