package ledger

import (
	"sort"

	"fintrack/internal/models"
)

// Sort orders a display view by the given method. The sort is stable, so
// ties preserve the relative order of the input, and it operates on a copy.
// An unknown method returns the copy in its original order.
func Sort(transactions []models.Transaction, method string) []models.Transaction {
	result := make([]models.Transaction, len(transactions))
	copy(result, transactions)

	switch method {
	case models.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Date.After(result[j].Date)
		})
	case models.SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Date.Before(result[j].Date)
		})
	case models.SortAmountHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Amount.GreaterThan(result[j].Amount)
		})
	case models.SortAmountLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Amount.LessThan(result[j].Amount)
		})
	}

	return result
}
