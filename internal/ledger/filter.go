package ledger

import (
	"strings"

	"fintrack/internal/models"
)

// Filter derives a display subset from a ledger snapshot. It is a pure
// function: the snapshot is never mutated and the result is a fresh slice.
//
// Predicates apply conjunctively, cheapest and most selective first: type,
// search, category, start date, end date. All are conjunctions, so the
// result is independent of that order. A start date after the end date
// yields an empty result rather than an error.
func Filter(snapshot []models.Transaction, filters models.TransactionFilters) []models.Transaction {
	result := make([]models.Transaction, 0, len(snapshot))

	search := strings.ToLower(filters.Search)

	for _, t := range snapshot {
		if !matchesType(t, filters.Type) {
			continue
		}
		if !matchesSearch(t, search) {
			continue
		}
		if !matchesCategory(t, filters.Category) {
			continue
		}
		if filters.StartDate != nil && t.Date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && t.Date.After(*filters.EndDate) {
			continue
		}
		result = append(result, t)
	}

	return result
}

func matchesType(t models.Transaction, filterType string) bool {
	if filterType == "" || filterType == models.FilterAll {
		return true
	}
	return t.Type == filterType
}

func matchesSearch(t models.Transaction, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), search) ||
		strings.Contains(strings.ToLower(t.Category), search)
}

func matchesCategory(t models.Transaction, category string) bool {
	if category == "" || category == models.FilterAll {
		return true
	}
	return t.Category == category
}
