package models

import "time"

// FilterAll is the neutral value for the category and type criteria.
const FilterAll = "all"

// Sort methods for the display view
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortAmountHigh = "amount-high"
	SortAmountLow  = "amount-low"
)

// TransactionFilters contains the filtering criteria for a display view.
// Zero values ("", "all", nil bounds) make a predicate a no-op.
type TransactionFilters struct {
	Search    string
	Category  string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

// DefaultFilters returns the neutral criteria: empty search, all categories,
// all types, no date bounds.
func DefaultFilters() TransactionFilters {
	return TransactionFilters{
		Category: FilterAll,
		Type:     FilterAll,
	}
}

// IsValidSortMethod checks if the sort method is one of the known methods
func IsValidSortMethod(method string) bool {
	switch method {
	case SortNewest, SortOldest, SortAmountHigh, SortAmountLow:
		return true
	default:
		return false
	}
}
