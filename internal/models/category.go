package models

// Category sets per transaction type. Income and expense categories are
// disjoint lists; a transaction's category must come from the set of its type.
var (
	IncomeCategories  = []string{"Salary", "Freelance", "Investment", "Gift", "Other"}
	ExpenseCategories = []string{"Food", "Transport", "Housing", "Entertainment", "Utilities", "Other"}
)

// CategoriesForType returns the category set associated with a transaction
// type, or nil for an unknown type.
func CategoriesForType(transactionType string) []string {
	switch transactionType {
	case TransactionTypeIncome:
		return IncomeCategories
	case TransactionTypeExpense:
		return ExpenseCategories
	default:
		return nil
	}
}

// DefaultCategory returns the first entry of the category set for a type.
// Interactive collaborators reset the category to this value whenever the
// type changes during editing.
func DefaultCategory(transactionType string) string {
	categories := CategoriesForType(transactionType)
	if len(categories) == 0 {
		return ""
	}
	return categories[0]
}

// IsValidCategoryForType checks that a category belongs to the set of the
// given transaction type.
func IsValidCategoryForType(transactionType, category string) bool {
	for _, valid := range CategoriesForType(transactionType) {
		if category == valid {
			return true
		}
	}
	return false
}

// AllCategories returns the combined income and expense category lists,
// income first. Used by filter collaborators that offer a single picker.
func AllCategories() []string {
	combined := make([]string, 0, len(IncomeCategories)+len(ExpenseCategories))
	combined = append(combined, IncomeCategories...)
	combined = append(combined, ExpenseCategories...)
	return combined
}
