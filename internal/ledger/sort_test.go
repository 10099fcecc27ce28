package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/models"
)

func TestSort(t *testing.T) {
	a := testTransaction("Oldest cheap", "5", models.TransactionTypeExpense, "Food", day(2024, 1, 1))
	b := testTransaction("Middle pricey", "50", models.TransactionTypeExpense, "Housing", day(2024, 2, 1))
	c := testTransaction("Newest mid", "20", models.TransactionTypeIncome, "Salary", day(2024, 3, 1))
	input := []models.Transaction{b, c, a}

	tests := []struct {
		name   string
		method string
		want   []string
	}{
		{"newest first", models.SortNewest, []string{"Newest mid", "Middle pricey", "Oldest cheap"}},
		{"oldest first", models.SortOldest, []string{"Oldest cheap", "Middle pricey", "Newest mid"}},
		{"amount high", models.SortAmountHigh, []string{"Middle pricey", "Newest mid", "Oldest cheap"}},
		{"amount low", models.SortAmountLow, []string{"Oldest cheap", "Newest mid", "Middle pricey"}},
		{"unknown method keeps input order", "alphabetical", []string{"Middle pricey", "Newest mid", "Oldest cheap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(input, tt.method)

			require.Len(t, got, len(tt.want))
			for i, description := range tt.want {
				assert.Equal(t, description, got[i].Description)
			}
		})
	}
}

func TestSort_StableOnTies(t *testing.T) {
	date := day(2024, 3, 15)
	first := testTransaction("First entered", "10", models.TransactionTypeExpense, "Food", date)
	second := testTransaction("Second entered", "10", models.TransactionTypeExpense, "Transport", date)
	third := testTransaction("Third entered", "10", models.TransactionTypeIncome, "Salary", date)
	input := []models.Transaction{first, second, third}

	for _, method := range []string{models.SortNewest, models.SortOldest, models.SortAmountHigh, models.SortAmountLow} {
		got := Sort(input, method)

		require.Len(t, got, 3)
		assert.Equal(t, "First entered", got[0].Description, "method %s", method)
		assert.Equal(t, "Second entered", got[1].Description, "method %s", method)
		assert.Equal(t, "Third entered", got[2].Description, "method %s", method)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	input := []models.Transaction{
		testTransaction("Late", "1", models.TransactionTypeExpense, "Food", day(2024, 3, 1)),
		testTransaction("Early", "2", models.TransactionTypeExpense, "Food", day(2024, 1, 1)),
	}
	original := make([]models.Transaction, len(input))
	copy(original, input)

	Sort(input, models.SortOldest)

	assert.Equal(t, original, input)
}

func TestSort_Idempotent(t *testing.T) {
	input := []models.Transaction{
		testTransaction("B", "30", models.TransactionTypeExpense, "Food", day(2024, 2, 1)),
		testTransaction("A", "10", models.TransactionTypeExpense, "Food", day(2024, 1, 1)),
		testTransaction("C", "20", models.TransactionTypeIncome, "Salary", day(2024, 3, 1)),
	}

	once := Sort(input, models.SortAmountHigh)
	twice := Sort(once, models.SortAmountHigh)

	assert.Equal(t, once, twice)
}
