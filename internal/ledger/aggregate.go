package ledger

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Summary holds the headline figures computed over the full canonical
// ledger, never the filtered view.
type Summary struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// MonthlyPoint is one month of the trend series: income and expense sums
// grouped by the transaction's local calendar month.
type MonthlyPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// RunningBalanceEntry is the cumulative balance after one transaction when
// the ledger is walked in ascending date order.
type RunningBalanceEntry struct {
	Transaction models.Transaction `json:"transaction"`
	Balance     decimal.Decimal    `json:"balance"`
}

// Summarize computes balance, total income and total expense. Income adds,
// expense subtracts, so Balance always equals TotalIncome minus TotalExpense.
func Summarize(transactions []models.Transaction) Summary {
	summary := Summary{
		Balance:      decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, t := range transactions {
		if t.IsIncome() {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			summary.Balance = summary.Balance.Add(t.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
			summary.Balance = summary.Balance.Sub(t.Amount)
		}
	}

	return summary
}

// CategoryBreakdown sums expense transactions by category. Income is
// excluded; map iteration order is unspecified.
func CategoryBreakdown(transactions []models.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		breakdown[t.Category] = breakdown[t.Category].Add(t.Amount)
	}

	return breakdown
}

// MonthlyTrend groups income and expense sums by short month label ("Jan").
// Points appear in first-seen order of the month labels, not calendar order;
// callers needing calendar order sort the result themselves.
func MonthlyTrend(transactions []models.Transaction) []MonthlyPoint {
	var points []MonthlyPoint
	index := make(map[string]int)

	for _, t := range transactions {
		label := t.Date.Format("Jan")

		i, seen := index[label]
		if !seen {
			i = len(points)
			index[label] = i
			points = append(points, MonthlyPoint{
				Month:   label,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}

		if t.IsIncome() {
			points[i].Income = points[i].Income.Add(t.Amount)
		} else {
			points[i].Expense = points[i].Expense.Add(t.Amount)
		}
	}

	return points
}

// RunningBalance sorts the ledger ascending by date and produces the
// cumulative balance after each transaction. The series is recomputed on
// every call; the input is not mutated.
func RunningBalance(transactions []models.Transaction) []RunningBalanceEntry {
	ordered := Sort(transactions, models.SortOldest)

	entries := make([]RunningBalanceEntry, 0, len(ordered))
	balance := decimal.Zero

	for _, t := range ordered {
		if t.IsIncome() {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
		entries = append(entries, RunningBalanceEntry{Transaction: t, Balance: balance})
	}

	return entries
}
