package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

const (
	defaultSampleCount  = 25
	maxSampleCount      = 500
	sampleHistoryMonths = 6
)

// SampleGeneratorInterface produces realistic ledger data for development
// environments.
type SampleGeneratorInterface interface {
	GenerateRecords(count int) []models.ExpenseRecord
}

type sampleGenerator struct {
	faker *gofakeit.Faker
}

// descriptionsByCategory provides plausible descriptions per expense category.
var descriptionsByCategory = map[string][]string{
	"Food":          {"Grocery run", "Lunch with %s", "Weekly groceries", "Coffee and pastries"},
	"Transport":     {"Fuel", "Monthly transit pass", "Ride to %s", "Parking"},
	"Housing":       {"Rent", "Home insurance", "Plumbing repair"},
	"Entertainment": {"Streaming subscription", "Concert tickets", "Cinema night"},
	"Utilities":     {"Electricity bill", "Water bill", "Internet bill"},
	"Other":         {"Gift for %s", "Donation", "Miscellaneous"},
}

var incomeDescriptions = map[string][]string{
	"Salary":     {"Monthly salary", "Salary - %s"},
	"Freelance":  {"Freelance project for %s", "Consulting invoice"},
	"Investment": {"Dividend payout", "Interest income"},
	"Gift":       {"Birthday gift", "Gift from %s"},
	"Other":      {"Refund", "Cashback"},
}

// NewSampleGenerator creates a seeded sample data generator
func NewSampleGenerator(seed int64) SampleGeneratorInterface {
	return &sampleGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateRecords produces count expense records spread over the last few
// months, roughly one income per four expenses to keep balances plausible.
func (g *sampleGenerator) GenerateRecords(count int) []models.ExpenseRecord {
	if count <= 0 {
		count = defaultSampleCount
	}
	if count > maxSampleCount {
		count = maxSampleCount
	}

	now := time.Now().UTC()
	start := now.AddDate(0, -sampleHistoryMonths, 0)

	records := make([]models.ExpenseRecord, 0, count)
	for i := 0; i < count; i++ {
		txnType := models.TransactionTypeExpense
		if i%5 == 0 {
			txnType = models.TransactionTypeIncome
		}

		categories := models.CategoriesForType(txnType)
		category := categories[g.faker.Number(0, len(categories)-1)]

		records = append(records, models.ExpenseRecord{
			ID:          uuid.New(),
			Description: g.description(txnType, category),
			Amount:      g.amount(txnType),
			Type:        txnType,
			Category:    category,
			Date:        g.faker.DateRange(start, now).UTC(),
		})
	}

	return records
}

func (g *sampleGenerator) description(txnType, category string) string {
	pool := descriptionsByCategory[category]
	if txnType == models.TransactionTypeIncome {
		pool = incomeDescriptions[category]
	}
	if len(pool) == 0 {
		return g.faker.Sentence(3)
	}

	template := pool[g.faker.Number(0, len(pool)-1)]
	if hasPlaceholder(template) {
		return fmt.Sprintf(template, g.faker.Company())
	}
	return template
}

func (g *sampleGenerator) amount(txnType string) decimal.Decimal {
	var value float64
	if txnType == models.TransactionTypeIncome {
		value = g.faker.Float64Range(500, 5000)
	} else {
		value = g.faker.Float64Range(5, 400)
	}
	return decimal.NewFromFloat(value).Round(2)
}

func hasPlaceholder(template string) bool {
	for i := 0; i+1 < len(template); i++ {
		if template[i] == '%' && template[i+1] == 's' {
			return true
		}
	}
	return false
}
