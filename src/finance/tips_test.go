package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincoach-server/src/models"
)

func summarize(t *testing.T, salary string, txns ...models.Transaction) Summary {
	t.Helper()
	s, err := Summarize(dec(t, salary), txns)
	require.NoError(t, err)
	return s
}

func TestBudgetTipNoTransactions(t *testing.T) {
	s := summarize(t, "3000")
	tip := BudgetTip(s, 0)
	assert.Contains(t, tip, "Start tracking your expenses")
}

func TestBudgetTipOverspending(t *testing.T) {
	s := summarize(t, "100", expense(t, "200", models.CategoryShopping))
	tip := BudgetTip(s, 1)
	assert.Contains(t, tip, "spending more than you earn")
}

func TestBudgetTipNoExpensesYet(t *testing.T) {
	s := summarize(t, "1000", income(t, "50"))
	tip := BudgetTip(s, 1)
	assert.Contains(t, tip, "No expenses recorded yet")
}

func TestBudgetTipSkipsBillsCategory(t *testing.T) {
	// Largest category is bills (non-discretionary), so the tip
	// targets shopping: 600 of 1400 is about 43%.
	s := summarize(t, "2000",
		expense(t, "800", models.CategoryBills),
		expense(t, "600", models.CategoryShopping),
	)

	tip := BudgetTip(s, 2)
	assert.Contains(t, tip, "shopping")
	assert.Contains(t, tip, "43%")
	assert.Contains(t, tip, "24-hour rule")
	assert.NotContains(t, tip, "bills")
}

func TestBudgetTipLargestCategoryAdvice(t *testing.T) {
	tests := []struct {
		name     string
		txns     []models.Transaction
		category string
		advice   string
	}{
		{
			name: "dining",
			txns: []models.Transaction{
				expense(t, "500", models.CategoryDining),
				expense(t, "100", models.CategoryTransport),
			},
			category: "dining",
			advice:   "meal prepping",
		},
		{
			name: "entertainment",
			txns: []models.Transaction{
				expense(t, "300", models.CategoryEntertainment),
				expense(t, "100", models.CategoryGroceries),
			},
			category: "entertainment",
			advice:   "free local activities",
		},
		{
			name: "no specific advice falls back to generic",
			txns: []models.Transaction{
				expense(t, "600", models.CategoryOther),
				expense(t, "100", models.CategoryHealthcare),
			},
			category: "other",
			advice:   "10-20%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarize(t, "5000", tt.txns...)
			tip := BudgetTip(s, len(tt.txns))
			assert.Contains(t, tip, tt.category)
			assert.Contains(t, tip, tt.advice)
		})
	}
}

func TestBudgetTipSavingsRateTiers(t *testing.T) {
	// A single expense category falls through to the savings-rate
	// branch.
	tests := []struct {
		name    string
		expense string
		want    string
	}{
		{"low savings", "950", "at least 10%"},
		{"middling savings", "850", "toward 20%"},
		{"strong savings", "100", "Excellent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarize(t, "1000", expense(t, tt.expense, models.CategoryGroceries))
			tip := BudgetTip(s, 1)
			assert.Contains(t, tip, tt.want)
		})
	}
}

func TestBudgetTipWorkedExample(t *testing.T) {
	// salary 3000 with one 900 dining expense: a single category, so
	// the savings-rate rule fires at 70%.
	s := summarize(t, "3000", expense(t, "900", models.CategoryDining))
	tip := BudgetTip(s, 1)
	assert.Contains(t, tip, "Excellent")
	assert.Contains(t, tip, "70%")
}

func TestTopSpendingCategoryBillsOnly(t *testing.T) {
	// With nothing but bills there is no second-largest to fall back
	// to, so bills itself is reported.
	byCategory := map[models.Category]decimal.Decimal{
		models.CategoryBills: dec(t, "800"),
	}
	category, amount := topSpendingCategory(byCategory)
	assert.Equal(t, models.CategoryBills, category)
	assert.True(t, amount.Equal(dec(t, "800")))
}

func TestRankCategoriesDeterministicOnTies(t *testing.T) {
	byCategory := map[models.Category]decimal.Decimal{
		models.CategoryShopping:  dec(t, "100"),
		models.CategoryDining:    dec(t, "100"),
		models.CategoryGroceries: dec(t, "100"),
	}
	ranked := rankCategories(byCategory)
	require.Len(t, ranked, 3)
	assert.Equal(t, models.CategoryDining, ranked[0].Category)
	assert.Equal(t, models.CategoryGroceries, ranked[1].Category)
	assert.Equal(t, models.CategoryShopping, ranked[2].Category)
}
