package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincoach-server/src/models"
)

func TestCoachContextNoTransactions(t *testing.T) {
	s := summarize(t, "3000")
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 15))

	got := CoachContext("EUR", s, p)
	assert.Equal(t, "User has no transactions yet. Monthly salary: €3000.00.", got)
}

func TestCoachContextUnderPace(t *testing.T) {
	s := summarize(t, "3000", expense(t, "900", models.CategoryDining))
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 15))

	got := CoachContext("EUR", s, p)

	assert.Contains(t, got, "Monthly salary: €3000.00")
	assert.Contains(t, got, "Additional income from transactions: €0.00 (0 income transactions)")
	assert.Contains(t, got, "Total income: €3000.00")
	assert.Contains(t, got, "Total expenses: €900.00 (1 expense transactions)")
	assert.Contains(t, got, "Available funds: €2100.00")
	assert.Contains(t, got, "Spending pace (day 15 of 30):")
	assert.Contains(t, got, "Expected spend so far: €1500.00")
	assert.Contains(t, got, "Actual spend so far: €900.00")
	assert.Contains(t, got, "under the expected pace by €600.00 (20.0% of income)")
	assert.Contains(t, got, "Projected month-end spend at current rate: €1800.00")
	assert.Contains(t, got, "User is managing budget well.")
	assert.Contains(t, got, "- dining: €900.00 (100.0%)")
	assert.Contains(t, got, "Largest spending category: dining.")
}

func TestCoachContextOverspendingDirective(t *testing.T) {
	s := summarize(t, "3000",
		expense(t, "2500", models.CategoryShopping),
		expense(t, "300", models.CategoryBills),
	)
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 15))
	require.Equal(t, StatusDanger, p.Status)

	got := CoachContext("EUR", s, p)
	assert.Contains(t, got, "over the expected pace by")
	assert.Contains(t, got, "User needs to reduce spending.")
}

func TestCoachContextWarningDirective(t *testing.T) {
	s := summarize(t, "3000", expense(t, "1700", models.CategoryGroceries), expense(t, "100", models.CategoryOther))
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 15))
	require.Equal(t, StatusWarning, p.Status)

	got := CoachContext("EUR", s, p)
	assert.Contains(t, got, "User is slightly over pace and should watch spending.")
}

func TestCoachContextBreakdownSortedDescending(t *testing.T) {
	s := summarize(t, "5000",
		expense(t, "600", models.CategoryShopping),
		expense(t, "800", models.CategoryBills),
		expense(t, "100", models.CategoryDining),
	)
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 20))

	got := CoachContext("EUR", s, p)

	bills := strings.Index(got, "- bills:")
	shopping := strings.Index(got, "- shopping:")
	dining := strings.Index(got, "- dining:")
	require.True(t, bills >= 0 && shopping >= 0 && dining >= 0)
	assert.Less(t, bills, shopping)
	assert.Less(t, shopping, dining)

	// The breakdown highlight reports the true largest category,
	// without the tip-only bills exception.
	assert.Contains(t, got, "Largest spending category: bills.")
}

func TestCoachContextZeroAmountExpensesOnly(t *testing.T) {
	s := summarize(t, "1000", expense(t, "0", models.CategoryDining))
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 15))

	var got string
	require.NotPanics(t, func() {
		got = CoachContext("EUR", s, p)
	})

	assert.Contains(t, got, "Total expenses: €0.00 (1 expense transactions)")
	assert.Contains(t, got, "- dining: €0.00\n")
	assert.NotContains(t, got, "%)")
	assert.Contains(t, got, "Largest spending category: dining.")
}

func TestCoachContextCurrencySymbols(t *testing.T) {
	s := summarize(t, "1000", expense(t, "100", models.CategoryOther))
	p := ComputePace(s.TotalIncome, s.TotalExpenses, day(2025, time.June, 10))

	assert.Contains(t, CoachContext("USD", s, p), "$1000.00")
	assert.Contains(t, CoachContext("GBP", s, p), "£1000.00")
	assert.Contains(t, CoachContext("SEK", s, p), "SEK 1000.00")
}
