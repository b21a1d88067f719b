package finance

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"fincoach-server/src/models"
)

// Advice for discretionary categories. "bills" is deliberately absent:
// it is treated as non-discretionary and skipped when picking the
// largest category to advise on.
var categoryAdvice = map[models.Category]string{
	models.CategoryDining:        "Try meal prepping on weekends to cut down on dining out.",
	models.CategoryEntertainment: "Look for free local activities before paying for entertainment.",
	models.CategoryTransport:     "Consider walking, cycling, or carpooling for shorter trips.",
	models.CategoryShopping:      "Use the 24-hour rule: wait a day before any non-essential purchase.",
	models.CategoryGroceries:     "Buy staples in bulk and plan meals around weekly offers.",
}

const defaultCategoryAdvice = "Aim to cut this category by 10-20% next month."

var (
	ten    = decimal.NewFromInt(10)
	twenty = decimal.NewFromInt(20)
)

// BudgetTip returns a short locally generated tip. Rules are evaluated
// in priority order and the first match wins.
func BudgetTip(s Summary, transactionCount int) string {
	if transactionCount == 0 {
		return "Start tracking your expenses to see where your money goes. Add your first transaction to get personalized advice!"
	}

	if s.Available.IsNegative() {
		return "You're spending more than you earn this month. Review your biggest expenses and cut back where you can."
	}

	if s.TotalExpenses.IsZero() {
		return "No expenses recorded yet. Log your spending to see where your money goes."
	}

	if len(s.ExpensesByCategory) >= 2 {
		category, amount := topSpendingCategory(s.ExpensesByCategory)
		pct := amount.Div(s.TotalExpenses).Mul(decimal.NewFromInt(100))
		advice, ok := categoryAdvice[category]
		if !ok {
			advice = defaultCategoryAdvice
		}
		return fmt.Sprintf("Your biggest spending area is %s at %s%% of your expenses. %s",
			category, pct.StringFixed(0), advice)
	}

	if s.TotalIncome.IsPositive() {
		rate := s.Available.Div(s.TotalIncome).Mul(decimal.NewFromInt(100))
		switch {
		case rate.LessThan(ten):
			return fmt.Sprintf("You're saving %s%% of your income. Try to set aside at least 10%% each month.", rate.StringFixed(0))
		case rate.LessThan(twenty):
			return fmt.Sprintf("You're saving %s%% of your income. Push toward 20%% to build a stronger buffer.", rate.StringFixed(0))
		default:
			return fmt.Sprintf("Excellent! You're saving %s%% of your income. Consider investing part of it.", rate.StringFixed(0))
		}
	}

	return "Keep recording your transactions so we can spot patterns in your spending."
}

// topSpendingCategory returns the largest expense category by summed
// amount, except that "bills" yields to the second-largest when another
// category exists. Only bills is special-cased; the rule is not
// generalized to other fixed-obligation categories.
func topSpendingCategory(byCategory map[models.Category]decimal.Decimal) (models.Category, decimal.Decimal) {
	ranked := rankCategories(byCategory)
	if ranked[0].Category == models.CategoryBills && len(ranked) > 1 {
		return ranked[1].Category, ranked[1].Amount
	}
	return ranked[0].Category, ranked[0].Amount
}

// CategoryAmount is one row of a descending expense breakdown.
type CategoryAmount struct {
	Category models.Category
	Amount   decimal.Decimal
}

func rankCategories(byCategory map[models.Category]decimal.Decimal) []CategoryAmount {
	ranked := make([]CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		ranked = append(ranked, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}
