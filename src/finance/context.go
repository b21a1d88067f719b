package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CoachContext renders the financial snapshot handed to the text
// generation service ahead of the user's message. It is plain text, not
// user-authored, and recomputed on every chat request.
func CoachContext(currency string, s Summary, p Pace) string {
	sym := currencySymbol(currency)

	if s.IncomeCount == 0 && s.ExpenseCount == 0 {
		return fmt.Sprintf("User has no transactions yet. Monthly salary: %s%s.", sym, s.Salary.StringFixed(2))
	}

	var b strings.Builder

	extraIncome := s.TotalIncome.Sub(s.Salary)
	b.WriteString("User's financial snapshot:\n")
	fmt.Fprintf(&b, "- Monthly salary: %s%s\n", sym, s.Salary.StringFixed(2))
	fmt.Fprintf(&b, "- Additional income from transactions: %s%s (%d income transactions)\n", sym, extraIncome.StringFixed(2), s.IncomeCount)
	fmt.Fprintf(&b, "- Total income: %s%s\n", sym, s.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "- Total expenses: %s%s (%d expense transactions)\n", sym, s.TotalExpenses.StringFixed(2), s.ExpenseCount)
	fmt.Fprintf(&b, "- Available funds: %s%s\n", sym, s.Available.StringFixed(2))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Spending pace (day %d of %d):\n", p.DayOfMonth, p.DaysInMonth)
	fmt.Fprintf(&b, "- Expected spend so far: %s%s\n", sym, p.ShouldHaveSpent.StringFixed(2))
	fmt.Fprintf(&b, "- Actual spend so far: %s%s\n", sym, s.TotalExpenses.StringFixed(2))
	b.WriteString(paceLine(sym, s, p))
	fmt.Fprintf(&b, "- Projected month-end spend at current rate: %s%s\n", sym, p.ProjectedMonthEnd.StringFixed(2))
	b.WriteString(directive(p.Status))

	if len(s.ExpensesByCategory) > 0 {
		b.WriteString("\nExpense breakdown:\n")
		ranked := rankCategories(s.ExpensesByCategory)
		for _, row := range ranked {
			// Zero-amount expenses leave the total at zero; no
			// percentage exists then.
			if s.TotalExpenses.IsPositive() {
				pct := row.Amount.Div(s.TotalExpenses).Mul(decimal.NewFromInt(100))
				fmt.Fprintf(&b, "- %s: %s%s (%s%%)\n", row.Category, sym, row.Amount.StringFixed(2), pct.StringFixed(1))
			} else {
				fmt.Fprintf(&b, "- %s: %s%s\n", row.Category, sym, row.Amount.StringFixed(2))
			}
		}
		fmt.Fprintf(&b, "Largest spending category: %s.\n", ranked[0].Category)
	}

	return b.String()
}

func paceLine(sym string, s Summary, p Pace) string {
	word := "under"
	if p.IsOverBudget {
		word = "over"
	}
	amount := p.Difference.Abs()
	if s.TotalIncome.IsPositive() {
		pct := amount.Div(s.TotalIncome).Mul(decimal.NewFromInt(100))
		return fmt.Sprintf("- User is %s the expected pace by %s%s (%s%% of income)\n",
			word, sym, amount.StringFixed(2), pct.StringFixed(1))
	}
	return fmt.Sprintf("- User is %s the expected pace by %s%s\n", word, sym, amount.StringFixed(2))
}

func directive(status Status) string {
	switch status {
	case StatusDanger:
		return "- User needs to reduce spending.\n"
	case StatusWarning:
		return "- User is slightly over pace and should watch spending.\n"
	default:
		return "- User is managing budget well.\n"
	}
}

func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "EUR", "":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return currency + " "
	}
}
