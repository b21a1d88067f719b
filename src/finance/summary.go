package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fincoach-server/src/models"
)

// Summary is the derived financial picture for one user. It is computed
// fresh from the transaction list on every request and never persisted.
type Summary struct {
	Salary             decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Available          decimal.Decimal
	ExpensesByCategory map[models.Category]decimal.Decimal
	IncomeCount        int
	ExpenseCount       int
}

// Summarize totals a user's transactions on top of their monthly salary.
// Salary counts toward income in addition to any income transactions.
// Categories with no expenses are absent from ExpensesByCategory.
// A transaction with a type or category outside the declared enums is a
// data-integrity error and is never silently coerced.
func Summarize(salary decimal.Decimal, transactions []models.Transaction) (Summary, error) {
	s := Summary{
		Salary:             salary,
		TotalIncome:        salary,
		ExpensesByCategory: make(map[models.Category]decimal.Decimal),
	}

	for _, t := range transactions {
		if !t.Category.Valid() {
			return Summary{}, fmt.Errorf("transaction %d has unknown category %q", t.ID, t.Category)
		}
		switch t.Type {
		case models.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			s.IncomeCount++
		case models.TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			s.ExpensesByCategory[t.Category] = s.ExpensesByCategory[t.Category].Add(t.Amount)
			s.ExpenseCount++
		default:
			return Summary{}, fmt.Errorf("transaction %d has unknown type %q", t.ID, t.Type)
		}
	}

	s.Available = s.TotalIncome.Sub(s.TotalExpenses)
	return s, nil
}
