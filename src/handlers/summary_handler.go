package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fincoach-server/src/finance"
	"fincoach-server/src/models"
)

// financialContext is the derived-numbers block shared by the dashboard
// summary response and the chat response. The arithmetic behind it
// lives only in the finance package; handlers never recompute it.
type financialContext struct {
	Salary             decimal.Decimal                     `json:"salary"`
	TotalIncome        decimal.Decimal                     `json:"total_income"`
	TotalExpenses      decimal.Decimal                     `json:"total_expenses"`
	Available          decimal.Decimal                     `json:"available"`
	ExpensesByCategory map[models.Category]decimal.Decimal `json:"expenses_by_category"`
	SpendingPace       finance.Pace                        `json:"spending_pace"`
	TransactionCount   int                                 `json:"transaction_count"`
}

func newFinancialContext(s finance.Summary, p finance.Pace, transactionCount int) financialContext {
	byCategory := make(map[models.Category]decimal.Decimal, len(s.ExpensesByCategory))
	for category, amount := range s.ExpensesByCategory {
		byCategory[category] = amount.Round(2)
	}
	return financialContext{
		Salary:             s.Salary.Round(2),
		TotalIncome:        s.TotalIncome.Round(2),
		TotalExpenses:      s.TotalExpenses.Round(2),
		Available:          s.Available.Round(2),
		ExpensesByCategory: byCategory,
		SpendingPace:       p.Rounded(),
		TransactionCount:   transactionCount,
	}
}

func GetSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		user, err := getUserCached(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user for summary - user_id: %d: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		transactions, err := listTransactionsCached(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for summary - user_id: %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		summary, err := finance.Summarize(user.Salary, transactions)
		if err != nil {
			// Stored rows outside the enums mean corrupted data,
			// not a bad request.
			log.Printf("ERROR: Data integrity error in summary - user_id: %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		pace := finance.ComputePace(summary.TotalIncome, summary.TotalExpenses, time.Now())
		tip := finance.BudgetTip(summary, len(transactions))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			financialContext
			Currency string `json:"currency"`
			Tip      string `json:"tip"`
		}{
			financialContext: newFinancialContext(summary, pace, len(transactions)),
			Currency:         user.Currency,
			Tip:              tip,
		})
	}
}
