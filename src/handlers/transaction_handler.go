package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fincoach-server/src/db"
	sql "fincoach-server/src/db/sql"
	"fincoach-server/src/models"
)

// listTransactionsCached reads the user's transaction list through the
// ristretto cache; create and delete invalidate the entry.
func listTransactionsCached(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	cacheKey := db.TransactionCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if transactions, ok := cached.([]models.Transaction); ok {
			return transactions, nil
		}
	}

	transactions, err := sql.ListTransactions(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	db.SetTransactionCache(cacheKey, transactions)
	return transactions, nil
}

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		transactions, err := listTransactionsCached(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "Failed to retrieve transactions", http.StatusInternalServerError)
			return
		}

		if transactions == nil {
			transactions = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Amount      decimal.Decimal `json:"amount"`
			Category    string          `json:"category"`
			Description string          `json:"description"`
			Date        *time.Time      `json:"date"`
			Type        string          `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Amount.IsNegative() {
			log.Printf("ERROR: Negative amount in create transaction - user_id: %d", userID)
			http.Error(w, "amount must not be negative", http.StatusBadRequest)
			return
		}

		category, err := models.ParseCategory(req.Category)
		if err != nil {
			log.Printf("ERROR: Invalid category in create transaction - user_id: %d: %v", userID, err)
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}

		// Omitted type defaults to expense, matching the client form.
		txnType := models.TypeExpense
		if req.Type != "" {
			txnType, err = models.ParseTransactionType(req.Type)
			if err != nil {
				log.Printf("ERROR: Invalid type in create transaction - user_id: %d: %v", userID, err)
				http.Error(w, "invalid transaction type", http.StatusBadRequest)
				return
			}
		}

		date := time.Now()
		if req.Date != nil && !req.Date.IsZero() {
			date = *req.Date
		}

		txn := &models.Transaction{
			UserID:      userID,
			Amount:      req.Amount,
			Category:    category,
			Description: strings.TrimSpace(req.Description),
			Date:        date,
			Type:        txnType,
		}

		created, err := sql.CreateTransaction(r.Context(), pool, txn)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}

		db.DelTransactionCache(db.TransactionCacheKey(userID))

		log.Printf("INFO: Created transaction id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactionIDStr := chi.URLParam(r, "transaction_id")

		transactionID, err := strconv.ParseInt(transactionIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", transactionIDStr)
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}

		if err := sql.DeleteTransaction(r.Context(), pool, userID, transactionID); err != nil {
			if errors.Is(err, sql.ErrTransactionNotFound) {
				log.Printf("ERROR: Transaction %d not found for user %d", transactionID, userID)
				http.Error(w, "transaction not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete transaction %d for user %d: %v", transactionID, userID, err)
			http.Error(w, "failed to delete transaction", http.StatusInternalServerError)
			return
		}

		db.DelTransactionCache(db.TransactionCacheKey(userID))

		log.Printf("INFO: Deleted transaction %d for user %d", transactionID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "transaction deleted",
		})
	}
}
