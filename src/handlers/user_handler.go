package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fincoach-server/src/db"
	sql "fincoach-server/src/db/sql"
	"fincoach-server/src/models"
)

// getUserCached reads the user record through the ristretto cache. The
// cached copy is a read cache only; every mutating call invalidates it
// so the database row stays the single source of truth.
func getUserCached(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.User, error) {
	cacheKey := db.UserCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if user, ok := cached.(*models.User); ok {
			return user, nil
		}
	}

	user, err := sql.GetUserByID(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	db.SetUserCache(cacheKey, user)
	return user, nil
}

func GetProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		user, err := getUserCached(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user - user_id: %d: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func UpdateSalary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Salary decimal.Decimal `json:"salary"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update salary request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Salary.IsNegative() {
			log.Printf("ERROR: Negative salary update attempt - user_id: %d", userID)
			http.Error(w, "salary must not be negative", http.StatusBadRequest)
			return
		}

		updated, err := sql.UpdateUserSalary(r.Context(), pool, userID, req.Salary)
		if err != nil {
			log.Printf("ERROR: Failed to update salary - user_id: %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		db.DelUserCache(db.UserCacheKey(userID))

		log.Printf("INFO: Salary updated - User: %d", userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"salary":  updated,
			"message": "salary updated successfully",
		})
	}
}

func GetAllUsers(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := sql.GetAllUsers(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get all users: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func AdminDeleteUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr := chi.URLParam(r, "user_id")
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Failed to parse user_id from URL - user_id: %s: %v", userIDStr, err)
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		if err := sql.DeleteUser(r.Context(), pool, userID); err != nil {
			if errors.Is(err, sql.ErrUserNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete user %d: %v", userID, err)
			http.Error(w, "failed to delete user", http.StatusInternalServerError)
			return
		}

		db.DelUserCache(db.UserCacheKey(userID))
		db.DelTransactionCache(db.TransactionCacheKey(userID))

		log.Printf("INFO: User %d deleted by admin", userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "user deleted",
		})
	}
}
