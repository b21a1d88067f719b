package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincoach-server/src/db"
	"fincoach-server/src/models"
)

// TestTransactionStoreIntegration exercises the transaction store
// against a live Postgres instance.
func TestTransactionStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	_ = godotenv.Load("../../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	owner := createTestUser(t, ctx, pool)
	stranger := createTestUser(t, ctx, pool)
	defer func() {
		_ = DeleteUser(ctx, pool, owner.ID)
		_ = DeleteUser(ctx, pool, stranger.ID)
	}()

	amount, err := decimal.NewFromString("10.55")
	require.NoError(t, err)
	date := time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC)

	created, err := CreateTransaction(ctx, pool, &models.Transaction{
		UserID:      owner.ID,
		Amount:      amount,
		Category:    models.CategoryDining,
		Description: "lunch",
		Date:        date,
		Type:        models.TypeExpense,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// Round-trip: the listed row preserves every field exactly.
	listed, err := ListTransactions(ctx, pool, owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	got := listed[0]
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Amount.Equal(amount), "amount = %s", got.Amount)
	assert.Equal(t, models.CategoryDining, got.Category)
	assert.Equal(t, models.TypeExpense, got.Type)
	assert.Equal(t, "lunch", got.Description)
	assert.True(t, got.Date.Equal(date), "date = %s", got.Date)

	// A foreign delete is a not-found and leaves the row in place.
	err = DeleteTransaction(ctx, pool, stranger.ID, created.ID)
	require.ErrorIs(t, err, ErrTransactionNotFound)

	listed, err = ListTransactions(ctx, pool, owner.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// The owner's delete succeeds, and deleting again is not-found.
	err = DeleteTransaction(ctx, pool, owner.ID, created.ID)
	require.NoError(t, err)

	err = DeleteTransaction(ctx, pool, owner.ID, created.ID)
	require.ErrorIs(t, err, ErrTransactionNotFound)

	listed, err = ListTransactions(ctx, pool, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) *models.User {
	t.Helper()
	email := fmt.Sprintf("itest_%d@example.com", time.Now().UnixNano())
	user, err := CreateUser(ctx, pool, email, "Integration Test", "not-a-real-hash", decimal.Zero)
	require.NoError(t, err)
	return user
}
