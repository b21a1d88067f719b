package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fincoach-server/src/models"
)

var ErrUserNotFound = errors.New("user not found")

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, name, password_hash, salary, currency, role, created_at
		FROM users
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Salary,
		&user.Currency,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

// GetUserByEmail looks up a user by email, case-insensitively. Emails
// are stored lowercased so the comparison is on the lowered input.
func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, name, password_hash, salary, currency, role, created_at
		FROM users
		WHERE email = $1
	`
	err := pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Salary,
		&user.Currency,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func CreateUser(ctx context.Context, pool *pgxpool.Pool, email, name, hashedPassword string, salary decimal.Decimal) (*models.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, salary, currency, role)
		VALUES ($1, $2, $3, $4, 'EUR', 'user')
		RETURNING id, email, name, salary, currency, role, created_at
	`

	var user models.User
	err := pool.QueryRow(
		ctx,
		query,
		strings.ToLower(strings.TrimSpace(email)),
		name,
		hashedPassword,
		salary,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Salary,
		&user.Currency,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// UpdateUserSalary overwrites the salary scalar, last write wins.
func UpdateUserSalary(ctx context.Context, pool *pgxpool.Pool, userID int64, salary decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE users
		SET salary = $1
		WHERE id = $2
		RETURNING salary
	`
	var updated decimal.Decimal
	err := pool.QueryRow(ctx, query, salary, userID).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, ErrUserNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("failed to update salary: %w", err)
	}
	return updated, nil
}

func GetAllUsers(ctx context.Context, pool *pgxpool.Pool) ([]models.User, error) {
	query := `
		SELECT id, email, name, password_hash, salary, currency, role, created_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&user.Salary,
			&user.Currency,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func DeleteUser(ctx context.Context, pool *pgxpool.Pool, userID int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	cmd, err := pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
