package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser    Role = "user"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RolePremium || r == RoleAdmin
}

type User struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash []byte          `json:"-"`
	Salary       decimal.Decimal `json:"salary"`
	Currency     string          `json:"currency"`
	Role         Role            `json:"role"`
	CreatedAt    time.Time       `json:"created_at"`
}
