package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string           `json:"email"`
	Password string           `json:"password"`
	Name     string           `json:"name"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
}

type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
