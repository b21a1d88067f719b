package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryGroceries     Category = "groceries"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
	CategoryShopping      Category = "shopping"
	CategoryHealthcare    Category = "healthcare"
	CategoryDining        Category = "dining"
	CategoryOther         Category = "other"
)

var categories = map[Category]bool{
	CategoryGroceries:     true,
	CategoryTransport:     true,
	CategoryEntertainment: true,
	CategoryBills:         true,
	CategoryShopping:      true,
	CategoryHealthcare:    true,
	CategoryDining:        true,
	CategoryOther:         true,
}

func (c Category) Valid() bool {
	return categories[c]
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction is immutable after creation: it is inserted once and only
// ever removed by an explicit delete.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
}
