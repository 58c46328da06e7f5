package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account is a row of the accounts table.
// Note: ParentAccountID is scanned through sql.NullString; "" means NULL.
type Account struct {
	AccountID       string          `db:"account_id"`
	WorkplaceID     string          `db:"workplace_id"`
	Code            string          `db:"code"`
	Name            string          `db:"name"`
	AccountType     AccountType     `db:"account_type"`
	ParentAccountID string          `db:"parent_account_id"` // Nullable
	Level           int             `db:"level"`
	NormalBalance   string          `db:"normal_balance"`
	AllowPosting    bool            `db:"allow_posting"`
	Description     string          `db:"description"`
	Status          string          `db:"status"`
	AuditFields                     // Embed common audit fields
	Balance         decimal.Decimal `db:"balance"` // Cached signed balance, rebuilt from lines on demand
}
