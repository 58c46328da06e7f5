package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of the bank_accounts table.
type BankAccount struct {
	BankAccountID  string `db:"bank_account_id"`
	WorkplaceID    string `db:"workplace_id"`
	Name           string `db:"name"`
	BankName       string `db:"bank_name"`
	AccountNumber  string `db:"account_number"`
	ChartAccountID string `db:"chart_account_id"`
	AuditFields
}

// ReconciliationSession is a row of the reconciliation_sessions table.
type ReconciliationSession struct {
	SessionID               string          `db:"session_id"`
	WorkplaceID             string          `db:"workplace_id"`
	BankAccountID           string          `db:"bank_account_id"`
	PeriodStart             time.Time       `db:"period_start"`
	AsOfDate                time.Time       `db:"as_of_date"`
	StatementOpeningBalance decimal.Decimal `db:"statement_opening_balance"`
	StatementClosingBalance decimal.Decimal `db:"statement_closing_balance"`
	BookBalance             decimal.Decimal `db:"book_balance"`
	Status                  string          `db:"status"`
	AuditFields
}

// ReconciliationItem is a row of the reconciliation_items table. The nullable
// columns are scanned through sql.NullString; "" means NULL.
type ReconciliationItem struct {
	ItemID          string          `db:"item_id"`
	SessionID       string          `db:"session_id"`
	SourceType      string          `db:"source_type"`
	MovementType    string          `db:"movement_type"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	IsReconciled    bool            `db:"is_reconciled"`
	MatchedItemID   string          `db:"matched_item_id"` // Nullable
	NaturalKey      string          `db:"natural_key"`     // Nullable, BOOK items only
	SourceLineID    string          `db:"source_line_id"`  // Nullable, BOOK items only
	CreatedAt       time.Time       `db:"created_at"`
}
