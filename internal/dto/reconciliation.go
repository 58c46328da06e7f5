package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterBankAccountRequest links a bank account to a posting chart account.
type RegisterBankAccountRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	BankName       string `json:"bankName" binding:"max=255"`
	AccountNumber  string `json:"accountNumber" binding:"max=64"`
	ChartAccountID string `json:"chartAccountID" binding:"required"`
}

// OpenSessionRequest opens (or fetches) the session for a bank account and date.
type OpenSessionRequest struct {
	BankAccountID           string          `json:"bankAccountID" binding:"required"`
	AsOfDate                time.Time       `json:"asOfDate" binding:"required"`
	PeriodStart             *time.Time      `json:"periodStart"` // defaults to the first day of the as-of month
	StatementOpeningBalance decimal.Decimal `json:"statementOpeningBalance" binding:"decimal_storable"`
	StatementClosingBalance decimal.Decimal `json:"statementClosingBalance" binding:"decimal_storable"`
}

// StatementMovementRequest is a raw bank statement row.
type StatementMovementRequest struct {
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Direction    string          `json:"direction"`    // IN or OUT
	MovementType string          `json:"movementType"` // optional, wins over direction
}

// ImportStatementRequest carries statement rows into an open session.
type ImportStatementRequest struct {
	Movements []StatementMovementRequest `json:"movements" binding:"required"`
}

// ToStatementMovements converts request rows to domain movements.
func (r ImportStatementRequest) ToStatementMovements() []domain.StatementMovement {
	out := make([]domain.StatementMovement, len(r.Movements))
	for i, m := range r.Movements {
		out[i] = domain.StatementMovement{
			Date:         m.Date,
			Description:  m.Description,
			Amount:       m.Amount,
			Direction:    domain.Direction(m.Direction),
			MovementType: domain.MovementType(m.MovementType),
		}
	}
	return out
}

// MatchItemsRequest pairs one book item with one bank item.
type MatchItemsRequest struct {
	BookItemID string `json:"bookItemID" binding:"required"`
	BankItemID string `json:"bankItemID" binding:"required"`
}

// SessionResponse is a session with its items.
type SessionResponse struct {
	domain.ReconciliationSession
	Items []domain.ReconciliationItem `json:"items"`
}

// SummaryResponse wraps a summary with display strings.
type SummaryResponse struct {
	domain.ReconciliationSummary
	Display map[string]string `json:"display"`
}
