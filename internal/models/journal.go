package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string          `db:"entry_id"`
	WorkplaceID string          `db:"workplace_id"`
	EntryNumber string          `db:"entry_number"`
	EntryType   string          `db:"entry_type"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	Reference   string          `db:"reference"`
	Status      JournalStatus   `db:"status"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	Version     int             `db:"version"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	LineNumber   int             `db:"line_number"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	Description  string          `db:"description"`
}

// LineRevision is a row of journal_line_revisions. Lines holds the replaced
// line set as JSON.
type LineRevision struct {
	EntryID    string    `db:"entry_id"`
	Version    int       `db:"version"`
	Lines      []byte    `db:"lines"`
	ReplacedAt time.Time `db:"replaced_at"`
	ReplacedBy string    `db:"replaced_by"`
}
