package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntryType classifies a journal entry and selects its number prefix.
type EntryType string

const (
	ManualEntry     EntryType = "MANUAL"
	AdjustmentEntry EntryType = "ADJUSTMENT"
	ClosingEntry    EntryType = "CLOSING"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	switch t {
	case ManualEntry, AdjustmentEntry, ClosingEntry:
		return true
	}
	return false
}

// Prefix returns the short code used in entry numbers.
func (t EntryType) Prefix() string {
	switch t {
	case AdjustmentEntry:
		return "EA"
	case ClosingEntry:
		return "EC"
	default:
		return "ED"
	}
}

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// BalanceTolerance is the largest debit/credit gap accepted on a posted entry.
var BalanceTolerance = decimal.New(1, -2)

// AmountScale is the number of decimal places amount columns store.
const AmountScale = 4

// JournalEntry is a dated, balanced set of lines.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	WorkplaceID string          `json:"workplaceID"`
	EntryNumber string          `json:"entryNumber"`
	EntryType   EntryType       `json:"entryType"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Status      EntryStatus     `json:"status"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Lines       []JournalLine   `json:"lines"`
	Version     int             `json:"version"`
	AuditFields
}

// JournalLine is one account movement within an entry.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	LineNumber   int             `json:"lineNumber"`
}

// IsMixed reports whether the line carries a debit and a credit at once.
func (l JournalLine) IsMixed() bool {
	return l.DebitAmount.IsPositive() && l.CreditAmount.IsPositive()
}

// IsNegative reports whether either side is below zero.
func (l JournalLine) IsNegative() bool {
	return l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative()
}

// LineRevision is the line set an entry carried before a replacement.
type LineRevision struct {
	EntryID    string        `json:"entryID"`
	Version    int           `json:"version"`
	Lines      []JournalLine `json:"lines"`
	ReplacedAt time.Time     `json:"replacedAt"`
	ReplacedBy string        `json:"replacedBy"`
}

// EntryTransition moves an entry between statuses and applies the balance
// effect of that move in the same storage transaction.
type EntryTransition struct {
	EntryID        string
	From           EntryStatus
	To             EntryStatus
	Version        int
	BalanceChanges map[string]decimal.Decimal
	UpdatedBy      string
	UpdatedAt      time.Time
}

// LineReplacement swaps an entry's full line set.
type LineReplacement struct {
	EntryID        string
	Lines          []JournalLine
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	Version        int
	BalanceChanges map[string]decimal.Decimal // applied only when the entry is posted
	UpdatedBy      string
	UpdatedAt      time.Time
}

// EntryNumberPrefix builds the "{TYPE}-{YYYYMM}" prefix for an entry.
func EntryNumberPrefix(t EntryType, entryDate time.Time) string {
	return fmt.Sprintf("%s-%04d%02d", t.Prefix(), entryDate.Year(), int(entryDate.Month()))
}

// FormatEntryNumber appends a sequence of at least two digits to prefix.
func FormatEntryNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s%02d", prefix, seq)
}

// ParseEntrySequence extracts the sequence of number under prefix.
func ParseEntrySequence(prefix, number string) (int, bool) {
	rest, ok := strings.CutPrefix(number, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	seq, err := strconv.Atoi(rest)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// LineTotals sums both sides of a line set.
func LineTotals(lines []JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.DebitAmount)
		credit = credit.Add(l.CreditAmount)
	}
	return debit, credit
}

// HasStorableScale reports whether d fits the AmountScale decimal places of stored amounts.
func HasStorableScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

// ValidateLineShapes rejects negative amounts, amounts finer than AmountScale
// and lines with both sides set.
func ValidateLineShapes(lines []JournalLine) error {
	for _, l := range lines {
		subject := fmt.Sprintf("line %d (account %s)", l.LineNumber, l.AccountID)
		if l.IsNegative() {
			return apperrors.NewValidationError(apperrors.ErrNegativeAmount, subject, "debit %s, credit %s", l.DebitAmount, l.CreditAmount)
		}
		if !HasStorableScale(l.DebitAmount) || !HasStorableScale(l.CreditAmount) {
			return apperrors.NewValidationError(apperrors.ErrAmountPrecision, subject, "debit %s, credit %s exceed %d decimal places", l.DebitAmount, l.CreditAmount, AmountScale)
		}
		if l.IsMixed() {
			return apperrors.NewValidationError(apperrors.ErrMixedLine, subject, "debit %s, credit %s", l.DebitAmount, l.CreditAmount)
		}
	}
	return nil
}

// ValidateBalance checks that both sides are positive and agree within
// BalanceTolerance. It returns the side totals.
func ValidateBalance(subject string, lines []JournalLine) (decimal.Decimal, decimal.Decimal, error) {
	debit, credit := LineTotals(lines)
	if !debit.IsPositive() || !credit.IsPositive() {
		return debit, credit, apperrors.NewValidationError(apperrors.ErrEmptySide, subject, "debits %s, credits %s", debit, credit)
	}
	if debit.Sub(credit).Abs().GreaterThan(BalanceTolerance) {
		return debit, credit, apperrors.NewValidationError(apperrors.ErrUnbalancedEntry, subject, "debits %s != credits %s", debit, credit)
	}
	return debit, credit, nil
}

// LineAccountIDs returns the distinct account ids of a line set in first-seen order.
func LineAccountIDs(lines []JournalLine) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}
	return ids
}

// CheckPostable rejects any line whose account is unknown, belongs to another
// workplace, is inactive or is a control account.
func CheckPostable(workplaceID string, lines []JournalLine, accounts map[string]Account) error {
	for _, l := range lines {
		subject := fmt.Sprintf("line %d (account %s)", l.LineNumber, l.AccountID)
		acc, ok := accounts[l.AccountID]
		switch {
		case !ok || acc.WorkplaceID != workplaceID:
			return apperrors.NewValidationError(apperrors.ErrNonPostableAccount, subject, "account not found")
		case !acc.AllowPosting:
			return apperrors.NewValidationError(apperrors.ErrNonPostableAccount, subject, "%s is a control account", acc.Code)
		case !acc.IsActive():
			return apperrors.NewValidationError(apperrors.ErrNonPostableAccount, subject, "%s is inactive", acc.Code)
		}
	}
	return nil
}
