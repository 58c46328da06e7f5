package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount links an external bank account to the chart account that books it.
type BankAccount struct {
	BankAccountID  string `json:"bankAccountID"`
	WorkplaceID    string `json:"workplaceID"`
	Name           string `json:"name"`
	BankName       string `json:"bankName"`
	AccountNumber  string `json:"accountNumber"`
	ChartAccountID string `json:"chartAccountID"`
	AuditFields
}

// SourceType tells which side of a reconciliation an item comes from.
type SourceType string

const (
	BookSource SourceType = "BOOK"
	BankSource SourceType = "BANK"
)

// MovementType classifies a bank movement. Its sign is fixed per type.
type MovementType string

const (
	Deposit          MovementType = "DEPOSIT"
	IncomingTransfer MovementType = "INCOMING_TRANSFER"
	Interest         MovementType = "INTEREST"
	Withdrawal       MovementType = "WITHDRAWAL"
	Check            MovementType = "CHECK"
	OutgoingTransfer MovementType = "OUTGOING_TRANSFER"
	BankCharge       MovementType = "BANK_CHARGE"
)

var movementSigns = map[MovementType]int{
	Deposit:          1,
	IncomingTransfer: 1,
	Interest:         1,
	Withdrawal:       -1,
	Check:            -1,
	OutgoingTransfer: -1,
	BankCharge:       -1,
}

// IsValid reports whether m is a known movement type.
func (m MovementType) IsValid() bool {
	_, ok := movementSigns[m]
	return ok
}

// Sign is +1 for inflows and -1 for outflows.
func (m MovementType) Sign() int {
	return movementSigns[m]
}

// Direction is the raw in/out flag of an imported statement row.
type Direction string

const (
	Inflow  Direction = "IN"
	Outflow Direction = "OUT"
)

// DefaultMovement maps a bare direction onto a movement type.
func (d Direction) DefaultMovement() (MovementType, bool) {
	switch Direction(strings.ToUpper(string(d))) {
	case Inflow:
		return Deposit, true
	case Outflow:
		return Withdrawal, true
	}
	return "", false
}

// SessionStatus is the lifecycle state of a reconciliation session.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// ReconciliationSession reconciles one bank account as of one date.
type ReconciliationSession struct {
	SessionID               string          `json:"sessionID"`
	WorkplaceID             string          `json:"workplaceID"`
	BankAccountID           string          `json:"bankAccountID"`
	PeriodStart             time.Time       `json:"periodStart"`
	AsOfDate                time.Time       `json:"asOfDate"`
	StatementOpeningBalance decimal.Decimal `json:"statementOpeningBalance"`
	StatementClosingBalance decimal.Decimal `json:"statementClosingBalance"`
	BookBalance             decimal.Decimal `json:"bookBalance"`
	Status                  SessionStatus   `json:"status"`
	AuditFields
}

// Period is the date range the session covers.
func (s ReconciliationSession) Period() DateRange {
	return DateRange{From: s.PeriodStart, To: s.AsOfDate}
}

// ReconciliationItem is one side of a movement being reconciled.
type ReconciliationItem struct {
	ItemID          string          `json:"itemID"`
	SessionID       string          `json:"sessionID"`
	SourceType      SourceType      `json:"sourceType"`
	MovementType    MovementType    `json:"movementType"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"` // + inflow, - outflow
	IsReconciled    bool            `json:"isReconciled"`
	MatchedItemID   string          `json:"matchedItemID"` // "" when unmatched
	NaturalKey      string          `json:"naturalKey"`
	SourceLineID    string          `json:"sourceLineID"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// IsMatched reports whether the item has a counterpart.
func (i ReconciliationItem) IsMatched() bool {
	return i.MatchedItemID != ""
}

// StatementMovement is a raw bank statement row.
type StatementMovement struct {
	Row          int // 1-based position in the source file; zero means position in the batch
	Date         time.Time
	Description  string
	Amount       decimal.Decimal // magnitude; the sign comes from the movement type
	Direction    Direction
	MovementType MovementType
}

// BookNaturalKey identifies a book item across re-syncs. Identical
// (account, date, amount, description) tuples are told apart by the journal
// line they come from, so an item keeps its key while its line exists and
// never inherits the key of a line that was reversed or replaced.
func BookNaturalKey(accountID string, date time.Time, amount decimal.Decimal, description string, lineID string) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", accountID, date.Format("2006-01-02"), amount.String(), strings.TrimSpace(description), lineID)
}

// BookMovementType picks the movement type of a book item from its signed amount.
func BookMovementType(amount decimal.Decimal) MovementType {
	if amount.IsNegative() {
		return Withdrawal
	}
	return Deposit
}

// SyncResult reports what a book re-sync changed.
type SyncResult struct {
	Inserted    int             `json:"inserted"`
	Removed     int             `json:"removed"`
	Released    int             `json:"released"` // bank items unmatched because their book item's line is gone
	Kept        int             `json:"kept"`
	BookBalance decimal.Decimal `json:"bookBalance"`
}

// StatementImportResult reports a statement import.
type StatementImportResult struct {
	Created  []ReconciliationItem `json:"created"`
	Failures []ImportFailure      `json:"failures"`
}

// ReconciliationSummary is the reconciliation report for one session.
type ReconciliationSummary struct {
	SessionID                   string               `json:"sessionID"`
	BookBalance                 decimal.Decimal      `json:"bookBalance"`
	StatementOpeningBalance     decimal.Decimal      `json:"statementOpeningBalance"`
	StatementClosingBalance     decimal.Decimal      `json:"statementClosingBalance"`
	TotalReconciled             decimal.Decimal      `json:"totalReconciled"`
	TotalOutstandingDeposits    decimal.Decimal      `json:"totalOutstandingDeposits"`
	TotalOutstandingWithdrawals decimal.Decimal      `json:"totalOutstandingWithdrawals"`
	UnrecordedBankCredits       decimal.Decimal      `json:"unrecordedBankCredits"`
	UnrecordedBankDebits        decimal.Decimal      `json:"unrecordedBankDebits"`
	ReconciledProjectedClosing  decimal.Decimal      `json:"reconciledProjectedClosing"`
	Difference                  decimal.Decimal      `json:"difference"`
	IsBalanced                  bool                 `json:"isBalanced"`
	IsFullyReconciled           bool                 `json:"isFullyReconciled"`
	OutstandingItems            []ReconciliationItem `json:"outstandingItems"`
}

// Summarize computes the reconciliation report. TotalReconciled sums matched
// bank-side items so a matched pair counts once. Outstanding totals keep their
// sign: deposits are positive, withdrawals negative.
func Summarize(session ReconciliationSession, items []ReconciliationItem) ReconciliationSummary {
	s := ReconciliationSummary{
		SessionID:                   session.SessionID,
		BookBalance:                 session.BookBalance,
		StatementOpeningBalance:     session.StatementOpeningBalance,
		StatementClosingBalance:     session.StatementClosingBalance,
		TotalReconciled:             decimal.Zero,
		TotalOutstandingDeposits:    decimal.Zero,
		TotalOutstandingWithdrawals: decimal.Zero,
		UnrecordedBankCredits:       decimal.Zero,
		UnrecordedBankDebits:        decimal.Zero,
		OutstandingItems:            []ReconciliationItem{},
	}

	for _, item := range items {
		if item.IsMatched() {
			if item.SourceType == BankSource {
				s.TotalReconciled = s.TotalReconciled.Add(item.Amount)
			}
			continue
		}
		s.OutstandingItems = append(s.OutstandingItems, item)
		switch {
		case item.SourceType == BookSource && item.Amount.IsNegative():
			s.TotalOutstandingWithdrawals = s.TotalOutstandingWithdrawals.Add(item.Amount)
		case item.SourceType == BookSource:
			s.TotalOutstandingDeposits = s.TotalOutstandingDeposits.Add(item.Amount)
		case item.Amount.IsNegative():
			s.UnrecordedBankDebits = s.UnrecordedBankDebits.Add(item.Amount)
		default:
			s.UnrecordedBankCredits = s.UnrecordedBankCredits.Add(item.Amount)
		}
	}

	s.ReconciledProjectedClosing = s.StatementOpeningBalance.Add(s.TotalReconciled)
	s.Difference = s.StatementClosingBalance.Sub(s.ReconciledProjectedClosing)
	s.IsBalanced = s.Difference.Abs().LessThan(BalanceTolerance)
	s.IsFullyReconciled = s.IsBalanced && len(s.OutstandingItems) == 0
	return s
}

// MatchSuggestion proposes an unmatched book/bank pair with equal amounts.
type MatchSuggestion struct {
	BookItemID string          `json:"bookItemID"`
	BankItemID string          `json:"bankItemID"`
	Amount     decimal.Decimal `json:"amount"`
	DayGap     int             `json:"dayGap"`
}

// SuggestMatches pairs unmatched bank items with unmatched book items of the
// same amount, closest transaction date first. Each item is suggested once.
func SuggestMatches(items []ReconciliationItem) []MatchSuggestion {
	var book, bank []ReconciliationItem
	for _, it := range items {
		if it.IsMatched() {
			continue
		}
		if it.SourceType == BookSource {
			book = append(book, it)
		} else {
			bank = append(bank, it)
		}
	}

	type candidate struct {
		book, bank ReconciliationItem
		gap        int
	}
	var candidates []candidate
	for _, bk := range bank {
		for _, bo := range book {
			if !bk.Amount.Equal(bo.Amount) {
				continue
			}
			gap := int(bk.TransactionDate.Sub(bo.TransactionDate).Hours() / 24)
			if gap < 0 {
				gap = -gap
			}
			candidates = append(candidates, candidate{book: bo, bank: bk, gap: gap})
		}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.gap != b.gap {
			return a.gap - b.gap
		}
		if c := a.bank.TransactionDate.Compare(b.bank.TransactionDate); c != 0 {
			return c
		}
		return strings.Compare(a.bank.ItemID+a.book.ItemID, b.bank.ItemID+b.book.ItemID)
	})

	used := make(map[string]bool)
	out := []MatchSuggestion{}
	for _, c := range candidates {
		if used[c.book.ItemID] || used[c.bank.ItemID] {
			continue
		}
		used[c.book.ItemID], used[c.bank.ItemID] = true, true
		out = append(out, MatchSuggestion{BookItemID: c.book.ItemID, BankItemID: c.bank.ItemID, Amount: c.bank.Amount, DayGap: c.gap})
	}
	return out
}
