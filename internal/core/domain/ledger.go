package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one posted line of an account ledger with the running balance after it.
type LedgerRow struct {
	EntryID        string          `json:"entryID"`
	EntryNumber    string          `json:"entryNumber"`
	EntryDate      time.Time       `json:"entryDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	LineID         string          `json:"lineID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	Description    string          `json:"description"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	Contribution   decimal.Decimal `json:"contribution"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerCursor marks the last row consumed from a ledger. Rows are ordered by
// (EntryDate, CreatedAt, EntryNumber, LineNumber).
type LedgerCursor struct {
	EntryDate      time.Time
	CreatedAt      time.Time
	EntryNumber    string
	LineNumber     int
	RunningBalance decimal.Decimal
}

// CursorAfter builds the cursor positioned after row.
func CursorAfter(row LedgerRow) LedgerCursor {
	return LedgerCursor{
		EntryDate:      row.EntryDate,
		CreatedAt:      row.CreatedAt,
		EntryNumber:    row.EntryNumber,
		LineNumber:     row.LineNumber,
		RunningBalance: row.RunningBalance,
	}
}

// LedgerPage is a window of ledger rows.
type LedgerPage struct {
	AccountID      string          `json:"accountID"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Rows           []LedgerRow     `json:"rows"`
	NextToken      *string         `json:"nextToken,omitempty"`
}

// AccountTotal aggregates debits and credits of one account.
type AccountTotal struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
}

// Net returns the totals signed in the account's normal-balance convention.
func (t AccountTotal) Net() decimal.Decimal {
	if t.NormalBalance == CreditNormal {
		return t.TotalCredit.Sub(t.TotalDebit)
	}
	return t.TotalDebit.Sub(t.TotalCredit)
}

// TrialBalance is the set of account totals for a range plus grand totals.
type TrialBalance struct {
	Range       DateRange       `json:"range"`
	Accounts    []AccountTotal  `json:"accounts"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	IsBalanced  bool            `json:"isBalanced"`
}

// NewTrialBalance sums account totals and flags whether both sides agree.
func NewTrialBalance(rng DateRange, totals []AccountTotal) TrialBalance {
	tb := TrialBalance{Range: rng, Accounts: totals, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, t := range totals {
		tb.TotalDebit = tb.TotalDebit.Add(t.TotalDebit)
		tb.TotalCredit = tb.TotalCredit.Add(t.TotalCredit)
	}
	tb.IsBalanced = tb.TotalDebit.Sub(tb.TotalCredit).Abs().LessThanOrEqual(BalanceTolerance)
	return tb
}
