package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Cost      AccountType = "COST"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Cost, Expense:
		return true
	}
	return false
}

// NormalBalance returns the side on which accounts of this type increase.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case Asset, Cost, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// NormalBalance is the side (debit or credit) an account naturally increases on.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
)

const (
	MinAccountLevel = 1
	MaxAccountLevel = 5
	// Accounts at or above this depth are control accounts and never post.
	ControlAccountMaxLevel = 2
)

// Account represents a node of the chart of accounts.
type Account struct {
	AccountID       string          `json:"accountID"`
	WorkplaceID     string          `json:"workplaceID"`
	Code            string          `json:"code"` // unique within the workplace
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	AccountType     AccountType     `json:"accountType"`
	ParentAccountID string          `json:"parentAccountID"` // "" for top-level accounts
	Level           int             `json:"level"`
	NormalBalance   NormalBalance   `json:"normalBalance"`
	AllowPosting    bool            `json:"allowPosting"`
	Balance         decimal.Decimal `json:"balance"` // signed in the normal-balance convention
	Status          AccountStatus   `json:"status"`
	AuditFields
}

// IsActive reports whether the account is in the ACTIVE state.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}

// CanPost reports whether journal lines may reference the account.
func (a Account) CanPost() bool {
	return a.AllowPosting && a.IsActive()
}

// ClampLevel bounds a level to [MinAccountLevel, MaxAccountLevel].
func ClampLevel(level int) int {
	if level < MinAccountLevel {
		return MinAccountLevel
	}
	if level > MaxAccountLevel {
		return MaxAccountLevel
	}
	return level
}

// LevelUnder returns the level of a child placed under a parent at parentLevel.
// A parentLevel of zero means no parent.
func LevelUnder(parentLevel int) int {
	if parentLevel <= 0 {
		return MinAccountLevel
	}
	return ClampLevel(parentLevel + 1)
}

// PostingAllowedAt applies the control-account rule to a requested flag.
func PostingAllowedAt(level int, requested bool) bool {
	if level <= ControlAccountMaxLevel {
		return false
	}
	return requested
}

// AccountReferences counts the records that pin an account in place.
type AccountReferences struct {
	JournalLines int `json:"journalLines"`
	BankAccounts int `json:"bankAccounts"`
}

// Any reports whether at least one reference exists.
func (r AccountReferences) Any() bool {
	return r.JournalLines > 0 || r.BankAccounts > 0
}
