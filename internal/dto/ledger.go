package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerQueryParams selects a ledger window.
type LedgerQueryParams struct {
	From      string  `form:"from"`
	To        string  `form:"to"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// RangeParams selects an optional date range.
type RangeParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// AsOfParams selects a cut-off date; empty means today.
type AsOfParams struct {
	AsOf string `form:"asOf"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID      string          `json:"accountID"`
	AsOf           time.Time       `json:"asOf"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balanceDisplay"`
	Rollup         bool            `json:"rollup"`
}

// LedgerPageResponse wraps a ledger page with display strings.
type LedgerPageResponse struct {
	domain.LedgerPage
	OpeningBalanceDisplay string `json:"openingBalanceDisplay"`
}

// RebuildBalancesResponse reports how many account balances were rewritten.
type RebuildBalancesResponse struct {
	AccountsUpdated int64 `json:"accountsUpdated"`
}

// BalanceQueryParams selects the cut-off and whether descendants are included.
type BalanceQueryParams struct {
	AsOf   string `form:"asOf"`
	Rollup bool   `form:"rollup"`
}

// TrialBalanceResponse wraps a trial balance with display strings.
type TrialBalanceResponse struct {
	domain.TrialBalance
	TotalDebitDisplay  string `json:"totalDebitDisplay"`
	TotalCreditDisplay string `json:"totalCreditDisplay"`
}

// AccountTotalsResponse lists per-account totals for a range.
type AccountTotalsResponse struct {
	Range    domain.DateRange      `json:"range"`
	Accounts []domain.AccountTotal `json:"accounts"`
}
