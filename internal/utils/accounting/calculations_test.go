package accounting_test

import (
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSignedContribution(t *testing.T) {
	assert.True(t, accounting.SignedContribution(domain.DebitNormal, d("1000"), d("0")).Equal(d("1000")))
	assert.True(t, accounting.SignedContribution(domain.DebitNormal, d("0"), d("250")).Equal(d("-250")))
	assert.True(t, accounting.SignedContribution(domain.CreditNormal, d("0"), d("1000")).Equal(d("1000")))
	assert.True(t, accounting.SignedContribution(domain.CreditNormal, d("40"), d("0")).Equal(d("-40")))
}

func TestBalanceEffects(t *testing.T) {
	accounts := map[string]domain.Account{
		"cash":  {AccountID: "cash", NormalBalance: domain.DebitNormal},
		"sales": {AccountID: "sales", NormalBalance: domain.CreditNormal},
	}
	lines := []domain.JournalLine{
		{AccountID: "cash", DebitAmount: d("600"), CreditAmount: d("0")},
		{AccountID: "cash", DebitAmount: d("400"), CreditAmount: d("0")},
		{AccountID: "sales", DebitAmount: d("0"), CreditAmount: d("1000")},
	}

	effects, err := accounting.BalanceEffects(lines, accounts)
	require.NoError(t, err)
	assert.True(t, effects["cash"].Equal(d("1000")))
	assert.True(t, effects["sales"].Equal(d("1000")))

	undo := accounting.Negate(effects)
	assert.True(t, undo["cash"].Equal(d("-1000")))

	_, err = accounting.BalanceEffects([]domain.JournalLine{{AccountID: "ghost"}}, accounts)
	assert.Error(t, err)
}

func TestDelta(t *testing.T) {
	prev := map[string]decimal.Decimal{"cash": d("100"), "sales": d("100")}
	next := map[string]decimal.Decimal{"cash": d("100"), "fees": d("100")}

	delta := accounting.Delta(prev, next)

	assert.Len(t, delta, 2)
	assert.True(t, delta["sales"].Equal(d("-100")))
	assert.True(t, delta["fees"].Equal(d("100")))
	assert.Equal(t, []string{"fees", "sales"}, accounting.SortedAccountIDs(delta))
}
