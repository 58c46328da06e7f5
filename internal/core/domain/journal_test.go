package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(n int, account string, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		LineNumber:   n,
		AccountID:    account,
		DebitAmount:  decimal.RequireFromString(debit),
		CreditAmount: decimal.RequireFromString(credit),
	}
}

func TestEntryNumbering(t *testing.T) {
	date := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

	prefix := domain.EntryNumberPrefix(domain.ManualEntry, date)
	assert.Equal(t, "ED-202610", prefix)
	assert.Equal(t, "ED-20261001", domain.FormatEntryNumber(prefix, 1))
	assert.Equal(t, "ED-202610123", domain.FormatEntryNumber(prefix, 123))
	assert.Equal(t, "EA-202601", domain.EntryNumberPrefix(domain.AdjustmentEntry, date.AddDate(0, -9, 0)))

	seq, ok := domain.ParseEntrySequence(prefix, "ED-20261007")
	assert.True(t, ok)
	assert.Equal(t, 7, seq)

	_, ok = domain.ParseEntrySequence(prefix, "EA-20261007")
	assert.False(t, ok)
	_, ok = domain.ParseEntrySequence(prefix, "ED-202610")
	assert.False(t, ok)
}

func TestValidateLineShapes(t *testing.T) {
	err := domain.ValidateLineShapes([]domain.JournalLine{
		line(1, "cash", "100", "0"),
		line(2, "sales", "50", "50"),
	})
	assert.ErrorIs(t, err, apperrors.ErrMixedLine)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "line 2 (account sales)")

	err = domain.ValidateLineShapes([]domain.JournalLine{line(1, "cash", "-1", "0")})
	assert.ErrorIs(t, err, apperrors.ErrNegativeAmount)

	assert.NoError(t, domain.ValidateLineShapes([]domain.JournalLine{line(1, "cash", "0", "0")}))

	err = domain.ValidateLineShapes([]domain.JournalLine{line(1, "cash", "0.00004", "0")})
	assert.ErrorIs(t, err, apperrors.ErrAmountPrecision)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NoError(t, domain.ValidateLineShapes([]domain.JournalLine{line(1, "cash", "0.0001", "0"), line(2, "sales", "12.50000", "0")}))
}

func TestCheckPostable(t *testing.T) {
	accounts := map[string]domain.Account{
		"cash":   {AccountID: "cash", WorkplaceID: "wp-1", Code: "1101", AllowPosting: true, Status: domain.AccountActive},
		"assets": {AccountID: "assets", WorkplaceID: "wp-1", Code: "1", AllowPosting: false, Status: domain.AccountActive},
		"old":    {AccountID: "old", WorkplaceID: "wp-1", Code: "1199", AllowPosting: true, Status: domain.AccountInactive},
		"other":  {AccountID: "other", WorkplaceID: "wp-2", Code: "1101", AllowPosting: true, Status: domain.AccountActive},
	}

	assert.NoError(t, domain.CheckPostable("wp-1", []domain.JournalLine{line(1, "cash", "1", "0")}, accounts))
	for _, id := range []string{"assets", "old", "other", "missing"} {
		err := domain.CheckPostable("wp-1", []domain.JournalLine{line(1, "cash", "1", "0"), line(2, id, "0", "1")}, accounts)
		assert.ErrorIs(t, err, apperrors.ErrNonPostableAccount, id)
		assert.Contains(t, err.Error(), "line 2", id)
	}
}

func TestValidateBalance(t *testing.T) {
	debit, credit, err := domain.ValidateBalance("entry", []domain.JournalLine{
		line(1, "cash", "1000", "0"),
		line(2, "sales", "0", "1000"),
	})
	require.NoError(t, err)
	assert.True(t, debit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, credit.Equal(decimal.NewFromInt(1000)))

	_, _, err = domain.ValidateBalance("entry", []domain.JournalLine{
		line(1, "cash", "500", "0"),
		line(2, "sales", "0", "300"),
	})
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)

	_, _, err = domain.ValidateBalance("entry", []domain.JournalLine{
		line(1, "cash", "100", "0"),
		line(2, "sales", "0", "99.99"),
	})
	assert.NoError(t, err, "a gap of exactly 0.01 is tolerated")

	_, _, err = domain.ValidateBalance("entry", []domain.JournalLine{
		line(1, "cash", "100", "0"),
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptySide)

	_, _, err = domain.ValidateBalance("entry", nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptySide)
}

func TestLineAccountIDs(t *testing.T) {
	ids := domain.LineAccountIDs([]domain.JournalLine{
		line(1, "b", "1", "0"),
		line(2, "a", "0", "1"),
		line(3, "b", "1", "0"),
	})
	assert.Equal(t, []string{"b", "a"}, ids)
}
