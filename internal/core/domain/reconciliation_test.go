package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) time.Time { return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC) }

func reconSession() domain.ReconciliationSession {
	return domain.ReconciliationSession{
		SessionID:               "s1",
		StatementOpeningBalance: dec("1000"),
		StatementClosingBalance: dec("1500"),
		BookBalance:             dec("1500"),
	}
}

func TestSummarize_MatchedDepositBalances(t *testing.T) {
	items := []domain.ReconciliationItem{
		{ItemID: "book", SourceType: domain.BookSource, Amount: dec("500"), IsReconciled: true, MatchedItemID: "bank"},
		{ItemID: "bank", SourceType: domain.BankSource, Amount: dec("500"), IsReconciled: true, MatchedItemID: "book"},
	}

	s := domain.Summarize(reconSession(), items)

	assert.True(t, s.TotalReconciled.Equal(dec("500")))
	assert.True(t, s.ReconciledProjectedClosing.Equal(dec("1500")))
	assert.True(t, s.Difference.IsZero())
	assert.True(t, s.IsBalanced)
	assert.True(t, s.IsFullyReconciled)
	assert.Empty(t, s.OutstandingItems)
}

func TestSummarize_UnmatchedDepositIsOutstanding(t *testing.T) {
	items := []domain.ReconciliationItem{
		{ItemID: "book", SourceType: domain.BookSource, Amount: dec("500")},
		{ItemID: "bank", SourceType: domain.BankSource, Amount: dec("500")},
	}

	s := domain.Summarize(reconSession(), items)

	assert.True(t, s.TotalReconciled.IsZero())
	assert.True(t, s.Difference.Equal(dec("500")))
	assert.False(t, s.IsBalanced)
	assert.False(t, s.IsFullyReconciled)
	assert.True(t, s.TotalOutstandingDeposits.Equal(dec("500")))
	assert.True(t, s.UnrecordedBankCredits.Equal(dec("500")))
	assert.Len(t, s.OutstandingItems, 2)
}

func TestSummarize_BalancedWithOutstandingIsNotFullyReconciled(t *testing.T) {
	items := []domain.ReconciliationItem{
		{ItemID: "book", SourceType: domain.BookSource, Amount: dec("500"), IsReconciled: true, MatchedItemID: "bank"},
		{ItemID: "bank", SourceType: domain.BankSource, Amount: dec("500"), IsReconciled: true, MatchedItemID: "book"},
		{ItemID: "cheque", SourceType: domain.BookSource, Amount: dec("-75.50")},
	}

	s := domain.Summarize(reconSession(), items)

	assert.True(t, s.IsBalanced)
	assert.False(t, s.IsFullyReconciled)
	assert.True(t, s.TotalOutstandingWithdrawals.Equal(dec("-75.50")))
}

func TestSummarize_Tolerance(t *testing.T) {
	session := reconSession()
	session.StatementClosingBalance = dec("1500.009")
	items := []domain.ReconciliationItem{
		{ItemID: "bank", SourceType: domain.BankSource, Amount: dec("500"), MatchedItemID: "book"},
	}
	assert.True(t, domain.Summarize(session, items).IsBalanced)

	session.StatementClosingBalance = dec("1500.01")
	assert.False(t, domain.Summarize(session, items).IsBalanced)
}

func TestMovementType_Sign(t *testing.T) {
	for _, m := range []domain.MovementType{domain.Deposit, domain.IncomingTransfer, domain.Interest} {
		assert.Equal(t, 1, m.Sign(), m)
	}
	for _, m := range []domain.MovementType{domain.Withdrawal, domain.Check, domain.OutgoingTransfer, domain.BankCharge} {
		assert.Equal(t, -1, m.Sign(), m)
	}
	assert.False(t, domain.MovementType("REFUND").IsValid())

	mt, ok := domain.Direction("out").DefaultMovement()
	assert.True(t, ok)
	assert.Equal(t, domain.Withdrawal, mt)
}

func TestBookNaturalKey_DistinguishesSourceLines(t *testing.T) {
	k0 := domain.BookNaturalKey("acc", day(3), dec("-20"), "Coffee", "line-a")
	k1 := domain.BookNaturalKey("acc", day(3), dec("-20"), "Coffee", "line-b")
	assert.NotEqual(t, k0, k1)
	assert.Equal(t, k0, domain.BookNaturalKey("acc", day(3), dec("-20"), " Coffee ", "line-a"))
}

func TestSuggestMatches(t *testing.T) {
	items := []domain.ReconciliationItem{
		{ItemID: "book-1", SourceType: domain.BookSource, Amount: dec("100"), TransactionDate: day(1)},
		{ItemID: "book-2", SourceType: domain.BookSource, Amount: dec("100"), TransactionDate: day(5)},
		{ItemID: "book-3", SourceType: domain.BookSource, Amount: dec("-40"), TransactionDate: day(2), MatchedItemID: "bank-x"},
		{ItemID: "bank-1", SourceType: domain.BankSource, Amount: dec("100"), TransactionDate: day(6)},
		{ItemID: "bank-2", SourceType: domain.BankSource, Amount: dec("-40"), TransactionDate: day(2)},
	}

	got := domain.SuggestMatches(items)

	assert.Equal(t, []domain.MatchSuggestion{
		{BookItemID: "book-2", BankItemID: "bank-1", Amount: dec("100"), DayGap: 1},
	}, got)
}
