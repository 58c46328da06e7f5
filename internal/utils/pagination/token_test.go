package pagination

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEntryCursor(t *testing.T) {
	cursor := EntryCursor{
		EntryDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 10, 1, 14, 30, 45, 123456789, time.UTC),
		EntryID:   "7d0d6c9e-2c7b-4a9b-8a53-1f6f1c2b9a11",
	}

	token := EncodeEntryCursor(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "+", "Token must be safe in a query string")

	decoded, err := DecodeEntryCursor(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestEncodeDecodeLedgerCursor(t *testing.T) {
	cursor := domain.LedgerCursor{
		EntryDate:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Date(2026, 10, 3, 9, 0, 0, 500, time.UTC),
		EntryNumber:    "ED-20261004",
		LineNumber:     2,
		RunningBalance: decimal.RequireFromString("-1250.75"),
	}

	decoded, err := DecodeLedgerCursor(EncodeLedgerCursor(cursor))
	require.NoError(t, err)
	assert.True(t, cursor.EntryDate.Equal(decoded.EntryDate))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.EntryNumber, decoded.EntryNumber)
	assert.Equal(t, cursor.LineNumber, decoded.LineNumber)
	assert.True(t, cursor.RunningBalance.Equal(decoded.RunningBalance))
}

func TestDecodeTokenErrors(t *testing.T) {
	_, err := DecodeEntryCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeEntryCursor(EncodeMultiFieldToken("2026-10-01T00:00:00Z"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeLedgerCursor(EncodeMultiFieldToken("notadate", "2026-10-01T00:00:00Z", "ED-20261001", "1", "0"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")

	_, err = DecodeLedgerCursor(EncodeMultiFieldToken("2026-10-01T00:00:00Z", "2026-10-01T00:00:00Z", "ED-20261001", "x", "0"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line number parse")

	_, err = DecodeLedgerCursor(EncodeMultiFieldToken("2026-10-01T00:00:00Z", "2026-10-01T00:00:00Z", "ED-20261001", "1", "ten"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "balance parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
