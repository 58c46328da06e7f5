package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Tokens travel in query strings, so the URL alphabet is used.
var tokenEncoding = base64.RawURLEncoding

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return tokenEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EntryCursor is the keyset position of the journal entry list.
type EntryCursor struct {
	EntryDate time.Time
	CreatedAt time.Time
	EntryID   string
}

// EncodeEntryCursor serialises a journal list position.
func EncodeEntryCursor(c EntryCursor) string {
	return EncodeMultiFieldToken(c.EntryDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.EntryID)
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (EntryCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return EntryCursor{}, err
	}
	if len(parts) != 3 {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	entryDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return EntryCursor{EntryDate: entryDate, CreatedAt: createdAt, EntryID: parts[2]}, nil
}

// EncodeLedgerCursor serialises a ledger position together with the running
// balance reached at that position, so the next page can keep folding.
func EncodeLedgerCursor(c domain.LedgerCursor) string {
	return EncodeMultiFieldToken(
		c.EntryDate.Format(timeFormat),
		c.CreatedAt.Format(timeFormat),
		c.EntryNumber,
		strconv.Itoa(c.LineNumber),
		c.RunningBalance.String(),
	)
}

// DecodeLedgerCursor parses a token produced by EncodeLedgerCursor.
func DecodeLedgerCursor(token string) (domain.LedgerCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.LedgerCursor{}, err
	}
	if len(parts) != 5 {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	entryDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	lineNumber, err := strconv.Atoi(parts[3])
	if err != nil {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (line number parse): %w", err)
	}
	balance, err := decimal.NewFromString(parts[4])
	if err != nil {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (balance parse): %w", err)
	}
	return domain.LedgerCursor{
		EntryDate:      entryDate,
		CreatedAt:      createdAt,
		EntryNumber:    parts[2],
		LineNumber:     lineNumber,
		RunningBalance: balance,
	}, nil
}
