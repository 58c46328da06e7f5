package format_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/utils/format"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	f := format.New(2, "02/01/2006")

	assert.Equal(t, "12.35", f.Amount(decimal.RequireFromString("12.345")))
	assert.Equal(t, "1000.00", f.Amount(decimal.NewFromInt(1000)))
	assert.Equal(t, "-0.50", f.Amount(decimal.RequireFromString("-0.5")))
	assert.Equal(t, "17/10/2026", f.Date(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", f.Date(time.Time{}))
}

func TestFormatterDefaults(t *testing.T) {
	f := format.New(-1, "")

	assert.Equal(t, int32(format.DefaultDecimalPlaces), f.DecimalPlaces)
	assert.Equal(t, "2026-10-17", f.Date(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))

	zeroPlaces := format.New(0, "")
	assert.Equal(t, "13", zeroPlaces.Amount(decimal.RequireFromString("12.5")))
}
