package format

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultDecimalPlaces = 2
	DefaultDateFormat    = "2006-01-02"
)

// Formatter renders amounts and dates for display. It is built from
// configuration and handed to whoever renders output; ledger code never
// formats.
type Formatter struct {
	DecimalPlaces int32
	DateFormat    string
}

// New returns a Formatter, falling back to defaults for unset values.
func New(decimalPlaces int, dateFormat string) Formatter {
	if decimalPlaces < 0 {
		decimalPlaces = DefaultDecimalPlaces
	}
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	return Formatter{DecimalPlaces: int32(decimalPlaces), DateFormat: dateFormat}
}

// Amount rounds half away from zero to the configured places and keeps trailing zeros.
// Example: 12.345 with 2 places returns "12.35"
func (f Formatter) Amount(amount decimal.Decimal) string {
	return amount.StringFixed(f.DecimalPlaces)
}

// Date formats t with the configured layout.
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.DateFormat)
}
