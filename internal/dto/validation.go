package dto

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of date-only query parameters.
const DateLayout = "2006-01-02"

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// decimal.Decimal is validated through its string form so tags apply to it.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("decimal_gte0", decimalGTE0)
		_ = v.RegisterValidation("decimal_storable", decimalStorable)
	})
}

// decimalGTE0 accepts a decimal (as its string form) that is zero or positive
// and fits the stored scale.
func decimalGTE0(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative() && domain.HasStorableScale(d)
}

// decimalStorable accepts any decimal that fits the stored scale.
func decimalStorable(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && domain.HasStorableScale(d)
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseDate parses an optional YYYY-MM-DD value. Empty input yields the zero time.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseDateRange parses optional from/to query values.
func ParseDateRange(from, to string) (domain.DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return domain.DateRange{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return domain.DateRange{}, err
	}
	if !f.IsZero() && !t.IsZero() && t.Before(f) {
		return domain.DateRange{}, fmt.Errorf("range end %s is before start %s", to, from)
	}
	return domain.DateRange{From: f, To: t}, nil
}
