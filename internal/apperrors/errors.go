package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Validation errors are raised before any mutation is attempted.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the caller acted on stale or contradictory state.
var ErrConflict = errors.New("conflict")

// ErrReferential indicates that an operation would break historical integrity.
var ErrReferential = errors.New("referential integrity violation")

// ErrInternal is returned when an unexpected infrastructure failure occurs.
var ErrInternal = errors.New("internal error")

// Validation rules.
var (
	ErrMixedLine          = errors.New("line carries both a debit and a credit amount")
	ErrNegativeAmount     = errors.New("line amount must not be negative")
	ErrAmountPrecision    = errors.New("amount has more decimal places than the ledger stores")
	ErrEmptySide          = errors.New("entry debit or credit side totals zero")
	ErrUnbalancedEntry    = errors.New("entry debits and credits do not balance")
	ErrNonPostableAccount = errors.New("account does not accept postings")
	ErrDuplicateCode      = errors.New("account code already exists")
	ErrInvalidMatch       = errors.New("items cannot be matched")
)

// Conflict rules.
var (
	ErrAlreadyReversed        = errors.New("entry is not posted")
	ErrAlreadyMatched         = errors.New("item already matched")
	ErrCycle                  = errors.New("account hierarchy cycle")
	ErrConcurrentModification = errors.New("record was modified concurrently")
	ErrNotDraft               = errors.New("entry is not a draft")
	ErrSessionClosed          = errors.New("reconciliation session is closed")
	ErrSessionNotBalanced     = errors.New("reconciliation session is not balanced")
)

// Referential rules.
var (
	ErrHasChildren        = errors.New("account has child accounts")
	ErrNonZeroBalance     = errors.New("account balance is not zero")
	ErrReferenced         = errors.New("account is referenced")
	ErrParentHasPostings  = errors.New("parent account already carries journal lines")
	ErrCrossWorkplaceLink = errors.New("record belongs to a different workplace")
)

// RuleError is a caller-correctable rejection. It names the violated rule, the
// kind of rule (validation, conflict or referential) and the offending record.
type RuleError struct {
	Kind    error
	Rule    error
	Subject string
	Detail  string
}

func (e *RuleError) Error() string {
	msg := e.Rule.Error()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Subject)
	}
	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}
	return msg
}

// Unwrap exposes both the rule and its kind to errors.Is.
func (e *RuleError) Unwrap() []error {
	return []error{e.Rule, e.Kind}
}

// NewValidationError builds a validation RuleError.
func NewValidationError(rule error, subject, format string, args ...any) error {
	return &RuleError{Kind: ErrValidation, Rule: rule, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// NewConflictError builds a conflict RuleError.
func NewConflictError(rule error, subject, format string, args ...any) error {
	return &RuleError{Kind: ErrConflict, Rule: rule, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// NewReferentialError builds a referential RuleError.
func NewReferentialError(rule error, subject, format string, args ...any) error {
	return &RuleError{Kind: ErrReferential, Rule: rule, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// AppError wraps an infrastructure failure with a status code hint.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCallerError reports whether err is a caller-correctable fault
// (validation, conflict, referential, duplicate or not found).
func IsCallerError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrReferential) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrNotFound)
}
