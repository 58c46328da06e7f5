package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one line of a posting request. Exactly one side should be set.
type JournalLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount" binding:"decimal_gte0"`
	CreditAmount decimal.Decimal `json:"creditAmount" binding:"decimal_gte0"`
	Description  string          `json:"description"`
}

// PostEntryRequest defines the data needed to post (or draft) a journal entry.
type PostEntryRequest struct {
	EntryType   domain.EntryType     `json:"entryType" binding:"omitempty,oneof=MANUAL ADJUSTMENT CLOSING"`
	EntryDate   time.Time            `json:"entryDate" binding:"required"`
	Description string               `json:"description" binding:"required,max=500"`
	Reference   string               `json:"reference" binding:"max=100"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,dive"`
}

// ReplaceLinesRequest replaces the full line set of an entry.
type ReplaceLinesRequest struct {
	Lines           []JournalLineRequest `json:"lines" binding:"required,dive"`
	ExpectedVersion *int                 `json:"expectedVersion"`
}

// EntryTransitionRequest carries the optimistic version for post/reverse.
type EntryTransitionRequest struct {
	ExpectedVersion *int `json:"expectedVersion"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Status    domain.EntryStatus `form:"status" binding:"omitempty,oneof=DRAFT POSTED REVERSED"`
	Limit     int                `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string            `form:"nextToken"`
}

// ListEntriesResponse is one page of journal entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// LineResponse is a journal line as returned to callers.
type LineResponse struct {
	LineID       string          `json:"lineID"`
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
}

// EntryResponse is a journal entry as returned to callers.
type EntryResponse struct {
	EntryID       string             `json:"entryID"`
	EntryNumber   string             `json:"entryNumber"`
	EntryType     domain.EntryType   `json:"entryType"`
	EntryDate     time.Time          `json:"entryDate"`
	Description   string             `json:"description"`
	Reference     string             `json:"reference"`
	Status        domain.EntryStatus `json:"status"`
	TotalDebit    decimal.Decimal    `json:"totalDebit"`
	TotalCredit   decimal.Decimal    `json:"totalCredit"`
	Version       int                `json:"version"`
	Lines         []LineResponse     `json:"lines,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	lines := make([]LineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = LineResponse{
			LineID:       l.LineID,
			LineNumber:   l.LineNumber,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
		}
	}
	return EntryResponse{
		EntryID:       e.EntryID,
		EntryNumber:   e.EntryNumber,
		EntryType:     e.EntryType,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		Reference:     e.Reference,
		Status:        e.Status,
		TotalDebit:    e.TotalDebit,
		TotalCredit:   e.TotalCredit,
		Version:       e.Version,
		Lines:         lines,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToEntryResponses converts a slice of entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}
