package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		WorkplaceID: d.WorkplaceID,
		EntryNumber: d.EntryNumber,
		EntryType:   string(d.EntryType),
		EntryDate:   toDate(d.EntryDate),
		Description: d.Description,
		Reference:   d.Reference,
		Status:      models.JournalStatus(d.Status),
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		Version:     d.Version,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry without lines
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		WorkplaceID: m.WorkplaceID,
		EntryNumber: m.EntryNumber,
		EntryType:   domain.EntryType(m.EntryType),
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Reference:   m.Reference,
		Status:      domain.EntryStatus(m.Status),
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		Version:     m.Version,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		LineNumber:   d.LineNumber,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		Description:  d.Description,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		LineNumber:   m.LineNumber,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		Description:  m.Description,
	}
}

// ToModelLineRevision snapshots a replaced line set.
func ToModelLineRevision(d domain.LineRevision) (models.LineRevision, error) {
	lines, err := json.Marshal(d.Lines)
	if err != nil {
		return models.LineRevision{}, fmt.Errorf("failed to encode line revision of entry %s: %w", d.EntryID, err)
	}
	return models.LineRevision{
		EntryID:    d.EntryID,
		Version:    d.Version,
		Lines:      lines,
		ReplacedAt: d.ReplacedAt,
		ReplacedBy: d.ReplacedBy,
	}, nil
}

// ToDomainLineRevision decodes a stored line revision.
func ToDomainLineRevision(m models.LineRevision) (domain.LineRevision, error) {
	var lines []domain.JournalLine
	if err := json.Unmarshal(m.Lines, &lines); err != nil {
		return domain.LineRevision{}, fmt.Errorf("failed to decode line revision of entry %s: %w", m.EntryID, err)
	}
	return domain.LineRevision{
		EntryID:    m.EntryID,
		Version:    m.Version,
		Lines:      lines,
		ReplacedAt: m.ReplacedAt,
		ReplacedBy: m.ReplacedBy,
	}, nil
}
