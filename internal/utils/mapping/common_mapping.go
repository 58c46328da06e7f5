package mapping

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelAuditFields converts audit fields to their column form. Timestamps are stored in UTC.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	m := models.AuditFields(d)
	m.CreatedAt = m.CreatedAt.UTC()
	m.LastUpdatedAt = m.LastUpdatedAt.UTC()
	return m
}

func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields(m)
}

// toDate normalises a calendar date column to midnight UTC.
func toDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return domain.DateOnly(t)
}
