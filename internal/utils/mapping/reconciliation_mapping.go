package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID:  d.BankAccountID,
		WorkplaceID:    d.WorkplaceID,
		Name:           d.Name,
		BankName:       d.BankName,
		AccountNumber:  d.AccountNumber,
		ChartAccountID: d.ChartAccountID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		WorkplaceID:    m.WorkplaceID,
		Name:           m.Name,
		BankName:       m.BankName,
		AccountNumber:  m.AccountNumber,
		ChartAccountID: m.ChartAccountID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSession converts a domain ReconciliationSession to a model ReconciliationSession
func ToModelSession(d domain.ReconciliationSession) models.ReconciliationSession {
	return models.ReconciliationSession{
		SessionID:               d.SessionID,
		WorkplaceID:             d.WorkplaceID,
		BankAccountID:           d.BankAccountID,
		PeriodStart:             toDate(d.PeriodStart),
		AsOfDate:                toDate(d.AsOfDate),
		StatementOpeningBalance: d.StatementOpeningBalance,
		StatementClosingBalance: d.StatementClosingBalance,
		BookBalance:             d.BookBalance,
		Status:                  string(d.Status),
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSession converts a model ReconciliationSession to a domain ReconciliationSession
func ToDomainSession(m models.ReconciliationSession) domain.ReconciliationSession {
	return domain.ReconciliationSession{
		SessionID:               m.SessionID,
		WorkplaceID:             m.WorkplaceID,
		BankAccountID:           m.BankAccountID,
		PeriodStart:             m.PeriodStart,
		AsOfDate:                m.AsOfDate,
		StatementOpeningBalance: m.StatementOpeningBalance,
		StatementClosingBalance: m.StatementClosingBalance,
		BookBalance:             m.BookBalance,
		Status:                  domain.SessionStatus(m.Status),
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelItem converts a domain ReconciliationItem to a model ReconciliationItem
func ToModelItem(d domain.ReconciliationItem) models.ReconciliationItem {
	return models.ReconciliationItem{
		ItemID:          d.ItemID,
		SessionID:       d.SessionID,
		SourceType:      string(d.SourceType),
		MovementType:    string(d.MovementType),
		TransactionDate: toDate(d.TransactionDate),
		Description:     d.Description,
		Amount:          d.Amount,
		IsReconciled:    d.IsReconciled,
		MatchedItemID:   d.MatchedItemID,
		NaturalKey:      d.NaturalKey,
		SourceLineID:    d.SourceLineID,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainItem converts a model ReconciliationItem to a domain ReconciliationItem
func ToDomainItem(m models.ReconciliationItem) domain.ReconciliationItem {
	return domain.ReconciliationItem{
		ItemID:          m.ItemID,
		SessionID:       m.SessionID,
		SourceType:      domain.SourceType(m.SourceType),
		MovementType:    domain.MovementType(m.MovementType),
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		Amount:          m.Amount,
		IsReconciled:    m.IsReconciled,
		MatchedItemID:   m.MatchedItemID,
		NaturalKey:      m.NaturalKey,
		SourceLineID:    m.SourceLineID,
		CreatedAt:       m.CreatedAt,
	}
}
