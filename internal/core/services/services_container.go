package services

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Chart = NewChartService(repos.AccountRepo, options...)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, options...)

	// Reconciliation reads book movements through the ledger projector.
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo, cfg.LedgerPageSize, options...)
	container.Reconciliation = NewReconciliationService(
		repos.ReconciliationRepo,
		repos.AccountRepo,
		container.Ledger,
		options...,
	)

	return container
}
