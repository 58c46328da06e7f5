package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// ChartReaderSvc defines read operations on the chart of accounts
type ChartReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its code.
	GetAccountByCode(ctx context.Context, workplaceID string, code string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts; every ID must exist in the workplace.
	GetAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a page of the chart ordered by code.
	ListAccounts(ctx context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error)

	// AccountTree indexes the whole chart by parent.
	AccountTree(ctx context.Context, workplaceID string) (*domain.AccountTree, error)
}

// ChartWriterSvc defines write operations on the chart of accounts
type ChartWriterSvc interface {
	// CreateAccount persists a new account under an optional parent.
	CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an account's name and description.
	UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// ReparentAccount moves an account (and its subtree) under newParentID, "" meaning top level.
	ReparentAccount(ctx context.Context, workplaceID string, accountID string, newParentID string, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error

	// ActivateAccount marks an account as active again.
	ActivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error

	// DeleteAccount removes an account with no children, balance or references.
	DeleteAccount(ctx context.Context, workplaceID string, accountID string, userID string) error
}

// ChartImportSvc defines batch chart operations
type ChartImportSvc interface {
	// ImportChart creates accounts from rows; failed rows are reported, never fatal.
	ImportChart(ctx context.Context, workplaceID string, rows []domain.ChartImportRow, mode domain.ChartImportMode, userID string) (*domain.ChartImportResult, error)

	// SeedDefaultChart imports the starter chart.
	SeedDefaultChart(ctx context.Context, workplaceID string, userID string) (*domain.ChartImportResult, error)
}

// ChartSvcFacade combines all chart-related service interfaces
// This is a facade for clients that need access to all operations
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartWriterSvc
	ChartImportSvc
}
