package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

// chartService implements the ChartSvcFacade interface
type chartService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// ServiceOption is a functional option shared by the service constructors.
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for audit fields.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// NewChartService creates a new chart of accounts service with the provided options
func NewChartService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.ChartSvcFacade {
	svc := &chartService{
		accountRepo: repo,
	}

	// Apply all options
	for _, option := range options {
		option(&svc.BaseService)
	}

	return svc
}

// Ensure chartService implements the ChartSvcFacade interface
var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// newAccountParams is the normalized input shared by single creation and imports.
type newAccountParams struct {
	Code         string
	Name         string
	Description  string
	AccountType  domain.AccountType
	AllowPosting *bool
}

func (s *chartService) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	var parent *domain.Account
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		p, err := s.GetAccountByID(ctx, workplaceID, *req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("invalid parent account: %w", err)
		}
		parent = p
	}

	account, err := s.createAccount(ctx, workplaceID, newAccountParams{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		AccountType:  req.AccountType,
		AllowPosting: req.AllowPosting,
	}, parent, userID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create account",
			slog.String("code", req.Code),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.Int("level", account.Level),
		slog.String("workplace_id", workplaceID))
	return account, nil
}

// createAccount validates and stores one account. parent may be nil.
func (s *chartService) createAccount(ctx context.Context, workplaceID string, p newAccountParams, parent *domain.Account, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(p.Code)
	name := strings.TrimSpace(p.Name)
	if code == "" {
		return nil, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required for %s", apperrors.ErrValidation, code)
	}
	if !p.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q for %s", apperrors.ErrValidation, p.AccountType, code)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, workplaceID, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidationError(apperrors.ErrDuplicateCode, code, "used by account %s", existing.AccountID)
	}

	parentLevel := 0
	parentID := ""
	if parent != nil {
		if !parent.IsActive() {
			return nil, fmt.Errorf("%w: parent account %s is inactive", apperrors.ErrValidation, parent.Code)
		}
		if parent.AllowPosting {
			refs, err := s.accountRepo.FindAccountReferences(ctx, parent.AccountID)
			if err != nil {
				return nil, err
			}
			if refs.JournalLines > 0 {
				return nil, apperrors.NewReferentialError(apperrors.ErrParentHasPostings, parent.Code, "%d journal lines", refs.JournalLines)
			}
		}
		parentLevel = parent.Level
		parentID = parent.AccountID
	}

	level := domain.LevelUnder(parentLevel)
	requested := true
	if p.AllowPosting != nil {
		requested = *p.AllowPosting
	}

	account := domain.Account{
		AccountID:       uuid.NewString(),
		WorkplaceID:     workplaceID,
		Code:            code,
		Name:            name,
		Description:     p.Description,
		AccountType:     p.AccountType,
		ParentAccountID: parentID,
		Level:           level,
		NormalBalance:   p.AccountType.NormalBalance(),
		AllowPosting:    domain.PostingAllowedAt(level, requested),
		Status:          domain.AccountActive,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *chartService) GetAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}

	// Return NotFound to obscure existence from other workplaces
	if account.WorkplaceID != workplaceID {
		s.LogDebug(ctx, "Account found but belongs to different workplace",
			slog.String("account_id", accountID),
			slog.String("account_workplace", account.WorkplaceID),
			slog.String("requested_workplace", workplaceID))
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *chartService) GetAccountByCode(ctx context.Context, workplaceID string, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, workplaceID, strings.TrimSpace(code))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code",
				slog.String("code", code),
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}
	return account, nil
}

func (s *chartService) GetAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts by IDs",
			slog.Any("account_ids", accountIDs))
		return nil, err
	}

	var missing []string
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok || acc.WorkplaceID != workplaceID {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: accounts %v", apperrors.ErrNotFound, missing)
	}
	return accounts, nil
}

func (s *chartService) ListAccounts(ctx context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, workplaceID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("workplace_id", workplaceID),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts for workplace %s: %w", workplaceID, err)
	}

	if accounts == nil {
		return []domain.Account{}, nil // Return empty slice if repo returns nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.String("workplace_id", workplaceID))
	return accounts, nil
}

func (s *chartService) AccountTree(ctx context.Context, workplaceID string) (*domain.AccountTree, error) {
	accounts, err := s.accountRepo.ListAccountHierarchy(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account hierarchy",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return domain.NewAccountTree(accounts), nil
}

func (s *chartService) UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, workplaceID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		if name != account.Name {
			account.Name = name
			updated = true
		}
	}
	if req.Description != nil && *req.Description != account.Description {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", accountID))
	return account, nil
}

func (s *chartService) ReparentAccount(ctx context.Context, workplaceID string, accountID string, newParentID string, userID string) (*domain.Account, error) {
	now := s.Now()
	change, err := s.accountRepo.ApplyHierarchyChange(ctx, workplaceID, func(tree *domain.AccountTree) (domain.HierarchyChange, error) {
		if moved, ok := tree.Account(accountID); !ok || moved.WorkplaceID != workplaceID {
			return domain.HierarchyChange{}, apperrors.ErrNotFound
		}
		change, err := tree.PlanReparent(accountID, newParentID)
		if err != nil {
			return domain.HierarchyChange{}, err
		}
		if newParentID != "" {
			parent, _ := tree.Account(newParentID)
			if !parent.IsActive() {
				return domain.HierarchyChange{}, fmt.Errorf("%w: parent account %s is inactive", apperrors.ErrValidation, parent.Code)
			}
		}
		change.UpdatedBy = userID
		change.UpdatedAt = now
		return change, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Reparent rejected",
			slog.String("account_id", accountID),
			slog.String("new_parent_id", newParentID))
		return nil, err
	}

	s.LogInfo(ctx, "Account reparented",
		slog.String("account_id", accountID),
		slog.String("new_parent_id", newParentID),
		slog.Int("accounts_relevelled", len(change.Levels)))
	return s.GetAccountByID(ctx, workplaceID, accountID)
}

func (s *chartService) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	return s.setStatus(ctx, workplaceID, accountID, domain.AccountInactive, userID)
}

func (s *chartService) ActivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	return s.setStatus(ctx, workplaceID, accountID, domain.AccountActive, userID)
}

func (s *chartService) setStatus(ctx context.Context, workplaceID, accountID string, status domain.AccountStatus, userID string) error {
	account, err := s.GetAccountByID(ctx, workplaceID, accountID)
	if err != nil {
		return err
	}
	if account.Status == status {
		return fmt.Errorf("%w: account %s is already %s", apperrors.ErrValidation, account.Code, strings.ToLower(string(status)))
	}

	if err := s.accountRepo.SetAccountStatus(ctx, accountID, status, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to change account status",
			slog.String("account_id", accountID),
			slog.String("status", string(status)))
		return err
	}

	s.LogInfo(ctx, "Account status changed",
		slog.String("account_id", accountID),
		slog.String("status", string(status)))
	return nil
}

func (s *chartService) DeleteAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	account, err := s.GetAccountByID(ctx, workplaceID, accountID)
	if err != nil {
		return err
	}

	children, err := s.accountRepo.CountChildren(ctx, accountID)
	if err != nil {
		return err
	}
	if children > 0 {
		return apperrors.NewReferentialError(apperrors.ErrHasChildren, account.Code, "%d child accounts", children)
	}
	if !account.Balance.IsZero() {
		return apperrors.NewReferentialError(apperrors.ErrNonZeroBalance, account.Code, "balance %s", account.Balance)
	}
	refs, err := s.accountRepo.FindAccountReferences(ctx, accountID)
	if err != nil {
		return err
	}
	if refs.Any() {
		return apperrors.NewReferentialError(apperrors.ErrReferenced, account.Code, "%d journal lines, %d bank accounts", refs.JournalLines, refs.BankAccounts)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.logFailure(ctx, err, "Failed to delete account",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted",
		slog.String("account_id", accountID),
		slog.String("code", account.Code),
		slog.String("deleted_by", userID))
	return nil
}
