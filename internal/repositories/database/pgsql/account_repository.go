package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const accountColumns = `account_id, workplace_id, code, name, account_type, parent_account_id, level, normal_balance,
	allow_posting, description, status, created_at, created_by, last_updated_at, last_updated_by, balance`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// scanAccount reads one row selected with accountColumns.
func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	var parentID sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.WorkplaceID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&parentID,
		&m.Level,
		&m.NormalBalance,
		&m.AllowPosting,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Balance,
	)
	if err != nil {
		return domain.Account{}, err
	}
	m.ParentAccountID = parentID.String
	return mapping.ToDomainAccount(m), nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// lockChart serialises structural changes to one workplace's chart until tx ends.
func lockChart(ctx context.Context, tx pgx.Tx, workplaceID string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, workplaceID+":chart"); err != nil {
		return apperrors.NewAppError(500, "failed to lock chart of workplace "+workplaceID, err)
	}
	return nil
}

// lockParent row-locks the account that is about to receive a child and
// checks it can still take one.
func lockParent(ctx context.Context, tx pgx.Tx, workplaceID, parentID string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	parent, err := scanAccount(tx.QueryRow(ctx, query, parentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, fmt.Errorf("%w: parent account %s", apperrors.ErrNotFound, parentID)
		}
		return domain.Account{}, apperrors.NewAppError(500, "failed to lock parent account "+parentID, err)
	}
	if parent.WorkplaceID != workplaceID {
		return domain.Account{}, fmt.Errorf("%w: parent account %s", apperrors.ErrNotFound, parentID)
	}
	if !parent.IsActive() {
		return domain.Account{}, fmt.Errorf("%w: parent account %s is inactive", apperrors.ErrValidation, parent.Code)
	}
	return parent, nil
}

// demoteParent strips posting from a locked parent. Lines committed before
// the lock was granted are counted, so a parent that took a posting in the
// meantime is refused.
func demoteParent(ctx context.Context, tx pgx.Tx, parent domain.Account, userID string, now time.Time) error {
	var lines int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM journal_lines WHERE account_id = $1;`, parent.AccountID).Scan(&lines); err != nil {
		return apperrors.NewAppError(500, "failed to count journal lines of account "+parent.AccountID, err)
	}
	if lines > 0 {
		return apperrors.NewReferentialError(apperrors.ErrParentHasPostings, parent.Code, "%d journal lines", lines)
	}
	_, err := tx.Exec(ctx, `
		UPDATE accounts SET allow_posting = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`, parent.AccountID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to demote parent account "+parent.AccountID, err)
	}
	return nil
}

// SaveAccount inserts a new account. A child is only stored under a parent
// that is still active at the level the account was planned for, and the
// parent becomes a control account in the same transaction.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if m.ParentAccountID != "" {
		if err := lockChart(ctx, tx, m.WorkplaceID); err != nil {
			return err
		}
		parent, err := lockParent(ctx, tx, m.WorkplaceID, m.ParentAccountID)
		if err != nil {
			return err
		}
		if m.Level != domain.LevelUnder(parent.Level) {
			return apperrors.NewConflictError(apperrors.ErrConcurrentModification, "account "+m.Code,
				"parent %s moved to level %d", parent.Code, parent.Level)
		}
		if parent.AllowPosting {
			if err := demoteParent(ctx, tx, parent, m.CreatedBy, m.CreatedAt); err != nil {
				return err
			}
		}
	}

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		m.AccountID,
		m.WorkplaceID,
		m.Code,
		m.Name,
		m.AccountType,
		nullString(m.ParentAccountID),
		m.Level,
		m.NormalBalance,
		m.AllowPosting,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Balance,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewValidationError(apperrors.ErrDuplicateCode, "account "+m.Code, "code %s is already used in this workplace", m.Code)
		}
		return apperrors.NewAppError(500, "failed to save account "+m.AccountID, err)
	}

	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	return &acc, nil
}

// FindAccountByCode retrieves an account by its workplace-unique code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, workplaceID string, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE workplace_id = $1 AND code = $2;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, workplaceID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read accounts by IDs", err)
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}
	return byID, nil
}

// ListAccounts retrieves a page of a workplace's chart ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE workplace_id = $1
		ORDER BY code
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts for workplace "+workplaceID, err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read accounts for workplace "+workplaceID, err)
	}
	return accounts, nil
}

// ListAccountHierarchy loads the whole chart of a workplace.
func (r *PgxAccountRepository) ListAccountHierarchy(ctx context.Context, workplaceID string) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, hierarchyQuery, workplaceID)
	return readHierarchy(rows, err, workplaceID)
}

const hierarchyQuery = `SELECT ` + accountColumns + ` FROM accounts WHERE workplace_id = $1 ORDER BY code;`

func readHierarchy(rows pgx.Rows, err error, workplaceID string) ([]domain.Account, error) {
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load account hierarchy for workplace "+workplaceID, err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read account hierarchy for workplace "+workplaceID, err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) CountChildren(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE parent_account_id = $1;`, accountID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count children of account "+accountID, err)
	}
	return count, nil
}

func (r *PgxAccountRepository) FindAccountReferences(ctx context.Context, accountID string) (domain.AccountReferences, error) {
	var refs domain.AccountReferences
	query := `
		SELECT
			(SELECT COUNT(*) FROM journal_lines WHERE account_id = $1),
			(SELECT COUNT(*) FROM bank_accounts WHERE chart_account_id = $1);
	`
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&refs.JournalLines, &refs.BankAccounts); err != nil {
		return refs, apperrors.NewAppError(500, "failed to count references of account "+accountID, err)
	}
	return refs, nil
}

// UpdateAccount updates the descriptive fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, description = $3, allow_posting = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, m.AccountID, m.Name, m.Description, m.AllowPosting, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) SetAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, accountID, string(status), now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set status of account "+accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyHierarchyChange plans and applies a move under the workplace chart
// lock, so two moves can never each see the other's subtree as unchanged.
// A new parent that still accepts postings is demoted here, after its row
// lock is held.
func (r *PgxAccountRepository) ApplyHierarchyChange(ctx context.Context, workplaceID string, plan domain.HierarchyPlan) (domain.HierarchyChange, error) {
	var change domain.HierarchyChange
	err := r.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := lockChart(ctx, tx, workplaceID); err != nil {
			return err
		}
		rows, err := tx.Query(ctx, hierarchyQuery, workplaceID)
		accounts, err := readHierarchy(rows, err, workplaceID)
		if err != nil {
			return err
		}
		change, err = plan(domain.NewAccountTree(accounts))
		if err != nil {
			return err
		}

		if change.NewParentID != "" {
			parent, err := lockParent(ctx, tx, workplaceID, change.NewParentID)
			if err != nil {
				return err
			}
			if parent.AllowPosting {
				if err := demoteParent(ctx, tx, parent, change.UpdatedBy, change.UpdatedAt); err != nil {
					return err
				}
			}
		}
		return applyHierarchyChange(ctx, tx, change)
	})
	if err != nil {
		return domain.HierarchyChange{}, err
	}
	return change, nil
}

func applyHierarchyChange(ctx context.Context, tx pgx.Tx, change domain.HierarchyChange) error {
	ct, err := tx.Exec(ctx, `
		UPDATE accounts SET parent_account_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`, change.AccountID, nullString(change.NewParentID), change.UpdatedAt, change.UpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to move account "+change.AccountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	batch := &pgx.Batch{}
	levelIDs := make([]string, 0, len(change.Levels))
	for id := range change.Levels {
		levelIDs = append(levelIDs, id)
	}
	slices.Sort(levelIDs)
	for _, id := range levelIDs {
		batch.Queue(`UPDATE accounts SET level = $2, last_updated_at = $3, last_updated_by = $4 WHERE account_id = $1;`,
			id, change.Levels[id], change.UpdatedAt, change.UpdatedBy)
	}
	for _, id := range change.DisablePosting {
		batch.Queue(`UPDATE accounts SET allow_posting = FALSE, last_updated_at = $2, last_updated_by = $3 WHERE account_id = $1;`,
			id, change.UpdatedAt, change.UpdatedBy)
	}
	if batch.Len() > 0 {
		if _, err := execBatch(ctx, tx, batch); err != nil {
			return apperrors.NewAppError(500, "failed to relevel subtree of account "+change.AccountID, err)
		}
	}
	return nil
}

// DeleteAccount removes an account. The balance guard is repeated in SQL so a
// posting that lands after the service checks still blocks the delete.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1 AND balance = 0;`, accountID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewReferentialError(apperrors.ErrReferenced, "account "+accountID, "still referenced by other records")
		}
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}
	if ct.RowsAffected() == 0 {
		if _, findErr := r.FindAccountByID(ctx, accountID); findErr != nil {
			return findErr
		}
		return apperrors.NewReferentialError(apperrors.ErrNonZeroBalance, "account "+accountID, "balance must be zero")
	}
	return nil
}

// FindAccountsByIDsForUpdate retrieves multiple accounts by IDs and locks the rows for update.
// Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	// Ordered locking keeps concurrent postings over the same accounts from deadlocking.
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read locked accounts", err)
	}

	locked := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		locked[acc.AccountID] = acc
	}
	if len(locked) != len(ids) {
		missing := []string{}
		for _, id := range ids {
			if _, ok := locked[id]; !ok {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some accounts requested for update lock were not found", "missing_accounts", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts, missing: %v", apperrors.ErrNotFound, missing)
	}
	return locked, nil
}

// UpdateAccountBalancesInTx updates balances for multiple accounts within a transaction.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`

	ids := make([]string, 0, len(balanceChanges))
	for id, delta := range balanceChanges {
		if !delta.IsZero() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id, balanceChanges[id], now, userID)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", ids[i], err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, ids[i])
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
