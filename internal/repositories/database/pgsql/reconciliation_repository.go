package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const sessionColumns = `session_id, workplace_id, bank_account_id, period_start, as_of_date, statement_opening_balance,
	statement_closing_balance, book_balance, status, created_at, created_by, last_updated_at, last_updated_by`

const itemColumns = `item_id, session_id, source_type, movement_type, transaction_date, description, amount,
	is_reconciled, matched_item_id, natural_key, source_line_id, created_at`

type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(pool *pgxpool.Pool) *PgxReconciliationRepository {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

func scanSession(row pgx.Row) (domain.ReconciliationSession, error) {
	var m models.ReconciliationSession
	err := row.Scan(
		&m.SessionID,
		&m.WorkplaceID,
		&m.BankAccountID,
		&m.PeriodStart,
		&m.AsOfDate,
		&m.StatementOpeningBalance,
		&m.StatementClosingBalance,
		&m.BookBalance,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.ReconciliationSession{}, err
	}
	return mapping.ToDomainSession(m), nil
}

func scanItem(row pgx.Row) (domain.ReconciliationItem, error) {
	var m models.ReconciliationItem
	var matchedID, naturalKey, sourceLineID sql.NullString
	err := row.Scan(
		&m.ItemID,
		&m.SessionID,
		&m.SourceType,
		&m.MovementType,
		&m.TransactionDate,
		&m.Description,
		&m.Amount,
		&m.IsReconciled,
		&matchedID,
		&naturalKey,
		&sourceLineID,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.ReconciliationItem{}, err
	}
	m.MatchedItemID = matchedID.String
	m.NaturalKey = naturalKey.String
	m.SourceLineID = sourceLineID.String
	return mapping.ToDomainItem(m), nil
}

func collectItems(rows pgx.Rows) ([]domain.ReconciliationItem, error) {
	defer rows.Close()
	items := []domain.ReconciliationItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PgxReconciliationRepository) SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	m := mapping.ToModelBankAccount(bankAccount)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO bank_accounts (bank_account_id, workplace_id, name, bank_name, account_number, chart_account_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`, m.BankAccountID, m.WorkplaceID, m.Name, m.BankName, m.AccountNumber, m.ChartAccountID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save bank account "+m.BankAccountID, err)
	}
	return nil
}

const bankAccountColumns = `bank_account_id, workplace_id, name, bank_name, account_number, chart_account_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccount(row pgx.Row) (domain.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(&m.BankAccountID, &m.WorkplaceID, &m.Name, &m.BankName, &m.AccountNumber, &m.ChartAccountID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return domain.BankAccount{}, err
	}
	return mapping.ToDomainBankAccount(m), nil
}

func (r *PgxReconciliationRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	ba, err := scanBankAccount(r.Pool.QueryRow(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts WHERE bank_account_id = $1;`, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bank account "+bankAccountID, err)
	}
	return &ba, nil
}

func (r *PgxReconciliationRepository) ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts WHERE workplace_id = $1 ORDER BY name;`, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list bank accounts for workplace "+workplaceID, err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		ba, err := scanBankAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account", err)
		}
		accounts = append(accounts, ba)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank accounts", err)
	}
	return accounts, nil
}

func (r *PgxReconciliationRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.ReconciliationSession, error) {
	session, err := scanSession(r.Pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM reconciliation_sessions WHERE session_id = $1;`, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reconciliation session "+sessionID, err)
	}
	return &session, nil
}

func (r *PgxReconciliationRepository) ListItems(ctx context.Context, sessionID string) ([]domain.ReconciliationItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM reconciliation_items
		WHERE session_id = $1
		ORDER BY transaction_date, source_type, created_at, item_id;
	`, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list items of session "+sessionID, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read items of session "+sessionID, err)
	}
	return items, nil
}

func (r *PgxReconciliationRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.ReconciliationItem, error) {
	byID := make(map[string]domain.ReconciliationItem, len(itemIDs))
	if len(itemIDs) == 0 {
		return byID, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+itemColumns+` FROM reconciliation_items WHERE item_id = ANY($1);`, itemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reconciliation items", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read reconciliation items", err)
	}
	for _, item := range items {
		byID[item.ItemID] = item
	}
	return byID, nil
}

// OpenSession is idempotent per bank account and as-of date.
func (r *PgxReconciliationRepository) OpenSession(ctx context.Context, session domain.ReconciliationSession) (*domain.ReconciliationSession, error) {
	m := mapping.ToModelSession(session)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO reconciliation_sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (bank_account_id, as_of_date) DO NOTHING;
	`, m.SessionID, m.WorkplaceID, m.BankAccountID, m.PeriodStart, m.AsOfDate, m.StatementOpeningBalance,
		m.StatementClosingBalance, m.BookBalance, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to open reconciliation session", err)
	}

	stored, err := scanSession(r.Pool.QueryRow(ctx, `
		SELECT `+sessionColumns+` FROM reconciliation_sessions WHERE bank_account_id = $1 AND as_of_date = $2;
	`, m.BankAccountID, m.AsOfDate))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read opened reconciliation session", err)
	}
	return &stored, nil
}

// lockOpenSession locks a session row and refuses closed sessions.
func lockOpenSession(ctx context.Context, tx pgx.Tx, sessionID string) (domain.ReconciliationSession, error) {
	session, err := scanSession(tx.QueryRow(ctx, `SELECT `+sessionColumns+` FROM reconciliation_sessions WHERE session_id = $1 FOR UPDATE;`, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session, apperrors.ErrNotFound
		}
		return session, apperrors.NewAppError(500, "failed to lock reconciliation session "+sessionID, err)
	}
	if session.Status != domain.SessionOpen {
		return session, apperrors.NewConflictError(apperrors.ErrSessionClosed, "session "+sessionID, "status is %s", session.Status)
	}
	return session, nil
}

// SyncBookItems upserts book items by natural key. Book items whose key is
// no longer produced are removed, and any bank item matched to one of them
// is released back to outstanding first.
func (r *PgxReconciliationRepository) SyncBookItems(ctx context.Context, sessionID string, items []domain.ReconciliationItem, bookBalance decimal.Decimal) (domain.SyncResult, error) {
	result := domain.SyncResult{BookBalance: bookBalance}

	tx, err := r.Begin(ctx)
	if err != nil {
		return result, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockOpenSession(ctx, tx, sessionID); err != nil {
		return result, err
	}

	upsert := `
		INSERT INTO reconciliation_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NULL, $8, $9, $10)
		ON CONFLICT (session_id, natural_key) DO UPDATE
		SET source_line_id = EXCLUDED.source_line_id, movement_type = EXCLUDED.movement_type
		RETURNING (xmax = 0);
	`
	keys := make([]string, 0, len(items))
	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelItem(item)
		keys = append(keys, m.NaturalKey)
		batch.Queue(upsert, m.ItemID, sessionID, m.SourceType, m.MovementType, m.TransactionDate, m.Description, m.Amount,
			nullString(m.NaturalKey), nullString(m.SourceLineID), m.CreatedAt)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			var inserted bool
			if err := br.QueryRow().Scan(&inserted); err != nil {
				br.Close()
				return result, apperrors.NewAppError(500, "failed to upsert book item "+keys[i], err)
			}
			if inserted {
				result.Inserted++
			} else {
				result.Kept++
			}
		}
		if err := br.Close(); err != nil {
			return result, apperrors.NewAppError(500, "failed to close book item batch", err)
		}
	}

	ct, err := tx.Exec(ctx, `
		UPDATE reconciliation_items SET matched_item_id = NULL, is_reconciled = FALSE
		WHERE session_id = $1 AND item_id IN (
			SELECT matched_item_id FROM reconciliation_items
			WHERE session_id = $1 AND source_type = $2 AND matched_item_id IS NOT NULL
			  AND NOT (natural_key = ANY($3))
		);
	`, sessionID, string(domain.BookSource), keys)
	if err != nil {
		return result, apperrors.NewAppError(500, "failed to release matches of stale book items", err)
	}
	result.Released = int(ct.RowsAffected())

	ct, err = tx.Exec(ctx, `
		DELETE FROM reconciliation_items
		WHERE session_id = $1 AND source_type = $2 AND NOT (natural_key = ANY($3));
	`, sessionID, string(domain.BookSource), keys)
	if err != nil {
		return result, apperrors.NewAppError(500, "failed to remove stale book items", err)
	}
	result.Removed = int(ct.RowsAffected())

	if _, err := tx.Exec(ctx, `UPDATE reconciliation_sessions SET book_balance = $2 WHERE session_id = $1;`, sessionID, bookBalance); err != nil {
		return result, apperrors.NewAppError(500, "failed to store book balance of session "+sessionID, err)
	}
	return result, r.Commit(ctx, tx)
}

func (r *PgxReconciliationRepository) InsertBankItems(ctx context.Context, sessionID string, items []domain.ReconciliationItem) error {
	query := `
		INSERT INTO reconciliation_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NULL, NULL, NULL, $8);
	`
	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockOpenSession(ctx, tx, sessionID); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, item := range items {
			m := mapping.ToModelItem(item)
			batch.Queue(query, m.ItemID, sessionID, m.SourceType, m.MovementType, m.TransactionDate, m.Description, m.Amount, m.CreatedAt)
		}
		if failed, err := execBatch(ctx, tx, batch); err != nil {
			if failed >= 0 {
				return apperrors.NewAppError(500, "failed to insert bank item "+items[failed].ItemID, err)
			}
			return apperrors.NewAppError(500, "failed to close bank item batch", err)
		}
		return nil
	})
}

// lockItems locks items in ID order and returns them keyed by ID.
func lockItems(ctx context.Context, tx pgx.Tx, sessionID string, itemIDs ...string) (map[string]domain.ReconciliationItem, error) {
	ids := slices.Clone(itemIDs)
	slices.Sort(ids)
	rows, err := tx.Query(ctx, `
		SELECT `+itemColumns+` FROM reconciliation_items
		WHERE session_id = $1 AND item_id = ANY($2)
		ORDER BY item_id
		FOR UPDATE;
	`, sessionID, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock reconciliation items", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read locked reconciliation items", err)
	}
	byID := make(map[string]domain.ReconciliationItem, len(items))
	for _, item := range items {
		byID[item.ItemID] = item
	}
	return byID, nil
}

// MatchItems re-checks both items under lock so two concurrent matches of
// the same item cannot both succeed.
func (r *PgxReconciliationRepository) MatchItems(ctx context.Context, sessionID string, bookItemID string, bankItemID string) error {
	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockOpenSession(ctx, tx, sessionID); err != nil {
			return err
		}
		items, err := lockItems(ctx, tx, sessionID, bookItemID, bankItemID)
		if err != nil {
			return err
		}
		for _, id := range []string{bookItemID, bankItemID} {
			item, ok := items[id]
			if !ok {
				return apperrors.ErrNotFound
			}
			if item.IsMatched() {
				return apperrors.NewConflictError(apperrors.ErrAlreadyMatched, "item "+id, "matched to %s", item.MatchedItemID)
			}
		}

		query := `UPDATE reconciliation_items SET matched_item_id = $2, is_reconciled = TRUE WHERE item_id = $1;`
		if _, err := tx.Exec(ctx, query, bookItemID, bankItemID); err != nil {
			return apperrors.NewAppError(500, "failed to match book item "+bookItemID, err)
		}
		if _, err := tx.Exec(ctx, query, bankItemID, bookItemID); err != nil {
			return apperrors.NewAppError(500, "failed to match bank item "+bankItemID, err)
		}
		return nil
	})
}

// UnmatchItem clears the pair the item belongs to. Unmatched items are left alone.
func (r *PgxReconciliationRepository) UnmatchItem(ctx context.Context, sessionID string, itemID string) error {
	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockOpenSession(ctx, tx, sessionID); err != nil {
			return err
		}
		items, err := lockItems(ctx, tx, sessionID, itemID)
		if err != nil {
			return err
		}
		item, ok := items[itemID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if !item.IsMatched() {
			return nil
		}

		_, err = tx.Exec(ctx, `
			UPDATE reconciliation_items SET matched_item_id = NULL, is_reconciled = FALSE
			WHERE session_id = $1 AND item_id = ANY($2);
		`, sessionID, []string{itemID, item.MatchedItemID})
		if err != nil {
			return apperrors.NewAppError(500, "failed to unmatch item "+itemID, err)
		}
		return nil
	})
}

// CloseSession evaluates check against the locked session and its items.
func (r *PgxReconciliationRepository) CloseSession(ctx context.Context, sessionID string, check portsrepo.SessionCloseCheck, userID string, now time.Time) (*domain.ReconciliationSession, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	session, err := lockOpenSession(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `SELECT `+itemColumns+` FROM reconciliation_items WHERE session_id = $1;`, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read items of session "+sessionID, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read items of session "+sessionID, err)
	}
	if check != nil {
		if err := check(session, items); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE reconciliation_sessions SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE session_id = $1;
	`, sessionID, string(domain.SessionClosed), now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to close session "+sessionID, err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	session.Status = domain.SessionClosed
	session.LastUpdatedAt = now
	session.LastUpdatedBy = userID
	return &session, nil
}
