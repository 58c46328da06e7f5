package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// maxNumberingAttempts bounds retries when a concurrent insert takes the same entry number.
const maxNumberingAttempts = 3

const entryColumns = `entry_id, workplace_id, entry_number, entry_type, entry_date, description, reference, status,
	total_debit, total_credit, version, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxJournalRepository creates a new repository for journal entries and lines.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.WorkplaceID,
		&m.EntryNumber,
		&m.EntryType,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return mapping.ToDomainJournalEntry(m), nil
}

// CreateEntry numbers and stores an entry with its lines and applies the
// balance changes in one transaction.
func (r *PgxJournalRepository) CreateEntry(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	var err error
	for attempt := 1; attempt <= maxNumberingAttempts; attempt++ {
		err = r.createEntryOnce(ctx, entry, balanceChanges)
		if err == nil || !isUniqueViolationOn(err, "uq_journal_entries_number") {
			return err
		}
		slog.WarnContext(ctx, "Entry number taken concurrently, retrying",
			slog.String("entry_id", entry.EntryID),
			slog.Int("attempt", attempt))
	}
	return err
}

func (r *PgxJournalRepository) createEntryOnce(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	number, err := r.nextEntryNumber(ctx, tx, entry.WorkplaceID, domain.EntryNumberPrefix(entry.EntryType, entry.EntryDate))
	if err != nil {
		return err
	}

	m := mapping.ToModelJournalEntry(*entry)
	m.EntryNumber = number
	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`,
		m.EntryID,
		m.WorkplaceID,
		m.EntryNumber,
		m.EntryType,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return err
	}
	if entry.Status == domain.Posted {
		if err := r.applyBalanceChanges(ctx, tx, entry.WorkplaceID, entry.Lines, balanceChanges, m.CreatedBy, m.CreatedAt); err != nil {
			return err
		}
	}
	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	entry.EntryNumber = number
	return nil
}

// nextEntryNumber serialises numbering per workplace and prefix with a
// transaction-scoped advisory lock, then takes the highest sequence plus one.
func (r *PgxJournalRepository) nextEntryNumber(ctx context.Context, tx pgx.Tx, workplaceID, prefix string) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, workplaceID+"|"+prefix); err != nil {
		return "", apperrors.NewAppError(500, "failed to lock entry numbering for "+prefix, err)
	}
	rows, err := tx.Query(ctx, `
		SELECT entry_number FROM journal_entries
		WHERE workplace_id = $1 AND entry_number LIKE $2;
	`, workplaceID, prefix+"%")
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to read entry numbers for "+prefix, err)
	}
	defer rows.Close()

	highest := 0
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return "", apperrors.NewAppError(500, "failed to scan entry number", err)
		}
		if seq, ok := domain.ParseEntrySequence(prefix, number); ok && seq > highest {
			highest = seq
		}
	}
	if err := rows.Err(); err != nil {
		return "", apperrors.NewAppError(500, "error iterating entry numbers", err)
	}
	return domain.FormatEntryNumber(prefix, highest+1), nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	query := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, line_number, debit_amount, credit_amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query, m.LineID, m.EntryID, m.AccountID, m.LineNumber, m.DebitAmount, m.CreditAmount, m.Description)
	}
	if failed, err := execBatch(ctx, tx, batch); err != nil {
		if failed >= 0 {
			return apperrors.NewAppError(500, "failed to insert journal line "+lines[failed].LineID, err)
		}
		return apperrors.NewAppError(500, "failed to close journal line batch", err)
	}
	return nil
}

// applyBalanceChanges row-locks every account the posting touches, re-checks
// posting eligibility of the lines on the locked rows and then moves the
// balances. postedLines is nil for changes that only undo earlier postings.
// A concurrent demotion or deactivation either commits before the lock is
// granted, and is seen here, or waits until this transaction ends.
func (r *PgxJournalRepository) applyBalanceChanges(ctx context.Context, tx pgx.Tx, workplaceID string, postedLines []domain.JournalLine, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	ids := make([]string, 0, len(balanceChanges)+len(postedLines))
	for id := range balanceChanges {
		ids = append(ids, id)
	}
	for _, line := range postedLines {
		ids = append(ids, line.AccountID)
	}
	if len(ids) == 0 {
		return nil
	}
	locked, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return err
	}
	if err := domain.CheckPostable(workplaceID, postedLines, locked); err != nil {
		return err
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := scanEntry(r.Pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE entry_id = $1;`, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT line_id, entry_id, account_id, line_number, debit_amount, credit_amount, description
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of entry "+entryID, err)
	}
	defer rows.Close()

	entry.Lines = []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.LineNumber, &m.DebitAmount, &m.CreditAmount, &m.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line of entry "+entryID, err)
		}
		entry.Lines = append(entry.Lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating lines of entry "+entryID, err)
	}
	return &entry, nil
}

// ListEntries pages through a workplace's entries, newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, workplaceID string, status domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE workplace_id = $1`
	args := []any{workplaceID}
	if status != "" {
		args = append(args, string(status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID)
		n := len(args)
		query += ` AND (entry_date, created_at, entry_id) < ($` + strconv.Itoa(n-2) + `, $` + strconv.Itoa(n-1) + `, $` + strconv.Itoa(n) + `)`
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries for workplace "+workplaceID, err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry for workplace "+workplaceID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entries for workplace "+workplaceID, err)
	}

	var next *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeEntryCursor(pagination.EntryCursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
		next = &token
		entries = entries[:limit]
	}
	return entries, next, nil
}

func (r *PgxJournalRepository) FindLineRevisions(ctx context.Context, entryID string) ([]domain.LineRevision, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, version, lines, replaced_at, replaced_by
		FROM journal_line_revisions
		WHERE entry_id = $1
		ORDER BY version;
	`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line revisions of entry "+entryID, err)
	}
	defer rows.Close()

	revisions := []domain.LineRevision{}
	for rows.Next() {
		var m models.LineRevision
		if err := rows.Scan(&m.EntryID, &m.Version, &m.Lines, &m.ReplacedAt, &m.ReplacedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line revision of entry "+entryID, err)
		}
		rev, err := mapping.ToDomainLineRevision(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode line revision", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line revisions of entry "+entryID, err)
	}
	return revisions, nil
}

type lockedEntry struct {
	Number      string
	WorkplaceID string
	Status      domain.EntryStatus
	Version     int
}

// lockEntry reads the header fields an update checks, under a row lock.
func lockEntry(ctx context.Context, tx pgx.Tx, entryID string) (lockedEntry, error) {
	var e lockedEntry
	err := tx.QueryRow(ctx, `
		SELECT entry_number, workplace_id, status, version FROM journal_entries WHERE entry_id = $1 FOR UPDATE;
	`, entryID).Scan(&e.Number, &e.WorkplaceID, &e.Status, &e.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lockedEntry{}, apperrors.ErrNotFound
		}
		return lockedEntry{}, apperrors.NewAppError(500, "failed to lock journal entry "+entryID, err)
	}
	return e, nil
}

func (r *PgxJournalRepository) TransitionEntry(ctx context.Context, t domain.EntryTransition) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockEntry(ctx, tx, t.EntryID)
	if err != nil {
		return err
	}
	if locked.Status != t.From {
		rule := apperrors.ErrAlreadyReversed
		if t.From == domain.Draft {
			rule = apperrors.ErrNotDraft
		}
		return apperrors.NewConflictError(rule, locked.Number, "status is %s", locked.Status)
	}
	if locked.Version != t.Version {
		return apperrors.NewConflictError(apperrors.ErrConcurrentModification, locked.Number, "expected version %d, current %d", t.Version, locked.Version)
	}

	var postedLines []domain.JournalLine
	if t.To == domain.Posted {
		if postedLines, err = r.linesInTx(ctx, tx, t.EntryID); err != nil {
			return err
		}
	}
	if err := r.applyBalanceChanges(ctx, tx, locked.WorkplaceID, postedLines, t.BalanceChanges, t.UpdatedBy, t.UpdatedAt); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		UPDATE journal_entries
		SET status = $2, version = version + 1, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1;
	`, t.EntryID, string(t.To), t.UpdatedAt, t.UpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of entry "+t.EntryID, err)
	}
	return r.Commit(ctx, tx)
}

// ReplaceLines snapshots the current lines, swaps in the new set and, for
// posted entries, applies the balance delta.
func (r *PgxJournalRepository) ReplaceLines(ctx context.Context, rep domain.LineReplacement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockEntry(ctx, tx, rep.EntryID)
	if err != nil {
		return err
	}
	if locked.Status == domain.Reversed {
		return apperrors.NewConflictError(apperrors.ErrAlreadyReversed, locked.Number, "reversed entries cannot be edited")
	}
	if locked.Version != rep.Version {
		return apperrors.NewConflictError(apperrors.ErrConcurrentModification, locked.Number, "expected version %d, current %d", rep.Version, locked.Version)
	}

	old, err := r.linesInTx(ctx, tx, rep.EntryID)
	if err != nil {
		return err
	}
	revision, err := mapping.ToModelLineRevision(domain.LineRevision{
		EntryID:    rep.EntryID,
		Version:    locked.Version,
		Lines:      old,
		ReplacedAt: rep.UpdatedAt,
		ReplacedBy: rep.UpdatedBy,
	})
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode line revision", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO journal_line_revisions (entry_id, version, lines, replaced_at, replaced_by)
		VALUES ($1, $2, $3, $4, $5);
	`, revision.EntryID, revision.Version, revision.Lines, revision.ReplacedAt, revision.ReplacedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to store line revision of entry "+rep.EntryID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, rep.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to clear lines of entry "+rep.EntryID, err)
	}
	if err := insertLines(ctx, tx, rep.Lines); err != nil {
		return err
	}

	if locked.Status == domain.Posted {
		if err := r.applyBalanceChanges(ctx, tx, locked.WorkplaceID, rep.Lines, rep.BalanceChanges, rep.UpdatedBy, rep.UpdatedAt); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE journal_entries
		SET total_debit = $2, total_credit = $3, version = version + 1, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`, rep.EntryID, rep.TotalDebit, rep.TotalCredit, rep.UpdatedAt, rep.UpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update totals of entry "+rep.EntryID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) linesInTx(ctx context.Context, tx pgx.Tx, entryID string) ([]domain.JournalLine, error) {
	rows, err := tx.Query(ctx, `
		SELECT line_id, entry_id, account_id, line_number, debit_amount, credit_amount, description
		FROM journal_lines WHERE entry_id = $1 ORDER BY line_number;
	`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read lines of entry "+entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.LineNumber, &m.DebitAmount, &m.CreditAmount, &m.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line of entry "+entryID, err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating lines of entry "+entryID, err)
	}
	slices.SortFunc(lines, func(a, b domain.JournalLine) int { return a.LineNumber - b.LineNumber })
	return lines, nil
}
