package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository aggregates journal lines joined to their entries.
type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{pool: pool}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// lineFilter builds the shared WHERE clause over journal_lines l joined to
// journal_entries e. Zero range bounds are left open.
func lineFilter(workplaceID string, status domain.EntryStatus, rng domain.DateRange) (string, []any) {
	args := []any{workplaceID, string(status)}
	clause := `e.workplace_id = $1 AND e.status = $2`
	if !rng.From.IsZero() {
		args = append(args, domain.DateOnly(rng.From))
		clause += ` AND e.entry_date >= $` + strconv.Itoa(len(args))
	}
	if !rng.To.IsZero() {
		args = append(args, domain.DateOnly(rng.To))
		clause += ` AND e.entry_date <= $` + strconv.Itoa(len(args))
	}
	return clause, args
}

func (r *PgxLedgerRepository) SumAccountLines(ctx context.Context, workplaceID string, accountIDs []string, status domain.EntryStatus, rng domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	if len(accountIDs) == 0 {
		return decimal.Zero, decimal.Zero, nil
	}
	clause, args := lineFilter(workplaceID, status, rng)
	args = append(args, accountIDs)
	query := `
		SELECT COALESCE(SUM(l.debit_amount), 0), COALESCE(SUM(l.credit_amount), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE ` + clause + ` AND l.account_id = ANY($` + strconv.Itoa(len(args)) + `);
	`
	var debit, credit decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum account lines", err)
	}
	return debit, credit, nil
}

// ListLedgerLines reads one keyset page of an account's posted lines.
func (r *PgxLedgerRepository) ListLedgerLines(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, after *domain.LedgerCursor, limit int) ([]domain.LedgerRow, error) {
	if limit <= 0 {
		limit = 200
	}
	clause, args := lineFilter(workplaceID, domain.Posted, rng)
	args = append(args, accountID)
	clause += ` AND l.account_id = $` + strconv.Itoa(len(args))
	if after != nil {
		args = append(args, after.EntryDate, after.CreatedAt, after.EntryNumber, after.LineNumber)
		n := len(args)
		clause += ` AND (e.entry_date, e.created_at, e.entry_number, l.line_number) > ($` +
			strconv.Itoa(n-3) + `, $` + strconv.Itoa(n-2) + `, $` + strconv.Itoa(n-1) + `, $` + strconv.Itoa(n) + `)`
	}
	args = append(args, limit)
	query := `
		SELECT e.entry_id, e.entry_number, e.entry_date, e.created_at, l.line_id, l.line_number, l.account_id,
		       COALESCE(NULLIF(l.description, ''), e.description), l.debit_amount, l.credit_amount
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE ` + clause + `
		ORDER BY e.entry_date, e.created_at, e.entry_number, l.line_number
		LIMIT $` + strconv.Itoa(len(args)) + `;
	`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger of account "+accountID, err)
	}
	defer rows.Close()

	ledger := make([]domain.LedgerRow, 0, limit)
	for rows.Next() {
		var row domain.LedgerRow
		if err := rows.Scan(&row.EntryID, &row.EntryNumber, &row.EntryDate, &row.CreatedAt, &row.LineID, &row.LineNumber,
			&row.AccountID, &row.Description, &row.DebitAmount, &row.CreditAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row of account "+accountID, err)
		}
		ledger = append(ledger, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger of account "+accountID, err)
	}
	return ledger, nil
}

func (r *PgxLedgerRepository) AccountTotals(ctx context.Context, workplaceID string, rng domain.DateRange, status domain.EntryStatus) ([]domain.AccountTotal, error) {
	clause, args := lineFilter(workplaceID, status, rng)
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type, a.normal_balance,
		       SUM(l.debit_amount), SUM(l.credit_amount)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE ` + clause + `
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.normal_balance
		ORDER BY a.code;
	`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute account totals for workplace "+workplaceID, err)
	}
	defer rows.Close()

	totals := []domain.AccountTotal{}
	for rows.Next() {
		var t domain.AccountTotal
		if err := rows.Scan(&t.AccountID, &t.Code, &t.Name, &t.AccountType, &t.NormalBalance, &t.TotalDebit, &t.TotalCredit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account total", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account totals", err)
	}
	return totals, nil
}

// RebuildBalances recomputes every cached balance of a workplace from its
// posted lines in a single statement.
func (r *PgxLedgerRepository) RebuildBalances(ctx context.Context, workplaceID string) (int64, error) {
	query := `
		WITH computed AS (
			SELECT a.account_id,
			       CASE WHEN a.normal_balance = 'CREDIT'
			            THEN COALESCE(SUM(l.credit_amount - l.debit_amount), 0)
			            ELSE COALESCE(SUM(l.debit_amount - l.credit_amount), 0)
			       END AS balance
			FROM accounts a
			LEFT JOIN journal_lines l ON l.account_id = a.account_id
			     AND EXISTS (SELECT 1 FROM journal_entries e WHERE e.entry_id = l.entry_id AND e.status = $2)
			WHERE a.workplace_id = $1
			GROUP BY a.account_id, a.normal_balance
		)
		UPDATE accounts a
		SET balance = c.balance
		FROM computed c
		WHERE a.account_id = c.account_id AND a.balance <> c.balance;
	`
	ct, err := r.pool.Exec(ctx, query, workplaceID, string(domain.Posted))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to rebuild balances for workplace "+workplaceID, err)
	}
	return ct.RowsAffected(), nil
}
