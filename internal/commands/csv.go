package commands

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Chart CSV: code,name,account_type,parent_code,allow_posting,description
const (
	chartNumFields    = 6
	chartColCode      = 0
	chartColName      = 1
	chartColType      = 2
	chartColParent    = 3
	chartColAllowPost = 4
	chartColDesc      = 5
)

// Statement CSV: date,description,amount,direction,movement_type
const (
	statementNumFields   = 5
	statementColDate     = 0
	statementColDesc     = 1
	statementColAmount   = 2
	statementColDir      = 3
	statementColMovement = 4
)

// readRecords reads every record after the header. A record that cannot be
// read or has the wrong number of fields becomes a failure for its row and
// the rest of the file is still read. Rows are numbered from 1 after the header.
func readRecords(r io.Reader, numFields int, parse func(row int, rec []string) error) ([]domain.ImportFailure, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	failures := []domain.ImportFailure{}
	row := -1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return failures, nil
		}
		row++
		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return nil, err
		}
		if row == 0 {
			if err != nil {
				return nil, fmt.Errorf("reading header: %w", err)
			}
			continue
		}
		switch {
		case err != nil:
			err = parseErr.Err
		case len(rec) != numFields:
			err = fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
		default:
			err = parse(row, rec)
		}
		if err != nil {
			failures = append(failures, domain.ImportFailure{Identifier: fmt.Sprintf("row %d", row), Reason: err.Error()})
		}
	}
}

// ReadChartCSV reads chart rows after a header line. An empty allow_posting
// leaves the default to the chart. Rows that cannot be parsed are returned as
// failures next to the rows that could.
func ReadChartCSV(r io.Reader) ([]domain.ChartImportRow, []domain.ImportFailure, error) {
	rows := []domain.ChartImportRow{}
	failures, err := readRecords(r, chartNumFields, func(n int, rec []string) error {
		row := domain.ChartImportRow{
			Row:         n,
			Code:        strings.TrimSpace(rec[chartColCode]),
			Name:        strings.TrimSpace(rec[chartColName]),
			AccountType: domain.AccountType(strings.ToUpper(strings.TrimSpace(rec[chartColType]))),
			ParentCode:  strings.TrimSpace(rec[chartColParent]),
			Description: rec[chartColDesc],
		}
		if v := strings.TrimSpace(rec[chartColAllowPost]); v != "" {
			allow, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("parsing allow_posting %q: %w", v, err)
			}
			row.AllowPosting = &allow
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reading chart CSV: %w", err)
	}
	return rows, failures, nil
}

// ReadStatementCSV reads bank statement rows after a header line. When the
// direction column is empty the amount's sign decides it, so signed exports
// (negative = outflow) load as they are. Rows that cannot be parsed are
// returned as failures next to the rows that could.
func ReadStatementCSV(r io.Reader, dateLayout string) ([]domain.StatementMovement, []domain.ImportFailure, error) {
	movements := []domain.StatementMovement{}
	failures, err := readRecords(r, statementNumFields, func(n int, rec []string) error {
		m, err := parseStatementRow(rec, dateLayout)
		if err != nil {
			return err
		}
		m.Row = n
		movements = append(movements, m)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	return movements, failures, nil
}

// printImport writes the created count and every rejected row, file and
// service failures together in row order.
func printImport(w io.Writer, created int, failures ...[]domain.ImportFailure) error {
	var all []domain.ImportFailure
	for _, list := range failures {
		all = append(all, list...)
	}
	slices.SortStableFunc(all, func(a, b domain.ImportFailure) int {
		return cmp.Compare(failureRow(a), failureRow(b))
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "created\t%d\n", created)
	fmt.Fprintf(tw, "failed\t%d\n", len(all))
	for _, f := range all {
		fmt.Fprintf(tw, "  %s\t%s\n", f.Identifier, f.Reason)
	}
	return tw.Flush()
}

func failureRow(f domain.ImportFailure) int {
	var row int
	if _, err := fmt.Sscanf(f.Identifier, "row %d", &row); err != nil {
		return 0
	}
	return row
}

func parseStatementRow(rec []string, dateLayout string) (domain.StatementMovement, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(rec[statementColDate]))
	if err != nil {
		return domain.StatementMovement{}, fmt.Errorf("parsing date %q: %w", rec[statementColDate], err)
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[statementColAmount]), ",", ""))
	if err != nil {
		return domain.StatementMovement{}, fmt.Errorf("parsing amount %q: %w", rec[statementColAmount], err)
	}

	direction := domain.Direction(strings.ToUpper(strings.TrimSpace(rec[statementColDir])))
	if direction == "" {
		direction = domain.Inflow
		if amount.IsNegative() {
			direction = domain.Outflow
		}
	}

	return domain.StatementMovement{
		Date:         date,
		Description:  strings.TrimSpace(rec[statementColDesc]),
		Amount:       amount.Abs(),
		Direction:    direction,
		MovementType: domain.MovementType(strings.ToUpper(strings.TrimSpace(rec[statementColMovement]))),
	}, nil
}
