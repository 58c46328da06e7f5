package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// pendingRow is an import row waiting for its parent to exist.
type pendingRow struct {
	index int
	row   domain.ChartImportRow
}

func (p pendingRow) identifier() string {
	row := p.row.Row
	if row == 0 {
		row = p.index + 1
	}
	return fmt.Sprintf("row %d (code %s)", row, strings.TrimSpace(p.row.Code))
}

func (s *chartService) SeedDefaultChart(ctx context.Context, workplaceID string, userID string) (*domain.ChartImportResult, error) {
	return s.ImportChart(ctx, workplaceID, domain.DefaultChart(), domain.ImportExplicit, userID)
}

// ImportChart creates accounts row by row. Rows that fail are reported and the
// rest of the batch continues.
func (s *chartService) ImportChart(ctx context.Context, workplaceID string, rows []domain.ChartImportRow, mode domain.ChartImportMode, userID string) (*domain.ChartImportResult, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown import mode %q", apperrors.ErrValidation, mode)
	}

	existing, err := s.accountRepo.ListAccountHierarchy(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart for import",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	byCode := make(map[string]domain.Account, len(existing)+len(rows))
	for _, acc := range existing {
		byCode[acc.Code] = acc
	}

	result := &domain.ChartImportResult{Created: []domain.Account{}, Failures: []domain.ImportFailure{}}
	failedAt := make(map[string]int)
	fail := func(p pendingRow, reason string) {
		failedAt[p.identifier()] = p.index
		result.Failures = append(result.Failures, domain.ImportFailure{Identifier: p.identifier(), Reason: reason})
	}

	// Rows that can never succeed are rejected up front so later passes only
	// wait on parents.
	seen := make(map[string]bool, len(rows))
	normalized := make(map[string]string, len(byCode)+len(rows))
	if mode == domain.ImportInferFromCode {
		for _, code := range slices.Sorted(maps.Keys(byCode)) {
			if n := domain.NormalizeCode(code); normalized[n] == "" {
				normalized[n] = code
			}
		}
	}
	pending := make([]pendingRow, 0, len(rows))
	for i, row := range rows {
		p := pendingRow{index: i, row: row}
		code := strings.TrimSpace(row.Code)
		switch {
		case code == "":
			fail(p, "code is required")
		case strings.TrimSpace(row.Name) == "":
			fail(p, "name is required")
		case !row.AccountType.IsValid():
			fail(p, fmt.Sprintf("unknown account type %q", row.AccountType))
		case seen[code]:
			fail(p, apperrors.ErrDuplicateCode.Error()+" in this batch")
		case byCode[code].AccountID != "":
			fail(p, apperrors.ErrDuplicateCode.Error())
		case mode == domain.ImportInferFromCode && normalized[domain.NormalizeCode(code)] != "":
			fail(p, fmt.Sprintf("code reads the same as %s once separators are removed", normalized[domain.NormalizeCode(code)]))
		default:
			seen[code] = true
			if mode == domain.ImportInferFromCode {
				normalized[domain.NormalizeCode(code)] = code
			}
			pending = append(pending, p)
		}
	}

	create := func(p pendingRow, parent *domain.Account) {
		acc, err := s.createAccount(ctx, workplaceID, newAccountParams{
			Code:         p.row.Code,
			Name:         p.row.Name,
			Description:  p.row.Description,
			AccountType:  p.row.AccountType,
			AllowPosting: p.row.AllowPosting,
		}, parent, userID)
		if err != nil {
			if !apperrors.IsCallerError(err) {
				s.LogError(ctx, err, "Import row failed", slog.String("row", p.identifier()))
			}
			fail(p, err.Error())
			return
		}
		byCode[acc.Code] = *acc
		if parent != nil && parent.AllowPosting {
			demoted := byCode[parent.Code]
			demoted.AllowPosting = false
			byCode[parent.Code] = demoted
		}
		result.Created = append(result.Created, *acc)
	}

	switch mode {
	case domain.ImportExplicit:
		s.importExplicit(pending, byCode, create, fail)
	case domain.ImportInferFromCode:
		s.importInferred(pending, byCode, create)
	}

	slices.SortStableFunc(result.Failures, func(a, b domain.ImportFailure) int {
		return failedAt[a.Identifier] - failedAt[b.Identifier]
	})
	s.LogInfo(ctx, "Chart import finished",
		slog.String("workplace_id", workplaceID),
		slog.String("mode", string(mode)),
		slog.Int("created", len(result.Created)),
		slog.Int("failed", len(result.Failures)))
	return result, nil
}

// importExplicit resolves ParentCode against existing and already imported
// accounts, repeating passes until no row makes progress.
func (s *chartService) importExplicit(pending []pendingRow, byCode map[string]domain.Account, create func(pendingRow, *domain.Account), fail func(pendingRow, string)) {
	for len(pending) > 0 {
		var waiting []pendingRow
		for _, p := range pending {
			parentCode := strings.TrimSpace(p.row.ParentCode)
			if parentCode == "" {
				create(p, nil)
				continue
			}
			parent, ok := byCode[parentCode]
			if !ok {
				waiting = append(waiting, p)
				continue
			}
			create(p, &parent)
		}
		if len(waiting) == len(pending) {
			for _, p := range waiting {
				fail(p, fmt.Sprintf("parent code %s not found", strings.TrimSpace(p.row.ParentCode)))
			}
			return
		}
		pending = waiting
	}
}

// importInferred orders rows by the level guessed from their code and hangs
// each row under the known account whose code is its longest proper prefix.
// Candidates are scanned in code order so ties between existing accounts that
// normalise alike always resolve to the lowest code.
func (s *chartService) importInferred(pending []pendingRow, byCode map[string]domain.Account, create func(pendingRow, *domain.Account)) {
	slices.SortStableFunc(pending, func(a, b pendingRow) int {
		la, lb := domain.InferLevelFromCode(a.row.Code), domain.InferLevelFromCode(b.row.Code)
		if la != lb {
			return la - lb
		}
		return strings.Compare(domain.NormalizeCode(a.row.Code), domain.NormalizeCode(b.row.Code))
	})

	for _, p := range pending {
		code := domain.NormalizeCode(p.row.Code)
		var parent *domain.Account
		bestLen := 0
		for _, known := range slices.Sorted(maps.Keys(byCode)) {
			acc := byCode[known]
			candidate := domain.NormalizeCode(acc.Code)
			if len(candidate) > bestLen && len(candidate) < len(code) && strings.HasPrefix(code, candidate) {
				a := acc
				parent = &a
				bestLen = len(candidate)
			}
		}
		create(p, parent)
	}
}
