package domain_test

import (
	"testing"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() []domain.Account {
	return []domain.Account{
		{AccountID: "a1", Code: "1", Level: 1},
		{AccountID: "a11", Code: "11", Level: 2, ParentAccountID: "a1"},
		{AccountID: "a1101", Code: "1101", Level: 3, ParentAccountID: "a11", AllowPosting: true},
		{AccountID: "a1102", Code: "1102", Level: 3, ParentAccountID: "a11", AllowPosting: true},
		{AccountID: "a2", Code: "2", Level: 1},
		{AccountID: "a21", Code: "21", Level: 2, ParentAccountID: "a2"},
	}
}

func TestAccountTree_Descendants(t *testing.T) {
	tree := domain.NewAccountTree(testChart())

	assert.Equal(t, []string{"a11", "a1101", "a1102"}, tree.Descendants("a1"))
	assert.Empty(t, tree.Descendants("a1101"))
	assert.Equal(t, []string{"a2", "a21"}, tree.Subtree("a2"))
}

func TestAccountTree_DescendantsSurvivesCorruptCycle(t *testing.T) {
	tree := domain.NewAccountTree([]domain.Account{
		{AccountID: "x", Code: "x", ParentAccountID: "y"},
		{AccountID: "y", Code: "y", ParentAccountID: "x"},
	})

	assert.Equal(t, []string{"y"}, tree.Descendants("x"))
}

func TestPlanReparent_CascadesLevels(t *testing.T) {
	tree := domain.NewAccountTree(testChart())

	change, err := tree.PlanReparent("a11", "a21")
	require.NoError(t, err)

	assert.Equal(t, "a21", change.NewParentID)
	assert.Equal(t, map[string]int{"a11": 3, "a1101": 4, "a1102": 4}, change.Levels)
	assert.Empty(t, change.DisablePosting)
}

func TestPlanReparent_ToTopLevelDisablesPosting(t *testing.T) {
	tree := domain.NewAccountTree(testChart())

	change, err := tree.PlanReparent("a1101", "")
	require.NoError(t, err)

	assert.Equal(t, 1, change.Levels["a1101"])
	assert.Equal(t, []string{"a1101"}, change.DisablePosting)
}

func TestPlanReparent_ClampsAtMaxLevel(t *testing.T) {
	chart := []domain.Account{
		{AccountID: "deep", Code: "deep", Level: 5},
		{AccountID: "moved", Code: "moved", Level: 1},
		{AccountID: "child", Code: "child", Level: 2, ParentAccountID: "moved"},
	}
	change, err := domain.NewAccountTree(chart).PlanReparent("moved", "deep")
	require.NoError(t, err)

	assert.Equal(t, 5, change.Levels["moved"])
	assert.Equal(t, 5, change.Levels["child"])
}

func TestPlanReparent_Cycle(t *testing.T) {
	tree := domain.NewAccountTree(testChart())

	_, err := tree.PlanReparent("a1", "a1101")
	assert.ErrorIs(t, err, apperrors.ErrCycle)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = tree.PlanReparent("a1", "a1")
	assert.ErrorIs(t, err, apperrors.ErrCycle)
}

func TestPlanReparent_UnknownParent(t *testing.T) {
	_, err := domain.NewAccountTree(testChart()).PlanReparent("a11", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInferLevelFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"1", 1},
		{"11", 1},
		{"110", 2},
		{"1101", 2},
		{"110101", 3},
		{"11010101", 4},
		{"1101010101", 5},
		{"1.1", 2},
		{"1.1.02", 3},
		{"1-1-02-003", 4},
		{"1 1 02 003 4 5", 5},
		{"", 1},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.InferLevelFromCode(tt.code))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "1102", domain.NormalizeCode("1.1-02"))
	assert.Equal(t, "1102", domain.NormalizeCode(" 1102 "))
}

func TestLevelRules(t *testing.T) {
	assert.Equal(t, 1, domain.LevelUnder(0))
	assert.Equal(t, 3, domain.LevelUnder(2))
	assert.Equal(t, 5, domain.LevelUnder(5))
	assert.False(t, domain.PostingAllowedAt(2, true))
	assert.True(t, domain.PostingAllowedAt(3, true))
	assert.False(t, domain.PostingAllowedAt(4, false))
}

func TestAccountType_NormalBalance(t *testing.T) {
	for _, typ := range []domain.AccountType{domain.Asset, domain.Cost, domain.Expense} {
		assert.Equal(t, domain.DebitNormal, typ.NormalBalance(), typ)
	}
	for _, typ := range []domain.AccountType{domain.Liability, domain.Equity, domain.Income} {
		assert.Equal(t, domain.CreditNormal, typ.NormalBalance(), typ)
	}
	assert.False(t, domain.AccountType("REVENUE").IsValid())
}
