package domain

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/ledger_core/internal/apperrors"
)

// HierarchyChange is the full effect of moving an account under a new parent.
// It is applied by storage as one unit.
type HierarchyChange struct {
	AccountID      string
	NewParentID    string         // "" moves the account to the top level
	Levels         map[string]int // new level of the moved account and every descendant
	DisablePosting []string       // accounts that land on a control level while still posting
	UpdatedBy      string
	UpdatedAt      time.Time
}

// HierarchyPlan computes a HierarchyChange from the chart as storage sees it
// once the chart is locked. Storage applies whatever change the plan returns.
type HierarchyPlan func(tree *AccountTree) (HierarchyChange, error)

// AccountTree is an explicit parent/child index over one workplace's chart.
type AccountTree struct {
	accounts map[string]Account
	children map[string][]string
}

// NewAccountTree indexes accounts by id and by parent. Children are kept in code order.
func NewAccountTree(accounts []Account) *AccountTree {
	t := &AccountTree{
		accounts: make(map[string]Account, len(accounts)),
		children: make(map[string][]string),
	}
	for _, a := range accounts {
		t.accounts[a.AccountID] = a
	}
	for _, a := range accounts {
		if a.ParentAccountID != "" {
			t.children[a.ParentAccountID] = append(t.children[a.ParentAccountID], a.AccountID)
		}
	}
	for parent, kids := range t.children {
		slices.SortFunc(kids, func(x, y string) int {
			return strings.Compare(t.accounts[x].Code, t.accounts[y].Code)
		})
		t.children[parent] = kids
	}
	return t
}

// Account looks up an indexed account.
func (t *AccountTree) Account(accountID string) (Account, bool) {
	a, ok := t.accounts[accountID]
	return a, ok
}

// Children returns the direct children of an account.
func (t *AccountTree) Children(accountID string) []string {
	return t.children[accountID]
}

// Descendants walks the subtree below rootID breadth first. The root itself
// is not included. A visited set keeps corrupted (cyclic) data from looping.
func (t *AccountTree) Descendants(rootID string) []string {
	var out []string
	visited := map[string]bool{rootID: true}
	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range t.children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}

// Subtree returns rootID followed by all of its descendants.
func (t *AccountTree) Subtree(rootID string) []string {
	return append([]string{rootID}, t.Descendants(rootID)...)
}

// PlanReparent computes the level cascade for moving accountID under
// newParentID without mutating anything. It fails with a cycle error when the
// new parent is the account itself or one of its descendants.
func (t *AccountTree) PlanReparent(accountID, newParentID string) (HierarchyChange, error) {
	moved, ok := t.accounts[accountID]
	if !ok {
		return HierarchyChange{}, apperrors.ErrNotFound
	}

	parentLevel := 0
	if newParentID != "" {
		if newParentID == accountID {
			return HierarchyChange{}, apperrors.NewConflictError(apperrors.ErrCycle, moved.Code, "account cannot be its own parent")
		}
		parent, ok := t.accounts[newParentID]
		if !ok {
			return HierarchyChange{}, apperrors.ErrNotFound
		}
		if slices.Contains(t.Descendants(accountID), newParentID) {
			return HierarchyChange{}, apperrors.NewConflictError(apperrors.ErrCycle, moved.Code, "new parent %s is a descendant", parent.Code)
		}
		parentLevel = parent.Level
	}

	change := HierarchyChange{
		AccountID:   accountID,
		NewParentID: newParentID,
		Levels:      map[string]int{accountID: LevelUnder(parentLevel)},
	}

	queue := []string{accountID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range t.children[current] {
			if _, seen := change.Levels[child]; seen {
				continue
			}
			change.Levels[child] = LevelUnder(change.Levels[current])
			queue = append(queue, child)
		}
	}

	for id, level := range change.Levels {
		if t.accounts[id].AllowPosting && !PostingAllowedAt(level, true) {
			change.DisablePosting = append(change.DisablePosting, id)
		}
	}
	slices.Sort(change.DisablePosting)
	return change, nil
}

func isCodeSeparator(r rune) bool {
	return r == '.' || r == '-' || unicode.IsSpace(r)
}

// InferLevelFromCode guesses a hierarchy depth from the shape of an account
// code. It is a presentation heuristic for imports without explicit parents:
// separated codes ("1.1.02") count segments, plain codes map their length
// (<=2 -> 1, <=4 -> 2, <=6 -> 3, <=8 -> 4, else 5).
func InferLevelFromCode(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return MinAccountLevel
	}
	if strings.IndexFunc(code, isCodeSeparator) >= 0 {
		return ClampLevel(len(strings.FieldsFunc(code, isCodeSeparator)))
	}
	switch n := len(code); {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n <= 6:
		return 3
	case n <= 8:
		return 4
	default:
		return 5
	}
}

// NormalizeCode strips separators so codes can be compared by prefix.
func NormalizeCode(code string) string {
	return strings.Join(strings.FieldsFunc(strings.TrimSpace(code), isCodeSeparator), "")
}
