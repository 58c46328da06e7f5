package accounting

import (
	"fmt"
	"slices"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedContribution applies the normal-balance sign rule to one line:
// DEBIT-normal accounts gain debit - credit, CREDIT-normal accounts gain credit - debit.
func SignedContribution(normal domain.NormalBalance, debit, credit decimal.Decimal) decimal.Decimal {
	if normal == domain.CreditNormal {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// BalanceEffects sums the signed effect of lines per account.
// Every line account must be present in accounts.
func BalanceEffects(lines []domain.JournalLine, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	effects := make(map[string]decimal.Decimal)
	for _, l := range lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s missing while computing balance effects", l.AccountID)
		}
		current, found := effects[l.AccountID]
		if !found {
			current = decimal.Zero
		}
		effects[l.AccountID] = current.Add(SignedContribution(acc.NormalBalance, l.DebitAmount, l.CreditAmount))
	}
	return effects, nil
}

// Negate flips the sign of every effect, e.g. to undo a posted entry.
func Negate(effects map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(effects))
	for id, v := range effects {
		out[id] = v.Neg()
	}
	return out
}

// Delta returns next - prev per account, dropping accounts that net to zero.
func Delta(prev, next map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for id, v := range next {
		out[id] = v
	}
	for id, v := range prev {
		if cur, ok := out[id]; ok {
			out[id] = cur.Sub(v)
		} else {
			out[id] = v.Neg()
		}
	}
	for id, v := range out {
		if v.IsZero() {
			delete(out, id)
		}
	}
	return out
}

// SortedAccountIDs returns the keys of a balance change set in ascending
// order, which is the order rows are locked and updated in.
func SortedAccountIDs(changes map[string]decimal.Decimal) []string {
	ids := make([]string, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
