package dto

import (
	"strings"

	"github.com/dmaskell/ledgerview-backend/internal/models"
)

// LedgerQuery is the compiled predicate handed to the ledger store. Date
// bounds run server-side; the clause list, direction, transfer and void
// rules are evaluated per entry via Matches, since Firestore cannot express
// the OR groups.
type LedgerQuery struct {
	DateFrom         string
	DateTo           string
	Direction        string
	IncludeTransfers bool
	Clauses          []FilterClause
}

// FilterClause is an OR of conditions. All clauses must match (AND).
type FilterClause struct {
	Conditions []models.FilterCondition
}

// Matches reports whether an entry satisfies the full predicate.
func (q LedgerQuery) Matches(e *models.LedgerEntry) bool {
	if e.Status == models.StatusVoid {
		return false
	}
	if e.Date < q.DateFrom || e.Date > q.DateTo {
		return false
	}
	switch q.Direction {
	case DirectionIncomeOnly:
		if e.Amount <= 0 {
			return false
		}
	case DirectionExpensesOnly:
		if e.Amount >= 0 {
			return false
		}
	}
	if e.IsTransfer && !q.IncludeTransfers {
		return false
	}
	for _, c := range q.Clauses {
		if !c.matches(e) {
			return false
		}
	}
	return true
}

func (c FilterClause) matches(e *models.LedgerEntry) bool {
	if len(c.Conditions) == 0 {
		return true
	}
	for _, cond := range c.Conditions {
		if conditionMatches(cond, e) {
			return true
		}
	}
	return false
}

func conditionMatches(cond models.FilterCondition, e *models.LedgerEntry) bool {
	switch cond.Field {
	case FieldAccount:
		return e.AccountID == cond.Value
	case FieldCategory:
		if e.CategoryID == cond.Value {
			return true
		}
		for _, s := range e.Splits {
			if s.CategoryID == cond.Value {
				return true
			}
		}
		return false
	case FieldPayee:
		return e.PayeeID == cond.Value
	case FieldText:
		needle := strings.ToLower(cond.Value)
		return strings.Contains(strings.ToLower(e.PayeeName), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle)
	}
	return false
}
