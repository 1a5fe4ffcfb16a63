package dto

import (
	"testing"

	"github.com/dmaskell/ledgerview-backend/internal/models"
)

func matchQuery() LedgerQuery {
	return LedgerQuery{DateFrom: "2024-01-01", DateTo: "2024-12-31"}
}

func entry() *models.LedgerEntry {
	return &models.LedgerEntry{
		EntryID:     "e1",
		AccountID:   "a1",
		Date:        "2024-03-10",
		Amount:      -42.50,
		CategoryID:  "c1",
		PayeeID:     "p1",
		PayeeName:   "Corner Cafe",
		Description: "morning espresso",
		Status:      models.StatusCleared,
	}
}

func TestMatches_VoidAlwaysExcluded(t *testing.T) {
	e := entry()
	e.Status = models.StatusVoid
	if matchQuery().Matches(e) {
		t.Error("void entries must never match")
	}
}

func TestMatches_PendingIncluded(t *testing.T) {
	e := entry()
	e.Status = models.StatusPending
	if !matchQuery().Matches(e) {
		t.Error("pending entries should match")
	}
}

func TestMatches_DateBounds(t *testing.T) {
	q := LedgerQuery{DateFrom: "2024-03-01", DateTo: "2024-03-31"}

	e := entry()
	e.Date = "2024-03-01"
	if !q.Matches(e) {
		t.Error("start date is inclusive")
	}
	e.Date = "2024-03-31"
	if !q.Matches(e) {
		t.Error("end date is inclusive")
	}
	e.Date = "2024-02-29"
	if q.Matches(e) {
		t.Error("before range should not match")
	}
	e.Date = "2024-04-01"
	if q.Matches(e) {
		t.Error("after range should not match")
	}
}

func TestMatches_Direction(t *testing.T) {
	income := matchQuery()
	income.Direction = DirectionIncomeOnly
	expenses := matchQuery()
	expenses.Direction = DirectionExpensesOnly

	e := entry()
	e.Amount = -10
	if income.Matches(e) {
		t.Error("outflow should not match incomeOnly")
	}
	if !expenses.Matches(e) {
		t.Error("outflow should match expensesOnly")
	}

	e.Amount = 10
	if !income.Matches(e) {
		t.Error("inflow should match incomeOnly")
	}
	if expenses.Matches(e) {
		t.Error("inflow should not match expensesOnly")
	}

	e.Amount = 0
	if income.Matches(e) || expenses.Matches(e) {
		t.Error("zero amount matches neither direction filter")
	}
}

func TestMatches_Transfers(t *testing.T) {
	e := entry()
	e.IsTransfer = true

	q := matchQuery()
	if q.Matches(e) {
		t.Error("transfers excluded by default")
	}
	q.IncludeTransfers = true
	if !q.Matches(e) {
		t.Error("transfers included when requested")
	}
}

func TestMatches_ClausesAreANDed(t *testing.T) {
	q := matchQuery()
	q.Clauses = []FilterClause{
		{Conditions: []models.FilterCondition{{Field: FieldAccount, Value: "a1"}}},
		{Conditions: []models.FilterCondition{{Field: FieldPayee, Value: "p2"}}},
	}
	if q.Matches(entry()) {
		t.Error("entry matching only one clause should fail")
	}

	q.Clauses[1].Conditions[0].Value = "p1"
	if !q.Matches(entry()) {
		t.Error("entry matching all clauses should pass")
	}
}

func TestMatches_ConditionsAreORed(t *testing.T) {
	q := matchQuery()
	q.Clauses = []FilterClause{
		{Conditions: []models.FilterCondition{
			{Field: FieldCategory, Value: "other"},
			{Field: FieldCategory, Value: "c1"},
		}},
	}
	if !q.Matches(entry()) {
		t.Error("one matching condition should satisfy the clause")
	}
}

func TestMatches_CategoryConditionSeesSplits(t *testing.T) {
	e := entry()
	e.IsSplit = true
	e.CategoryID = ""
	e.Splits = []models.SplitAllocation{
		{CategoryID: "groceries", Amount: -30},
		{CategoryID: "household", Amount: -12.50},
	}

	q := matchQuery()
	q.Clauses = []FilterClause{
		{Conditions: []models.FilterCondition{{Field: FieldCategory, Value: "household"}}},
	}
	if !q.Matches(e) {
		t.Error("split allocation category should satisfy a category condition")
	}
}

func TestMatches_TextIsCaseInsensitiveSubstring(t *testing.T) {
	q := matchQuery()
	q.Clauses = []FilterClause{
		{Conditions: []models.FilterCondition{{Field: FieldText, Value: "CAFE"}}},
	}
	if !q.Matches(entry()) {
		t.Error("text should match payee name case-insensitively")
	}

	q.Clauses[0].Conditions[0].Value = "ESPRESSO"
	if !q.Matches(entry()) {
		t.Error("text should match description case-insensitively")
	}

	q.Clauses[0].Conditions[0].Value = "pizza"
	if q.Matches(entry()) {
		t.Error("non-matching text should fail")
	}
}

func TestMatches_UnknownFieldNeverMatches(t *testing.T) {
	q := matchQuery()
	q.Clauses = []FilterClause{
		{Conditions: []models.FilterCondition{{Field: "amount", Value: "42"}}},
	}
	if q.Matches(entry()) {
		t.Error("unknown condition field should not match")
	}
}
