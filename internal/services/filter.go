package services

import (
	"strings"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

// compileQuery builds the ledger predicate for one execution: resolved date
// bounds, direction and transfer rules, plus the filter clauses. Void
// entries are always excluded by the predicate itself.
func compileQuery(def *models.ReportDefinition, tf dto.Timeframe) dto.LedgerQuery {
	return dto.LedgerQuery{
		DateFrom:         tf.StartDate,
		DateTo:           tf.EndDate,
		Direction:        def.Config.Direction,
		IncludeTransfers: def.Config.IncludeTransfers,
		Clauses:          filterModeOf(def.Filters).clauses(),
	}
}

// filterMode is the resolved form of a definition's filters: either the
// legacy flat fields or a filter-group tree, decided once so neither can
// double-apply.
type filterMode interface {
	clauses() []dto.FilterClause
}

func filterModeOf(f models.ReportFilters) filterMode {
	if len(f.FilterGroups) > 0 {
		return groupedFilters{groups: f.FilterGroups}
	}
	return legacyFilters{filters: f}
}

type groupedFilters struct {
	groups []models.FilterGroup
}

func (g groupedFilters) clauses() []dto.FilterClause {
	out := make([]dto.FilterClause, 0, len(g.groups))
	for _, grp := range g.groups {
		if len(grp.Conditions) == 0 {
			// empty group is a no-op, not "match nothing"
			continue
		}
		out = append(out, dto.FilterClause{Conditions: grp.Conditions})
	}
	return out
}

type legacyFilters struct {
	filters models.ReportFilters
}

func (l legacyFilters) clauses() []dto.FilterClause {
	var out []dto.FilterClause
	out = appendMembershipClause(out, dto.FieldAccount, l.filters.AccountIDs)
	out = appendMembershipClause(out, dto.FieldCategory, l.filters.CategoryIDs)
	out = appendMembershipClause(out, dto.FieldPayee, l.filters.PayeeIDs)
	if text := strings.TrimSpace(l.filters.SearchText); text != "" {
		out = append(out, dto.FilterClause{
			Conditions: []models.FilterCondition{{Field: dto.FieldText, Value: text}},
		})
	}
	return out
}

func appendMembershipClause(clauses []dto.FilterClause, field string, ids []string) []dto.FilterClause {
	if len(ids) == 0 {
		return clauses
	}
	conds := make([]models.FilterCondition, len(ids))
	for i, id := range ids {
		conds[i] = models.FilterCondition{Field: field, Value: id}
	}
	return append(clauses, dto.FilterClause{Conditions: conds})
}
