package services

import "github.com/dmaskell/ledgerview-backend/internal/models"

// ExpandedUnit is the atomic monetary item aggregation operates on: a whole
// entry, or one allocation of a split entry. Split is nil for whole entries.
// Every grouping strategy and the row lister consume only ExpandedUnits, so
// split-awareness lives here and nowhere else.
type ExpandedUnit struct {
	Entry *models.LedgerEntry
	Split *models.SplitAllocation
}

// expandEntries normalizes entries into units. A split entry yields one unit
// per allocation; its parent amount and category are never used downstream.
func expandEntries(entries []*models.LedgerEntry) []ExpandedUnit {
	units := make([]ExpandedUnit, 0, len(entries))
	for _, e := range entries {
		if e.IsSplit && len(e.Splits) > 0 {
			for i := range e.Splits {
				units = append(units, ExpandedUnit{Entry: e, Split: &e.Splits[i]})
			}
			continue
		}
		units = append(units, ExpandedUnit{Entry: e})
	}
	return units
}

func (u ExpandedUnit) Amount() float64 {
	if u.Split != nil {
		return u.Split.Amount
	}
	return u.Entry.Amount
}

func (u ExpandedUnit) CategoryID() string {
	if u.Split != nil {
		return u.Split.CategoryID
	}
	return u.Entry.CategoryID
}

// Memo is only present on split allocations.
func (u ExpandedUnit) Memo() string {
	if u.Split != nil {
		return u.Split.Memo
	}
	return ""
}

func (u ExpandedUnit) Currency() string {
	return u.Entry.Currency
}
