package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/models"
	"github.com/dmaskell/ledgerview-backend/pkg/helpers"
)

// applySort applies the definition's explicit sort, if any. Direction
// defaults to descending when sortBy is set without one. The sort is stable,
// so ties keep their aggregation order.
func applySort(cfg models.ReportConfig, points []dto.AggregatedDataPoint) {
	if cfg.SortBy == "" {
		return
	}
	asc := cfg.SortDirection == dto.SortAsc
	less := lessFor(cfg.SortBy)
	sort.SliceStable(points, func(i, j int) bool {
		if asc {
			return less(points[i], points[j])
		}
		return less(points[j], points[i])
	})
}

// Column accessors. Missing numeric fields compare as 0; string columns get
// locale-aware ordering.
var numericColumns = map[string]func(dto.AggregatedDataPoint) float64{
	dto.SortByValue:      func(p dto.AggregatedDataPoint) float64 { return p.Value },
	dto.SortByCount:      func(p dto.AggregatedDataPoint) float64 { return float64(helpers.Value(p.Count)) },
	dto.SortByPercentage: func(p dto.AggregatedDataPoint) float64 { return helpers.Value(p.Percentage) },
}

var stringColumns = map[string]func(dto.AggregatedDataPoint) string{
	dto.SortByLabel:       func(p dto.AggregatedDataPoint) string { return p.Label },
	dto.SortByDate:        func(p dto.AggregatedDataPoint) string { return p.Date },
	dto.SortByPayee:       func(p dto.AggregatedDataPoint) string { return p.Payee },
	dto.SortByDescription: func(p dto.AggregatedDataPoint) string { return p.Description },
	dto.SortByMemo:        func(p dto.AggregatedDataPoint) string { return p.Memo },
	dto.SortByCategory:    func(p dto.AggregatedDataPoint) string { return p.Category },
	dto.SortByAccount:     func(p dto.AggregatedDataPoint) string { return p.Account },
}

func lessFor(column string) func(a, b dto.AggregatedDataPoint) bool {
	if num, ok := numericColumns[column]; ok {
		return func(a, b dto.AggregatedDataPoint) bool { return num(a) < num(b) }
	}
	if str, ok := stringColumns[column]; ok {
		coll := collate.New(language.English, collate.Loose)
		return func(a, b dto.AggregatedDataPoint) bool {
			return coll.CompareString(str(a), str(b)) < 0
		}
	}
	// unknown column sorts like value
	return func(a, b dto.AggregatedDataPoint) bool { return a.Value < b.Value }
}
