package services

import "github.com/dmaskell/ledgerview-backend/internal/dto"

// summarize computes the totals line across the final data points. A point
// without a count counts as one unit.
func summarize(points []dto.AggregatedDataPoint) dto.ReportSummary {
	var total float64
	var count int
	for _, p := range points {
		total += p.Value
		if p.Count != nil {
			count += *p.Count
		} else {
			count++
		}
	}
	var average float64
	if count > 0 {
		average = round2(total / float64(count))
	}
	return dto.ReportSummary{
		Total:   round2(total),
		Count:   count,
		Average: average,
	}
}
