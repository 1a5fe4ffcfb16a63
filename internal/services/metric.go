package services

import (
	"math"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
)

// round2 rounds half away from zero at 2 decimal places. Every rounded value
// in the pipeline goes through here so results don't drift between call
// sites.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// metricValue converts a group's raw sum and count into the requested output
// value.
func metricValue(metric string, sum float64, count int) float64 {
	switch metric {
	case dto.MetricCount:
		return float64(count)
	case dto.MetricAverage:
		if count == 0 {
			return 0
		}
		return round2(sum / float64(count))
	default: // totalAmount, none
		return round2(sum)
	}
}
