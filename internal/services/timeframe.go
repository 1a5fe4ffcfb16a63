package services

import (
	"time"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

const dateLayout = "2006-01-02"

// resolveTimeframe turns a symbolic timeframe plus optional runtime overrides
// into a concrete date range and display label. The override request wins
// over the definition's saved values. now is injected so resolution is
// deterministic under test.
func resolveTimeframe(def *models.ReportDefinition, req dto.ExecuteReportRequest, now time.Time) (dto.Timeframe, error) {
	tfType := def.TimeframeType
	if req.TimeframeType != "" {
		tfType = req.TimeframeType
	}

	today := now.Format(dateLayout)

	switch tfType {
	case dto.TimeframeLast7Days:
		return dto.Timeframe{
			StartDate: now.AddDate(0, 0, -7).Format(dateLayout),
			EndDate:   today,
			Label:     "Last 7 Days",
		}, nil

	case dto.TimeframeLast30Days:
		return dto.Timeframe{
			StartDate: now.AddDate(0, 0, -30).Format(dateLayout),
			EndDate:   today,
			Label:     "Last 30 Days",
		}, nil

	case dto.TimeframeLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		lastOfPrev := firstOfMonth.AddDate(0, 0, -1)
		firstOfPrev := time.Date(lastOfPrev.Year(), lastOfPrev.Month(), 1, 0, 0, 0, 0, now.Location())
		return dto.Timeframe{
			StartDate: firstOfPrev.Format(dateLayout),
			EndDate:   lastOfPrev.Format(dateLayout),
			Label:     lastOfPrev.Format("January 2006"),
		}, nil

	case dto.TimeframeLast3Months:
		return dto.Timeframe{
			StartDate: now.AddDate(0, -3, 0).Format(dateLayout),
			EndDate:   today,
			Label:     "Last 3 Months",
		}, nil

	case dto.TimeframeLast6Months:
		return dto.Timeframe{
			StartDate: now.AddDate(0, -6, 0).Format(dateLayout),
			EndDate:   today,
			Label:     "Last 6 Months",
		}, nil

	case dto.TimeframeLast12Months:
		return dto.Timeframe{
			StartDate: now.AddDate(0, -12, 0).Format(dateLayout),
			EndDate:   today,
			Label:     "Last 12 Months",
		}, nil

	case dto.TimeframeLastYear:
		prevJan1 := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location())
		prevDec31 := time.Date(now.Year()-1, 12, 31, 0, 0, 0, 0, now.Location())
		return dto.Timeframe{
			StartDate: prevJan1.Format(dateLayout),
			EndDate:   prevDec31.Format(dateLayout),
			Label:     prevJan1.Format("2006"),
		}, nil

	case dto.TimeframeYearToDate:
		return dto.Timeframe{
			StartDate: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout),
			EndDate:   today,
			Label:     "Year to Date",
		}, nil

	case dto.TimeframeCustom:
		start := req.StartDate
		if start == "" {
			start = def.Config.CustomStartDate
		}
		end := req.EndDate
		if end == "" {
			end = def.Config.CustomEndDate
		}
		if start == "" || end == "" {
			return dto.Timeframe{}, errs.NewInvalidTimeframeError("custom timeframe requires both startDate and endDate")
		}
		return dto.Timeframe{
			StartDate: start,
			EndDate:   end,
			Label:     start + " to " + end,
		}, nil
	}

	return dto.Timeframe{}, errs.NewInvalidTimeframeError("unknown timeframe type: " + tfType)
}
