package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

// fixed reference time: Wednesday, 2024-03-13
var testNow = time.Date(2024, 3, 13, 10, 30, 0, 0, time.UTC)

func defWithTimeframe(tfType string) *models.ReportDefinition {
	return &models.ReportDefinition{TimeframeType: tfType}
}

func TestResolveTimeframe_Presets(t *testing.T) {
	tests := []struct {
		tfType    string
		wantStart string
		wantEnd   string
		wantLabel string
	}{
		{dto.TimeframeLast7Days, "2024-03-06", "2024-03-13", "Last 7 Days"},
		{dto.TimeframeLast30Days, "2024-02-12", "2024-03-13", "Last 30 Days"},
		{dto.TimeframeLastMonth, "2024-02-01", "2024-02-29", "February 2024"},
		{dto.TimeframeLast3Months, "2023-12-13", "2024-03-13", "Last 3 Months"},
		{dto.TimeframeLast6Months, "2023-09-13", "2024-03-13", "Last 6 Months"},
		{dto.TimeframeLast12Months, "2023-03-13", "2024-03-13", "Last 12 Months"},
		{dto.TimeframeLastYear, "2023-01-01", "2023-12-31", "2023"},
		{dto.TimeframeYearToDate, "2024-01-01", "2024-03-13", "Year to Date"},
	}
	for _, tc := range tests {
		t.Run(tc.tfType, func(t *testing.T) {
			tf, err := resolveTimeframe(defWithTimeframe(tc.tfType), dto.ExecuteReportRequest{}, testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tf.StartDate != tc.wantStart || tf.EndDate != tc.wantEnd {
				t.Errorf("got %s..%s, want %s..%s", tf.StartDate, tf.EndDate, tc.wantStart, tc.wantEnd)
			}
			if tf.Label != tc.wantLabel {
				t.Errorf("got label %q, want %q", tf.Label, tc.wantLabel)
			}
		})
	}
}

func TestResolveTimeframe_CustomFromDefinition(t *testing.T) {
	def := defWithTimeframe(dto.TimeframeCustom)
	def.Config.CustomStartDate = "2024-01-01"
	def.Config.CustomEndDate = "2024-01-31"

	tf, err := resolveTimeframe(def, dto.ExecuteReportRequest{}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.StartDate != "2024-01-01" || tf.EndDate != "2024-01-31" {
		t.Errorf("got %s..%s", tf.StartDate, tf.EndDate)
	}
	if tf.Label != "2024-01-01 to 2024-01-31" {
		t.Errorf("got label %q", tf.Label)
	}
}

func TestResolveTimeframe_RequestOverridesDefinition(t *testing.T) {
	def := defWithTimeframe(dto.TimeframeLast30Days)
	req := dto.ExecuteReportRequest{
		TimeframeType: dto.TimeframeCustom,
		StartDate:     "2024-02-01",
		EndDate:       "2024-02-15",
	}

	tf, err := resolveTimeframe(def, req, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.StartDate != "2024-02-01" || tf.EndDate != "2024-02-15" {
		t.Errorf("override did not win: got %s..%s", tf.StartDate, tf.EndDate)
	}
}

func TestResolveTimeframe_RequestDatesOverrideSavedCustom(t *testing.T) {
	def := defWithTimeframe(dto.TimeframeCustom)
	def.Config.CustomStartDate = "2024-01-01"
	def.Config.CustomEndDate = "2024-01-31"
	req := dto.ExecuteReportRequest{StartDate: "2024-03-01", EndDate: "2024-03-10"}

	tf, err := resolveTimeframe(def, req, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.StartDate != "2024-03-01" || tf.EndDate != "2024-03-10" {
		t.Errorf("request dates did not win: got %s..%s", tf.StartDate, tf.EndDate)
	}
}

func TestResolveTimeframe_CustomMissingBounds(t *testing.T) {
	def := defWithTimeframe(dto.TimeframeCustom)
	def.Config.CustomStartDate = "2024-01-01"
	// end date missing everywhere

	_, err := resolveTimeframe(def, dto.ExecuteReportRequest{}, testNow)
	var invalidErr *errs.InvalidTimeframeError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTimeframeError, got %v", err)
	}
}

func TestResolveTimeframe_UnknownType(t *testing.T) {
	_, err := resolveTimeframe(defWithTimeframe("fortnight"), dto.ExecuteReportRequest{}, testNow)
	var invalidErr *errs.InvalidTimeframeError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTimeframeError, got %v", err)
	}
}

func TestResolveTimeframe_LastMonthAcrossYearBoundary(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tf, err := resolveTimeframe(defWithTimeframe(dto.TimeframeLastMonth), dto.ExecuteReportRequest{}, jan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.StartDate != "2023-12-01" || tf.EndDate != "2023-12-31" {
		t.Errorf("got %s..%s", tf.StartDate, tf.EndDate)
	}
	if tf.Label != "December 2023" {
		t.Errorf("got label %q", tf.Label)
	}
}
