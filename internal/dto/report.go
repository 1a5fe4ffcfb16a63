package dto

// Grouping dimensions.
const (
	GroupByNone     = "none"
	GroupByCategory = "category"
	GroupByPayee    = "payee"
	GroupByDay      = "day"
	GroupByWeek     = "week"
	GroupByMonth    = "month"
	GroupByYear     = "year"
)

// Metrics.
const (
	MetricNone        = "none"
	MetricTotalAmount = "totalAmount"
	MetricCount       = "count"
	MetricAverage     = "average"
)

// Directions.
const (
	DirectionBoth         = "both"
	DirectionIncomeOnly   = "incomeOnly"
	DirectionExpensesOnly = "expensesOnly"
)

// Timeframe types.
const (
	TimeframeLast7Days    = "last7Days"
	TimeframeLast30Days   = "last30Days"
	TimeframeLastMonth    = "lastMonth"
	TimeframeLast3Months  = "last3Months"
	TimeframeLast6Months  = "last6Months"
	TimeframeLast12Months = "last12Months"
	TimeframeLastYear     = "lastYear"
	TimeframeYearToDate   = "yearToDate"
	TimeframeCustom       = "custom"
)

// Filter condition fields.
const (
	FieldAccount  = "account"
	FieldCategory = "category"
	FieldPayee    = "payee"
	FieldText     = "text"
)

// Sortable columns. The first four exist on every data point; the rest only
// carry values in row-listing mode (groupBy none, metric none).
const (
	SortByLabel       = "label"
	SortByValue       = "value"
	SortByCount       = "count"
	SortByPercentage  = "percentage"
	SortByDate        = "date"
	SortByPayee       = "payee"
	SortByDescription = "description"
	SortByMemo        = "memo"
	SortByCategory    = "category"
	SortByAccount     = "account"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ExecuteReportRequest carries optional runtime overrides for a single
// execution. Overrides win over the definition's saved values.
type ExecuteReportRequest struct {
	TimeframeType string `json:"timeframeType,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
}

// Timeframe is a resolved concrete date range plus its display label.
type Timeframe struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label"`
}

// AggregatedDataPoint is one row of a report result. The transaction-only
// fields (Date through Account) are populated only in row-listing mode.
type AggregatedDataPoint struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Value      float64  `json:"value"`
	Color      string   `json:"color,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Count      *int     `json:"count,omitempty"`

	Date        string `json:"date,omitempty"`
	Payee       string `json:"payee,omitempty"`
	Description string `json:"description,omitempty"`
	Memo        string `json:"memo,omitempty"`
	Category    string `json:"category,omitempty"`
	Account     string `json:"account,omitempty"`
}

// ReportSummary aggregates the final data points.
type ReportSummary struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// ReportResult is the full outcome of one execution. It is built fresh per
// invocation and never persisted.
type ReportResult struct {
	ReportID     string                `json:"reportId"`
	Name         string                `json:"name"`
	ViewType     string                `json:"viewType"`
	GroupBy      string                `json:"groupBy"`
	Timeframe    Timeframe             `json:"timeframe"`
	Data         []AggregatedDataPoint `json:"data"`
	Summary      ReportSummary         `json:"summary"`
	TableColumns []string              `json:"tableColumns,omitempty"`
}
