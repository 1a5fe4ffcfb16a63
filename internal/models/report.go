package models

import "time"

// ReportDefinition is a saved report configuration stored in the top-level
// report_definitions collection. Ownership is a document field so a lookup
// by id can distinguish "does not exist" from "belongs to someone else".
type ReportDefinition struct {
	ReportID      string        `firestore:"reportId" json:"reportId"`
	OwnerID       string        `firestore:"ownerId" json:"ownerId"`
	Name          string        `firestore:"name" json:"name"`
	ViewType      string        `firestore:"viewType" json:"viewType"`
	TimeframeType string        `firestore:"timeframeType" json:"timeframeType"`
	GroupBy       string        `firestore:"groupBy" json:"groupBy"`
	Filters       ReportFilters `firestore:"filters" json:"filters"`
	Config        ReportConfig  `firestore:"config" json:"config"`
	CreatedAt     time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

// ReportFilters is the wire/storage shape of a definition's filters. A
// non-empty FilterGroups list suppresses every legacy field; the compiler
// normalizes either form into the same clause list, so the precedence rule
// is applied exactly once.
type ReportFilters struct {
	AccountIDs   []string      `firestore:"accountIds" json:"accountIds,omitempty"`
	CategoryIDs  []string      `firestore:"categoryIds" json:"categoryIds,omitempty"`
	PayeeIDs     []string      `firestore:"payeeIds" json:"payeeIds,omitempty"`
	SearchText   string        `firestore:"searchText" json:"searchText,omitempty"`
	FilterGroups []FilterGroup `firestore:"filterGroups" json:"filterGroups,omitempty"`
}

// FilterGroup is an OR of its conditions. Groups are AND-combined with each
// other and with the base predicate. A group with no conditions is a no-op.
type FilterGroup struct {
	Conditions []FilterCondition `firestore:"conditions" json:"conditions"`
}

// FilterCondition matches one field ("account", "category", "payee", "text")
// against a value.
type FilterCondition struct {
	Field string `firestore:"field" json:"field"`
	Value string `firestore:"value" json:"value"`
}

// ReportConfig holds presentation and metric options. Replacing a
// definition's config replaces the whole struct; there is no partial merge.
type ReportConfig struct {
	Metric           string   `firestore:"metric" json:"metric"`
	IncludeTransfers bool     `firestore:"includeTransfers" json:"includeTransfers"`
	Direction        string   `firestore:"direction" json:"direction"`
	CustomStartDate  string   `firestore:"customStartDate" json:"customStartDate,omitempty"`
	CustomEndDate    string   `firestore:"customEndDate" json:"customEndDate,omitempty"`
	TableColumns     []string `firestore:"tableColumns" json:"tableColumns,omitempty"`
	SortBy           string   `firestore:"sortBy" json:"sortBy,omitempty"`
	SortDirection    string   `firestore:"sortDirection" json:"sortDirection,omitempty"`
	Limit            int      `firestore:"limit" json:"limit,omitempty"` // 0 = no truncation
}
