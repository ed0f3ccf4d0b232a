package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind tags where a timeline entry came from.
type SourceKind string

const (
	SourceObligation SourceKind = "obligation"
	SourceDebt       SourceKind = "debt"
	SourceRecurring  SourceKind = "recurring"
)

// TimelineEntry is the normalized shape every due-date-bearing record is
// reduced to before aggregation. Entries from different sources are never
// merged, even when amount and date coincide.
type TimelineEntry struct {
	Kind           SourceKind      `json:"kind"`
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	Category       string          `json:"category,omitempty"`
	Status         string          `json:"status,omitempty"`
	FlowType       string          `json:"flow_type,omitempty"` // recurring only: income or expense
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
	RemainingUnits int             `json:"remaining_units,omitempty"`
}

// TimelineDay groups the entries due on a single calendar date.
type TimelineDay struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Total   decimal.Decimal `json:"total"`
	Entries []TimelineEntry `json:"entries"`
}

// Timeline is the aggregated due-date view handed to the presentation layer.
// SourceErrors flags providers that failed; the rest of the timeline is
// still served.
type Timeline struct {
	Days         []TimelineDay     `json:"days"`
	SourceErrors map[string]string `json:"source_errors,omitempty"`
}
