package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recurring rule frequencies.
const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
	FrequencyYearly   = "yearly"
)

// RecurringRule is a template that materializes into dated instances when
// its run operation executes. The advisory engine never touches rule state,
// it only consumes materialized instances.
type RecurringRule struct {
	ID        int64           `json:"id"`
	SpaceID   int64           `json:"space_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency"`
	Category  string          `json:"category,omitempty"`
	Type      string          `json:"type"` // income or expense
	NextRun   time.Time       `json:"next_run"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RecurringInstance is one concrete dated occurrence of a rule.
type RecurringInstance struct {
	ID        int64           `json:"id"`
	RuleID    int64           `json:"rule_id"`
	SpaceID   int64           `json:"space_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"due_date"` // calendar date, midnight UTC
	Type      string          `json:"type"`
	Frequency string          `json:"frequency"`
	Category  string          `json:"category,omitempty"`
}
