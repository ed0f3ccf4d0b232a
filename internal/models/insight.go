package models

import "github.com/shopspring/decimal"

// Financial profiles.
type Profile string

const (
	ProfileDefensive   Profile = "defensive"
	ProfileBalanced    Profile = "balanced"
	ProfileAccelerated Profile = "accelerated"
	ProfileUnknown     Profile = "unknown"
)

// Risk levels.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Weekly action kinds.
type ActionKind string

const (
	ActionPayment    ActionKind = "payment"
	ActionSaving     ActionKind = "saving"
	ActionReview     ActionKind = "review"
	ActionInvestment ActionKind = "investment"
)

// CashFlowSummary is the cash-flow picture for the active accounting period.
// Recomputed on every read, never persisted.
type CashFlowSummary struct {
	Income               decimal.Decimal `json:"income"`
	Expenses             decimal.Decimal `json:"expenses"`
	MonthlyDebtPayments  decimal.Decimal `json:"monthly_debt_payments"`
	OpenObligationsTotal decimal.Decimal `json:"open_obligations_total"`
	CapitalAvailable     decimal.Decimal `json:"capital_available"`
	SavingsRate          decimal.Decimal `json:"savings_rate"`
}

// WeeklyAction is a single recommended task. IDs are derived from the source
// record so regenerating the list never duplicates an action.
type WeeklyAction struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        ActionKind `json:"kind"`
	Priority    int        `json:"priority"` // 1 = most urgent
	IsCompleted bool       `json:"is_completed"`
}

// FinancialInsight is the advisory view: profile, risk, cash flow, and the
// prioritized weekly action list.
type FinancialInsight struct {
	Profile          Profile           `json:"profile"`
	RiskLevel        RiskLevel         `json:"risk_level"`
	MonthlyOutlook   string            `json:"monthly_outlook"`
	CapitalAvailable decimal.Decimal   `json:"capital_available"`
	Summary          CashFlowSummary   `json:"summary"`
	WeeklyActions    []WeeklyAction    `json:"weekly_actions"`
	SourceErrors     map[string]string `json:"source_errors,omitempty"`
}
