package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Obligation statuses.
const (
	ObligationPending = "pending"
	ObligationPaid    = "paid"
	ObligationOverdue = "overdue"
)

// Obligation is a standalone payable bill with a due date. It only ever
// becomes paid through payment confirmation, never deleted by the engine.
type Obligation struct {
	ID             int64           `json:"id"`
	SpaceID        int64           `json:"space_id"`
	Title          string          `json:"title"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"` // calendar date, midnight UTC
	Status         string          `json:"status"`
	Category       string          `json:"category,omitempty"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
