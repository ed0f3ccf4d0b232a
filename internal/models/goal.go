package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a funding target; goals tagged with the emergency category
// feed the emergency-fund check in the risk classifier.
type SavingsGoal struct {
	ID            int64           `json:"id"`
	SpaceID       int64           `json:"space_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
