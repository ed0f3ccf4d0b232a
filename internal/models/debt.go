package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is an installment-plan liability (credit card plan, personal loan)
// with a fixed monthly payment and a remaining-installment counter.
type Debt struct {
	ID                    int64           `json:"id"`
	SpaceID               int64           `json:"space_id"`
	Name                  string          `json:"name"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	TotalInstallments     int             `json:"total_installments"`
	RemainingInstallments int             `json:"remaining_installments"`
	NextPaymentDate       time.Time       `json:"next_payment_date"` // calendar date, midnight UTC
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// Active reports whether the debt still has installments to pay.
func (d Debt) Active() bool {
	return d.RemainingInstallments > 0
}
