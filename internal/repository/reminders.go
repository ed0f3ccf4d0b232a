package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReminder pairs an open obligation with the user to notify.
type PaymentReminder struct {
	Email    string
	Username string
	Title    string
	Amount   decimal.Decimal
	DueDate  time.Time
	Overdue  bool
}

// ListPaymentReminders returns, across all spaces, the open obligations due
// at or before the horizon, joined with their space's users.
func (r *Repository) ListPaymentReminders(today, horizon time.Time) ([]PaymentReminder, error) {
	query := `
		SELECT u.email, u.username, o.title, o.amount, o.due_date,
		       (o.status = 'overdue' OR o.due_date < $1) AS overdue
		FROM finanzas.obligations o
		JOIN finanzas.users u ON u.space_id = o.space_id
		WHERE o.status <> 'paid' AND o.due_date <= $2
		ORDER BY o.due_date ASC`
	rows, err := r.db.Query(query, today, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment reminders: %w", err)
	}
	defer rows.Close()

	var reminders []PaymentReminder
	for rows.Next() {
		var rem PaymentReminder
		if err := rows.Scan(&rem.Email, &rem.Username, &rem.Title, &rem.Amount, &rem.DueDate, &rem.Overdue); err != nil {
			return nil, fmt.Errorf("failed to scan payment reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payment reminders: %w", err)
	}
	return reminders, nil
}
