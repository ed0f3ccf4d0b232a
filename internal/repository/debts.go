package repository

import (
	"fmt"

	"github.com/dvergara/finanzas-service/internal/models"
)

// CreateDebt inserts a new installment debt for the space.
func (r *Repository) CreateDebt(d *models.Debt) error {
	query := `
		INSERT INTO finanzas.debts (space_id, name, total_amount, monthly_payment, total_installments, remaining_installments, next_payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, d.SpaceID, d.Name, d.TotalAmount, d.MonthlyPayment, d.TotalInstallments, d.RemainingInstallments, d.NextPaymentDate).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// ListDebts returns every debt in the space.
func (r *Repository) ListDebts(spaceID int64) ([]models.Debt, error) {
	return r.listDebts(spaceID, false)
}

// ListActiveDebts returns the debts that still have installments to pay.
func (r *Repository) ListActiveDebts(spaceID int64) ([]models.Debt, error) {
	return r.listDebts(spaceID, true)
}

func (r *Repository) listDebts(spaceID int64, activeOnly bool) ([]models.Debt, error) {
	query := `
		SELECT id, space_id, name, total_amount, monthly_payment, total_installments, remaining_installments, next_payment_date, created_at, updated_at
		FROM finanzas.debts
		WHERE space_id = $1`
	if activeOnly {
		query += ` AND remaining_installments > 0`
	}
	query += ` ORDER BY next_payment_date ASC`

	rows, err := r.db.Query(query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		if err := rows.Scan(&d.ID, &d.SpaceID, &d.Name, &d.TotalAmount, &d.MonthlyPayment, &d.TotalInstallments, &d.RemainingInstallments, &d.NextPaymentDate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		// Never expected, but a counter above the plan total must not
		// poison downstream math.
		if d.RemainingInstallments > d.TotalInstallments {
			r.log.Warnf("Debt %d has %d remaining of %d installments, clamping", d.ID, d.RemainingInstallments, d.TotalInstallments)
			d.RemainingInstallments = d.TotalInstallments
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read debts: %w", err)
	}
	return debts, nil
}
