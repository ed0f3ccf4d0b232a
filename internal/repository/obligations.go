package repository

import (
	"fmt"

	"github.com/dvergara/finanzas-service/internal/models"
)

// CreateObligation inserts a new obligation for the space.
func (r *Repository) CreateObligation(o *models.Obligation) error {
	query := `
		INSERT INTO finanzas.obligations (space_id, title, amount, due_date, status, category, minimum_payment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, o.SpaceID, o.Title, o.Amount, o.DueDate, o.Status, o.Category, o.MinimumPayment).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create obligation: %w", err)
	}
	return nil
}

// ListObligations returns every obligation in the space, newest due first.
func (r *Repository) ListObligations(spaceID int64) ([]models.Obligation, error) {
	return r.listObligations(spaceID, false)
}

// ListOpenObligations returns the obligations that still need paying.
func (r *Repository) ListOpenObligations(spaceID int64) ([]models.Obligation, error) {
	return r.listObligations(spaceID, true)
}

func (r *Repository) listObligations(spaceID int64, openOnly bool) ([]models.Obligation, error) {
	query := `
		SELECT id, space_id, title, amount, due_date, status, category, minimum_payment, created_at, updated_at
		FROM finanzas.obligations
		WHERE space_id = $1`
	if openOnly {
		query += ` AND status <> 'paid'`
	}
	query += ` ORDER BY due_date ASC`

	rows, err := r.db.Query(query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	defer rows.Close()

	var obligations []models.Obligation
	for rows.Next() {
		var o models.Obligation
		if err := rows.Scan(&o.ID, &o.SpaceID, &o.Title, &o.Amount, &o.DueDate, &o.Status, &o.Category, &o.MinimumPayment, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		obligations = append(obligations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read obligations: %w", err)
	}
	return obligations, nil
}
