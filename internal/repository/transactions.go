package repository

import (
	"fmt"
	"time"

	"github.com/dvergara/finanzas-service/internal/models"
)

// ListTransactions returns the space's transactions dated inside [from, to].
func (r *Repository) ListTransactions(spaceID int64, from, to time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, space_id, type, amount, date, description, category, created_at
		FROM finanzas.transactions
		WHERE space_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`
	rows, err := r.db.Query(query, spaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.SpaceID, &tx.Type, &tx.Amount, &tx.Date, &tx.Description, &tx.Category, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return transactions, nil
}
