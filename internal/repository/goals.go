package repository

import (
	"fmt"

	"github.com/dvergara/finanzas-service/internal/models"
)

// ListGoals returns the space's savings goals.
func (r *Repository) ListGoals(spaceID int64) ([]models.SavingsGoal, error) {
	query := `
		SELECT id, space_id, name, category, current_amount, target_amount, created_at, updated_at
		FROM finanzas.savings_goals
		WHERE space_id = $1
		ORDER BY id ASC`
	rows, err := r.db.Query(query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(&g.ID, &g.SpaceID, &g.Name, &g.Category, &g.CurrentAmount, &g.TargetAmount, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}
	return goals, nil
}
