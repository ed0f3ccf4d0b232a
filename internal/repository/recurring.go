package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dvergara/finanzas-service/internal/models"
)

// FindRecurringRule retrieves one rule scoped to the space.
func (r *Repository) FindRecurringRule(spaceID, id int64) (*models.RecurringRule, error) {
	rule := &models.RecurringRule{}
	query := `
		SELECT id, space_id, title, amount, frequency, category, type, next_run, created_at, updated_at
		FROM finanzas.recurring_rules
		WHERE id = $1 AND space_id = $2`
	err := r.db.QueryRow(query, id, spaceID).
		Scan(&rule.ID, &rule.SpaceID, &rule.Title, &rule.Amount, &rule.Frequency, &rule.Category, &rule.Type, &rule.NextRun, &rule.CreatedAt, &rule.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring rule: %w", err)
	}
	return rule, nil
}

// ListDueRecurringRules returns the rules, across all spaces, whose next run
// is at or before now. Used by the nightly materialization job.
func (r *Repository) ListDueRecurringRules(now time.Time) ([]models.RecurringRule, error) {
	query := `
		SELECT id, space_id, title, amount, frequency, category, type, next_run, created_at, updated_at
		FROM finanzas.recurring_rules
		WHERE next_run <= $1
		ORDER BY next_run ASC`
	rows, err := r.db.Query(query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due recurring rules: %w", err)
	}
	defer rows.Close()

	var rules []models.RecurringRule
	for rows.Next() {
		var rule models.RecurringRule
		if err := rows.Scan(&rule.ID, &rule.SpaceID, &rule.Title, &rule.Amount, &rule.Frequency, &rule.Category, &rule.Type, &rule.NextRun, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recurring rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recurring rules: %w", err)
	}
	return rules, nil
}

// ListUpcomingRecurring returns the materialized instances due inside
// [from, to] for the space.
func (r *Repository) ListUpcomingRecurring(spaceID int64, from, to time.Time) ([]models.RecurringInstance, error) {
	query := `
		SELECT i.id, i.rule_id, i.space_id, i.title, i.amount, i.due_date, i.type, i.frequency, i.category
		FROM finanzas.recurring_instances i
		WHERE i.space_id = $1 AND i.due_date >= $2 AND i.due_date <= $3
		ORDER BY i.due_date ASC`
	rows, err := r.db.Query(query, spaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring instances: %w", err)
	}
	defer rows.Close()

	var instances []models.RecurringInstance
	for rows.Next() {
		var in models.RecurringInstance
		if err := rows.Scan(&in.ID, &in.RuleID, &in.SpaceID, &in.Title, &in.Amount, &in.DueDate, &in.Type, &in.Frequency, &in.Category); err != nil {
			return nil, fmt.Errorf("failed to scan recurring instance: %w", err)
		}
		instances = append(instances, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recurring instances: %w", err)
	}
	return instances, nil
}

// MaterializeRule stores freshly generated instances and advances the rule's
// next run inside one transaction, so a rerun never double-materializes.
func (r *Repository) MaterializeRule(rule *models.RecurringRule, instances []models.RecurringInstance, nextRun time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE finanzas.recurring_rules
		SET next_run = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND space_id = $3 AND next_run = $4`,
		nextRun, rule.ID, rule.SpaceID, rule.NextRun)
	if err != nil {
		return fmt.Errorf("failed to advance recurring rule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check recurring rule update: %w", err)
	}
	if affected == 0 {
		// Another run already advanced this rule.
		return ErrNotFound
	}

	for _, in := range instances {
		_, err := tx.Exec(`
			INSERT INTO finanzas.recurring_instances (rule_id, space_id, title, amount, due_date, type, frequency, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rule.ID, rule.SpaceID, in.Title, in.Amount, in.DueDate, in.Type, in.Frequency, in.Category)
		if err != nil {
			return fmt.Errorf("failed to insert recurring instance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit materialization: %w", err)
	}
	return nil
}
