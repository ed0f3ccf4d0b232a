package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ConfirmObligationPayment marks the obligation paid and records the expense
// transaction atomically. Confirming an obligation that is already paid (or
// missing from the space) affects zero rows and returns ErrNotFound, so a
// repeated confirmation can never double-record the expense.
func (r *Repository) ConfirmObligationPayment(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE finanzas.obligations
		SET status = 'paid', updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND space_id = $2 AND status <> 'paid'`, id, spaceID)
	if err != nil {
		return fmt.Errorf("failed to mark obligation paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check obligation update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := insertPaymentExpense(tx, spaceID, amount, date, description); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment: %w", err)
	}
	r.log.Infof("Obligation %d paid in space %d", id, spaceID)
	return nil
}

// ConfirmDebtPayment consumes one installment, advances the next payment date
// by a calendar month, and records the expense transaction atomically.
func (r *Repository) ConfirmDebtPayment(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE finanzas.debts
		SET remaining_installments = remaining_installments - 1,
		    next_payment_date = next_payment_date + INTERVAL '1 month',
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND space_id = $2 AND remaining_installments > 0`, id, spaceID)
	if err != nil {
		return fmt.Errorf("failed to consume installment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check debt update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := insertPaymentExpense(tx, spaceID, amount, date, description); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment: %w", err)
	}
	r.log.Infof("Debt %d installment paid in space %d", id, spaceID)
	return nil
}

func insertPaymentExpense(tx *sql.Tx, spaceID int64, amount decimal.Decimal, date time.Time, description string) error {
	_, err := tx.Exec(`
		INSERT INTO finanzas.transactions (space_id, type, amount, date, description, category, created_at)
		VALUES ($1, 'expense', $2, $3, $4, 'pagos', CURRENT_TIMESTAMP)`,
		spaceID, amount, date, description)
	if err != nil {
		return fmt.Errorf("failed to record payment transaction: %w", err)
	}
	return nil
}
