package service

import (
	"fmt"
	"time"

	"github.com/dvergara/finanzas-service/internal/advisor"
	"github.com/dvergara/finanzas-service/internal/models"
)

// CreateObligation validates and stores a new obligation for the space.
func (s *Service) CreateObligation(spaceID int64, o *models.Obligation) error {
	if o.Title == "" {
		return fmt.Errorf("obligation title is required")
	}
	if o.Amount.IsNegative() {
		return fmt.Errorf("obligation amount must not be negative")
	}
	switch o.Status {
	case "":
		o.Status = models.ObligationPending
	case models.ObligationPending, models.ObligationOverdue:
	default:
		return fmt.Errorf("invalid obligation status %q", o.Status)
	}
	o.SpaceID = spaceID
	o.DueDate = advisor.DateOnly(o.DueDate)

	if err := s.store.CreateObligation(o); err != nil {
		return err
	}
	s.log.Infof("Obligation %d created in space %d", o.ID, spaceID)
	return nil
}

// ListObligations returns the space's obligations.
func (s *Service) ListObligations(spaceID int64) ([]models.Obligation, error) {
	return s.store.ListObligations(spaceID)
}

// CreateDebt validates and stores a new installment debt for the space.
func (s *Service) CreateDebt(spaceID int64, d *models.Debt) error {
	if d.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if d.MonthlyPayment.IsNegative() || d.TotalAmount.IsNegative() {
		return fmt.Errorf("debt amounts must not be negative")
	}
	if d.TotalInstallments <= 0 {
		return fmt.Errorf("debt needs at least one installment")
	}
	if d.RemainingInstallments < 0 || d.RemainingInstallments > d.TotalInstallments {
		return fmt.Errorf("remaining installments must be between 0 and %d", d.TotalInstallments)
	}
	d.SpaceID = spaceID
	d.NextPaymentDate = advisor.DateOnly(d.NextPaymentDate)

	if err := s.store.CreateDebt(d); err != nil {
		return err
	}
	s.log.Infof("Debt %d created in space %d", d.ID, spaceID)
	return nil
}

// ListDebts returns the space's debts.
func (s *Service) ListDebts(spaceID int64) ([]models.Debt, error) {
	return s.store.ListDebts(spaceID)
}

// ListGoals returns the space's savings goals.
func (s *Service) ListGoals(spaceID int64) ([]models.SavingsGoal, error) {
	return s.store.ListGoals(spaceID)
}

// ListPeriodTransactions returns the transactions of the current accounting
// period (the calendar month containing today).
func (s *Service) ListPeriodTransactions(spaceID int64) ([]models.Transaction, error) {
	now := s.now()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)
	return s.store.ListTransactions(spaceID, periodStart, periodEnd)
}
