package service

import (
	"time"

	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/dvergara/finanzas-service/internal/repository"
	"github.com/shopspring/decimal"
)

// Store is the persistence surface the service depends on. The service layer
// depends on this interface, not on the concrete repository, so tests can
// substitute fakes per provider.
type Store interface {
	CreateUser(user *models.User, spaceName string) error
	FindUserByEmail(email string) (*models.User, error)

	CreateObligation(o *models.Obligation) error
	ListObligations(spaceID int64) ([]models.Obligation, error)
	ListOpenObligations(spaceID int64) ([]models.Obligation, error)

	CreateDebt(d *models.Debt) error
	ListDebts(spaceID int64) ([]models.Debt, error)
	ListActiveDebts(spaceID int64) ([]models.Debt, error)

	FindRecurringRule(spaceID, id int64) (*models.RecurringRule, error)
	ListDueRecurringRules(now time.Time) ([]models.RecurringRule, error)
	ListUpcomingRecurring(spaceID int64, from, to time.Time) ([]models.RecurringInstance, error)
	MaterializeRule(rule *models.RecurringRule, instances []models.RecurringInstance, nextRun time.Time) error

	ListTransactions(spaceID int64, from, to time.Time) ([]models.Transaction, error)
	ListGoals(spaceID int64) ([]models.SavingsGoal, error)

	ConfirmObligationPayment(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error
	ConfirmDebtPayment(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error
}

var _ Store = (*repository.Repository)(nil)
