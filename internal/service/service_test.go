package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dvergara/finanzas-service/internal/config"
	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, dom int) time.Time {
	return time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
}

// fakeStore implements Store with overridable functions per method; methods
// without an override return zero values.
type fakeStore struct {
	createUser              func(user *models.User, spaceName string) error
	findUserByEmail         func(email string) (*models.User, error)
	createObligation        func(o *models.Obligation) error
	listObligations         func(spaceID int64) ([]models.Obligation, error)
	listOpenObligations     func(spaceID int64) ([]models.Obligation, error)
	createDebt              func(d *models.Debt) error
	listDebts               func(spaceID int64) ([]models.Debt, error)
	listActiveDebts         func(spaceID int64) ([]models.Debt, error)
	findRecurringRule       func(spaceID, id int64) (*models.RecurringRule, error)
	listDueRecurringRules   func(now time.Time) ([]models.RecurringRule, error)
	listUpcomingRecurring   func(spaceID int64, from, to time.Time) ([]models.RecurringInstance, error)
	materializeRule         func(rule *models.RecurringRule, instances []models.RecurringInstance, nextRun time.Time) error
	listTransactions        func(spaceID int64, from, to time.Time) ([]models.Transaction, error)
	listGoals               func(spaceID int64) ([]models.SavingsGoal, error)
	confirmObligationPaymnt func(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error
	confirmDebtPayment      func(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error
}

func (f *fakeStore) CreateUser(user *models.User, spaceName string) error {
	if f.createUser != nil {
		return f.createUser(user, spaceName)
	}
	return nil
}

func (f *fakeStore) FindUserByEmail(email string) (*models.User, error) {
	if f.findUserByEmail != nil {
		return f.findUserByEmail(email)
	}
	return nil, errors.New("not configured")
}

func (f *fakeStore) CreateObligation(o *models.Obligation) error {
	if f.createObligation != nil {
		return f.createObligation(o)
	}
	return nil
}

func (f *fakeStore) ListObligations(spaceID int64) ([]models.Obligation, error) {
	if f.listObligations != nil {
		return f.listObligations(spaceID)
	}
	return nil, nil
}

func (f *fakeStore) ListOpenObligations(spaceID int64) ([]models.Obligation, error) {
	if f.listOpenObligations != nil {
		return f.listOpenObligations(spaceID)
	}
	return nil, nil
}

func (f *fakeStore) CreateDebt(d *models.Debt) error {
	if f.createDebt != nil {
		return f.createDebt(d)
	}
	return nil
}

func (f *fakeStore) ListDebts(spaceID int64) ([]models.Debt, error) {
	if f.listDebts != nil {
		return f.listDebts(spaceID)
	}
	return nil, nil
}

func (f *fakeStore) ListActiveDebts(spaceID int64) ([]models.Debt, error) {
	if f.listActiveDebts != nil {
		return f.listActiveDebts(spaceID)
	}
	return nil, nil
}

func (f *fakeStore) FindRecurringRule(spaceID, id int64) (*models.RecurringRule, error) {
	if f.findRecurringRule != nil {
		return f.findRecurringRule(spaceID, id)
	}
	return nil, errors.New("not configured")
}

func (f *fakeStore) ListDueRecurringRules(now time.Time) ([]models.RecurringRule, error) {
	if f.listDueRecurringRules != nil {
		return f.listDueRecurringRules(now)
	}
	return nil, nil
}

func (f *fakeStore) ListUpcomingRecurring(spaceID int64, from, to time.Time) ([]models.RecurringInstance, error) {
	if f.listUpcomingRecurring != nil {
		return f.listUpcomingRecurring(spaceID, from, to)
	}
	return nil, nil
}

func (f *fakeStore) MaterializeRule(rule *models.RecurringRule, instances []models.RecurringInstance, nextRun time.Time) error {
	if f.materializeRule != nil {
		return f.materializeRule(rule, instances, nextRun)
	}
	return nil
}

func (f *fakeStore) ListTransactions(spaceID int64, from, to time.Time) ([]models.Transaction, error) {
	if f.listTransactions != nil {
		return f.listTransactions(spaceID, from, to)
	}
	return nil, nil
}

func (f *fakeStore) ListGoals(spaceID int64) ([]models.SavingsGoal, error) {
	if f.listGoals != nil {
		return f.listGoals(spaceID)
	}
	return nil, nil
}

func (f *fakeStore) ConfirmObligationPayment(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error {
	if f.confirmObligationPaymnt != nil {
		return f.confirmObligationPaymnt(spaceID, id, amount, date, description)
	}
	return nil
}

func (f *fakeStore) ConfirmDebtPayment(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error {
	if f.confirmDebtPayment != nil {
		return f.confirmDebtPayment(spaceID, id, amount, date, description)
	}
	return nil
}

func newTestService(store Store) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := NewService(store, logger, &config.Config{JWTSecret: "secret"})
	svc.now = func() time.Time { return day(2025, 3, 10) }
	return svc
}

func TestTimelineIsolatesProviderFailure(t *testing.T) {
	store := &fakeStore{
		listOpenObligations: func(int64) ([]models.Obligation, error) {
			return nil, errors.New("connection refused")
		},
		listActiveDebts: func(int64) ([]models.Debt, error) {
			return []models.Debt{
				{ID: 1, Name: "Préstamo", MonthlyPayment: d("90000"), TotalInstallments: 12, RemainingInstallments: 6, NextPaymentDate: day(2025, 3, 11)},
			}, nil
		},
	}
	svc := newTestService(store)

	timeline := svc.Timeline(42, 30)

	assert.Equal(t, map[string]string{"obligations": "unavailable"}, timeline.SourceErrors)
	require.Len(t, timeline.Days, 1)
	assert.Equal(t, "2025-03-11", timeline.Days[0].Date)
	assert.Equal(t, models.SourceDebt, timeline.Days[0].Entries[0].Kind)
}

func TestTimelineWindowPassedToRecurringProvider(t *testing.T) {
	var gotFrom, gotTo time.Time
	store := &fakeStore{
		listUpcomingRecurring: func(_ int64, from, to time.Time) ([]models.RecurringInstance, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	svc := newTestService(store)

	svc.Timeline(42, 7)

	assert.Equal(t, day(2025, 3, 10), gotFrom)
	assert.Equal(t, day(2025, 3, 17), gotTo)
}

func TestInsightComposesAdvisoryView(t *testing.T) {
	store := &fakeStore{
		listTransactions: func(_ int64, from, to time.Time) ([]models.Transaction, error) {
			assert.Equal(t, day(2025, 3, 1), from)
			assert.Equal(t, day(2025, 3, 31), to)
			return []models.Transaction{
				{Type: models.TransactionIncome, Amount: d("300000")},
				{Type: models.TransactionExpense, Amount: d("280000")},
			}, nil
		},
	}
	svc := newTestService(store)

	insight := svc.Insight(42)

	assert.Equal(t, models.ProfileBalanced, insight.Profile)
	assert.Equal(t, models.RiskMedium, insight.RiskLevel)
	assert.Equal(t, "Equilibrado", insight.MonthlyOutlook)
	assert.True(t, insight.CapitalAvailable.Equal(d("20000")))
	assert.Empty(t, insight.SourceErrors)

	require.NotEmpty(t, insight.WeeklyActions)
	assert.Equal(t, "pay-card-full", insight.WeeklyActions[0].ID)
}

func TestInsightUnknownProfileWithoutTransactions(t *testing.T) {
	store := &fakeStore{
		listTransactions: func(int64, time.Time, time.Time) ([]models.Transaction, error) {
			return nil, errors.New("timeout")
		},
		listOpenObligations: func(int64) ([]models.Obligation, error) {
			return []models.Obligation{
				{ID: 1, Title: "Luz", Amount: d("18000"), DueDate: day(2025, 3, 12), Status: models.ObligationPending},
			}, nil
		},
	}
	svc := newTestService(store)

	insight := svc.Insight(42)

	assert.Equal(t, models.ProfileUnknown, insight.Profile)
	assert.Equal(t, "Sin Datos", insight.MonthlyOutlook)
	assert.Equal(t, "unavailable", insight.SourceErrors["transactions"])

	// Urgent due-date actions survive even without cash-flow data.
	require.Len(t, insight.WeeklyActions, 1)
	assert.Equal(t, "pay-obligation-1", insight.WeeklyActions[0].ID)
}

func TestConfirmPaymentValidation(t *testing.T) {
	svc := newTestService(&fakeStore{})

	err := svc.ConfirmPayment(42, KindObligation, 1, d("0"), day(2025, 3, 10), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = svc.ConfirmPayment(42, KindObligation, 1, d("-5"), day(2025, 3, 10), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = svc.ConfirmPayment(42, "loan", 1, d("100"), day(2025, 3, 10), "")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestConfirmPaymentDispatch(t *testing.T) {
	var obligationCalled, debtCalled bool
	store := &fakeStore{
		confirmObligationPaymnt: func(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error {
			obligationCalled = true
			assert.Equal(t, int64(42), spaceID)
			assert.Equal(t, int64(7), id)
			assert.True(t, amount.Equal(d("45000")))
			assert.Equal(t, day(2025, 3, 10), date)
			return nil
		},
		confirmDebtPayment: func(spaceID, id int64, amount decimal.Decimal, date time.Time, description string) error {
			debtCalled = true
			return nil
		},
	}
	svc := newTestService(store)

	// The payment date arrives as an instant; only its calendar day is kept.
	err := svc.ConfirmPayment(42, KindObligation, 7, d("45000"), time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.True(t, obligationCalled)

	err = svc.ConfirmPayment(42, KindDebt, 3, d("90000"), day(2025, 3, 10), "")
	require.NoError(t, err)
	assert.True(t, debtCalled)
}

func TestRunRecurringRuleMaterializesSchedule(t *testing.T) {
	rule := &models.RecurringRule{
		ID: 5, SpaceID: 42, Title: "Gimnasio", Amount: d("12000"),
		Frequency: models.FrequencyMonthly, Type: models.TransactionExpense,
		NextRun: day(2025, 3, 15),
	}
	var gotInstances []models.RecurringInstance
	var gotNextRun time.Time
	store := &fakeStore{
		findRecurringRule: func(spaceID, id int64) (*models.RecurringRule, error) {
			assert.Equal(t, int64(42), spaceID)
			assert.Equal(t, int64(5), id)
			return rule, nil
		},
		materializeRule: func(_ *models.RecurringRule, instances []models.RecurringInstance, nextRun time.Time) error {
			gotInstances = instances
			gotNextRun = nextRun
			return nil
		},
	}
	svc := newTestService(store)

	instances, err := svc.RunRecurringRule(42, 5)
	require.NoError(t, err)

	require.Len(t, instances, 3)
	assert.Equal(t, day(2025, 3, 15), instances[0].DueDate)
	assert.Equal(t, day(2025, 4, 15), instances[1].DueDate)
	assert.Equal(t, day(2025, 5, 15), instances[2].DueDate)
	assert.Equal(t, day(2025, 6, 15), gotNextRun)
	assert.Len(t, gotInstances, 3)
}
