package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/dvergara/finanzas-service/internal/advisor"
	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/shopspring/decimal"
)

const defaultWindowDays = 30

// Payment confirmation kinds.
const (
	KindObligation = "obligation"
	KindDebt       = "debt"
)

// Timeline aggregates obligations, debts, and upcoming recurring instances
// into the due-date view for [today, today+windowDays]. Each provider fetch
// runs concurrently and fails independently: a failed source is flagged in
// SourceErrors while the rest of the timeline is still served.
func (s *Service) Timeline(spaceID int64, windowDays int) models.Timeline {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	today := advisor.DateOnly(s.now())
	end := today.AddDate(0, 0, windowDays)

	var (
		obligations []models.Obligation
		debts       []models.Debt
		recurring   []models.RecurringInstance
	)

	sourceErrors := s.fetch(spaceID, map[string]func() error{
		"obligations": func() (err error) {
			obligations, err = s.store.ListOpenObligations(spaceID)
			return err
		},
		"debts": func() (err error) {
			debts, err = s.store.ListActiveDebts(spaceID)
			return err
		},
		"recurring": func() (err error) {
			recurring, err = s.store.ListUpcomingRecurring(spaceID, today, end)
			return err
		},
	})

	timeline := models.Timeline{
		Days: advisor.BuildTimeline(today, windowDays, obligations, debts, recurring),
	}
	if len(sourceErrors) > 0 {
		timeline.SourceErrors = sourceErrors
	}
	return timeline
}

// Insight computes the advisory view for the current accounting period:
// cash-flow summary, profile, risk level, and the weekly action list.
// Provider failures are isolated; without transaction data the profile is
// unknown and only due-date actions are produced.
func (s *Service) Insight(spaceID int64) models.FinancialInsight {
	now := s.now()
	today := advisor.DateOnly(now)
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	var (
		transactions []models.Transaction
		obligations  []models.Obligation
		debts        []models.Debt
		goals        []models.SavingsGoal
	)

	sourceErrors := s.fetch(spaceID, map[string]func() error{
		"transactions": func() (err error) {
			transactions, err = s.store.ListTransactions(spaceID, periodStart, periodEnd)
			return err
		},
		"obligations": func() (err error) {
			obligations, err = s.store.ListOpenObligations(spaceID)
			return err
		},
		"debts": func() (err error) {
			debts, err = s.store.ListActiveDebts(spaceID)
			return err
		},
		"goals": func() (err error) {
			goals, err = s.store.ListGoals(spaceID)
			return err
		},
	})

	summary := advisor.Summarize(transactions, obligations, debts)
	hasFund := advisor.HasEmergencyFund(goals)

	profile, risk, outlook := advisor.Classify(summary, hasFund)
	if _, ok := sourceErrors["transactions"]; ok {
		// Cash flow cannot be trusted without the period's transactions.
		profile, risk, outlook = models.ProfileUnknown, models.RiskMedium, "Sin Datos"
	}

	insight := models.FinancialInsight{
		Profile:          profile,
		RiskLevel:        risk,
		MonthlyOutlook:   outlook,
		CapitalAvailable: summary.CapitalAvailable,
		Summary:          summary,
		WeeklyActions:    advisor.GenerateActions(profile, summary, obligations, debts, hasFund, today),
	}
	if len(sourceErrors) > 0 {
		insight.SourceErrors = sourceErrors
	}
	return insight
}

// ConfirmPayment applies a payment to an obligation or a debt and records
// the matching expense transaction. The status change and the transaction
// commit together or not at all.
func (s *Service) ConfirmPayment(spaceID int64, kind string, id int64, amount decimal.Decimal, date time.Time, description string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	day := advisor.DateOnly(date)

	switch kind {
	case KindObligation:
		if description == "" {
			description = fmt.Sprintf("Pago de obligación %d", id)
		}
		return s.store.ConfirmObligationPayment(spaceID, id, amount, day, description)
	case KindDebt:
		if description == "" {
			description = fmt.Sprintf("Pago de cuota %d", id)
		}
		return s.store.ConfirmDebtPayment(spaceID, id, amount, day, description)
	default:
		return ErrUnknownKind
	}
}

// fetch runs the provider calls concurrently and collects per-source
// failures. No ordering dependency exists among the reads.
func (s *Service) fetch(spaceID int64, sources map[string]func() error) map[string]string {
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		sourceErrors = make(map[string]string)
	)
	for name, load := range sources {
		wg.Add(1)
		go func(name string, load func() error) {
			defer wg.Done()
			if err := load(); err != nil {
				s.log.Errorf("Provider %s failed for space %d: %v", name, spaceID, err)
				mu.Lock()
				sourceErrors[name] = "unavailable"
				mu.Unlock()
			}
		}(name, load)
	}
	wg.Wait()
	return sourceErrors
}
