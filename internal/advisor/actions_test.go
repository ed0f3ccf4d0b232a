package advisor_test

import (
	"strings"
	"testing"

	"github.com/dvergara/finanzas-service/internal/advisor"
	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateActionsDeduplicatesMirroredBill(t *testing.T) {
	today := day(2025, 3, 10)
	obligations := []models.Obligation{
		{ID: 1, Title: "Visa Santander", Amount: d("45000"), DueDate: day(2025, 3, 12), Status: models.ObligationPending},
	}
	debts := []models.Debt{
		{ID: 9, Name: "visa  santánder", MonthlyPayment: d("45000"), TotalInstallments: 12, RemainingInstallments: 3, NextPaymentDate: day(2025, 3, 12)},
	}

	actions := advisor.GenerateActions(models.ProfileUnknown, models.CashFlowSummary{}, obligations, debts, false, today)

	var payActions []models.WeeklyAction
	for _, a := range actions {
		if a.Kind == models.ActionPayment {
			payActions = append(payActions, a)
		}
	}
	require.Len(t, payActions, 1)
	// The obligation wins: it carries the authoritative due date and status.
	assert.Equal(t, "pay-obligation-1", payActions[0].ID)
	assert.Equal(t, 1, payActions[0].Priority)
}

func TestGenerateActionsUrgencyWindow(t *testing.T) {
	today := day(2025, 3, 10)
	obligations := []models.Obligation{
		{ID: 1, Title: "Dentro", Amount: d("1"), DueDate: day(2025, 3, 15), Status: models.ObligationPending},
		{ID: 2, Title: "Fuera", Amount: d("1"), DueDate: day(2025, 3, 16), Status: models.ObligationPending},
		{ID: 3, Title: "Pagada", Amount: d("1"), DueDate: day(2025, 3, 11), Status: models.ObligationPaid},
	}

	actions := advisor.GenerateActions(models.ProfileUnknown, models.CashFlowSummary{}, obligations, nil, false, today)

	require.Len(t, actions, 1)
	assert.Equal(t, "pay-obligation-1", actions[0].ID)
}

func TestGenerateActionsOverdueDescription(t *testing.T) {
	today := day(2025, 3, 10)
	obligations := []models.Obligation{
		{ID: 1, Title: "Vieja", Amount: d("1"), DueDate: day(2025, 3, 7), Status: models.ObligationPending},
		{ID: 2, Title: "Próxima", Amount: d("1"), DueDate: day(2025, 3, 13), Status: models.ObligationPending},
	}

	actions := advisor.GenerateActions(models.ProfileUnknown, models.CashFlowSummary{}, obligations, nil, false, today)
	require.Len(t, actions, 2)

	byID := map[string]models.WeeklyAction{}
	for _, a := range actions {
		byID[a.ID] = a
	}
	// The description states the signed day count.
	assert.Contains(t, byID["pay-obligation-1"].Description, "-3")
	assert.Contains(t, byID["pay-obligation-2"].Description, "+3")
}

func TestGenerateActionsDefensiveAdvice(t *testing.T) {
	actions := advisor.GenerateActions(models.ProfileDefensive, models.CashFlowSummary{CapitalAvailable: d("-50000")}, nil, nil, false, day(2025, 3, 10))

	require.Len(t, actions, 2)
	assert.Equal(t, "review-recurring", actions[0].ID)
	assert.Equal(t, 1, actions[0].Priority)
	assert.Equal(t, models.ActionReview, actions[0].Kind)
	assert.Equal(t, "minimum-payments", actions[1].ID)
	assert.Equal(t, 2, actions[1].Priority)
}

func TestGenerateActionsBalancedAdvice(t *testing.T) {
	summary := models.CashFlowSummary{Income: d("300000")}

	withFund := advisor.GenerateActions(models.ProfileBalanced, summary, nil, nil, true, day(2025, 3, 10))
	require.Len(t, withFund, 1)
	assert.Equal(t, "pay-card-full", withFund[0].ID)

	withoutFund := advisor.GenerateActions(models.ProfileBalanced, summary, nil, nil, false, day(2025, 3, 10))
	require.Len(t, withoutFund, 2)
	assert.Equal(t, "pay-card-full", withoutFund[0].ID)
	assert.Equal(t, "fund-emergency", withoutFund[1].ID)
	assert.Equal(t, models.ActionSaving, withoutFund[1].Kind)
}

func TestGenerateActionsAcceleratedAdvice(t *testing.T) {
	actions := advisor.GenerateActions(models.ProfileAccelerated, models.CashFlowSummary{}, nil, nil, true, day(2025, 3, 10))

	require.Len(t, actions, 2)
	assert.Equal(t, "invest-surplus", actions[0].ID)
	assert.Equal(t, models.ActionInvestment, actions[0].Kind)
	assert.Equal(t, "boost-goal", actions[1].ID)
}

func TestGenerateActionsTruncationKeepsUrgentFirst(t *testing.T) {
	today := day(2025, 3, 10)
	obligations := []models.Obligation{
		{ID: 1, Title: "Uno", Amount: d("1"), DueDate: day(2025, 3, 11), Status: models.ObligationPending},
		{ID: 2, Title: "Dos", Amount: d("1"), DueDate: day(2025, 3, 12), Status: models.ObligationPending},
		{ID: 3, Title: "Tres", Amount: d("1"), DueDate: day(2025, 3, 13), Status: models.ObligationPending},
		{ID: 4, Title: "Cuatro", Amount: d("1"), DueDate: day(2025, 3, 14), Status: models.ObligationPending},
	}

	// Defensive adds one more priority-1 and one priority-2 candidate: six
	// in total, so the list truncates to five all-priority-1 entries.
	actions := advisor.GenerateActions(models.ProfileDefensive, models.CashFlowSummary{}, obligations, nil, false, today)

	require.Len(t, actions, 5)
	for _, a := range actions {
		assert.Equal(t, 1, a.Priority, "action %s", a.ID)
	}
}

func TestGenerateActionsPriorityOrderRegardlessOfGeneration(t *testing.T) {
	today := day(2025, 3, 10)
	// Advice (with its priority-2 entry) is generated after the urgent pass,
	// and an urgent obligation is generated before it; the sorted output
	// must still put every priority-1 item ahead of any priority-2 one.
	obligations := []models.Obligation{
		{ID: 1, Title: "Única", Amount: d("1"), DueDate: day(2025, 3, 11), Status: models.ObligationPending},
	}

	actions := advisor.GenerateActions(models.ProfileAccelerated, models.CashFlowSummary{}, obligations, nil, true, today)

	require.Len(t, actions, 3)
	last := 0
	for _, a := range actions {
		assert.GreaterOrEqual(t, a.Priority, last)
		last = a.Priority
	}
	assert.Equal(t, 1, actions[0].Priority)
}

func TestGenerateActionsUpsertKeepsSingleEntryPerID(t *testing.T) {
	today := day(2025, 3, 10)
	// The same debt surfacing twice as near-due must not produce two actions.
	debt := models.Debt{ID: 7, Name: "Préstamo", MonthlyPayment: d("100"), TotalInstallments: 10, RemainingInstallments: 5, NextPaymentDate: day(2025, 3, 11)}

	actions := advisor.GenerateActions(models.ProfileUnknown, models.CashFlowSummary{}, nil, []models.Debt{debt, debt}, false, today)

	count := 0
	for _, a := range actions {
		if strings.HasPrefix(a.ID, "pay-debt-") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
