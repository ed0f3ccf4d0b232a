package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/dvergara/finanzas-service/internal/utils"
)

const (
	maxWeeklyActions = 5
	urgentWindowDays = 5
)

// GenerateActions builds the prioritized weekly action list: urgent pay
// actions for obligations and debts due within the next five days, followed
// by profile-driven advice, truncated to five with priority-1 items always
// kept first.
//
// Obligations and debts frequently describe the same real-world bill (a card
// statement entered as an obligation and mirrored as a debt) without any
// shared key, so a debt whose normalized title matches an obligation that
// already produced an action is skipped; the obligation carries the
// authoritative due date and status.
func GenerateActions(profile models.Profile, summary models.CashFlowSummary, obligations []models.Obligation, debts []models.Debt, hasEmergencyFund bool, today time.Time) []models.WeeklyAction {
	var actions []models.WeeklyAction
	index := make(map[string]int)

	// Same id twice means one source produced two overlapping near-due
	// entries; the more urgent one wins.
	upsert := func(a models.WeeklyAction) {
		if i, ok := index[a.ID]; ok {
			if a.Priority < actions[i].Priority {
				actions[i] = a
			}
			return
		}
		index[a.ID] = len(actions)
		actions = append(actions, a)
	}

	covered := make(map[string]bool)

	for _, o := range obligations {
		if o.Status == models.ObligationPaid {
			continue
		}
		days := DaysBetween(today, o.DueDate)
		if days > urgentWindowDays {
			continue
		}
		overdue := o.Status == models.ObligationOverdue || days < 0
		upsert(models.WeeklyAction{
			ID:          fmt.Sprintf("pay-obligation-%d", o.ID),
			Title:       fmt.Sprintf("Pagar %s", o.Title),
			Description: dueDescription(days, overdue),
			Kind:        models.ActionPayment,
			Priority:    1,
		})
		covered[utils.NormalizeTitle(o.Title)] = true
	}

	for _, d := range debts {
		if !d.Active() {
			continue
		}
		days := DaysBetween(today, d.NextPaymentDate)
		if days > urgentWindowDays {
			continue
		}
		if covered[utils.NormalizeTitle(d.Name)] {
			continue
		}
		upsert(models.WeeklyAction{
			ID:          fmt.Sprintf("pay-debt-%d", d.ID),
			Title:       fmt.Sprintf("Confirmar pago de %s", d.Name),
			Description: dueDescription(days, days < 0),
			Kind:        models.ActionPayment,
			Priority:    1,
		})
	}

	for _, a := range adviceFor(profile, summary, hasEmergencyFund) {
		upsert(a)
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})
	if len(actions) > maxWeeklyActions {
		actions = actions[:maxWeeklyActions]
	}
	return actions
}

// dueDescription states the signed day count for an urgent payment.
func dueDescription(days int, overdue bool) string {
	switch {
	case overdue && days < 0:
		return fmt.Sprintf("Vencida hace %d días (%+d)", -days, days)
	case overdue:
		return fmt.Sprintf("Marcada como vencida (%+d días)", days)
	case days == 0:
		return "Vence hoy (+0 días)"
	default:
		return fmt.Sprintf("Vence en %d días (%+d)", days, days)
	}
}

func adviceFor(profile models.Profile, summary models.CashFlowSummary, hasEmergencyFund bool) []models.WeeklyAction {
	switch profile {
	case models.ProfileDefensive:
		return []models.WeeklyAction{
			{
				ID:          "review-recurring",
				Title:       "Revisar gastos recurrentes",
				Description: "El capital disponible es negativo: recortar suscripciones y cargos automáticos",
				Kind:        models.ActionReview,
				Priority:    1,
			},
			{
				ID:          "minimum-payments",
				Title:       "Priorizar pagos mínimos",
				Description: "Cubrir los mínimos de cada deuda antes de cualquier otro gasto",
				Kind:        models.ActionPayment,
				Priority:    2,
			},
		}
	case models.ProfileBalanced:
		advice := []models.WeeklyAction{
			{
				ID:          "pay-card-full",
				Title:       "Pagar la tarjeta en su totalidad",
				Description: "Evitar intereses pagando el total del resumen, no el mínimo",
				Kind:        models.ActionPayment,
				Priority:    1,
			},
		}
		if !hasEmergencyFund && summary.Income.IsPositive() {
			advice = append(advice, models.WeeklyAction{
				ID:          "fund-emergency",
				Title:       "Fondear el ahorro de emergencia",
				Description: "Separar un porcentaje del ingreso hasta cubrir medio objetivo",
				Kind:        models.ActionSaving,
				Priority:    2,
			})
		}
		return advice
	case models.ProfileAccelerated:
		return []models.WeeklyAction{
			{
				ID:          "invest-surplus",
				Title:       "Invertir el excedente",
				Description: "El flujo es positivo y el fondo de emergencia está cubierto",
				Kind:        models.ActionInvestment,
				Priority:    1,
			},
			{
				ID:          "boost-goal",
				Title:       "Acelerar una meta de ahorro",
				Description: "Adelantar aportes a la meta más próxima a cumplirse",
				Kind:        models.ActionSaving,
				Priority:    2,
			},
		}
	}
	return nil
}
