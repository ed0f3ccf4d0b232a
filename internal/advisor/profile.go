package advisor

import (
	"strings"

	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/shopspring/decimal"
)

const emergencyCategory = "emergency"

var (
	acceleratedSavingsRate = decimal.RequireFromString("0.2")
	emergencyFundedShare   = decimal.RequireFromString("0.5")
)

// Classify maps a cash-flow summary and emergency-fund state to a financial
// profile, risk level, and monthly outlook label. First matching rule wins:
// negative capital is always defensive, a >20% savings rate with a funded
// emergency reserve is accelerated, everything else is balanced.
func Classify(s models.CashFlowSummary, hasEmergencyFund bool) (models.Profile, models.RiskLevel, string) {
	switch {
	case s.CapitalAvailable.IsNegative():
		return models.ProfileDefensive, models.RiskHigh, "En Alerta"
	case s.SavingsRate.GreaterThan(acceleratedSavingsRate) && hasEmergencyFund:
		return models.ProfileAccelerated, models.RiskLow, "En Crecimiento"
	default:
		return models.ProfileBalanced, models.RiskMedium, "Equilibrado"
	}
}

// HasEmergencyFund reports whether any goal tagged as emergency is funded
// past half of its target.
func HasEmergencyFund(goals []models.SavingsGoal) bool {
	for _, g := range goals {
		if !strings.EqualFold(g.Category, emergencyCategory) {
			continue
		}
		if g.CurrentAmount.GreaterThan(g.TargetAmount.Mul(emergencyFundedShare)) {
			return true
		}
	}
	return false
}
