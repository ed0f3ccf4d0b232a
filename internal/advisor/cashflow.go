package advisor

import (
	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/shopspring/decimal"
)

const savingsRatePlaces = 6

// Summarize computes the cash-flow picture for the active accounting period
// from period transactions, open obligations, and active debts. All sums are
// exact decimal arithmetic.
func Summarize(transactions []models.Transaction, obligations []models.Obligation, debts []models.Debt) models.CashFlowSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionIncome:
			income = income.Add(tx.Amount)
		case models.TransactionExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	openObligations := decimal.Zero
	for _, o := range obligations {
		if o.Status != models.ObligationPaid {
			openObligations = openObligations.Add(o.Amount)
		}
	}

	debtPayments := decimal.Zero
	for _, d := range debts {
		if d.Active() {
			debtPayments = debtPayments.Add(d.MonthlyPayment)
		}
	}

	capital := income.Sub(expenses.Add(openObligations).Add(debtPayments))

	// A period without income has a savings rate of zero, not a division error.
	rate := decimal.Zero
	if income.IsPositive() {
		rate = income.Sub(expenses).DivRound(income, savingsRatePlaces)
	}

	return models.CashFlowSummary{
		Income:               income,
		Expenses:             expenses,
		MonthlyDebtPayments:  debtPayments,
		OpenObligationsTotal: openObligations,
		CapitalAvailable:     capital,
		SavingsRate:          rate,
	}
}
