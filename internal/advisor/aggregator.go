package advisor

import (
	"sort"
	"time"

	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/shopspring/decimal"
)

// BuildTimeline merges obligations, installment debts, and materialized
// recurring instances whose due date falls inside [today, today+windowDays]
// into day groups sorted by date ascending.
//
// Paid obligations and exhausted debts never appear. Recurring instances
// keep their own source tag and are never merged with obligations or debts,
// even when amount and date coincide.
func BuildTimeline(today time.Time, windowDays int, obligations []models.Obligation, debts []models.Debt, recurring []models.RecurringInstance) []models.TimelineDay {
	start := DateOnly(today)
	end := start.AddDate(0, 0, windowDays)

	inWindow := func(d time.Time) bool {
		day := DateOnly(d)
		return !day.Before(start) && !day.After(end)
	}

	byDate := make(map[string][]models.TimelineEntry)
	add := func(e models.TimelineEntry) {
		key := e.DueDate.Format(DateLayout)
		byDate[key] = append(byDate[key], e)
	}

	for _, o := range obligations {
		if o.Status == models.ObligationPaid || !inWindow(o.DueDate) {
			continue
		}
		add(models.TimelineEntry{
			Kind:           models.SourceObligation,
			ID:             o.ID,
			Title:          o.Title,
			Amount:         o.Amount,
			DueDate:        DateOnly(o.DueDate),
			Category:       o.Category,
			Status:         o.Status,
			MinimumPayment: o.MinimumPayment,
		})
	}

	for _, d := range debts {
		if !d.Active() || !inWindow(d.NextPaymentDate) {
			continue
		}
		add(models.TimelineEntry{
			Kind:           models.SourceDebt,
			ID:             d.ID,
			Title:          d.Name,
			Amount:         d.MonthlyPayment,
			DueDate:        DateOnly(d.NextPaymentDate),
			RemainingUnits: d.RemainingInstallments,
		})
	}

	for _, r := range recurring {
		if !inWindow(r.DueDate) {
			continue
		}
		add(models.TimelineEntry{
			Kind:     models.SourceRecurring,
			ID:       r.ID,
			Title:    r.Title,
			Amount:   r.Amount,
			DueDate:  DateOnly(r.DueDate),
			Category: r.Category,
			FlowType: r.Type,
		})
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]models.TimelineDay, 0, len(dates))
	for _, date := range dates {
		entries := byDate[date]
		total := decimal.Zero
		for _, e := range entries {
			total = total.Add(e.Amount)
		}
		days = append(days, models.TimelineDay{Date: date, Total: total, Entries: entries})
	}
	return days
}
