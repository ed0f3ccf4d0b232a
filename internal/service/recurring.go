package service

import (
	"time"

	"github.com/dvergara/finanzas-service/internal/advisor"
	"github.com/dvergara/finanzas-service/internal/models"
)

// Instances generated per materialization run.
const materializeAhead = 3

// ListUpcomingRecurring returns the materialized instances due inside the
// next windowDays for the space.
func (s *Service) ListUpcomingRecurring(spaceID int64, windowDays int) ([]models.RecurringInstance, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	today := advisor.DateOnly(s.now())
	return s.store.ListUpcomingRecurring(spaceID, today, today.AddDate(0, 0, windowDays))
}

// RunRecurringRule materializes the next occurrences of one rule and
// advances its next run. The advisory engine only ever consumes the
// resulting instances.
func (s *Service) RunRecurringRule(spaceID, ruleID int64) ([]models.RecurringInstance, error) {
	rule, err := s.store.FindRecurringRule(spaceID, ruleID)
	if err != nil {
		return nil, err
	}

	instances, nextRun := materialize(rule)
	if err := s.store.MaterializeRule(rule, instances, nextRun); err != nil {
		return nil, err
	}

	s.log.Infof("Rule %d materialized %d instances in space %d", rule.ID, len(instances), spaceID)
	return instances, nil
}

// RunDueRules materializes every rule whose next run has arrived. Failures
// are logged per rule and never stop the batch; the nightly job calls this.
func (s *Service) RunDueRules() {
	rules, err := s.store.ListDueRecurringRules(s.now())
	if err != nil {
		s.log.Errorf("Failed to list due recurring rules: %v", err)
		return
	}

	for i := range rules {
		rule := rules[i]
		instances, nextRun := materialize(&rule)
		if err := s.store.MaterializeRule(&rule, instances, nextRun); err != nil {
			s.log.Errorf("Failed to materialize rule %d: %v", rule.ID, err)
			continue
		}
		s.log.Infof("Rule %d materialized %d instances in space %d", rule.ID, len(instances), rule.SpaceID)
	}
}

func materialize(rule *models.RecurringRule) ([]models.RecurringInstance, time.Time) {
	date := advisor.DateOnly(rule.NextRun)
	instances := make([]models.RecurringInstance, 0, materializeAhead)
	for i := 0; i < materializeAhead; i++ {
		instances = append(instances, models.RecurringInstance{
			RuleID:    rule.ID,
			SpaceID:   rule.SpaceID,
			Title:     rule.Title,
			Amount:    rule.Amount,
			DueDate:   date,
			Type:      rule.Type,
			Frequency: rule.Frequency,
			Category:  rule.Category,
		})
		date = nextOccurrence(date, rule.Frequency)
	}
	return instances, date
}

func nextOccurrence(d time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyWeekly:
		return d.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return d.AddDate(0, 0, 14)
	case models.FrequencyYearly:
		return d.AddDate(1, 0, 0)
	default:
		return d.AddDate(0, 1, 0)
	}
}
