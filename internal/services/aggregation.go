package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/domain"
)

// hoursScale is the number of decimal places for emitted hour values.
const hoursScale = 2

// Aggregator computes summary statistics and grouped breakdowns over a set
// of already-filtered timesheet entries. Group totals stay unrounded while
// aggregating; only emitted values are rounded to two decimal places
// (round half up).
type Aggregator struct{}

// NewAggregator creates a new Aggregator instance
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// TotalHours returns the unrounded sum of hours across all entries
func (a *Aggregator) TotalHours(entries []domain.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.HoursWorked)
	}
	return total
}

// RoundHours rounds an hours value to the emitted two-decimal precision
func (a *Aggregator) RoundHours(hours decimal.Decimal) decimal.Decimal {
	return hours.Round(hoursScale)
}

// BreakdownByProject groups entries by exact project name, accumulating
// unrounded hour totals and entry counts. Groups are ordered by total hours
// descending; ties keep first-encountered insertion order.
func (a *Aggregator) BreakdownByProject(entries []domain.Entry) []ProjectBreakdown {
	breakdown := make([]ProjectBreakdown, 0)
	index := make(map[string]int)

	for _, entry := range entries {
		i, ok := index[entry.ProjectName]
		if !ok {
			index[entry.ProjectName] = len(breakdown)
			breakdown = append(breakdown, ProjectBreakdown{
				ProjectName: entry.ProjectName,
				TotalHours:  entry.HoursWorked,
				EntryCount:  1,
			})
			continue
		}
		breakdown[i].TotalHours = breakdown[i].TotalHours.Add(entry.HoursWorked)
		breakdown[i].EntryCount++
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalHours.GreaterThan(breakdown[j].TotalHours)
	})

	return breakdown
}

// BreakdownByUser groups entries by exact user name with the same
// accumulation and ordering rules as BreakdownByProject.
func (a *Aggregator) BreakdownByUser(entries []domain.Entry) []UserBreakdown {
	breakdown := make([]UserBreakdown, 0)
	index := make(map[string]int)

	for _, entry := range entries {
		i, ok := index[entry.UserName]
		if !ok {
			index[entry.UserName] = len(breakdown)
			breakdown = append(breakdown, UserBreakdown{
				UserName:   entry.UserName,
				TotalHours: entry.HoursWorked,
				EntryCount: 1,
			})
			continue
		}
		breakdown[i].TotalHours = breakdown[i].TotalHours.Add(entry.HoursWorked)
		breakdown[i].EntryCount++
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalHours.GreaterThan(breakdown[j].TotalHours)
	})

	return breakdown
}

// AverageHoursPerDay divides the unrounded hour total by the inclusive day
// count of the period and rounds the result. A non-positive day count
// yields zero.
func (a *Aggregator) AverageHoursPerDay(totalHours decimal.Decimal, period Period) decimal.Decimal {
	days := period.Days()
	if days <= 0 {
		return decimal.Zero
	}
	return totalHours.Div(decimal.NewFromInt(int64(days))).Round(hoursScale)
}
