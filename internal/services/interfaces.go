package services

import (
	"context"

	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/domain"
)

// Period represents the inclusive [start_date, end_date] span of a report
type Period struct {
	StartDate domain.Date `json:"start_date"`
	EndDate   domain.Date `json:"end_date"`
}

// Days returns the inclusive number of calendar days in the period.
// A single-day period yields 1; an inverted period yields a non-positive value.
func (p Period) Days() int {
	return p.StartDate.DaysUntil(p.EndDate) + 1
}

// ProjectBreakdown represents aggregated hours for a single project
type ProjectBreakdown struct {
	ProjectName string          `json:"project_name"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	EntryCount  int             `json:"entry_count"`
}

// UserBreakdown represents aggregated hours for a single user
type UserBreakdown struct {
	UserName   string          `json:"user_name"`
	TotalHours decimal.Decimal `json:"total_hours"`
	EntryCount int             `json:"entry_count"`
}

// ProjectHours represents total hours for a project on the dashboard
type ProjectHours struct {
	ProjectName string          `json:"project_name"`
	TotalHours  decimal.Decimal `json:"total_hours"`
}

// UserHours represents total hours for a user on the dashboard
type UserHours struct {
	UserName   string          `json:"user_name"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// ReportSummary represents the summary block of a generated report
type ReportSummary struct {
	TotalHours         decimal.Decimal `json:"total_hours"`
	TotalEntries       int             `json:"total_entries"`
	AverageHoursPerDay decimal.Decimal `json:"average_hours_per_day"`
}

// Report represents a filtered, on-demand summary plus the full matching entry list
type Report struct {
	Period             Period             `json:"period"`
	Summary            ReportSummary      `json:"summary"`
	BreakdownByProject []ProjectBreakdown `json:"breakdown_by_project"`
	BreakdownByUser    []UserBreakdown    `json:"breakdown_by_user"`
	Entries            []domain.Entry     `json:"entries"`
}

// ReportRequest represents the input for report generation.
// The period is mandatory; user and project filters are optional.
type ReportRequest struct {
	StartDate   domain.Date
	EndDate     domain.Date
	UserName    *string
	ProjectName *string
}

// DashboardSummary represents the unfiltered, always-current summary view
type DashboardSummary struct {
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalEntries   int             `json:"total_entries"`
	HoursByProject []ProjectHours  `json:"hours_by_project"`
	HoursByUser    []UserHours     `json:"hours_by_user"`
	RecentEntries  []domain.Entry  `json:"recent_entries"`
}

// ReportService generates filtered reports over timesheet entries
type ReportService interface {
	GenerateReport(ctx context.Context, req ReportRequest) (*Report, error)
}

// DashboardService assembles the unfiltered dashboard view
type DashboardService interface {
	GetDashboardSummary(ctx context.Context) (*DashboardSummary, error)
}
