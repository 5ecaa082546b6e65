package services

import (
	"context"

	"timesheet-tracker/internal/config"
	"timesheet-tracker/internal/domain"
	"timesheet-tracker/internal/logging"
	"timesheet-tracker/internal/repository/sqlite"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	repo       sqlite.Repository
	mapper     *domain.Mapper
	config     *config.Config
	aggregator *Aggregator
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo sqlite.Repository, cfg *config.Config) DashboardService {
	return &dashboardService{
		repo:       repo,
		mapper:     domain.NewMapper(),
		config:     cfg,
		aggregator: NewAggregator(),
	}
}

// GetDashboardSummary assembles the unfiltered summary over every stored
// entry plus the most recently created entries. An empty store yields zero
// totals and empty slices.
func (s *dashboardService) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	dbEntries, err := s.repo.ListEntries(ctx, sqlite.EntryFilter{})
	if err != nil {
		return nil, err
	}

	entries, err := s.mapper.Entry.FromDatabaseSlice(dbEntries)
	if err != nil {
		return nil, err
	}

	dbRecent, err := s.repo.RecentEntries(ctx, s.config.Commands.RecentEntriesLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.mapper.Entry.FromDatabaseSlice(dbRecent)
	if err != nil {
		return nil, err
	}

	logging.Debugf("dashboard: %d entries, %d recent\n", len(entries), len(recent))

	summary := &DashboardSummary{
		TotalHours:     s.aggregator.RoundHours(s.aggregator.TotalHours(entries)),
		TotalEntries:   len(entries),
		HoursByProject: make([]ProjectHours, 0),
		HoursByUser:    make([]UserHours, 0),
		RecentEntries:  recent,
	}

	for _, b := range s.aggregator.BreakdownByProject(entries) {
		summary.HoursByProject = append(summary.HoursByProject, ProjectHours{
			ProjectName: b.ProjectName,
			TotalHours:  s.aggregator.RoundHours(b.TotalHours),
		})
	}
	for _, b := range s.aggregator.BreakdownByUser(entries) {
		summary.HoursByUser = append(summary.HoursByUser, UserHours{
			UserName:   b.UserName,
			TotalHours: s.aggregator.RoundHours(b.TotalHours),
		})
	}

	return summary, nil
}
