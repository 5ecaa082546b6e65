package services

import (
	"context"

	"timesheet-tracker/internal/domain"
	"timesheet-tracker/internal/logging"
	"timesheet-tracker/internal/repository/sqlite"
	"timesheet-tracker/internal/validation"
)

// reportService implements the ReportService interface
type reportService struct {
	repo       sqlite.Repository
	mapper     *domain.Mapper
	validator  *validation.EntryValidator
	aggregator *Aggregator
}

// NewReportService creates a new report service
func NewReportService(repo sqlite.Repository, validator *validation.EntryValidator) ReportService {
	return &reportService{
		repo:       repo,
		mapper:     domain.NewMapper(),
		validator:  validator,
		aggregator: NewAggregator(),
	}
}

// GenerateReport validates the requested period, loads the matching entries
// and assembles the summary and breakdowns. All hour values in the result
// are rounded to two decimal places; the average is computed from the
// unrounded total.
func (s *reportService) GenerateReport(ctx context.Context, req ReportRequest) (*Report, error) {
	if err := s.validator.ValidateReportPeriod(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	startDate := req.StartDate
	endDate := req.EndDate
	filter := domain.EntryFilter{
		UserName:    req.UserName,
		ProjectName: req.ProjectName,
		StartDate:   &startDate,
		EndDate:     &endDate,
	}

	dbEntries, err := s.repo.ListEntries(ctx, s.mapper.Filter.ToDatabase(filter))
	if err != nil {
		return nil, err
	}

	entries, err := s.mapper.Entry.FromDatabaseSlice(dbEntries)
	if err != nil {
		return nil, err
	}

	period := Period{StartDate: req.StartDate, EndDate: req.EndDate}
	total := s.aggregator.TotalHours(entries)

	logging.Debugf("report: %d entries between %s and %s\n", len(entries), req.StartDate, req.EndDate)

	report := &Report{
		Period: period,
		Summary: ReportSummary{
			TotalHours:         s.aggregator.RoundHours(total),
			TotalEntries:       len(entries),
			AverageHoursPerDay: s.aggregator.AverageHoursPerDay(total, period),
		},
		BreakdownByProject: s.aggregator.BreakdownByProject(entries),
		BreakdownByUser:    s.aggregator.BreakdownByUser(entries),
		Entries:            entries,
	}

	for i := range report.BreakdownByProject {
		report.BreakdownByProject[i].TotalHours = s.aggregator.RoundHours(report.BreakdownByProject[i].TotalHours)
	}
	for i := range report.BreakdownByUser {
		report.BreakdownByUser[i].TotalHours = s.aggregator.RoundHours(report.BreakdownByUser[i].TotalHours)
	}

	return report, nil
}
