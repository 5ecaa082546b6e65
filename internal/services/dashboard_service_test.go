package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-tracker/internal/config"
)

func newTestDashboardService(t *testing.T) (DashboardService, *config.Config) {
	repo := setupTestRepo(t)
	cfg := config.NewConfig()
	return NewDashboardService(repo, cfg), cfg
}

func TestGetDashboardSummaryEmptyStore(t *testing.T) {
	svc, _ := newTestDashboardService(t)

	summary, err := svc.GetDashboardSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TotalHours.IsZero())
	assert.Equal(t, 0, summary.TotalEntries)
	assert.NotNil(t, summary.HoursByProject)
	assert.Empty(t, summary.HoursByProject)
	assert.NotNil(t, summary.HoursByUser)
	assert.Empty(t, summary.HoursByUser)
	assert.NotNil(t, summary.RecentEntries)
	assert.Empty(t, summary.RecentEntries)
}

func TestGetDashboardSummary(t *testing.T) {
	repo := setupTestRepo(t)
	cfg := config.NewConfig()
	svc := NewDashboardService(repo, cfg)

	seedEntry(t, repo, "alice", "website", "4.50", "2024-01-10")
	seedEntry(t, repo, "bob", "api", "6.00", "2024-01-11")
	seedEntry(t, repo, "alice", "api", "2.25", "2024-01-12")

	summary, err := svc.GetDashboardSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TotalHours.Equal(decimal.RequireFromString("12.75")))
	assert.Equal(t, 3, summary.TotalEntries)

	require.Len(t, summary.HoursByProject, 2)
	assert.Equal(t, "api", summary.HoursByProject[0].ProjectName)
	assert.True(t, summary.HoursByProject[0].TotalHours.Equal(decimal.RequireFromString("8.25")))

	require.Len(t, summary.HoursByUser, 2)
	assert.Equal(t, "alice", summary.HoursByUser[0].UserName)
	assert.True(t, summary.HoursByUser[0].TotalHours.Equal(decimal.RequireFromString("6.75")))

	require.Len(t, summary.RecentEntries, 3)
	// Most recently created first
	assert.Equal(t, "2024-01-12", summary.RecentEntries[0].EntryDate.String())
}

func TestGetDashboardSummaryRecentLimit(t *testing.T) {
	repo := setupTestRepo(t)
	cfg := config.NewConfig()
	cfg.Commands.RecentEntriesLimit = 2
	svc := NewDashboardService(repo, cfg)

	seedEntry(t, repo, "alice", "website", "1.00", "2024-01-10")
	seedEntry(t, repo, "alice", "website", "2.00", "2024-01-11")
	seedEntry(t, repo, "alice", "website", "3.00", "2024-01-12")

	summary, err := svc.GetDashboardSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalEntries)
	require.Len(t, summary.RecentEntries, 2)
	assert.Equal(t, "2024-01-12", summary.RecentEntries[0].EntryDate.String())
	assert.Equal(t, "2024-01-11", summary.RecentEntries[1].EntryDate.String())
}
