package api

import (
	"context"

	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/domain"
	"timesheet-tracker/internal/logging"
	"timesheet-tracker/internal/repository/sqlite"
	"timesheet-tracker/internal/validation"
)

// API defines the business-logic interface for timesheet entry operations
type API interface {
	// ========== Entry Management ==========

	// CreateEntry validates and stores a new timesheet entry, returning it
	// with its assigned ID and timestamps.
	CreateEntry(ctx context.Context, userName, projectName, taskDescription string, hoursWorked decimal.Decimal, entryDate domain.Date) (*domain.Entry, error)

	// UpdateEntry applies a partial update to an existing entry. Only the
	// fields set on the patch change; updated_at is always refreshed, even
	// when the patch carries the stored values.
	UpdateEntry(ctx context.Context, id int64, patch domain.EntryPatch) (*domain.Entry, error)

	// DeleteEntry removes an entry by ID. It reports whether an entry was
	// removed; deleting a missing entry is not an error.
	DeleteEntry(ctx context.Context, id int64) (bool, error)

	// ========== Query Operations ==========

	// GetEntry returns a single entry by ID.
	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)

	// ListEntries returns entries matching the filter, most recent entry
	// date first. An empty filter returns every entry.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
}

// apiImpl implements the API interface
type apiImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.EntryValidator
}

// New creates a new API instance
func New(repo sqlite.Repository, validator *validation.EntryValidator) API {
	return &apiImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validator,
	}
}

// ========== Entry Management ==========

func (a *apiImpl) CreateEntry(ctx context.Context, userName, projectName, taskDescription string, hoursWorked decimal.Decimal, entryDate domain.Date) (*domain.Entry, error) {
	if err := a.validator.ValidateEntryForCreation(userName, projectName, taskDescription, hoursWorked, entryDate); err != nil {
		return nil, err
	}

	entry := domain.NewEntry(userName, projectName, taskDescription, hoursWorked, entryDate)
	dbEntry := a.mapper.Entry.ToDatabase(entry)

	if err := a.repo.CreateEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	logging.Debugf("created entry %d for user %s\n", dbEntry.ID, userName)

	created, err := a.mapper.Entry.FromDatabase(dbEntry)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *apiImpl) UpdateEntry(ctx context.Context, id int64, patch domain.EntryPatch) (*domain.Entry, error) {
	if err := a.validator.ValidateEntryPatch(id, patch); err != nil {
		return nil, err
	}

	dbEntry, err := a.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := a.mapper.Entry.FromDatabase(*dbEntry)
	if err != nil {
		return nil, err
	}

	if patch.UserName != nil {
		entry.UserName = *patch.UserName
	}
	if patch.ProjectName != nil {
		entry.ProjectName = *patch.ProjectName
	}
	if patch.TaskDescription != nil {
		entry.TaskDescription = *patch.TaskDescription
	}
	if patch.HoursWorked != nil {
		entry.HoursWorked = *patch.HoursWorked
	}
	if patch.EntryDate != nil {
		entry.EntryDate = *patch.EntryDate
	}

	updated := a.mapper.Entry.ToDatabase(entry)
	if err := a.repo.UpdateEntry(ctx, &updated); err != nil {
		return nil, err
	}

	logging.Debugf("updated entry %d\n", id)

	result, err := a.mapper.Entry.FromDatabase(updated)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *apiImpl) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	if err := a.validator.ValidateEntryID(id); err != nil {
		return false, err
	}

	deleted, err := a.repo.DeleteEntry(ctx, id)
	if err != nil {
		return false, err
	}

	logging.Debugf("delete entry %d: removed=%t\n", id, deleted)
	return deleted, nil
}

// ========== Query Operations ==========

func (a *apiImpl) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	if err := a.validator.ValidateEntryID(id); err != nil {
		return nil, err
	}

	dbEntry, err := a.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := a.mapper.Entry.FromDatabase(*dbEntry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *apiImpl) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	if err := a.validator.ValidateFilter(filter); err != nil {
		return nil, err
	}

	dbEntries, err := a.repo.ListEntries(ctx, a.mapper.Filter.ToDatabase(filter))
	if err != nil {
		return nil, err
	}

	return a.mapper.Entry.FromDatabaseSlice(dbEntries)
}
