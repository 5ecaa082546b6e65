package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"timesheet-tracker/internal/errors"
	"timesheet-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// entryColumns is the canonical column order for entry scans.
var entryColumns = []string{
	"id", "user_name", "project_name", "task_description",
	"hours_worked", "entry_date", "created_at", "updated_at",
}

// Repository defines the interface for timesheet entry storage operations
type Repository interface {
	// CreateEntry inserts an entry, assigning its ID and timestamps.
	CreateEntry(ctx context.Context, entry *Entry) error

	// GetEntry retrieves an entry by ID.
	GetEntry(ctx context.Context, id int64) (*Entry, error)

	// ListEntries returns entries matching the filter, ordered by
	// entry_date descending (ties broken by ID descending).
	ListEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// RecentEntries returns up to limit entries ordered by creation time
	// descending (ties broken by ID descending).
	RecentEntries(ctx context.Context, limit int) ([]*Entry, error)

	// UpdateEntry persists all data fields of the entry and refreshes its
	// updated_at timestamp.
	UpdateEntry(ctx context.Context, entry *Entry) error

	// DeleteEntry removes an entry by ID. It reports whether a row was
	// actually removed; a missing row is not an error.
	DeleteEntry(ctx context.Context, id int64) (bool, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEntry creates a new timesheet entry
func (r *SQLiteRepository) CreateEntry(ctx context.Context, entry *Entry) error {
	now := time.Now().UTC().Truncate(time.Second)

	query := `
	INSERT INTO timesheet_entries (user_name, project_name, task_description, hours_worked, entry_date, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		entry.UserName, entry.ProjectName, entry.TaskDescription,
		entry.HoursWorked, entry.EntryDate,
		FormatTimestampForDB(now), FormatTimestampForDB(now))
	if err != nil {
		return err
	}

	entry.ID = id
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return nil
}

// GetEntry retrieves a timesheet entry by ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	query := `
	SELECT id, user_name, project_name, task_description, hours_worked, entry_date, created_at, updated_at
	FROM timesheet_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEntry, "timesheet entry", fmt.Sprintf("%d", id), id)
}

// ListEntries returns entries matching the filter, most recent entry date first
func (r *SQLiteRepository) ListEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error) {
	builder := sq.Select(entryColumns...).
		From("timesheet_entries").
		OrderBy("entry_date DESC", "id DESC")

	if filter.UserName != nil {
		builder = builder.Where(sq.Eq{"user_name": *filter.UserName})
	}
	if filter.ProjectName != nil {
		builder = builder.Where(sq.Eq{"project_name": *filter.ProjectName})
	}
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"entry_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"entry_date": *filter.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, HandleDatabaseError("build entry query", err)
	}

	return QueryMultiple(ctx, r.db, query, ScanEntries, "timesheet entries", args...)
}

// RecentEntries returns the most recently created entries
func (r *SQLiteRepository) RecentEntries(ctx context.Context, limit int) ([]*Entry, error) {
	query, args, err := sq.Select(entryColumns...).
		From("timesheet_entries").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, HandleDatabaseError("build recent entries query", err)
	}

	return QueryMultiple(ctx, r.db, query, ScanEntries, "timesheet entries", args...)
}

// UpdateEntry updates an existing timesheet entry
func (r *SQLiteRepository) UpdateEntry(ctx context.Context, entry *Entry) error {
	now := time.Now().UTC().Truncate(time.Second)

	query := `
	UPDATE timesheet_entries
	SET user_name = ?, project_name = ?, task_description = ?, hours_worked = ?, entry_date = ?, updated_at = ?
	WHERE id = ?`

	err := ExecuteWithRowsAffected(ctx, r.db, query, "timesheet entry", fmt.Sprintf("%d", entry.ID),
		entry.UserName, entry.ProjectName, entry.TaskDescription,
		entry.HoursWorked, entry.EntryDate,
		FormatTimestampForDB(now), entry.ID)
	if err != nil {
		return err
	}

	entry.UpdatedAt = now
	return nil
}

// DeleteEntry deletes a timesheet entry by ID, reporting whether a row was removed
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM timesheet_entries WHERE id = ?`

	rows, err := ExecuteWithRowsCount(ctx, r.db, query, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
