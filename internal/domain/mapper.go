package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database Entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain Entry to a database Entry.
// Hours are serialized as canonical 2-decimal fixed-point text and the
// entry date as YYYY-MM-DD.
func (m *EntryMapper) ToDatabase(entry Entry) sqlite.Entry {
	return sqlite.Entry{
		ID:              entry.ID,
		UserName:        entry.UserName,
		ProjectName:     entry.ProjectName,
		TaskDescription: entry.TaskDescription,
		HoursWorked:     entry.HoursWorked.StringFixed(2),
		EntryDate:       entry.EntryDate.String(),
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}
}

// FromDatabase converts a database Entry to a domain Entry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.Entry) (Entry, error) {
	hours, err := decimal.NewFromString(dbEntry.HoursWorked)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d has invalid hours_worked %q: %w", dbEntry.ID, dbEntry.HoursWorked, err)
	}

	date, err := ParseDate(dbEntry.EntryDate)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d has invalid entry_date: %w", dbEntry.ID, err)
	}

	return Entry{
		ID:              dbEntry.ID,
		UserName:        dbEntry.UserName,
		ProjectName:     dbEntry.ProjectName,
		TaskDescription: dbEntry.TaskDescription,
		HoursWorked:     hours,
		EntryDate:       date,
		CreatedAt:       dbEntry.CreatedAt,
		UpdatedAt:       dbEntry.UpdatedAt,
	}, nil
}

// FromDatabaseSlice converts a slice of database Entries to domain Entries.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []*sqlite.Entry) ([]Entry, error) {
	entries := make([]Entry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry, err := m.FromDatabase(*dbEntry)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// FilterMapper handles conversion between domain and database EntryFilter.
type FilterMapper struct{}

// NewFilterMapper creates a new FilterMapper instance.
func NewFilterMapper() *FilterMapper {
	return &FilterMapper{}
}

// ToDatabase converts a domain EntryFilter to a database EntryFilter.
func (m *FilterMapper) ToDatabase(filter EntryFilter) sqlite.EntryFilter {
	dbFilter := sqlite.EntryFilter{
		UserName:    filter.UserName,
		ProjectName: filter.ProjectName,
	}
	if filter.StartDate != nil {
		start := filter.StartDate.String()
		dbFilter.StartDate = &start
	}
	if filter.EndDate != nil {
		end := filter.EndDate.String()
		dbFilter.EndDate = &end
	}
	return dbFilter
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Entry  *EntryMapper
	Filter *FilterMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Entry:  NewEntryMapper(),
		Filter: NewFilterMapper(),
	}
}
