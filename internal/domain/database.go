package domain

import (
	"fmt"
	"sort"
)

// DatabaseInfo describes one isolated ledger: its own transaction
// document and settings document, typically scoped to a fiscal year.
type DatabaseInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsYear bool   `json:"isYear"`
	Year   int    `json:"year,omitempty"`
}

// AppConfig is the single registry document. CurrentDatabaseID must
// reference an entry in Databases whenever the registry is non-empty;
// an empty registry is represented by an empty CurrentDatabaseID.
type AppConfig struct {
	Databases         []DatabaseInfo `json:"databases"`
	CurrentDatabaseID string         `json:"currentDatabaseId"`
}

// FindDatabase returns the entry with the given id, or nil.
func (c *AppConfig) FindDatabase(id string) *DatabaseInfo {
	for i := range c.Databases {
		if c.Databases[i].ID == id {
			return &c.Databases[i]
		}
	}
	return nil
}

// YearDatabaseID returns the deterministic id for a year-typed database.
func YearDatabaseID(year int) string {
	return fmt.Sprintf("year_%d", year)
}

// SortDatabases applies the selector ordering: year-typed databases
// first, ascending by year, then custom databases alphabetically by
// name. The sort is stable so identical inputs order identically.
func SortDatabases(databases []DatabaseInfo) {
	sort.SliceStable(databases, func(i, j int) bool {
		a, b := databases[i], databases[j]
		if a.IsYear != b.IsYear {
			return a.IsYear
		}
		if a.IsYear {
			return a.Year < b.Year
		}
		return a.Name < b.Name
	})
}

// ConfigRepository reads and writes the registry document. Get returns
// nil when no document exists yet; a corrupt document reads as absent.
type ConfigRepository interface {
	Get() (*AppConfig, error)
	Save(config *AppConfig) error
}
