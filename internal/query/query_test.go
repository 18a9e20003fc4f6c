package query

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"movielist/internal/model"
)

func intPtr(v int) *int { return &v }

func TestMovieFilters_HasAny(t *testing.T) {
	tests := []struct {
		name     string
		filters  MovieFilters
		expected bool
	}{
		{name: "no filters", filters: MovieFilters{}, expected: false},
		{name: "exact match flag alone is not a filter", filters: MovieFilters{ExactMatch: true}, expected: false},
		{name: "title filter", filters: MovieFilters{Title: "alien"}, expected: true},
		{name: "director filter", filters: MovieFilters{Director: "scott"}, expected: true},
		{name: "genre filter", filters: MovieFilters{Genre: "horror"}, expected: true},
		{name: "min year only", filters: MovieFilters{MinYear: intPtr(1990)}, expected: true},
		{name: "max rating only", filters: MovieFilters{MaxRating: intPtr(3)}, expected: true},
		{name: "inverted range still counts as filtered", filters: MovieFilters{MinYear: intPtr(2000), MaxYear: intPtr(1990)}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.HasAny())
		})
	}
}

// dryRunMySQL builds statements against the MySQL dialector without a
// live server; the pool is opened lazily and DryRun never executes.
func dryRunMySQL(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:password@tcp(localhost:3306)/movielist?charset=utf8mb4&parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func dryRunSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSearchSQL(db *gorm.DB, filters MovieFilters) string {
	var movies []model.Movie
	return db.Model(&model.Movie{}).Scopes(filters.Scope()).Find(&movies).Statement.SQL.String()
}

func TestMovieFilters_ExactMatchCollation(t *testing.T) {
	filters := MovieFilters{Title: "The Godfather", ExactMatch: true}

	t.Run("mysql forces a binary comparison", func(t *testing.T) {
		sql := buildSearchSQL(dryRunMySQL(t), filters)
		assert.Contains(t, sql, "BINARY title = ?")
	})

	t.Run("sqlite equality is already binary", func(t *testing.T) {
		sql := buildSearchSQL(dryRunSQLite(t), filters)
		assert.Contains(t, sql, "title = ?")
		assert.NotContains(t, sql, "BINARY")
	})

	t.Run("substring match stays case-insensitive on mysql", func(t *testing.T) {
		sql := buildSearchSQL(dryRunMySQL(t), MovieFilters{Title: "godfather"})
		assert.Contains(t, sql, "LOWER(title) LIKE ?")
		assert.NotContains(t, sql, "BINARY")
	})
}

func TestClampInstantLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "zero uses default", limit: 0, expected: DefaultInstantLimit},
		{name: "negative uses default", limit: -3, expected: DefaultInstantLimit},
		{name: "in range untouched", limit: 5, expected: 5},
		{name: "max allowed", limit: 20, expected: 20},
		{name: "above max clamps", limit: 50, expected: MaxInstantLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampInstantLimit(tt.limit))
		})
	}
}
