// Package query translates untrusted search parameters into GORM scopes.
// It composes predicates and ordering only; executing them is the
// repository's job.
package query

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultInstantLimit is the instant-search result cap when the
	// request does not specify one.
	DefaultInstantLimit = 8
	// MaxInstantLimit is the hard cap on instant-search results.
	MaxInstantLimit = 20
)

// sortColumns whitelists the sortable fields. Anything else falls back to
// title rather than erroring.
var sortColumns = map[string]string{
	"title":  "title",
	"year":   "year",
	"rating": "rating",
}

// MovieFilters holds the optional per-field predicates of a search.
// Present filters combine with AND. Text filters match as case-insensitive
// substrings unless ExactMatch is set, in which case they compare with
// case-sensitive equality. A range with min > max composes to a predicate
// that matches nothing, which is not an error.
type MovieFilters struct {
	Title      string
	Director   string
	Genre      string
	ExactMatch bool
	MinYear    *int
	MaxYear    *int
	MinRating  *int
	MaxRating  *int
}

// HasAny reports whether at least one filter is present.
func (f MovieFilters) HasAny() bool {
	return f.Title != "" || f.Director != "" || f.Genre != "" ||
		f.MinYear != nil || f.MaxYear != nil ||
		f.MinRating != nil || f.MaxRating != nil
}

// Scope returns a GORM scope applying every present filter.
func (f MovieFilters) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = f.textFilter(db, "title", f.Title)
		db = f.textFilter(db, "director", f.Director)
		db = f.textFilter(db, "genre", f.Genre)

		if f.MinYear != nil {
			db = db.Where("year >= ?", *f.MinYear)
		}
		if f.MaxYear != nil {
			db = db.Where("year <= ?", *f.MaxYear)
		}
		if f.MinRating != nil {
			db = db.Where("rating >= ?", *f.MinRating)
		}
		if f.MaxRating != nil {
			db = db.Where("rating <= ?", *f.MaxRating)
		}
		return db
	}
}

// textFilter applies one text predicate. The column name is one of the
// three fixed fields above, never user input.
func (f MovieFilters) textFilter(db *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return db
	}
	if f.ExactMatch {
		// MySQL's default utf8mb4 collations compare case-insensitively;
		// force a binary comparison so equality stays case-sensitive.
		// SQLite's = is already binary.
		if db.Dialector.Name() == "mysql" {
			return db.Where("BINARY "+column+" = ?", value)
		}
		return db.Where(column+" = ?", value)
	}
	return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}

// Sort is a requested ordering. Unrecognized fields resolve to title and
// unrecognized orders to ascending; invalid input silently defaults by
// policy and never errors.
type Sort struct {
	Field string
	Order string
}

// Scope returns a GORM scope applying the resolved ordering.
func (s Sort) Scope() func(*gorm.DB) *gorm.DB {
	column, ok := sortColumns[s.Field]
	if !ok {
		column = "title"
	}
	desc := s.Order == "desc"

	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   desc,
		})
	}
}

// ClampInstantLimit bounds an instant-search limit to [1, MaxInstantLimit],
// substituting the default for non-positive input.
func ClampInstantLimit(limit int) int {
	if limit < 1 {
		return DefaultInstantLimit
	}
	if limit > MaxInstantLimit {
		return MaxInstantLimit
	}
	return limit
}

// InstantScope matches term as a substring across title, director and
// genre (OR), ordered for typeahead relevance: title-prefix matches first,
// then rating descending, then title ascending.
func InstantScope(term string, limit int) func(*gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	prefix := strings.ToLower(term) + "%"

	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("LOWER(title) LIKE ? OR LOWER(director) LIKE ? OR LOWER(genre) LIKE ?",
				pattern, pattern, pattern).
			Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL:                "CASE WHEN LOWER(title) LIKE ? THEN 0 ELSE 1 END, rating DESC, title ASC",
				Vars:               []interface{}{prefix},
				WithoutParentheses: true,
			}}).
			Limit(ClampInstantLimit(limit))
	}
}
