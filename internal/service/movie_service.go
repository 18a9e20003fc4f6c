package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "movielist/internal/errors"
	"movielist/internal/model"
	"movielist/internal/pagination"
	"movielist/internal/query"
	"movielist/internal/repository"
)

// MovieUpdate is the explicit field mask for a partial update. Only the
// fields below can ever be updated; nil means "leave unchanged".
type MovieUpdate struct {
	Title       *string
	Year        *int
	Director    *string
	Genre       *string
	Rating      *int
	Description *string
}

// MovieService exposes the catalog's business operations.
type MovieService interface {
	Create(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	Get(ctx context.Context, id uint) (*model.Movie, error)
	Update(ctx context.Context, id uint, upd MovieUpdate) (*model.Movie, error)
	Delete(ctx context.Context, id uint) (*model.Movie, error)
	List(ctx context.Context, params pagination.Params) (pagination.PaginatedResponse[model.Movie], error)
	SearchFiltered(ctx context.Context, filters query.MovieFilters, sort query.Sort, params pagination.Params) (pagination.PaginatedResponse[model.Movie], error)
	InstantSearch(ctx context.Context, term string, limit int) ([]model.Movie, error)
}

type movieService struct {
	repo repository.MovieRepository
}

// NewMovieService builds a MovieService on top of the given repository.
func NewMovieService(repo repository.MovieRepository) MovieService {
	return &movieService{repo: repo}
}

// validateYear enforces the [1888, current year] bound. The upper bound is
// evaluated at validation time, not at startup.
func validateYear(year int) error {
	if year < model.MinMovieYear || year > time.Now().Year() {
		return apperrors.ErrInvalidYear
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 0 || rating > 5 {
		return apperrors.ErrInvalidRating
	}
	return nil
}

// Create validates and persists a new movie. Timestamps and the id are
// assigned by the store.
func (s *movieService) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	if err := validateYear(movie.Year); err != nil {
		return nil, err
	}
	if movie.Rating != nil {
		if err := validateRating(*movie.Rating); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	return movie, nil
}

// Get fetches a single movie by id.
func (s *movieService) Get(ctx context.Context, id uint) (*model.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return movie, nil
}

// Update applies a partial update. An empty field mask fails before the id
// is even resolved, so the caller gets the same error for any id.
func (s *movieService) Update(ctx context.Context, id uint, upd MovieUpdate) (*model.Movie, error) {
	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Year != nil {
		if err := validateYear(*upd.Year); err != nil {
			return nil, err
		}
		fields["year"] = *upd.Year
	}
	if upd.Director != nil {
		fields["director"] = *upd.Director
	}
	if upd.Genre != nil {
		fields["genre"] = *upd.Genre
	}
	if upd.Rating != nil {
		if err := validateRating(*upd.Rating); err != nil {
			return nil, err
		}
		fields["rating"] = *upd.Rating
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}

	if len(fields) == 0 {
		return nil, apperrors.ErrNoUpdateFields
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	movie, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return movie, nil
}

// Delete removes a movie and returns the deleted record so the handler can
// build its confirmation payload.
func (s *movieService) Delete(ctx context.Context, id uint) (*model.Movie, error) {
	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	return movie, nil
}

// List returns one page of the full catalog.
func (s *movieService) List(ctx context.Context, params pagination.Params) (pagination.PaginatedResponse[model.Movie], error) {
	movies, total, err := s.repo.List(ctx, params)
	if err != nil {
		return pagination.PaginatedResponse[model.Movie]{}, fmt.Errorf("list movies: %w", err)
	}
	return pagination.NewPaginatedResponse(movies, total, params), nil
}

// SearchFiltered runs a multi-field AND search. At least one filter must
// be present.
func (s *movieService) SearchFiltered(ctx context.Context, filters query.MovieFilters, sort query.Sort, params pagination.Params) (pagination.PaginatedResponse[model.Movie], error) {
	if !filters.HasAny() {
		return pagination.PaginatedResponse[model.Movie]{}, apperrors.ErrNoFiltersProvided
	}

	movies, total, err := s.repo.Search(ctx, filters, sort, params)
	if err != nil {
		return pagination.PaginatedResponse[model.Movie]{}, fmt.Errorf("search movies: %w", err)
	}
	return pagination.NewPaginatedResponse(movies, total, params), nil
}

// InstantSearch serves typeahead lookups. A blank term returns an empty
// result without touching the store.
func (s *movieService) InstantSearch(ctx context.Context, term string, limit int) ([]model.Movie, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.Movie{}, nil
	}

	movies, err := s.repo.InstantSearch(ctx, term, query.ClampInstantLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("instant search: %w", err)
	}
	return movies, nil
}
