package repository

import (
	"context"

	"gorm.io/gorm"

	"movielist/internal/model"
	"movielist/internal/pagination"
	"movielist/internal/query"
)

// MovieRepository defines movie persistence operations.
type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	FindByID(ctx context.Context, id uint) (*model.Movie, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*model.Movie, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params pagination.Params) ([]model.Movie, int64, error)
	Search(ctx context.Context, filters query.MovieFilters, sort query.Sort, params pagination.Params) ([]model.Movie, int64, error)
	InstantSearch(ctx context.Context, term string, limit int) ([]model.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// Create inserts a new movie record.
func (r *movieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

// FindByID finds a movie by ID.
func (r *movieRepository) FindByID(ctx context.Context, id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// UpdateFields applies the given field mask to a movie and returns the
// refreshed record. The mask is built by the service from the known
// updatable fields only.
func (r *movieRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*model.Movie, error) {
	if err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a movie by ID.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Movie{}, id).Error
}

// List returns one page of the full catalog in id order, with the total
// record count.
func (r *movieRepository) List(ctx context.Context, params pagination.Params) ([]model.Movie, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []model.Movie
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&movies).Error; err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

// Search counts and fetches one page of movies matching the composed
// filters. The count runs before offset/limit so pagination metadata
// reflects the full match set.
func (r *movieRepository) Search(ctx context.Context, filters query.MovieFilters, sort query.Sort, params pagination.Params) ([]model.Movie, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Scopes(filters.Scope()).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []model.Movie
	if err := r.db.WithContext(ctx).
		Scopes(filters.Scope(), sort.Scope()).
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&movies).Error; err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

// InstantSearch fetches up to limit typeahead matches for term.
func (r *movieRepository) InstantSearch(ctx context.Context, term string, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.WithContext(ctx).
		Scopes(query.InstantScope(term, limit)).
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}
