package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "movielist/internal/errors"
	"movielist/internal/model"
	"movielist/internal/pagination"
	"movielist/internal/query"
)

// MockMovieRepository is a mock implementation of MovieRepository.
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uint) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*model.Movie, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) List(ctx context.Context, params pagination.Params) ([]model.Movie, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieRepository) Search(ctx context.Context, filters query.MovieFilters, sort query.Sort, params pagination.Params) ([]model.Movie, int64, error) {
	args := m.Called(ctx, filters, sort, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieRepository) InstantSearch(ctx context.Context, term string, limit int) ([]model.Movie, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestMovieService_Create_YearBounds(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name          string
		year          int
		rating        *int
		expectRepo    bool
		expectedError error
	}{
		{name: "year before first film", year: 1887, expectedError: apperrors.ErrInvalidYear},
		{name: "first film year", year: 1888, expectRepo: true},
		{name: "current year", year: currentYear, expectRepo: true},
		{name: "next year", year: currentYear + 1, expectedError: apperrors.ErrInvalidYear},
		{name: "rating above bound", year: 2000, rating: intPtr(6), expectedError: apperrors.ErrInvalidRating},
		{name: "rating below bound", year: 2000, rating: intPtr(-1), expectedError: apperrors.ErrInvalidRating},
		{name: "rating at bound", year: 2000, rating: intPtr(5), expectRepo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMovieRepository)
			if tt.expectRepo {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Movie")).Return(nil)
			}

			svc := NewMovieService(mockRepo)
			created, err := svc.Create(context.Background(), &model.Movie{
				Title:    "Test Movie",
				Year:     tt.year,
				Director: "Test Director",
				Rating:   tt.rating,
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
				mockRepo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMovieService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMovieService(mockRepo)
	movie, err := svc.Get(context.Background(), 42)

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, apperrors.ErrMovieNotFound)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_Update(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		upd           MovieUpdate
		setupMock     func(*MockMovieRepository)
		expectedError error
	}{
		{
			name: "empty payload fails before id resolution",
			id:   999,
			upd:  MovieUpdate{},
			setupMock: func(m *MockMovieRepository) {
				// No repository calls expected at all.
			},
			expectedError: apperrors.ErrNoUpdateFields,
		},
		{
			name: "unknown id",
			id:   42,
			upd:  MovieUpdate{Title: strPtr("New Title")},
			setupMock: func(m *MockMovieRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMovieNotFound,
		},
		{
			name: "invalid year in payload",
			id:   1,
			upd:  MovieUpdate{Year: intPtr(1800)},
			setupMock: func(m *MockMovieRepository) {
			},
			expectedError: apperrors.ErrInvalidYear,
		},
		{
			name: "applies only present fields",
			id:   1,
			upd:  MovieUpdate{Title: strPtr("New Title"), Rating: intPtr(4)},
			setupMock: func(m *MockMovieRepository) {
				existing := &model.Movie{ID: 1, Title: "Old Title", Year: 1999, Director: "Someone"}
				m.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
				m.On("UpdateFields", mock.Anything, uint(1), map[string]interface{}{
					"title":  "New Title",
					"rating": 4,
				}).Return(&model.Movie{ID: 1, Title: "New Title", Year: 1999, Director: "Someone", Rating: intPtr(4)}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMovieRepository)
			tt.setupMock(mockRepo)

			svc := NewMovieService(mockRepo)
			movie, err := svc.Update(context.Background(), tt.id, tt.upd)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, movie)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "New Title", movie.Title)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMovieService_Delete(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	existing := &model.Movie{ID: 7, Title: "Alien", Director: "Ridley Scott", Year: 1979}
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(existing, nil)
	mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

	svc := NewMovieService(mockRepo)
	movie, err := svc.Delete(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "Alien", movie.Title)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMovieService(mockRepo)
	movie, err := svc.Delete(context.Background(), 7)

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, apperrors.ErrMovieNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestMovieService_SearchFiltered_NoFilters(t *testing.T) {
	mockRepo := new(MockMovieRepository)

	svc := NewMovieService(mockRepo)
	_, err := svc.SearchFiltered(context.Background(), query.MovieFilters{}, query.Sort{}, pagination.Params{})

	assert.ErrorIs(t, err, apperrors.ErrNoFiltersProvided)
	mockRepo.AssertNotCalled(t, "Search")
}

func TestMovieService_SearchFiltered_BuildsMetadata(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	filters := query.MovieFilters{Director: "scott"}
	sort := query.Sort{Field: "year", Order: "desc"}
	params := pagination.Params{Page: 1, PageSize: 20}

	mockRepo.On("Search", mock.Anything, filters, sort, params).
		Return([]model.Movie{{ID: 1, Title: "Alien"}}, int64(45), nil)

	svc := NewMovieService(mockRepo)
	page, err := svc.SearchFiltered(context.Background(), filters, sort, params)

	assert.NoError(t, err)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_InstantSearch(t *testing.T) {
	t.Run("blank query never touches the store", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)

		svc := NewMovieService(mockRepo)
		for _, q := range []string{"", "   ", "\t"} {
			movies, err := svc.InstantSearch(context.Background(), q, 8)
			assert.NoError(t, err)
			assert.Empty(t, movies)
			assert.NotNil(t, movies)
		}
		mockRepo.AssertNotCalled(t, "InstantSearch")
	})

	t.Run("limit above cap is clamped", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)
		mockRepo.On("InstantSearch", mock.Anything, "dune", query.MaxInstantLimit).
			Return([]model.Movie{}, nil)

		svc := NewMovieService(mockRepo)
		_, err := svc.InstantSearch(context.Background(), "dune", 50)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing limit uses default", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)
		mockRepo.On("InstantSearch", mock.Anything, "dune", query.DefaultInstantLimit).
			Return([]model.Movie{}, nil)

		svc := NewMovieService(mockRepo)
		_, err := svc.InstantSearch(context.Background(), "dune", 0)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
