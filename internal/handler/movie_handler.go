package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "movielist/internal/errors"
	"movielist/internal/model"
	"movielist/internal/pagination"
	"movielist/internal/query"
	"movielist/internal/service"
)

// MovieHandler handles the movie catalog endpoints.
type MovieHandler struct {
	svc service.MovieService
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// MovieCreateRequest is the payload for creating a movie.
type MovieCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Year        int    `json:"year" validate:"required"`
	Director    string `json:"director" validate:"required"`
	Genre       string `json:"genre"`
	Rating      *int   `json:"rating" validate:"omitempty,min=0,max=5"`
	Description string `json:"description"`
}

// MovieUpdateRequest is the payload for a partial update. Absent fields
// stay untouched; at least one must be present.
type MovieUpdateRequest struct {
	Title       *string `json:"title"`
	Year        *int    `json:"year"`
	Director    *string `json:"director"`
	Genre       *string `json:"genre"`
	Rating      *int    `json:"rating" validate:"omitempty,min=0,max=5"`
	Description *string `json:"description"`
}

// ListQuery carries the pagination parameters of a listing request.
type ListQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// FieldSearchQuery carries the parameters of a single-field search.
type FieldSearchQuery struct {
	Q          string `query:"q" validate:"required"`
	ExactMatch bool   `query:"exact_match"`
	SortBy     string `query:"sort_by"`
	SortOrder  string `query:"sort_order"`
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// FilterSearchQuery carries the parameters of a multi-field filtered
// search. Every filter is optional, but at least one must be set.
type FilterSearchQuery struct {
	Title      string `query:"title"`
	Director   string `query:"director"`
	Genre      string `query:"genre"`
	ExactMatch bool   `query:"exact_match"`
	MinYear    *int   `query:"min_year"`
	MaxYear    *int   `query:"max_year"`
	MinRating  *int   `query:"min_rating" validate:"omitempty,min=0,max=5"`
	MaxRating  *int   `query:"max_rating" validate:"omitempty,min=0,max=5"`
	SortBy     string `query:"sort_by"`
	SortOrder  string `query:"sort_order"`
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// InstantSearchQuery carries the parameters of a typeahead lookup.
type InstantSearchQuery struct {
	Q     string `query:"q"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=20"`
}

// DeletedMovie is the confirmation payload returned after a delete.
type DeletedMovie struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Director string `json:"director"`
}

// DeleteResponse wraps the delete confirmation.
type DeleteResponse struct {
	Message      string       `json:"message"`
	DeletedMovie DeletedMovie `json:"deleted_movie"`
}

func movieIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.NewHTTPError(http.StatusBadRequest, "invalid movie id", "INVALID_ID")
	}
	return uint(id), nil
}

// movieError maps a service error, substituting the id-specific detail for
// missing movies.
func movieError(id uint, err error) *apperrors.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	if errors.Is(err, apperrors.ErrMovieNotFound) {
		httpErr.Detail = fmt.Sprintf("Movie with ID %d not found.", id)
	}
	return httpErr
}

// Create godoc
// @Summary Create a new movie
// @Tags movies
// @Accept json
// @Produce json
// @Param request body MovieCreateRequest true "Movie data"
// @Success 201 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/ [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req MovieCreateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	movie := &model.Movie{
		Title:       req.Title,
		Year:        req.Year,
		Director:    req.Director,
		Genre:       req.Genre,
		Rating:      req.Rating,
		Description: req.Description,
	}

	created, err := h.svc.Create(c.Request().Context(), movie)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List movies with pagination
// @Tags movies
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size, 1..100 (default 20)"
// @Success 200 {object} pagination.PaginatedResponse[model.Movie]
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/ [get]
func (h *MovieHandler) List(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters", "INVALID_QUERY")
	}
	if err := c.Validate(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	page, err := h.svc.List(c.Request().Context(), pagination.Params{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get a movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} model.Movie
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := movieIDParam(c)
	if err != nil {
		return err
	}

	movie, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return movieError(id, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// Update godoc
// @Summary Partially update a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param request body MovieUpdateRequest true "Fields to update"
// @Success 200 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [patch]
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := movieIDParam(c)
	if err != nil {
		return err
	}

	var req MovieUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	movie, err := h.svc.Update(c.Request().Context(), id, service.MovieUpdate{
		Title:       req.Title,
		Year:        req.Year,
		Director:    req.Director,
		Genre:       req.Genre,
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return movieError(id, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := movieIDParam(c)
	if err != nil {
		return err
	}

	movie, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return movieError(id, err)
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Message: fmt.Sprintf("Movie %s (ID: %d), successfully deleted.", movie.Title, movie.ID),
		DeletedMovie: DeletedMovie{
			ID:       movie.ID,
			Title:    movie.Title,
			Director: movie.Director,
		},
	})
}

// searchByField runs a single-field advanced search.
func (h *MovieHandler) searchByField(c echo.Context, buildFilters func(FieldSearchQuery) query.MovieFilters) error {
	var q FieldSearchQuery
	if err := c.Bind(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters", "INVALID_QUERY")
	}
	if err := c.Validate(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	page, err := h.svc.SearchFiltered(
		c.Request().Context(),
		buildFilters(q),
		query.Sort{Field: q.SortBy, Order: q.SortOrder},
		pagination.Params{Page: q.Page, PageSize: q.PageSize},
	)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, page)
}

// SearchByTitle godoc
// @Summary Search movies by title
// @Tags movies
// @Produce json
// @Param q query string true "Search term"
// @Param exact_match query bool false "Exact match instead of substring"
// @Param sort_by query string false "Sort field: title, year or rating"
// @Param sort_order query string false "Sort direction: asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, 1..100"
// @Success 200 {object} pagination.PaginatedResponse[model.Movie]
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/search/title/advanced [get]
func (h *MovieHandler) SearchByTitle(c echo.Context) error {
	return h.searchByField(c, func(q FieldSearchQuery) query.MovieFilters {
		return query.MovieFilters{Title: q.Q, ExactMatch: q.ExactMatch}
	})
}

// SearchByDirector godoc
// @Summary Search movies by director
// @Tags movies
// @Produce json
// @Param q query string true "Search term"
// @Param exact_match query bool false "Exact match instead of substring"
// @Param sort_by query string false "Sort field: title, year or rating"
// @Param sort_order query string false "Sort direction: asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, 1..100"
// @Success 200 {object} pagination.PaginatedResponse[model.Movie]
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/search/director/advanced [get]
func (h *MovieHandler) SearchByDirector(c echo.Context) error {
	return h.searchByField(c, func(q FieldSearchQuery) query.MovieFilters {
		return query.MovieFilters{Director: q.Q, ExactMatch: q.ExactMatch}
	})
}

// SearchByGenre godoc
// @Summary Search movies by genre
// @Tags movies
// @Produce json
// @Param q query string true "Search term"
// @Param exact_match query bool false "Exact match instead of substring"
// @Param sort_by query string false "Sort field: title, year or rating"
// @Param sort_order query string false "Sort direction: asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, 1..100"
// @Success 200 {object} pagination.PaginatedResponse[model.Movie]
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/search/genre/advanced [get]
func (h *MovieHandler) SearchByGenre(c echo.Context) error {
	return h.searchByField(c, func(q FieldSearchQuery) query.MovieFilters {
		return query.MovieFilters{Genre: q.Q, ExactMatch: q.ExactMatch}
	})
}

// SearchFiltered godoc
// @Summary Multi-field filtered search
// @Tags movies
// @Produce json
// @Param title query string false "Title filter"
// @Param director query string false "Director filter"
// @Param genre query string false "Genre filter"
// @Param exact_match query bool false "Exact match for text filters"
// @Param min_year query int false "Minimum year (inclusive)"
// @Param max_year query int false "Maximum year (inclusive)"
// @Param min_rating query int false "Minimum rating (inclusive)"
// @Param max_rating query int false "Maximum rating (inclusive)"
// @Param sort_by query string false "Sort field: title, year or rating"
// @Param sort_order query string false "Sort direction: asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, 1..100"
// @Success 200 {object} pagination.PaginatedResponse[model.Movie]
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/search/filters/advanced [get]
func (h *MovieHandler) SearchFiltered(c echo.Context) error {
	var q FilterSearchQuery
	if err := c.Bind(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters", "INVALID_QUERY")
	}
	if err := c.Validate(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	page, err := h.svc.SearchFiltered(
		c.Request().Context(),
		query.MovieFilters{
			Title:      q.Title,
			Director:   q.Director,
			Genre:      q.Genre,
			ExactMatch: q.ExactMatch,
			MinYear:    q.MinYear,
			MaxYear:    q.MaxYear,
			MinRating:  q.MinRating,
			MaxRating:  q.MaxRating,
		},
		query.Sort{Field: q.SortBy, Order: q.SortOrder},
		pagination.Params{Page: q.Page, PageSize: q.PageSize},
	)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, page)
}

// InstantSearch godoc
// @Summary Typeahead search across title, director and genre
// @Tags movies
// @Produce json
// @Param q query string false "Search term"
// @Param limit query int false "Result cap, 1..20 (default 8)"
// @Success 200 {array} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Router /movies/search/instant [get]
func (h *MovieHandler) InstantSearch(c echo.Context) error {
	var q InstantSearchQuery
	if err := c.Bind(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters", "INVALID_QUERY")
	}
	if err := c.Validate(&q); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	movies, err := h.svc.InstantSearch(c.Request().Context(), q.Q, q.Limit)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, movies)
}
