package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMovieNotFound is returned when no movie exists for the given id.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrNoUpdateFields is returned when a partial update carries no fields.
	ErrNoUpdateFields = errors.New("no fields provided for the update")
	// ErrNoFiltersProvided is returned when a filtered search has no filters.
	ErrNoFiltersProvided = errors.New("at least one search filter must be provided")
	// ErrInvalidYear is returned when a movie year is outside [1888, current year].
	ErrInvalidYear = errors.New("year must be between 1888 and the current year")
	// ErrInvalidRating is returned when a movie rating is outside [0, 5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrAlreadyRegistered is returned when the email or username is taken.
	ErrAlreadyRegistered = errors.New("email or username already registered")
	// ErrInvalidCredentials is returned for unknown users and bad passwords
	// alike, so error text cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrExpiredToken is returned when a token's expiry claim has passed.
	ErrExpiredToken = errors.New("expired token")
	// ErrInvalidToken is returned when a token fails signature verification
	// or its payload is malformed.
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Detail     string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, detail, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Detail:     detail,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Detail: e.Detail,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMovieNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MOVIE_NOT_FOUND")
	case errors.Is(err, ErrNoUpdateFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_UPDATE_FIELDS")
	case errors.Is(err, ErrNoFiltersProvided):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILTERS_PROVIDED")
	case errors.Is(err, ErrInvalidYear):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_YEAR")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	case errors.Is(err, ErrAlreadyRegistered):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrExpiredToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "EXPIRED_TOKEN")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
