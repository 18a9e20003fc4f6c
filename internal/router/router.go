package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"movielist/internal/auth"
	apperrors "movielist/internal/errors"
	"movielist/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	movieHandler *handler.MovieHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler(e)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the movie catalog API!"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	movies := e.Group("/movies")
	movies.POST("/", movieHandler.Create)
	movies.GET("/", movieHandler.List)
	// Static search routes must be declared alongside the :id routes;
	// echo resolves static segments before the parameter.
	movies.GET("/search/title/advanced", movieHandler.SearchByTitle)
	movies.GET("/search/director/advanced", movieHandler.SearchByDirector)
	movies.GET("/search/genre/advanced", movieHandler.SearchByGenre)
	movies.GET("/search/filters/advanced", movieHandler.SearchFiltered)
	movies.GET("/search/instant", movieHandler.InstantSearch)
	movies.GET("/:id", movieHandler.Get)
	movies.PATCH("/:id", movieHandler.Update)
	movies.DELETE("/:id", movieHandler.Delete)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// The verify route requires a bearer token; parsing is delegated to
	// the token service so expired and invalid tokens keep their distinct
	// 401 details.
	verify := authGroup.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: jwtErrorHandler,
	}))
	verify.GET("/verify", authHandler.Verify)
}

// jwtErrorHandler maps middleware failures onto the error taxonomy. A
// missing or malformed Authorization header counts as an invalid token.
func jwtErrorHandler(c echo.Context, err error) error {
	if errors.Is(err, apperrors.ErrExpiredToken) {
		return apperrors.MapErrorToHTTP(apperrors.ErrExpiredToken)
	}
	return apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
}

// errorHandler renders HTTPError values as {detail, code} bodies and
// falls back to echo's default handler for everything else.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			}
			if jsonErr := c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse()); jsonErr != nil {
				e.Logger.Error(jsonErr)
			}
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
