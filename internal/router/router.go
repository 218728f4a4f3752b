package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "busbook/internal/errors"
	"busbook/internal/handler"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, userHandler *handler.UserHandler, busHandler *handler.BusHandler) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World!")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// User routes
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/:id", userHandler.GetUser)
	e.POST("/users", userHandler.CreateUser)
	e.PUT("/users/:id", userHandler.UpdateUser)
	e.DELETE("/users/:id", userHandler.DeleteUser)

	// Bus routes
	e.GET("/buses", busHandler.ListBuses)
	e.POST("/buses", busHandler.CreateBus)
	e.GET("/buses/available/:seats", busHandler.BusesByAvailableSeats)
}

// errorHandler is the catch-all for faults raised before a response is sent.
// Any unmatched method+path combination gets a 404 body; method mismatches
// are folded in rather than reported as 405. Everything else, including
// recovered panics, becomes a generic 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) &&
		(httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
		_ = c.JSON(http.StatusNotFound, echo.Map{
			"error":   "Route not found",
			"message": fmt.Sprintf("Cannot %s %s", c.Request().Method, c.Request().URL.Path),
		})
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Internal server error"})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
