package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "busbook/internal/errors"
	"busbook/internal/model"
	"busbook/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserRequest is the create/update payload.
type UserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Database query failed",
			Details: err.Error(),
		})
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
	}

	user, err := h.svc.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Database query failed",
			Details: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Name and email are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Name and email are required"})
	}

	user, err := h.svc.CreateUser(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, apperrors.ErrorResponse{Error: "Email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Failed to create user",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// UpdateUser godoc
// @Summary Update an existing user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserRequest true "User payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Name and email are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Name and email are required"})
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), uint(id), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			return c.JSON(http.StatusConflict, apperrors.ErrorResponse{Error: "Email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
				Error:   "Failed to update user",
				Details: err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
	}

	user, err := h.svc.DeleteUser(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Failed to delete user",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "User deleted successfully",
		"deletedUser": user,
	})
}
