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

// BusHandler handles bus endpoints.
type BusHandler struct {
	svc service.BusService
}

// NewBusHandler creates a new bus handler.
func NewBusHandler(svc service.BusService) *BusHandler {
	return &BusHandler{svc: svc}
}

// BusRequest is the create payload. Seat counts are pointers so that an
// explicit zero is distinguishable from an omitted field.
type BusRequest struct {
	BusNumber      string `json:"busNumber" validate:"required"`
	TotalSeats     *int   `json:"totalSeats" validate:"required"`
	AvailableSeats *int   `json:"availableSeats" validate:"required"`
}

// ListBuses godoc
// @Summary List all buses
// @Tags buses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /buses [get]
func (h *BusHandler) ListBuses(c echo.Context) error {
	buses, err := h.svc.ListBuses(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Database query failed",
			Details: err.Error(),
		})
	}
	if buses == nil {
		buses = []model.Bus{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(buses),
		"buses": buses,
	})
}

// CreateBus godoc
// @Summary Add a new bus
// @Tags buses
// @Accept json
// @Produce json
// @Param bus body BusRequest true "Bus payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /buses [post]
func (h *BusHandler) CreateBus(c echo.Context) error {
	var req BusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Bus number, total seats, and available seats are required",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Bus number, total seats, and available seats are required",
		})
	}

	totalSeats, availableSeats := *req.TotalSeats, *req.AvailableSeats
	if totalSeats <= 0 || availableSeats < 0 || availableSeats > totalSeats {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Invalid seat numbers. Total seats must be positive and available seats must be between 0 and total seats",
		})
	}

	bus, err := h.svc.CreateBus(c.Request().Context(), req.BusNumber, totalSeats, availableSeats)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateBusNumber) {
			return c.JSON(http.StatusConflict, apperrors.ErrorResponse{Error: "Bus number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Failed to create bus",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Bus created successfully",
		"bus":     bus,
	})
}

// BusesByAvailableSeats godoc
// @Summary List buses with more than the given number of available seats
// @Tags buses
// @Produce json
// @Param seats path int true "Minimum available seats (exclusive)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /buses/available/{seats} [get]
func (h *BusHandler) BusesByAvailableSeats(c echo.Context) error {
	minSeats, err := strconv.Atoi(c.Param("seats"))
	if err != nil || minSeats < 0 {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Invalid seats parameter. Must be a positive number",
		})
	}

	buses, err := h.svc.BusesWithAvailableSeats(c.Request().Context(), minSeats)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error:   "Database query failed",
			Details: err.Error(),
		})
	}
	if buses == nil {
		buses = []model.Bus{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":             len(buses),
		"minAvailableSeats": minSeats,
		"buses":             buses,
	})
}
