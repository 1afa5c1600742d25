package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridehail/admin-api/internal/api/metrics"
	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

// TripHandler exposes trip CRUD to authenticated users.
type TripHandler struct {
	tripService ports.TripService
}

func NewTripHandler(tripService ports.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// List returns the active-trips listing together with the identity of the
// caller, so clients can confirm whose token was presented.
//
// @Summary      List active trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTripsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/trips [get]
func (h *TripHandler) List(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	trips, hit, err := h.tripService.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	if hit {
		metrics.TripCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.TripCacheTotal.WithLabelValues("miss").Inc()
	}

	return c.JSON(http.StatusOK, listTripsResponse{
		AuthenticatedUser: authenticatedUser{
			UserID:    claims.Subject,
			UserEmail: claims.Email,
		},
		Trips: toTripResponses(trips),
	})
}

// Get returns a single trip by id.
//
// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trip ID"
// @Success      200  {object}  tripResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	id := c.Param("id")
	trip, err := h.tripService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("trip %s not found", id))
		}
		return err
	}
	return c.JSON(http.StatusOK, toTripResponse(*trip))
}

// Create requests a new trip for a rider. The server assigns the id,
// driver, fare, and request time.
//
// @Summary      Create a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip details"
// @Success      201   {object}  tripResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.tripService.Create(c.Request().Context(), claims.Subject, ports.CreateTripInput{
		RiderID: req.RiderID,
		Start:   domain.Location{Lat: req.Start.Lat, Lng: req.Start.Lng},
		End:     domain.Location{Lat: req.End.Lat, Lng: req.End.Lng},
	})
	if err != nil {
		return err
	}
	metrics.TripsCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, "/api/trips/"+trip.ID)
	return c.JSON(http.StatusCreated, toTripResponse(*trip))
}

// Update re-routes an existing trip and recomputes its fare.
//
// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Trip ID"
// @Param        body  body      updateTripRequest  true  "New route"
// @Success      200   {object}  tripResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req updateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	trip, err := h.tripService.Update(c.Request().Context(), claims.Subject, id, ports.UpdateTripInput{
		Start: domain.Location{Lat: req.Start.Lat, Lng: req.Start.Lng},
		End:   domain.Location{Lat: req.End.Lat, Lng: req.End.Lng},
	})
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("trip %s not found", id))
		}
		return err
	}
	return c.JSON(http.StatusOK, toTripResponse(*trip))
}

// Delete removes a trip.
//
// @Summary      Delete a trip
// @Tags         trips
// @Security     BearerAuth
// @Param        id  path  string  true  "Trip ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.tripService.Delete(c.Request().Context(), claims.Subject, id); err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("trip %s not found", id))
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
