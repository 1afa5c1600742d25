package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

type riderRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type riderResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func toRiderResponse(r domain.Rider) riderResponse {
	return riderResponse{ID: r.ID, Name: r.Name, Phone: r.Phone}
}

// RiderHandler exposes admin-only CRUD over rider profiles.
type RiderHandler struct {
	riderService ports.RiderService
}

func NewRiderHandler(riderService ports.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

func (h *RiderHandler) List(c echo.Context) error {
	riders, err := h.riderService.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]riderResponse, 0, len(riders))
	for _, r := range riders {
		out = append(out, toRiderResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiderHandler) Get(c echo.Context) error {
	rider, err := h.riderService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRiderResponse(*rider))
}

func (h *RiderHandler) Create(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req riderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rider, err := h.riderService.Create(c.Request().Context(), claims.Subject, ports.RiderInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/riders/"+rider.ID)
	return c.JSON(http.StatusCreated, toRiderResponse(*rider))
}

func (h *RiderHandler) Update(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req riderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rider, err := h.riderService.Update(c.Request().Context(), claims.Subject, c.Param("id"), ports.RiderInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRiderResponse(*rider))
}

func (h *RiderHandler) Delete(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	if err := h.riderService.Delete(c.Request().Context(), claims.Subject, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
