package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

type driverRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Plate string `json:"plate" validate:"required"`
}

type driverResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Plate string `json:"plate"`
}

func toDriverResponse(d domain.Driver) driverResponse {
	return driverResponse{ID: d.ID, Name: d.Name, Phone: d.Phone, Plate: d.Plate}
}

// DriverHandler exposes admin-only CRUD over driver profiles.
type DriverHandler struct {
	driverService ports.DriverService
}

func NewDriverHandler(driverService ports.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

func (h *DriverHandler) List(c echo.Context) error {
	drivers, err := h.driverService.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]driverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, toDriverResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DriverHandler) Get(c echo.Context) error {
	driver, err := h.driverService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDriverResponse(*driver))
}

func (h *DriverHandler) Create(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req driverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	driver, err := h.driverService.Create(c.Request().Context(), claims.Subject, ports.DriverInput{
		Name:  req.Name,
		Phone: req.Phone,
		Plate: req.Plate,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/drivers/"+driver.ID)
	return c.JSON(http.StatusCreated, toDriverResponse(*driver))
}

func (h *DriverHandler) Update(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req driverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	driver, err := h.driverService.Update(c.Request().Context(), claims.Subject, c.Param("id"), ports.DriverInput{
		Name:  req.Name,
		Phone: req.Phone,
		Plate: req.Plate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDriverResponse(*driver))
}

func (h *DriverHandler) Delete(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	if err := h.driverService.Delete(c.Request().Context(), claims.Subject, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
