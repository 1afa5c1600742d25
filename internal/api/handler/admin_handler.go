package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

type createUserRequest struct {
	Email    string   `json:"email"    validate:"required,email"`
	FullName string   `json:"fullName" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Roles    []string `json:"roles"    validate:"required,min=1"`
}

type userResponse struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Roles    []string `json:"roles"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, Roles: u.Roles}
}

type messageResponse struct {
	Message string `json:"message"`
}

// AdminHandler exposes user management and reporting to admins.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers returns every account on the platform.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// CreateUser provisions a new account with one or more roles.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.adminService.CreateUser(c.Request().Context(), claims.Subject, ports.CreateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(*user))
}

// DeleteUser removes an account.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	if err := h.adminService.DeleteUser(c.Request().Context(), claims.Subject, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// Stats returns platform-wide counters for the dashboard.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.StatsResult
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListAudit returns the most recent audit events, newest first.
//
// @Summary      Recent audit trail
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events to return"
// @Success      200    {array}   domain.AuditEvent
// @Router       /api/admin/audit [get]
func (h *AdminHandler) ListAudit(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	events, err := h.adminService.ListAudit(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.AuditEvent{}
	}
	return c.JSON(http.StatusOK, events)
}

// ListTrips is the admin read-only view over every trip on the platform.
func (h *AdminHandler) ListTrips(c echo.Context) error {
	trips, err := h.adminService.ListTrips(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTripResponses(trips))
}

// ListRiders is the admin read-only view over rider profiles.
func (h *AdminHandler) ListRiders(c echo.Context) error {
	riders, err := h.adminService.ListRiders(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]riderResponse, 0, len(riders))
	for _, r := range riders {
		out = append(out, toRiderResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// ListDrivers is the admin read-only view over driver profiles.
func (h *AdminHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.adminService.ListDrivers(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]driverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, toDriverResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}
