package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	mongoClient *mongo.Client
	redisClient *goredis.Client
}

func NewHealthHandler(mongoClient *mongo.Client, redisClient *goredis.Client) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient, redisClient: redisClient}
}

// Live reports that the process is up.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready pings the backing stores and reports per-dependency status.
// Any failing dependency yields a 503 so load balancers stop routing here.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	status := http.StatusOK
	deps := map[string]string{"mongo": "ok", "redis": "ok"}

	if h.mongoClient == nil {
		deps["mongo"] = "not configured"
		status = http.StatusServiceUnavailable
	} else if err := h.mongoClient.Ping(ctx, nil); err != nil {
		deps["mongo"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if h.redisClient == nil {
		deps["redis"] = "not configured"
		status = http.StatusServiceUnavailable
	} else if err := h.redisClient.Ping(ctx).Err(); err != nil {
		deps["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, deps)
}
