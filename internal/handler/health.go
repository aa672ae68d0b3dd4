package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// dependencyCheck pings one backing service.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

type HealthHandler struct {
	env           string
	timeout       time.Duration
	checks        []dependencyCheck
	loggerService *logger.LoggerService
}

// NewHealthHandler builds the checks enabled in the observability config.
// PostgreSQL is required; Redis only degrades the status since the API
// keeps serving without it.
func NewHealthHandler(s *server.Server) *HealthHandler {
	hc := s.Config.Observability.HealthChecks

	h := &HealthHandler{
		env:           s.Config.Primary.Env,
		timeout:       hc.Timeout,
		loggerService: s.LoggerService,
	}

	if hc.RunsCheck(config.CheckDatabase) && s.DB != nil {
		h.checks = append(h.checks, dependencyCheck{
			name:     config.CheckDatabase,
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}
	if hc.RunsCheck(config.CheckRedis) && s.Redis != nil {
		h.checks = append(h.checks, dependencyCheck{
			name: config.CheckRedis,
			ping: func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() },
		})
	}
	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	log := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      statusHealthy,
		Timestamp:   start.UTC(),
		Environment: h.env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	for _, check := range h.checks {
		result, err := h.run(c.Request().Context(), check)
		response.Checks[check.name] = result

		if err == nil {
			log.Debug().Str("check", check.name).Str("response_time", result.ResponseTime).Msg("health check passed")
			continue
		}

		log.Error().Err(err).Str("check", check.name).Msg("health check failed")
		h.recordFailure(check.name, err)

		switch {
		case check.required:
			response.Status = statusUnhealthy
		case response.Status == statusHealthy:
			response.Status = statusDegraded
		}
	}

	if response.Status == statusUnhealthy {
		log.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) run(ctx context.Context, check dependencyCheck) (checkResult, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	err := check.ping(ctx)
	result := checkResult{Status: statusHealthy, ResponseTime: time.Since(start).String()}
	if err != nil {
		result.Status = statusUnhealthy
		result.Error = err.Error()
	}
	return result, err
}

func (h *HealthHandler) recordFailure(check string, err error) {
	if app := h.loggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":    check,
			"error_message": err.Error(),
		})
	}
}
