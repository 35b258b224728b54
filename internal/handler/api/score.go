package api

import (
	"errors"
	"net/http"
	"time"

	"TokenPulse/internal/domain/models"
	"TokenPulse/internal/scoring"
	"TokenPulse/internal/service/metrics"
	"TokenPulse/internal/service/ratelimit"
	"TokenPulse/internal/usecase"
	xhttp "TokenPulse/pkg/http"
	xlogger "TokenPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// QueueHealth is the queue surface the liveness endpoint reports on.
type QueueHealth interface {
	Running() bool
}

// ScoreHandler exposes the scoring API over Echo.
type ScoreHandler struct {
	logger *xlogger.Logger
	scores *usecase.ScoreService
	queue  QueueHealth
	rl     *ratelimit.Limiter
}

func NewScoreHandler(logger *xlogger.Logger, scores *usecase.ScoreService, queue QueueHealth) *ScoreHandler {
	metrics.Register()
	return &ScoreHandler{logger: logger, scores: scores, queue: queue, rl: ratelimit.New()}
}

func (h *ScoreHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/score-token", h.ScoreToken)
	e.GET("/healthz", h.Health)
}

// ScoreToken runs one full scoring pass for a token. Each pass fans out to
// every upstream, so requests are rate limited per client.
func (h *ScoreHandler) ScoreToken(c echo.Context) error {
	start := time.Now()
	endpoint := "score_token"
	defer func() { metrics.ScoringLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.rl.Allow(c.RealIP()+":score", 5, 2) {
		h.logger.Warn("score rate limited", xlogger.String("remote", c.RealIP()))
		return xhttp.ErrorResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	req := &models.ScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		metrics.ScoringErrors.WithLabelValues(endpoint).Inc()
		return xhttp.ValidationErrorResponse(c, verr)
	}

	res, err := h.scores.Score(c.Request().Context(), req)
	if err != nil {
		metrics.ScoringErrors.WithLabelValues(endpoint).Inc()
		if errors.Is(err, scoring.ErrZeroWeightSum) {
			return xhttp.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		h.logger.Error("score usecase error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}

	return xhttp.SuccessResponse(c, res)
}

type healthStatus struct {
	Status string `json:"status"`
	Queue  string `json:"queue,omitempty"`
}

// Health reports liveness. A stopped queue degrades forecasts to the
// fallback price but does not fail the process.
func (h *ScoreHandler) Health(c echo.Context) error {
	body := healthStatus{Status: "ok"}
	if h.queue != nil && !h.queue.Running() {
		body.Queue = "degraded"
	}
	return c.JSON(http.StatusOK, body)
}
