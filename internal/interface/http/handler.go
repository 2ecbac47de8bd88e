package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/yt-summarizer/internal/domain/history"
	"github.com/yanqian/yt-summarizer/internal/domain/pipeline"
	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

const serviceName = "YouTube Summarizer"

// Handler wires the HTTP transport to domain services.
type Handler struct {
	pipeline pipeline.Service
	history  history.Service
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(pipelineSvc pipeline.Service, historySvc history.Service, logger *slog.Logger) *Handler {
	return &Handler{
		pipeline: pipelineSvc,
		history:  historySvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// Summarize runs the pipeline for the url query parameter. Failures are
// reported inside the result body, so the status is always 200.
func (h *Handler) Summarize(c *gin.Context) {
	report := h.pipeline.Run(c.Request.Context(), c.Query("url"))
	c.JSON(http.StatusOK, report.Result)
}

// Health reports liveness without touching dependencies.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// History lists the most recent summarize requests, newest first.
func (h *Handler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, fromAppError(apperrors.Wrap(apperrors.CodeInvalidInput, "limit must be a positive integer", err)))
			return
		}
		limit = parsed
	}

	items, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
