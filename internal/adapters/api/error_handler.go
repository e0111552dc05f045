package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses.
// ResultHTML is the panel text the page shows for any failed lookup.
type ErrorResponse struct {
	Error      string `json:"error"`
	ResultHTML string `json:"resultHtml"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	appErr, ok := errors.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", ResultHTML: view.FailureHTML})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errors.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errors.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errors.NetworkError, errors.ParseError:
		statusCode = http.StatusBadGateway
		message = "Weather service unavailable"
	case errors.StoreError:
		statusCode = http.StatusServiceUnavailable
		message = "View state unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message, ResultHTML: view.FailureHTML})
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := http.StatusOK
	if !allHealthy(results) {
		slog.Warn("Health check reported unhealthy components", "results", results)
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, results)
}

func allHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != "healthy" {
			return false
		}
	}
	return true
}
