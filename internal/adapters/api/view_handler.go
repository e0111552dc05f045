package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/core/weather"
	"weatherview.app/pkg/errors"
	"weatherview.app/pkg/validation"
)

// WeatherQuery is the query string of GET /api/weather.
// Units, when present, overrides the Fahrenheit toggle. MapInstance names the
// map widget the page already created.
type WeatherQuery struct {
	City        string `form:"city"`
	Fahrenheit  bool   `form:"fahrenheit"`
	Units       string `form:"units" binding:"omitempty,units"`
	View        string `form:"view" binding:"omitempty,viewid"`
	Map         *bool  `form:"map"`
	MapInstance string `form:"mapInstance" binding:"omitempty,viewid"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

// index handles GET / and issues a fresh view id for every page load
func (s *HTTPServerAdapter) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"ViewID":      s.newViewID(),
		"FailureHTML": view.FailureHTML,
	})
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Debug("Weather query binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	req := view.Request{
		ViewID:          query.View,
		City:            query.City,
		Fahrenheit:      query.Fahrenheit,
		HasMapContainer: query.Map == nil || *query.Map,
		MapInstance:     query.MapInstance,
	}
	if query.Units != "" {
		req.Fahrenheit = query.Units == weather.UnitSystemImperial.Param()
	}
	if req.ViewID == "" {
		req.ViewID = s.newViewID()
		slog.Debug("Issued view id for request without one", "view", req.ViewID)
	}

	result, err := s.controller.FetchAndRender(c.Request.Context(), req)
	if err != nil {
		slog.Error("View render error", "error", err, "view", req.ViewID, "city", req.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getView handles GET /api/views/:id requests
func (s *HTTPServerAdapter) getView(c *gin.Context) {
	id, ok := s.viewIDParam(c)
	if !ok {
		return
	}

	state, err := s.controller.Current(c.Request.Context(), id)
	if err != nil {
		slog.Error("View lookup error", "error", err, "view", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// resetView handles DELETE /api/views/:id requests
func (s *HTTPServerAdapter) resetView(c *gin.Context) {
	id, ok := s.viewIDParam(c)
	if !ok {
		return
	}

	if err := s.controller.Reset(c.Request.Context(), id); err != nil {
		slog.Error("View reset error", "error", err, "view", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "View reset"})
}

func (s *HTTPServerAdapter) viewIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !validation.IsValidViewID(id) {
		s.handleError(c, errors.NewValidationError("invalid view id"))
		return "", false
	}
	return id, true
}
