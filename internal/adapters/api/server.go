// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	controller    ViewController
	healthChecker ports.SystemHealthChecker
	newViewID     func() string
}

// ViewController is the view use case the HTTP adapter drives
type ViewController interface {
	FetchAndRender(ctx context.Context, req view.Request) (*view.Result, error)
	Current(ctx context.Context, viewID string) (view.State, error)
	Reset(ctx context.Context, viewID string) error
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	Controller    ViewController
	HealthChecker ports.SystemHealthChecker
	// NewViewID issues page view ids; defaults to random UUIDs
	NewViewID func() string
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	newViewID := opts.NewViewID
	if newViewID == nil {
		newViewID = uuid.NewString
	}

	router := gin.Default()
	router.SetHTMLTemplate(tmpl)

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		controller:    opts.Controller,
		healthChecker: opts.HealthChecker,
		newViewID:     newViewID,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("view controller is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.index)

	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/views/:id", s.getView)
		api.DELETE("/views/:id", s.resetView)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Addr returns the listen address for the configured port
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
