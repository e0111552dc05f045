package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/adapters/api"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/internal/config"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/core/weather"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase
	viewController *view.Controller

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps *DependencyContainer
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(DependencyConfig{
		Weather:   cfg.Weather,
		ViewStore: cfg.ViewStore,
		LogLevel:  cfg.LogLevel,
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")
	p := a.deps.ApplicationPorts()

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: p.WeatherProvider,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	mapConfig := p.ConfigProvider.GetMapConfig()
	renderer := view.NewRenderer(view.RendererConfig{
		Zoom:        mapConfig.Zoom,
		TileURL:     mapConfig.TileURL,
		Attribution: mapConfig.Attribution,
		TimeLayout:  p.ConfigProvider.GetWeatherConfig().TimeFormat,
	})

	controller, err := view.NewController(view.ControllerDependencies{
		Fetcher:  weatherUseCase,
		Store:    p.StateStore,
		Renderer: renderer,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
		StateTTL: p.ConfigProvider.GetViewStoreConfig().StateTTL,
	})
	if err != nil {
		return fmt.Errorf("create view controller: %w", err)
	}
	a.viewController = controller

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")
	p := a.deps.ApplicationPorts()

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		StoreChecker:    infrastructure.NewStateStoreHealthChecker(p.StateStore),
		ProviderChecker: infrastructure.NewWeatherProviderHealthChecker(p.WeatherProvider),
		ConfigProvider:  p.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: p.ConfigProvider.GetServerConfig().Port,
		},
		Controller:    a.viewController,
		HealthChecker: systemHealthChecker,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetViewController returns the view controller for testing
func (a *Application) GetViewController() *view.Controller {
	return a.viewController
}
