package view

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weatherview.app/internal/core/weather"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// WeatherFetcher is the lookup the controller drives
type WeatherFetcher interface {
	Fetch(ctx context.Context, query weather.Query) (*weather.Observation, error)
}

// Request is one click on the page
type Request struct {
	ViewID          string
	City            string
	Fahrenheit      bool
	HasMapContainer bool
	// MapInstance is the map the page already shows, if any. It wins over
	// the stored state, which may have expired or been reset.
	MapInstance     string
}

// Failure is what the caller learns about a failed lookup. Message is always
// the generic panel text; Kind is one of the fetch error kinds.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Result is the outcome of one FetchAndRender pass
type Result struct {
	State   State    `json:"state"`
	Patches []Patch  `json:"patches"`
	Failure *Failure `json:"failure,omitempty"`
}

type Controller struct {
	fetcher  WeatherFetcher
	store    ports.StateStore
	renderer *Renderer
	logger   ports.Logger
	metrics  ports.MetricsRecorder
	stateTTL time.Duration
	now      func() time.Time
}

type ControllerDependencies struct {
	Fetcher  WeatherFetcher
	Store    ports.StateStore
	Renderer *Renderer
	Logger   ports.Logger
	Metrics  ports.MetricsRecorder
	StateTTL time.Duration
	Clock    func() time.Time
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("state store is required")
	}
	if deps.Renderer == nil {
		return nil, errors.NewValidationError("renderer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.StateTTL <= 0 {
		return nil, errors.NewValidationError("state TTL must be positive")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Controller{
		fetcher:  deps.Fetcher,
		store:    deps.Store,
		renderer: deps.Renderer,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		stateTTL: deps.StateTTL,
		now:      clock,
	}, nil
}

// FetchAndRender runs one Idle -> Pending -> Rendered|Failed cycle for a view.
// Lookup failures are reported through Result.Failure; the returned error is
// only set when the view state itself cannot be read or written.
//
// Overlapping calls for the same view are not serialized: whichever finishes
// last owns the stored state.
func (c *Controller) FetchAndRender(ctx context.Context, req Request) (*Result, error) {
	if req.ViewID == "" {
		return nil, errors.NewValidationError("view id is required")
	}

	prev, err := c.load(ctx, req.ViewID)
	if err != nil {
		return nil, err
	}
	prev = adoptPageMap(prev, req)

	if err := c.save(ctx, c.renderer.RenderPending(prev, c.now())); err != nil {
		return nil, err
	}
	c.metrics.RecordRender(string(PhasePending))

	units := weather.UnitSystemFromToggle(req.Fahrenheit)
	observation, fetchErr := c.fetcher.Fetch(ctx, weather.Query{City: req.City, Units: units})

	var next State
	if fetchErr == nil {
		next, fetchErr = c.renderer.RenderSuccess(prev, observation, units, c.now(), req.HasMapContainer)
		if fetchErr != nil {
			fetchErr = errors.NewParseError("failed to render weather result", fetchErr)
		}
	}

	result := &Result{}
	if fetchErr != nil {
		kind := errors.FetchKind(fetchErr)
		c.logger.Error("Weather lookup failed",
			ports.F("view", req.ViewID),
			ports.F("city", req.City),
			ports.F("kind", kind.String()),
			ports.F("error", fetchErr))

		next = c.renderer.RenderFailure(prev, c.now())
		result.Failure = &Failure{Kind: kind.String(), Message: FailureHTML}
	} else {
		c.metrics.RecordCondition(string(next.Display.BodyClass))
		c.logger.Info("Weather rendered",
			ports.F("view", req.ViewID),
			ports.F("city", observation.Name),
			ports.F("class", string(next.Display.BodyClass)),
			ports.F("lat", observation.Latitude),
			ports.F("lon", observation.Longitude))
	}

	result.State = next
	result.Patches = Diff(prev, next, conditionClassNames())
	if result.Failure == nil && !req.HasMapContainer {
		c.logger.Warn("Map container not found", ports.F("view", req.ViewID))
		result.Patches = append(result.Patches, Patch{Op: OpSkipMap})
	}

	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	c.metrics.RecordRender(string(next.Phase))

	return result, nil
}

// Current returns the stored state of a view, or its idle state if there is none
func (c *Controller) Current(ctx context.Context, viewID string) (State, error) {
	if viewID == "" {
		return State{}, errors.NewValidationError("view id is required")
	}
	return c.load(ctx, viewID)
}

// Reset forgets a view. The page calls this when it is unloaded.
func (c *Controller) Reset(ctx context.Context, viewID string) error {
	if viewID == "" {
		return errors.NewValidationError("view id is required")
	}
	if err := c.store.Delete(ctx, viewID); err != nil {
		return fmt.Errorf("reset view %s: %w", viewID, err)
	}
	c.logger.Debug("View reset", ports.F("view", viewID))
	return nil
}

func (c *Controller) load(ctx context.Context, viewID string) (State, error) {
	raw, err := c.store.Get(ctx, viewID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return IdleState(viewID), nil
		}
		return State{}, errors.NewStoreError("failed to load view state", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		c.logger.Warn("Discarding unreadable view state",
			ports.F("view", viewID),
			ports.F("error", err))
		return IdleState(viewID), nil
	}
	state.ViewID = viewID
	return state, nil
}

func (c *Controller) save(ctx context.Context, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.NewStoreError("failed to encode view state", err)
	}
	if err := c.store.Set(ctx, state.ViewID, raw, c.stateTTL); err != nil {
		return errors.NewStoreError("failed to save view state", err)
	}
	return nil
}

func conditionClassNames() []string {
	classes := weather.AllConditionClasses()
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = string(class)
	}
	return names
}

// adoptPageMap makes prev describe the map the page reports, so an existing
// widget is recentered instead of created a second time on the same container.
func adoptPageMap(prev State, req Request) State {
	if !req.HasMapContainer || req.MapInstance == "" {
		return prev
	}
	if prev.Map != nil && prev.Map.Instance == req.MapInstance {
		return prev
	}
	prev.Map = &MapState{Instance: req.MapInstance}
	return prev
}
