package weather

import (
	"fmt"
	"strings"
)

// UnitSystem is the measurement convention requested from the provider
type UnitSystem int

const (
	UnitSystemMetric UnitSystem = iota
	UnitSystemImperial
)

// UnitSystemFromToggle maps the page's Fahrenheit toggle to a unit system
func UnitSystemFromToggle(fahrenheit bool) UnitSystem {
	if fahrenheit {
		return UnitSystemImperial
	}
	return UnitSystemMetric
}

// Param returns the value sent as the provider's units parameter
func (u UnitSystem) Param() string {
	if u == UnitSystemImperial {
		return "imperial"
	}
	return "metric"
}

// Symbol returns the temperature suffix used when rendering
func (u UnitSystem) Symbol() string {
	if u == UnitSystemImperial {
		return "°F"
	}
	return "°C"
}

func (u UnitSystem) String() string {
	return u.Param()
}

// Query is built fresh for every lookup. The city is forwarded as-is.
type Query struct {
	City  string
	Units UnitSystem
}

// Observation is the provider's answer for one query
type Observation struct {
	Name           string
	Latitude       float64
	Longitude      float64
	Temperature    float64
	Humidity       float64
	Condition      string
	Description    string
	TimezoneOffset int
}

// Validate checks that the fields the view depends on are present
func (o *Observation) Validate() error {
	if strings.TrimSpace(o.Condition) == "" {
		return fmt.Errorf("weather condition is missing")
	}
	if o.Latitude < -90 || o.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range", o.Latitude)
	}
	if o.Longitude < -180 || o.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range", o.Longitude)
	}
	return nil
}

// ConditionClass returns the background class for the observation
func (o *Observation) ConditionClass() ConditionClass {
	return Classify(o.Condition)
}

// String returns a string representation of the observation
func (o *Observation) String() string {
	return fmt.Sprintf("%s: %g, %g%% humidity, %s", o.Name, o.Temperature, o.Humidity, o.Description)
}
