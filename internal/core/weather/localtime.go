package weather

import (
	"fmt"
	"time"
)

// DefaultTimeLayout renders two-digit hours and minutes
const DefaultTimeLayout = "15:04"

// CityLocalTime returns the wall-clock time at a city whose offset from UTC is
// offsetSeconds. The server's own zone never leaks into the result.
func CityLocalTime(now time.Time, offsetSeconds int) time.Time {
	zone := time.FixedZone(zoneName(offsetSeconds), offsetSeconds)
	return now.UTC().In(zone)
}

// FormatLocalTime formats the city time using layout, falling back to DefaultTimeLayout
func FormatLocalTime(now time.Time, offsetSeconds int, layout string) string {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return CityLocalTime(now, offsetSeconds).Format(layout)
}

func zoneName(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds%3600)/60)
}
