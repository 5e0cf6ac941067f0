package analytics

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	metersPerMile = 1609.34
	milesPerMeter = 0.000621371
	feetPerMeter  = 3.28084
)

// FormatDistance renders meters as miles with one decimal
func FormatDistance(meters float64) string {
	miles := meters * milesPerMeter
	return strconv.FormatFloat(miles, 'f', 1, 64)
}

// FormatElevation renders meters as feet, rounded to a whole number
func FormatElevation(meters float64) string {
	feet := meters * feetPerMeter
	return strconv.Itoa(int(math.Round(feet)))
}

// FormatDuration renders seconds as "{h}h {m}m", or "{m}m {s}s" under an hour
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}

// FormatPace renders speed in m/s as a MM:SS minutes-per-mile string.
// A speed of exactly 0 renders as "0:00" instead of dividing by zero.
func FormatPace(speedMs float64) string {
	if speedMs == 0 {
		return "0:00"
	}
	metersPerMinute := speedMs * 60
	minutesPerMile := metersPerMile / metersPerMinute
	minutes := int(minutesPerMile)
	seconds := int(math.Round((minutesPerMile - float64(minutes)) * 60))
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatDate renders an ISO date as e.g. "May 4, 2025".
// Unparseable dates render as the zero time instead of failing.
func FormatDate(isoDate string) string {
	date, err := time.Parse(time.RFC3339, isoDate)
	if err != nil {
		date = time.Time{}
	}
	return date.Format("Jan 2, 2006")
}
