package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/stridesync/internal/activities"
)

type WeekBucket struct {
	Week     string  `json:"week"`
	WeekKey  string  `json:"weekKey"`
	Distance float64 `json:"distance"`
}

type WeeklyStats struct {
	Weekly         []WeekBucket                     `json:"weekly"`
	WeekActivities map[string][]activities.Activity `json:"weekActivities"`
}

type MonthBucket struct {
	Month    string  `json:"month"`
	MonthKey string  `json:"monthKey"`
	Distance float64 `json:"distance"`
}

type MonthlyStats struct {
	Monthly         []MonthBucket                    `json:"monthly"`
	MonthActivities map[string][]activities.Activity `json:"monthActivities"`
}

type AggregateStats struct {
	TotalActivities int    `json:"totalActivities"`
	TotalDistance   string `json:"totalDistance"`
	TotalTime       string `json:"totalTime"`
	AvgPace         string `json:"avgPace"`
	TotalElevation  string `json:"totalElevation"`
}

type PaceTrendPoint struct {
	Date        string  `json:"date"`
	Pace        float64 `json:"pace"`
	DisplayPace string  `json:"displayPace"`
}

// weekStart returns the local midnight of the Sunday starting the week of t
func weekStart(t time.Time) time.Time {
	local := t.Local()
	sunday := local.AddDate(0, 0, -int(local.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, time.Local)
}

// roundedMiles converts meters to miles rounded to one decimal
func roundedMiles(meters float64) float64 {
	return math.Round(meters*milesPerMeter*10) / 10
}

// CalculateWeeklyStats buckets activities into weeks starting on Sunday
// (local time), keyed by the Sunday's YYYY-MM-DD date, sorted ascending.
// Bucket distances are in miles, rounded to one decimal.
func CalculateWeeklyStats(list []activities.Activity) WeeklyStats {
	weekDistances := map[string]float64{}
	weekActivities := map[string][]activities.Activity{}
	weekLabels := map[string]string{}

	for _, activity := range list {
		start := weekStart(activity.StartTime())
		weekKey := start.Format("2006-01-02")

		weekDistances[weekKey] += activity.Distance
		weekActivities[weekKey] = append(weekActivities[weekKey], activity)
		weekLabels[weekKey] = start.Format("Jan 2")
	}

	weekly := make([]WeekBucket, 0, len(weekDistances))
	for weekKey, distance := range weekDistances {
		weekly = append(weekly, WeekBucket{
			Week:     weekLabels[weekKey],
			WeekKey:  weekKey,
			Distance: roundedMiles(distance),
		})
	}
	sort.Slice(weekly, func(i, j int) bool {
		return weekly[i].WeekKey < weekly[j].WeekKey
	})

	return WeeklyStats{
		Weekly:         weekly,
		WeekActivities: weekActivities,
	}
}

// CalculateMonthlyStats is the same bucketing at YYYY-MM granularity
func CalculateMonthlyStats(list []activities.Activity) MonthlyStats {
	monthDistances := map[string]float64{}
	monthActivities := map[string][]activities.Activity{}

	for _, activity := range list {
		monthKey := activity.StartTime().UTC().Format("2006-01")
		monthDistances[monthKey] += activity.Distance
		monthActivities[monthKey] = append(monthActivities[monthKey], activity)
	}

	monthly := make([]MonthBucket, 0, len(monthDistances))
	for monthKey, distance := range monthDistances {
		monthTime, err := time.Parse("2006-01", monthKey)
		if err != nil {
			monthTime = time.Time{}
		}
		monthly = append(monthly, MonthBucket{
			Month:    monthTime.Format("Jan 2006"),
			MonthKey: monthKey,
			Distance: roundedMiles(distance),
		})
	}
	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].MonthKey < monthly[j].MonthKey
	})

	return MonthlyStats{
		Monthly:         monthly,
		MonthActivities: monthActivities,
	}
}

// CalculateAggregateStats sums up totals across all activities. The average
// pace comes from the mean of the per-activity average speeds, not from
// total distance over total time.
func CalculateAggregateStats(list []activities.Activity) AggregateStats {
	if len(list) == 0 {
		return AggregateStats{
			TotalActivities: 0,
			TotalDistance:   "0.0",
			TotalTime:       "0m 0s",
			AvgPace:         "0:00",
			TotalElevation:  "0",
		}
	}

	var totalDistance, totalElevation, speedSum float64
	var totalTime int
	for _, activity := range list {
		totalDistance += activity.Distance
		totalTime += activity.MovingTime
		totalElevation += activity.TotalElevationGain
		speedSum += activity.AverageSpeed
	}
	avgSpeed := speedSum / float64(len(list))

	return AggregateStats{
		TotalActivities: len(list),
		TotalDistance:   FormatDistance(totalDistance),
		TotalTime:       FormatDuration(totalTime),
		AvgPace:         FormatPace(avgSpeed),
		TotalElevation:  FormatElevation(totalElevation),
	}
}

// CalculatePaceTrends returns per-activity pace points, oldest first.
// The numeric pace is the MM:SS pace string with the colon swapped for a
// decimal point, so it plots in the right order but is not a real decimal
// number of minutes.
func CalculatePaceTrends(list []activities.Activity) []PaceTrendPoint {
	if len(list) == 0 {
		return nil
	}

	sorted := make([]activities.Activity, len(list))
	copy(sorted, list)
	activities.SortByStartDate(sorted)

	points := make([]PaceTrendPoint, 0, len(sorted))
	for _, activity := range sorted {
		displayPace := FormatPace(activity.AverageSpeed)
		pace, err := strconv.ParseFloat(strings.Replace(displayPace, ":", ".", 1), 64)
		if err != nil {
			pace = 0
		}
		points = append(points, PaceTrendPoint{
			Date:        FormatDate(activity.StartDate),
			Pace:        pace,
			DisplayPace: displayPace,
		})
	}

	return points
}
