package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/stridesync/internal/activities"
)

type Streaks struct {
	CurrentStreak   int `json:"currentStreak"`
	LongestStreak   int `json:"longestStreak"`
	TotalActivities int `json:"totalActivities"`
}

// dayStart returns the local midnight of t
func dayStart(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

func daysBetween(later, earlier time.Time) int {
	return int(math.Floor(later.Sub(earlier).Hours() / 24))
}

// CalculateStreaks computes the current and longest runs of consecutive
// active days, at calendar-day granularity in local time
func CalculateStreaks(list []activities.Activity) Streaks {
	return CalculateStreaksAt(list, time.Now())
}

// CalculateStreaksAt is CalculateStreaks anchored at the given time.
// The current streak only counts if the most recent activity is at most
// one day before today.
func CalculateStreaksAt(list []activities.Activity, now time.Time) Streaks {
	if len(list) == 0 {
		return Streaks{}
	}

	// most recent first
	sorted := make([]activities.Activity, len(list))
	copy(sorted, list)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime().After(sorted[j].StartTime())
	})

	today := dayStart(now)

	currentStreak := 0
	var lastDay *time.Time

	for i := range sorted {
		day := dayStart(sorted[i].StartTime())

		if lastDay == nil {
			// only counts when the most recent activity is today or yesterday
			if daysBetween(today, day) > 1 {
				break
			}
			currentStreak = 1
		} else {
			daysDiff := daysBetween(*lastDay, day)
			if daysDiff == 1 {
				currentStreak++
			} else if daysDiff > 1 {
				break
			}
			// same-day duplicates neither extend nor break the streak
		}

		lastDay = &day
	}

	longestStreak := 0
	tempStreak := 0
	lastDay = nil

	for i := range sorted {
		day := dayStart(sorted[i].StartTime())

		if lastDay == nil {
			tempStreak = 1
		} else {
			daysDiff := daysBetween(*lastDay, day)
			if daysDiff == 1 {
				tempStreak++
			} else if daysDiff > 1 {
				if tempStreak > longestStreak {
					longestStreak = tempStreak
				}
				tempStreak = 1
			}
			// daysDiff == 0: same day counts once, the run continues
		}

		lastDay = &day
	}
	if tempStreak > longestStreak {
		longestStreak = tempStreak
	}

	return Streaks{
		CurrentStreak:   currentStreak,
		LongestStreak:   longestStreak,
		TotalActivities: len(list),
	}
}
