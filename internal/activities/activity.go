package activities

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/stridesync/internal/strava"
)

const activityURLFormat = "https://www.strava.com/activities/%d"

// Activity is the stored, normalized activity shape. Scalar fields are carried
// over from the provider record verbatim, only the detail page URL is derived.
type Activity struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	Distance           float64 `json:"distance"`
	MovingTime         int     `json:"moving_time"`
	TotalElevationGain float64 `json:"total_elevation_gain"`
	StartDate          string  `json:"start_date"`
	AverageSpeed       float64 `json:"average_speed"`
	MaxSpeed           float64 `json:"max_speed"`
	AverageHeartrate   float64 `json:"average_heartrate,omitempty"`
	MaxHeartrate       float64 `json:"max_heartrate,omitempty"`
	ActivityURL        string  `json:"activity_url"`
}

func NewActivityFromRaw(raw strava.Activity) Activity {
	return Activity{
		ID:                 raw.ID,
		Name:               raw.Name,
		Type:               raw.Type,
		Distance:           raw.Distance,
		MovingTime:         raw.MovingTime,
		TotalElevationGain: raw.TotalElevationGain,
		StartDate:          raw.StartDate,
		AverageSpeed:       raw.AverageSpeed,
		MaxSpeed:           raw.MaxSpeed,
		AverageHeartrate:   raw.AverageHeartrate,
		MaxHeartrate:       raw.MaxHeartrate,
		ActivityURL:        fmt.Sprintf(activityURLFormat, raw.ID),
	}
}

func NewActivitiesFromRaw(raw []strava.Activity) []Activity {
	activities := make([]Activity, 0, len(raw))
	for _, rawActivity := range raw {
		activities = append(activities, NewActivityFromRaw(rawActivity))
	}
	return activities
}

// StartTime parses the activity start date, falling back to the
// zero time for unparseable values
func (a Activity) StartTime() time.Time {
	startTime, err := time.Parse(time.RFC3339, a.StartDate)
	if err != nil {
		return time.Time{}
	}
	return startTime
}

// SortByStartDate sorts activities in place, oldest first
func SortByStartDate(activities []Activity) {
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].StartTime().Before(activities[j].StartTime())
	})
}
