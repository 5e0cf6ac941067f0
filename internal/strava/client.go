package strava

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/stridesync/internal/telemetry/metrics"
	"github.com/2beens/stridesync/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 200
	defaultMaxPages = 10

	oneHour            = 60 * 60
	athleteCacheExpire = oneHour * 1
)

var defaultStreamKeys = []string{"latlng", "altitude", "heartrate"}

// Client talks to the provider REST API.
// It owns pagination and the translation of provider HTTP statuses into error kinds.
type Client struct {
	apiURL         string
	httpClient     *http.Client
	cache          *freecache.Cache
	pageSize       int
	maxPages       int
	metricsManager *metrics.Manager
}

type ClientOption func(*Client)

func WithPageSize(pageSize int) ClientOption {
	return func(c *Client) {
		c.pageSize = pageSize
	}
}

func WithMaxPages(maxPages int) ClientOption {
	return func(c *Client) {
		c.maxPages = maxPages
	}
}

func WithMetrics(metricsManager *metrics.Manager) ClientOption {
	return func(c *Client) {
		c.metricsManager = metricsManager
	}
}

func NewClient(apiURL string, httpClient *http.Client, opts ...ClientOption) *Client {
	megabyte := 1024 * 1024
	cacheSize := 5 * megabyte

	client := &Client{
		apiURL:     apiURL,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
		pageSize:   defaultPageSize,
		maxPages:   defaultMaxPages,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// GetAthlete returns the profile of the token owner. Responses are cached for an
// hour, keyed by a token digest, since the profile is fetched on every sync.
func (c *Client) GetAthlete(ctx context.Context, accessToken string) (athlete *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaApi.getAthlete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	athlete = &Athlete{}

	tokenDigest := sha256.Sum256([]byte(accessToken))
	cacheKey := append([]byte("athlete::"), tokenDigest[:]...)
	if athleteBytes, err := c.cache.Get(cacheKey); err == nil {
		log.Tracef("found athlete info in cache")
		if err = json.Unmarshal(athleteBytes, athlete); err == nil {
			return athlete, nil
		}
		log.Errorf("failed to unmarshal athlete info from cache: %s", err)
	}

	respBytes, err := c.get(ctx, fmt.Sprintf("%s/athlete", c.apiURL), accessToken)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, &AuthError{
				Message: fmt.Sprintf("failed to fetch athlete info: %d %s", apiErr.Status, apiErr.StatusText),
			}
		}
		return nil, err
	}

	if err := json.Unmarshal(respBytes, athlete); err != nil {
		return nil, fmt.Errorf("failed to unmarshal athlete info: %w", err)
	}

	if err = c.cache.Set(cacheKey, respBytes, athleteCacheExpire); err != nil {
		log.Errorf("failed to write athlete info cache: %s", err)
	}

	return athlete, nil
}

// FetchAllActivities fetches activity pages until an empty page or the page cap.
// A 401 fails the whole fetch on any page. Any other failure is fatal on page 1,
// but on later pages the pages accumulated so far are returned instead.
func (c *Client) FetchAllActivities(ctx context.Context, accessToken string) (activities []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaApi.fetchAllActivities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for page := 1; page <= c.maxPages; page++ {
		batch, err := c.fetchActivitiesPage(ctx, accessToken, page)
		if err != nil {
			var authErr *AuthError
			if errors.As(err, &authErr) {
				return nil, authErr
			}
			if page == 1 {
				return nil, err
			}

			log.Errorf("failed to fetch activities page %d, stopping with %d activities: %s", page, len(activities), err)
			if c.metricsManager != nil {
				c.metricsManager.CounterPartialSyncPages.Inc()
			}
			break
		}

		if len(batch) == 0 {
			break
		}

		activities = append(activities, batch...)
	}

	return activities, nil
}

func (c *Client) fetchActivitiesPage(ctx context.Context, accessToken string, page int) ([]Activity, error) {
	pageURL := fmt.Sprintf("%s/athlete/activities?per_page=%d&page=%d", c.apiURL, c.pageSize, page)

	respBytes, err := c.get(ctx, pageURL, accessToken)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusUnauthorized:
				return nil, NewAuthError()
			case http.StatusTooManyRequests:
				return nil, &RateLimitError{}
			}
		}
		return nil, err
	}

	var activities []Activity
	if err := json.Unmarshal(respBytes, &activities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activities page %d: %w", page, err)
	}

	return activities, nil
}

// FetchActivity returns the detailed data of a single activity
func (c *Client) FetchActivity(ctx context.Context, accessToken string, activityID int64) (activity *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaApi.fetchActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.get(ctx, fmt.Sprintf("%s/activities/%d", c.apiURL, activityID), accessToken)
	if err != nil {
		if isUnauthorized(err) {
			return nil, NewAuthError()
		}
		return nil, fmt.Errorf("failed to fetch activity %d: %w", activityID, err)
	}

	activity = &Activity{}
	if err := json.Unmarshal(respBytes, activity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity %d: %w", activityID, err)
	}

	return activity, nil
}

// FetchActivityStreams returns the requested data streams of an activity,
// keyed by stream type. With no keys given, gps track, altitude and heart rate
// streams are requested.
func (c *Client) FetchActivityStreams(
	ctx context.Context,
	accessToken string,
	activityID int64,
	keys []string,
) (streams StreamSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaApi.fetchActivityStreams")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(keys) == 0 {
		keys = defaultStreamKeys
	}

	streamsURL := fmt.Sprintf(
		"%s/activities/%d/streams?keys=%s&key_by_type=true",
		c.apiURL, activityID, strings.Join(keys, ","),
	)

	respBytes, err := c.get(ctx, streamsURL, accessToken)
	if err != nil {
		if isUnauthorized(err) {
			return nil, NewAuthError()
		}
		return nil, fmt.Errorf("failed to fetch streams for activity %d: %w", activityID, err)
	}

	streams = StreamSet{}
	if err := json.Unmarshal(respBytes, &streams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal streams for activity %d: %w", activityID, err)
	}

	return streams, nil
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

func (c *Client) get(ctx context.Context, url, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewAPIError(resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response bytes: %w", err)
	}

	return respBytes, nil
}
