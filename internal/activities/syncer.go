package activities

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/stridesync/internal/strava"
	"github.com/2beens/stridesync/internal/telemetry/metrics"
	"github.com/2beens/stridesync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=syncer_mocks_test.go -package=activities_test

type providerClient interface {
	GetAthlete(ctx context.Context, accessToken string) (*strava.Athlete, error)
	FetchAllActivities(ctx context.Context, accessToken string) ([]strava.Activity, error)
}

type syncerStore interface {
	GetActivities(ctx context.Context) ([]Activity, error)
	SetActivities(ctx context.Context, activities []Activity) error
	GetSyncTimestamp(ctx context.Context) (*time.Time, error)
	SetSyncTimestamp(ctx context.Context, syncedAt time.Time) error
	SetAuthToken(ctx context.Context, token string) error
	ClearAll(ctx context.Context) error
}

var (
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrNoActivities   = errors.New("no activities found")
)

// State is the sync state as seen by API consumers. A sync either fully
// replaces Activities and SyncedAt, or leaves everything except Error untouched.
type State struct {
	Loading     bool       `json:"loading"`
	Error       string     `json:"error,omitempty"`
	Activities  []Activity `json:"activities"`
	SyncedAt    *time.Time `json:"syncedAt,omitempty"`
	AthleteName string     `json:"athleteName,omitempty"`
}

// Syncer drives a full activity sync against the provider and keeps
// the current sync state. Syncs never overlap, a sync started while
// another is running is rejected.
type Syncer struct {
	provider       providerClient
	store          syncerStore
	metricsManager *metrics.Manager

	mutex sync.RWMutex
	state State
}

// NewSyncer seeds the initial state from whatever is currently in the store.
// Store read failures leave the state empty, they are logged and ignored.
func NewSyncer(
	ctx context.Context,
	provider providerClient,
	store syncerStore,
	metricsManager *metrics.Manager,
) *Syncer {
	syncer := &Syncer{
		provider:       provider,
		store:          store,
		metricsManager: metricsManager,
	}

	if activities, err := store.GetActivities(ctx); err != nil {
		log.Errorf("syncer: failed to read stored activities: %s", err)
	} else {
		syncer.state.Activities = activities
	}

	if syncedAt, err := store.GetSyncTimestamp(ctx); err != nil {
		log.Errorf("syncer: failed to read stored sync timestamp: %s", err)
	} else {
		syncer.state.SyncedAt = syncedAt
	}

	return syncer
}

// Sync runs a full replace sync: athlete profile, all activity pages,
// normalization, persistence. On failure the state keeps the previously
// synced activities and only the error message changes. Persistence
// failures do not fail the sync, only the in-memory state is authoritative.
func (s *Syncer) Sync(ctx context.Context, accessToken string) (state State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesSyncer.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	if s.state.Loading {
		s.mutex.Unlock()
		return State{}, ErrSyncInProgress
	}
	s.state.Loading = true
	s.state.Error = ""
	s.mutex.Unlock()

	syncStartedAt := time.Now()

	athlete, err := s.provider.GetAthlete(ctx, accessToken)
	if err != nil {
		return s.syncFailed(err)
	}

	rawActivities, err := s.provider.FetchAllActivities(ctx, accessToken)
	if err != nil {
		return s.syncFailed(err)
	}

	if len(rawActivities) == 0 {
		return s.syncFailed(ErrNoActivities)
	}

	activities := NewActivitiesFromRaw(rawActivities)
	syncedAt := time.Now()

	s.persist(ctx, activities, accessToken, syncedAt)

	s.mutex.Lock()
	s.state = State{
		Activities:  activities,
		SyncedAt:    &syncedAt,
		AthleteName: athlete.FullName(),
	}
	state = s.state
	s.mutex.Unlock()

	if s.metricsManager != nil {
		s.metricsManager.CounterSyncs.WithLabelValues("success").Inc()
		s.metricsManager.GaugeSyncedActivities.Set(float64(len(activities)))
		s.metricsManager.HistSyncDuration.Observe(time.Since(syncStartedAt).Seconds())
	}

	log.Debugf("synced %d activities for %s", len(activities), athlete.FullName())

	return state, nil
}

func (s *Syncer) persist(ctx context.Context, activities []Activity, accessToken string, syncedAt time.Time) {
	persistFailed := false

	if err := s.store.SetActivities(ctx, activities); err != nil {
		log.Errorf("syncer: failed to persist activities: %s", err)
		persistFailed = true
	}
	if err := s.store.SetAuthToken(ctx, accessToken); err != nil {
		log.Errorf("syncer: failed to persist auth token: %s", err)
		persistFailed = true
	}
	if err := s.store.SetSyncTimestamp(ctx, syncedAt); err != nil {
		log.Errorf("syncer: failed to persist sync timestamp: %s", err)
		persistFailed = true
	}

	if persistFailed && s.metricsManager != nil {
		s.metricsManager.CounterPersistFailures.Inc()
	}
}

func (s *Syncer) syncFailed(err error) (State, error) {
	s.mutex.Lock()
	s.state.Loading = false
	s.state.Error = err.Error()
	state := s.state
	s.mutex.Unlock()

	if s.metricsManager != nil {
		s.metricsManager.CounterSyncs.WithLabelValues("failure").Inc()
	}

	return state, err
}

// State returns a snapshot of the current sync state
func (s *Syncer) State() State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state
}

// Clear wipes both the persisted slots and the in-memory state
func (s *Syncer) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesSyncer.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state.Loading {
		return ErrSyncInProgress
	}

	if err := s.store.ClearAll(ctx); err != nil {
		return err
	}

	s.state = State{}
	return nil
}
