package activities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/stridesync/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/multierr"
)

const (
	activitiesKey    = "strava::activities"
	syncTimestampKey = "strava::sync_timestamp"
	authTokenKey     = "strava::auth_token"
)

// Store persists synced data in three redis slots: the activities JSON,
// the last sync timestamp and the last used auth token.
// A nil redis client turns every operation into a no-op, the service then
// runs with in-memory state only.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func (s *Store) GetActivities(ctx context.Context) (activities []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.getActivities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return nil, nil
	}

	cmd := s.redisClient.Get(ctx, activitiesKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activities: %w", err)
	}

	if err := json.Unmarshal([]byte(cmd.Val()), &activities); err != nil {
		return nil, fmt.Errorf("unmarshal stored activities: %w", err)
	}

	return activities, nil
}

func (s *Store) SetActivities(ctx context.Context, activities []Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.setActivities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return nil
	}

	activitiesBytes, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("marshal activities: %w", err)
	}

	if err := s.redisClient.Set(ctx, activitiesKey, activitiesBytes, 0).Err(); err != nil {
		return fmt.Errorf("set activities: %w", err)
	}

	return nil
}

func (s *Store) GetSyncTimestamp(ctx context.Context) (syncedAt *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.getSyncTimestamp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return nil, nil
	}

	cmd := s.redisClient.Get(ctx, syncTimestampKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sync timestamp: %w", err)
	}

	timestamp, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse sync timestamp: %w", err)
	}

	syncedAtVal := time.Unix(timestamp, 0)
	return &syncedAtVal, nil
}

func (s *Store) SetSyncTimestamp(ctx context.Context, syncedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.setSyncTimestamp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return nil
	}

	if err := s.redisClient.Set(ctx, syncTimestampKey, syncedAt.Unix(), 0).Err(); err != nil {
		return fmt.Errorf("set sync timestamp: %w", err)
	}

	return nil
}

func (s *Store) GetAuthToken(ctx context.Context) (token string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.getAuthToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return "", nil
	}

	cmd := s.redisClient.Get(ctx, authTokenKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get auth token: %w", err)
	}

	return cmd.Val(), nil
}

func (s *Store) SetAuthToken(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.setAuthToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return nil
	}

	if err := s.redisClient.Set(ctx, authTokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("set auth token: %w", err)
	}

	return nil
}

// ClearAll removes all three slots, trying each one even if a previous delete failed
func (s *Store) ClearAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.clearAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return nil
	}

	for _, key := range []string{activitiesKey, syncTimestampKey, authTokenKey} {
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			err = multierr.Append(err, fmt.Errorf("del %s: %w", key, delErr))
		}
	}

	return err
}

// StorageSize returns the byte size of the serialized activities slot
func (s *Store) StorageSize(ctx context.Context) (size int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activitiesStore.storageSize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.redisClient == nil {
		return 0, nil
	}

	cmd := s.redisClient.StrLen(ctx, activitiesKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get activities size: %w", err)
	}

	return cmd.Val(), nil
}
