package activities_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/2beens/stridesync/internal/activities"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_activitiesRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := activities.NewStore(db)
	ctx := context.Background()

	storedActivities := []activities.Activity{
		{
			ID:           101,
			Name:         "Morning Run",
			Type:         "Run",
			Distance:     5000,
			MovingTime:   1800,
			StartDate:    "2025-05-04T08:30:00Z",
			AverageSpeed: 2.78,
			ActivityURL:  "https://www.strava.com/activities/101",
		},
		{
			ID:           102,
			Name:         "Evening Ride",
			Type:         "Ride",
			Distance:     20000,
			MovingTime:   3600,
			StartDate:    "2025-05-05T18:00:00Z",
			AverageSpeed: 5.55,
			ActivityURL:  "https://www.strava.com/activities/102",
		},
	}

	activitiesBytes, err := json.Marshal(storedActivities)
	require.NoError(t, err)

	mock.ExpectSet("strava::activities", activitiesBytes, 0).SetVal("OK")
	require.NoError(t, store.SetActivities(ctx, storedActivities))

	mock.ExpectGet("strava::activities").SetVal(string(activitiesBytes))
	gotActivities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, storedActivities, gotActivities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_missingKeys(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := activities.NewStore(db)
	ctx := context.Background()

	mock.ExpectGet("strava::activities").RedisNil()
	gotActivities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	assert.Nil(t, gotActivities)

	mock.ExpectGet("strava::sync_timestamp").RedisNil()
	syncedAt, err := store.GetSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Nil(t, syncedAt)

	mock.ExpectGet("strava::auth_token").RedisNil()
	token, err := store.GetAuthToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_syncTimestampRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := activities.NewStore(db)
	ctx := context.Background()

	syncedAt := time.Date(2025, 5, 4, 10, 30, 0, 0, time.UTC)

	mock.ExpectSet("strava::sync_timestamp", syncedAt.Unix(), 0).SetVal("OK")
	require.NoError(t, store.SetSyncTimestamp(ctx, syncedAt))

	mock.ExpectGet("strava::sync_timestamp").SetVal("1746354600")
	gotSyncedAt, err := store.GetSyncTimestamp(ctx)
	require.NoError(t, err)
	require.NotNil(t, gotSyncedAt)
	assert.Equal(t, syncedAt.Unix(), gotSyncedAt.Unix())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_authTokenRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := activities.NewStore(db)
	ctx := context.Background()

	mock.ExpectSet("strava::auth_token", "test-token", 0).SetVal("OK")
	require.NoError(t, store.SetAuthToken(ctx, "test-token"))

	mock.ExpectGet("strava::auth_token").SetVal("test-token")
	token, err := store.GetAuthToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_clearAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := activities.NewStore(db)
	ctx := context.Background()

	mock.ExpectDel("strava::activities").SetVal(1)
	mock.ExpectDel("strava::sync_timestamp").SetVal(1)
	mock.ExpectDel("strava::auth_token").SetVal(1)

	require.NoError(t, store.ClearAll(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_storageSize(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := activities.NewStore(db)
	ctx := context.Background()

	mock.ExpectStrLen("strava::activities").SetVal(2048)

	size, err := store.StorageSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), size)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// without a storage medium every operation is a no-op
func TestStore_nilRedisClient(t *testing.T) {
	store := activities.NewStore(nil)
	ctx := context.Background()

	gotActivities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	assert.Nil(t, gotActivities)

	require.NoError(t, store.SetActivities(ctx, []activities.Activity{{ID: 1}}))

	syncedAt, err := store.GetSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Nil(t, syncedAt)

	require.NoError(t, store.SetSyncTimestamp(ctx, time.Now()))
	require.NoError(t, store.SetAuthToken(ctx, "test-token"))
	require.NoError(t, store.ClearAll(ctx))

	size, err := store.StorageSize(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}
