package activities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/2beens/stridesync/internal/strava"
	"github.com/2beens/stridesync/internal/telemetry/tracing"
	"github.com/2beens/stridesync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activities_test

type activitiesSyncer interface {
	Sync(ctx context.Context, accessToken string) (State, error)
	State() State
	Clear(ctx context.Context) error
}

type detailsClient interface {
	FetchActivity(ctx context.Context, accessToken string, activityID int64) (*strava.Activity, error)
	FetchActivityStreams(ctx context.Context, accessToken string, activityID int64, keys []string) (strava.StreamSet, error)
}

type codeExchanger interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*strava.TokenResponse, error)
}

type handlerStore interface {
	GetAuthToken(ctx context.Context) (string, error)
	StorageSize(ctx context.Context) (int64, error)
}

type SyncRequest struct {
	Token string `json:"token"`
}

type SyncStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	State   State  `json:"state"`
}

type ClearDataResponse struct {
	Cleared bool `json:"cleared"`
}

type StorageSizeResponse struct {
	SizeBytes int64  `json:"sizeBytes"`
	Size      string `json:"size"`
}

type Handler struct {
	syncer      activitiesSyncer
	details     detailsClient
	auth        codeExchanger
	store       handlerStore
	frontendURL string
}

func NewHandler(
	syncer activitiesSyncer,
	details detailsClient,
	auth codeExchanger,
	store handlerStore,
	frontendURL string,
) *Handler {
	return &Handler{
		syncer:      syncer,
		details:     details,
		auth:        auth,
		store:       store,
		frontendURL: frontendURL,
	}
}

func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.sync")
	defer span.End()

	accessToken := bearerToken(r)
	if accessToken == "" {
		var syncRequest SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&syncRequest); err == nil {
			accessToken = syncRequest.Token
		}
	}
	if accessToken == "" {
		http.Error(w, "missing auth token", http.StatusBadRequest)
		return
	}

	state, err := h.syncer.Sync(ctx, accessToken)
	if err != nil {
		log.Errorf("sync failed: %s", err)
		pkg.SendJsonResponse(w, syncErrorStatus(err), state)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, state)
}

func syncErrorStatus(err error) int {
	var authErr *strava.AuthError
	var rateLimitErr *strava.RateLimitError
	switch {
	case errors.Is(err, ErrSyncInProgress):
		return http.StatusConflict
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &rateLimitErr):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrNoActivities):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) HandleSyncStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.syncStatus")
	defer span.End()

	state := h.syncer.State()

	status := "idle"
	switch {
	case state.Loading:
		status = "loading"
	case state.Error != "":
		status = "error"
	case state.SyncedAt != nil:
		status = "success"
	}

	pkg.SendJsonResponse(w, http.StatusOK, SyncStatusResponse{
		Status:  status,
		Message: state.Error,
		State:   state,
	})
}

func (h *Handler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.getActivities")
	defer span.End()

	activities := h.syncer.State().Activities
	if activities == nil {
		activities = []Activity{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, activities)
}

// HandleGetActivity returns the full activity detail, fetched fresh
// from the provider rather than from the synced snapshot
func (h *Handler) HandleGetActivity(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.getActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	vars := mux.Vars(r)
	activityID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	accessToken := h.requestToken(ctx, r)
	if accessToken == "" {
		http.Error(w, "missing auth token", http.StatusUnauthorized)
		return
	}

	activity, err := h.details.FetchActivity(ctx, accessToken, activityID)
	if err != nil {
		log.Errorf("fetch activity %d: %s", activityID, err)
		var authErr *strava.AuthError
		if errors.As(err, &authErr) {
			http.Error(w, authErr.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to fetch activity", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, activity)
}

func (h *Handler) HandleGetActivityStreams(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.getActivityStreams")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	vars := mux.Vars(r)
	activityID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	accessToken := h.requestToken(ctx, r)
	if accessToken == "" {
		http.Error(w, "missing auth token", http.StatusUnauthorized)
		return
	}

	var keys []string
	if keysParam := r.URL.Query().Get("keys"); keysParam != "" {
		keys = strings.Split(keysParam, ",")
	}

	streams, err := h.details.FetchActivityStreams(ctx, accessToken, activityID, keys)
	if err != nil {
		log.Errorf("fetch streams for activity %d: %s", activityID, err)
		var authErr *strava.AuthError
		if errors.As(err, &authErr) {
			http.Error(w, authErr.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to fetch activity streams", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, streams)
}

func (h *Handler) HandleClearData(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.clearData")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = h.syncer.Clear(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Errorf("clear data: %s", err)
		http.Error(w, "failed to clear data", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, ClearDataResponse{Cleared: true})
}

func (h *Handler) HandleStorageSize(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.storageSize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sizeBytes, err := h.store.StorageSize(ctx)
	if err != nil {
		log.Errorf("get storage size: %s", err)
		http.Error(w, "failed to get storage size", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, StorageSizeResponse{
		SizeBytes: sizeBytes,
		Size:      fmt.Sprintf("%.2f KB", float64(sizeBytes)/1024),
	})
}

// HandleLogin sends the user to the provider consent screen
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.login")
	defer span.End()

	http.Redirect(w, r, h.auth.AuthCodeURL(), http.StatusFound)
}

// HandleAuthCallback receives the oauth redirect from the provider, exchanges
// the code for a token and sends the user back to the frontend with either
// a token or an error query parameter.
func (h *Handler) HandleAuthCallback(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "activitiesHandler.authCallback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	queryParams := r.URL.Query()

	if oauthError := queryParams.Get("error"); oauthError != "" {
		h.redirectToFrontend(w, r, "error", oauthError)
		return
	}

	code := queryParams.Get("code")
	if code == "" {
		h.redirectToFrontend(w, r, "error", "no_code_provided")
		return
	}

	tokenResponse, err := h.auth.Exchange(ctx, code)
	if err != nil {
		log.Errorf("oauth callback, token exchange: %s", err)
		h.redirectToFrontend(w, r, "error", "token_exchange_failed")
		return
	}

	log.Debugf("oauth callback, authenticated as: %s", tokenResponse.Athlete.FullName())

	h.redirectToFrontend(w, r, "token", tokenResponse.AccessToken)
}

func (h *Handler) redirectToFrontend(w http.ResponseWriter, r *http.Request, param, value string) {
	redirectURL := fmt.Sprintf("%s/?%s=%s", h.frontendURL, param, url.QueryEscape(value))
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// requestToken takes the bearer token from the request, falling back
// to the token of the last successful sync
func (h *Handler) requestToken(ctx context.Context, r *http.Request) string {
	if accessToken := bearerToken(r); accessToken != "" {
		return accessToken
	}

	accessToken, err := h.store.GetAuthToken(ctx)
	if err != nil {
		log.Errorf("get stored auth token: %s", err)
		return ""
	}

	return accessToken
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
