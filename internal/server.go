package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/stridesync/internal/activities"
	"github.com/2beens/stridesync/internal/analytics"
	"github.com/2beens/stridesync/internal/config"
	"github.com/2beens/stridesync/internal/middleware"
	"github.com/2beens/stridesync/internal/strava"
	"github.com/2beens/stridesync/internal/telemetry/metrics"
	"github.com/2beens/stridesync/internal/telemetry/tracing"
	"github.com/2beens/stridesync/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	redisClient  *redis.Client
	store        *activities.Store
	syncer       *activities.Syncer
	stravaClient *strava.Client
	auth         *strava.Authenticator

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	StravaClientID          string
	StravaClientSecret      string
	RedisPassword           string
	HoneycombTracingEnabled bool
	VersionInfo             string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// without redis the server still runs, just with nothing persisted
	var rdb *redis.Client
	if params.Config.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Warnln("redis host not set, activities will not be persisted")
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "stridesync-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	stravaClient := strava.NewClient(
		params.Config.StravaApiUrl,
		tracedHttpClient,
		strava.WithMetrics(metricsManager),
	)

	store := activities.NewStore(rdb)

	return &Server{
		config:       params.Config,
		versionInfo:  params.VersionInfo,
		redisClient:  rdb,
		store:        store,
		syncer:       activities.NewSyncer(ctx, stravaClient, store, metricsManager),
		stravaClient: stravaClient,
		auth: strava.NewAuthenticator(
			params.StravaClientID,
			params.StravaClientSecret,
			params.Config.OAuthRedirectUri,
			params.Config.StravaAuthorizeUrl,
			params.Config.StravaTokenUrl,
			tracedHttpClient,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("stridesync-router"))

	activitiesHandler := activities.NewHandler(
		s.syncer,
		s.stravaClient,
		s.auth,
		s.store,
		s.config.FrontendUrl,
	)

	syncHandler := http.Handler(http.HandlerFunc(activitiesHandler.HandleSync))
	if s.redisClient != nil {
		reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
		syncHandler = middleware.RateLimit(
			reqRateLimiter,
			"sync",
			s.config.SyncRateLimitAllowedPerMin,
			s.metricsManager,
		)(syncHandler)
	}
	r.Handle("/sync", syncHandler).Methods("POST", "OPTIONS").Name("sync")
	r.HandleFunc("/sync/status", activitiesHandler.HandleSyncStatus).Methods("GET", "OPTIONS").Name("sync-status")
	r.HandleFunc("/sync/data", activitiesHandler.HandleClearData).Methods("DELETE", "OPTIONS").Name("clear-data")
	r.HandleFunc("/sync/storage-size", activitiesHandler.HandleStorageSize).Methods("GET", "OPTIONS").Name("storage-size")

	r.HandleFunc("/activities", activitiesHandler.HandleGetActivities).Methods("GET", "OPTIONS").Name("list-activities")
	r.HandleFunc("/activities/{id}", activitiesHandler.HandleGetActivity).Methods("GET", "OPTIONS").Name("get-activity")
	r.HandleFunc("/activities/{id}/streams", activitiesHandler.HandleGetActivityStreams).Methods("GET", "OPTIONS").Name("activity-streams")

	r.HandleFunc("/strava/auth/login", activitiesHandler.HandleLogin).Methods("GET", "OPTIONS").Name("strava-login")
	r.HandleFunc("/strava/auth/callback", activitiesHandler.HandleAuthCallback).Methods("GET", "OPTIONS").Name("strava-callback")

	analyticsHandler := analytics.NewHandler(s.syncer)
	r.HandleFunc("/stats/weekly", analyticsHandler.HandleWeeklyStats).Methods("GET", "OPTIONS").Name("stats-weekly")
	r.HandleFunc("/stats/monthly", analyticsHandler.HandleMonthlyStats).Methods("GET", "OPTIONS").Name("stats-monthly")
	r.HandleFunc("/stats/totals", analyticsHandler.HandleTotals).Methods("GET", "OPTIONS").Name("stats-totals")
	r.HandleFunc("/stats/streaks", analyticsHandler.HandleStreaks).Methods("GET", "OPTIONS").Name("stats-streaks")
	r.HandleFunc("/stats/pace", analyticsHandler.HandlePaceTrends).Methods("GET", "OPTIONS").Name("stats-pace")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, "text/plain", s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("stridesync service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
