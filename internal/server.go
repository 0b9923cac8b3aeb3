package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitconnect/internal/actuals"
	"github.com/2beens/fitconnect/internal/adherence"
	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/internal/config"
	"github.com/2beens/fitconnect/internal/db"
	"github.com/2beens/fitconnect/internal/goals"
	"github.com/2beens/fitconnect/internal/middleware"
	"github.com/2beens/fitconnect/internal/misc"
	"github.com/2beens/fitconnect/internal/plans"
	"github.com/2beens/fitconnect/internal/telemetry/metrics"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
)

// sessions older than the TTL are swept from the tokens set this often
const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.ClientsChecker
	authService  *auth.Service
	assignments  *auth.AssignmentsRepo

	catalogLookup    *catalog.CachedLookup
	plansService     *plans.Service
	goalsService     *goals.Service
	actualsService   *actuals.Service
	adherenceService *adherence.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
	MigrateOnStart          bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.MigrateOnStart {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
		log.Infoln("db schema migrated")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitconnect_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitconnect", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
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

	authService := auth.NewAuthService(auth.NewAccountsRepo(dbPool), auth.DefaultTTL, rdb)
	assignments := auth.NewAssignmentsRepo(dbPool)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitconnect-backend", rdb)
	if err != nil {
		return nil, err
	}

	catalogLookup := catalog.NewCachedLookup(catalog.NewRepo(dbPool), params.Config.CatalogCacheSizeMB)
	promRegistry.MustRegister(cacheCollectors("fitconnect", "catalog", catalogLookup)...)
	plansService := plans.NewService(plans.NewRepo(dbPool), metricsManager, params.Config.RejectOverlappingPlans)
	goalsService := goals.NewService(goals.NewRepo(dbPool), metricsManager)
	actualsService := actuals.NewService(actuals.NewRepo(dbPool), catalogLookup, metricsManager)
	adherenceService := adherence.NewService(
		adherence.NewRepo(dbPool),
		goalsService,
		plansService,
		metricsManager,
	)

	go actuals.RunCaloriesReconciler(
		ctx,
		actualsService,
		time.Duration(params.Config.ReconcileIntervalMinutes)*time.Minute,
		params.Config.ReconcileWindowDays,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		assignments:  assignments,
		loginChecker: auth.NewClientsChecker(auth.NewLoginChecker(auth.DefaultTTL, rdb), assignments),

		catalogLookup:    catalogLookup,
		plansService:     plansService,
		goalsService:     goalsService,
		actualsService:   actualsService,
		adherenceService: adherenceService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, auth.NewHandler(s.authService))
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	writeLimit := middleware.RateLimit(reqRateLimiter, "writes", s.config.WriteRateLimitAllowedPerMin, s.metricsManager)
	limited := func(h http.HandlerFunc) http.Handler {
		return writeLimit(h)
	}

	catalogHandler := catalog.NewHandler(s.catalogLookup)
	r.HandleFunc("/catalog/exercises", catalogHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/catalog/exercises/{id}", catalogHandler.HandleGetExercise).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/catalog/foods", catalogHandler.HandleSearchFoods).Methods("GET", "OPTIONS").Name("search-foods")
	r.HandleFunc("/catalog/foods/{id}", catalogHandler.HandleGetFood).Methods("GET", "OPTIONS").Name("get-food")

	plansHandler := plans.NewHandler(s.plansService)
	r.Handle("/members/{memberId}/plans/workout", limited(plansHandler.HandleCreateWorkoutPlan)).Methods("POST", "OPTIONS").Name("create-workout-plan")
	r.HandleFunc("/members/{memberId}/plans/workout", plansHandler.HandleListWorkoutPlans).Methods("GET", "OPTIONS").Name("list-workout-plans")
	r.HandleFunc("/members/{memberId}/plans/workout/date/{date}", plansHandler.HandleGetPlanForDate).Methods("GET", "OPTIONS").Name("get-plan-for-date")
	r.HandleFunc("/plans/workout/{id}/exercises", plansHandler.HandleGetPlanExercises).Methods("GET", "OPTIONS").Name("get-plan-exercises")
	r.Handle("/plans/workout/{id}/status", limited(plansHandler.HandleUpdatePlanStatus)).Methods("PUT", "OPTIONS").Name("update-plan-status")
	r.Handle("/plans/workout/{id}/complete", limited(plansHandler.HandleCompletePlan)).Methods("POST", "OPTIONS").Name("complete-plan")
	r.Handle("/members/{memberId}/plans/meal/{date}", limited(plansHandler.HandleAssignMealPlans)).Methods("PUT", "OPTIONS").Name("assign-meal-plans")
	r.HandleFunc("/members/{memberId}/plans/meal/{date}", plansHandler.HandleGetMealPlans).Methods("GET", "OPTIONS").Name("get-meal-plans")

	goalsHandler := goals.NewHandler(s.goalsService)
	r.Handle("/members/{memberId}/goals", limited(goalsHandler.HandleSetGoal)).Methods("PUT", "OPTIONS").Name("set-goal")
	r.Handle("/members/{memberId}/goals/span", limited(goalsHandler.HandleSetGoalSpan)).Methods("PUT", "OPTIONS").Name("set-goal-span")
	r.HandleFunc("/members/{memberId}/goals/{date}", goalsHandler.HandleGetGoal).Methods("GET", "OPTIONS").Name("get-goal")
	r.HandleFunc("/members/{memberId}/goals", goalsHandler.HandleListGoals).Methods("GET", "OPTIONS").Name("list-goals")

	actualsHandler := actuals.NewHandler(s.actualsService)
	r.Handle("/members/{memberId}/sessions", limited(actualsHandler.HandleCreateSession)).Methods("POST", "OPTIONS").Name("create-session")
	r.Handle("/members/{memberId}/sessions/recorded", limited(actualsHandler.HandleRecordWorkout)).Methods("POST", "OPTIONS").Name("record-workout")
	r.Handle("/sessions/{id}/logs", limited(actualsHandler.HandleAppendSetLogs)).Methods("POST", "OPTIONS").Name("append-set-logs")
	r.HandleFunc("/sessions/{id}/logs", actualsHandler.HandleGetSessionLogs).Methods("GET", "OPTIONS").Name("get-session-logs")
	r.HandleFunc("/members/{memberId}/sessions/date/{date}", actualsHandler.HandleGetSessionsForDate).Methods("GET", "OPTIONS").Name("get-sessions-for-date")
	r.Handle("/members/{memberId}/meals", limited(actualsHandler.HandleLogMeal)).Methods("POST", "OPTIONS").Name("log-meal")
	r.HandleFunc("/members/{memberId}/meals/date/{date}", actualsHandler.HandleGetMealsForDate).Methods("GET", "OPTIONS").Name("get-meals-for-date")
	r.Handle("/meals/{id}", limited(actualsHandler.HandleDeleteMealLog)).Methods("DELETE", "OPTIONS").Name("delete-meal-log")
	r.Handle("/members/{memberId}/weight", limited(actualsHandler.HandleLogWeight)).Methods("POST", "OPTIONS").Name("log-weight")
	r.HandleFunc("/members/{memberId}/weight", actualsHandler.HandleGetWeightHistory).Methods("GET", "OPTIONS").Name("get-weight-history")
	r.Handle("/members/{memberId}/water", limited(actualsHandler.HandleRecordWater)).Methods("POST", "OPTIONS").Name("record-water")
	r.HandleFunc("/members/{memberId}/water/date/{date}", actualsHandler.HandleGetWaterForDate).Methods("GET", "OPTIONS").Name("get-water-for-date")
	r.HandleFunc("/members/{memberId}/water/history", actualsHandler.HandleGetWaterHistory).Methods("GET", "OPTIONS").Name("get-water-history")
	r.Handle("/water/{id}", limited(actualsHandler.HandleDeleteWater)).Methods("DELETE", "OPTIONS").Name("delete-water")

	adherenceHandler := adherence.NewHandler(s.adherenceService)
	r.HandleFunc("/members/{memberId}/progress", adherenceHandler.HandleGetProgress).Methods("GET", "OPTIONS").Name("get-progress")
	r.HandleFunc("/members/{memberId}/completion", adherenceHandler.HandleGetCompletionRate).Methods("GET", "OPTIONS").Name("get-completion-rate")
	r.Handle("/members/{memberId}/reports", limited(adherenceHandler.HandleSaveReport)).Methods("POST", "OPTIONS").Name("save-report")
	r.HandleFunc("/members/{memberId}/reports", adherenceHandler.HandleListReports).Methods("GET", "OPTIONS").Name("list-reports")
	r.HandleFunc("/members/{memberId}/dashboard/{date}", adherenceHandler.HandleGetDashboard).Methods("GET", "OPTIONS").Name("get-dashboard")
	r.HandleFunc("/trainers/me/stats/{date}", adherenceHandler.HandleGetTrainerStats).Methods("GET", "OPTIONS").Name("get-trainer-stats")

	assignmentsHandler := auth.NewAssignmentsHandler(s.assignments)
	r.Handle("/members/{memberId}/trainer", limited(assignmentsHandler.HandleAssignTrainer)).Methods("PUT", "OPTIONS").Name("assign-trainer")
	r.Handle("/members/{memberId}/trainer", limited(assignmentsHandler.HandleCancelAssignment)).Methods("DELETE").Name("cancel-trainer-assignment")
	r.HandleFunc("/trainers/me/clients", assignmentsHandler.HandleListClients).Methods("GET", "OPTIONS").Name("list-clients")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
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
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
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
			log.Fatalf("main service, listen and serve: %s", err)
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
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

type cacheStats interface {
	HitCount() int64
	MissCount() int64
}

func cacheCollectors(namespace, subsystem string, cache cacheStats) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits_total",
			Help:      "Lookups served from the in-memory cache",
		}, func() float64 { return float64(cache.HitCount()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_misses_total",
			Help:      "Lookups that went to the database",
		}, func() float64 { return float64(cache.MissCount()) }),
	}
}
