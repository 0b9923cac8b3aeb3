package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// domain counters
	CounterWorkoutPlansCreated   prometheus.Counter
	CounterWorkoutPlansCompleted prometheus.Counter
	CounterMealPlansAssigned     prometheus.Counter
	CounterGoalsSet              prometheus.Counter
	CounterSessionsRecorded      prometheus.Counter
	CounterSetLogsRecorded       prometheus.Counter
	CounterMealsLogged           *prometheus.CounterVec
	CounterWaterEvents           prometheus.Counter
	CounterWeightSamples         prometheus.Counter
	CounterProgressReports       prometheus.Counter
	CounterDailyLogsReconciled   prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistReconcileDuration    prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitconnect", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitconnect", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic:  counter("handle_request_panic", "The total number of serve request panics"),
		CounterRateLimitedRequests: counter("rate_limited_requests", "The total number of rate limited requests"),

		CounterWorkoutPlansCreated:   counter("workout_plans_created", "Workout plans created by trainers"),
		CounterWorkoutPlansCompleted: counter("workout_plans_completed", "Workout plans marked as completed"),
		CounterMealPlansAssigned:     counter("meal_plans_assigned", "Meal plan slots assigned by trainers"),
		CounterGoalsSet:              counter("daily_goals_set", "Daily goal rows upserted"),
		CounterSessionsRecorded:      counter("workout_sessions_recorded", "Workout sessions recorded"),
		CounterSetLogsRecorded:       counter("set_logs_recorded", "Per-set workout logs recorded"),
		CounterMealsLogged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "meals_logged",
			Help:      "Meals logged by members, per meal slot",
		}, []string{"slot"}),
		CounterWaterEvents:         counter("water_events", "Water intake events recorded"),
		CounterWeightSamples:       counter("weight_samples", "Weight samples recorded"),
		CounterProgressReports:     counter("progress_reports", "Progress reports generated"),
		CounterDailyLogsReconciled: counter("daily_logs_reconciled", "Daily log calorie counters corrected by reconciliation"),

		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeLifeSignal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
			Help:      "Shows whether the service is alive",
		}),

		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),
		HistReconcileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "daily_log_reconcile_duration_seconds",
			Help:      "Duration of a single daily log reconciliation run in seconds",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
	}
}
