package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	usersCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "users",
		Name:      "created_total",
		Help:      "Number of users created since process start.",
	})
	exercisesRecordedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "recorded_total",
		Help:      "Number of exercises appended to the in-memory log.",
	})
	invalidDatesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "invalid_dates_total",
		Help:      "Number of exercise creations rejected for an unparseable date.",
	})
	logQueriesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "logs",
		Name:      "queries_total",
		Help:      "Number of exercise log queries served.",
	})
	httpStatusCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "responses_total",
		Help:      "HTTP responses by status code.",
	}, []string{"status_code"})
)

func init() {
	prometheus.MustRegister(
		usersCreatedCounter,
		exercisesRecordedCounter,
		invalidDatesCounter,
		logQueriesCounter,
		httpStatusCounter,
	)
}

// RecordUserCreated increments the user creation counter.
func RecordUserCreated() {
	usersCreatedCounter.Inc()
}

// RecordExerciseRecorded increments the exercise counter.
func RecordExerciseRecorded() {
	exercisesRecordedCounter.Inc()
}

// RecordInvalidDate counts a creation rejected for a bad date string.
func RecordInvalidDate() {
	invalidDatesCounter.Inc()
}

// RecordLogQuery increments the log query counter.
func RecordLogQuery() {
	logQueriesCounter.Inc()
}

// RecordHTTPStatus counts a response by status code.
func RecordHTTPStatus(statusCode int) {
	httpStatusCounter.WithLabelValues(statusCodeLabel(statusCode)).Inc()
}

func statusCodeLabel(code int) string {
	switch code {
	case 200:
		return "200"
	case 400:
		return "400"
	case 404:
		return "404"
	case 429:
		return "429"
	default:
		if code >= 500 {
			return "5xx"
		}
		return "other"
	}
}
