package metrics

import (
	"database/sql"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/protomem/club-manager/internal/model"
)

type Metrics struct {
	// Request duration histogram with method, route and status labels.
	RequestDuration *prometheus.HistogramVec
	// Login attempts counter with status label.
	LoginAttempts *prometheus.CounterVec
	// Database query duration histogram with query name and status labels.
	DBQueryDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "request_duration_seconds",
			Help: "Duration of HTTP requests in seconds.",
		},
			[]string{"method", "route", "status"},
		),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts.",
		},
			[]string{"status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
			[]string{"query", "status"},
		),
	}

	reg.MustRegister(m.RequestDuration)
	reg.MustRegister(m.LoginAttempts)
	reg.MustRegister(m.DBQueryDuration)

	return m
}

// ObserveDB records the duration and outcome of one database query.
func (m *Metrics) ObserveDB(queryName string, start time.Time, err error) {
	status := "ok"
	switch {
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, model.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}

	m.DBQueryDuration.WithLabelValues(queryName, status).Observe(time.Since(start).Seconds())
}
