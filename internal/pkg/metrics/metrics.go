package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	OfficersRegistered prometheus.Counter
	LoginAttempts      *prometheus.CounterVec
	ReportsCreated     *prometheus.CounterVec
	AssignmentsCreated prometheus.Counter
	AuthzDenials       *prometheus.CounterVec
}

var (
	once    sync.Once
	current *Metrics
)

// Default returns the process-wide metrics, registering them on first use
func Default() *Metrics {
	once.Do(func() {
		current = &Metrics{
			OfficersRegistered: promauto.NewCounter(prometheus.CounterOpts{
				Name: "community_watch_officers_registered_total",
				Help: "Total number of police officers registered",
			}),
			LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "community_watch_login_attempts_total",
				Help: "Login attempts partitioned by outcome",
			}, []string{"outcome"}),
			ReportsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "community_watch_reports_created_total",
				Help: "Crime reports created partitioned by initial status",
			}, []string{"status"}),
			AssignmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Name: "community_watch_assignments_created_total",
				Help: "Total number of officer assignments created",
			}),
			AuthzDenials: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "community_watch_authz_denials_total",
				Help: "Requests rejected by the authorization gate partitioned by reason",
			}, []string{"reason"}),
		}
	})
	return current
}

// IncrementOfficersRegistered increments the registered officers counter by 1
func (m *Metrics) IncrementOfficersRegistered() {
	m.OfficersRegistered.Inc()
}

// ObserveLogin records a login attempt outcome ("success", "invalid_credentials", "error")
func (m *Metrics) ObserveLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

// IncrementReportsCreated increments the created reports counter for a status
func (m *Metrics) IncrementReportsCreated(status string) {
	m.ReportsCreated.WithLabelValues(status).Inc()
}

// IncrementAssignmentsCreated increments the created assignments counter by 1
func (m *Metrics) IncrementAssignmentsCreated() {
	m.AssignmentsCreated.Inc()
}

// ObserveDenial records an authorization gate rejection ("unauthenticated", "forbidden")
func (m *Metrics) ObserveDenial(reason string) {
	m.AuthzDenials.WithLabelValues(reason).Inc()
}
