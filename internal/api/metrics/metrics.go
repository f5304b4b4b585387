// Package metrics defines and registers the Prometheus metrics of the auth
// API. Metrics register with the default registry on package load and are
// served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// Login outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Signup results.
const (
	SignupCreated = "created"
	SignupExists  = "exists"
	SignupError   = "error"
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "rejected" (unknown email or wrong password) or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginDuration measures how long a login takes end-to-end, bcrypt included.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login requests from validation to token persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// SignupsTotal counts registration attempts.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)
