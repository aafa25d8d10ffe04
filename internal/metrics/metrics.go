// Package metrics declares the Prometheus collectors shared by the server and the worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OracleRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aithera_oracle_requests_total",
		Help: "Total number of oracle calls, partitioned by feature and outcome.",
	}, []string{"feature", "outcome"})

	OracleLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aithera_oracle_request_duration_seconds",
		Help:    "Latency of oracle calls by feature.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
	}, []string{"feature"})

	SimulationsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aithera_simulations_started_total",
		Help: "Soft skill simulations started, partitioned by source (oracle or library).",
	}, []string{"source"})

	SimulationsEnded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aithera_simulations_ended_total",
		Help: "Soft skill simulations torn down, partitioned by the player status at exit.",
	}, []string{"status"})

	StaleOracleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aithera_stale_oracle_responses_total",
		Help: "Scenario responses that arrived after their session was ended or restarted.",
	})

	AnalysisJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aithera_resume_analysis_jobs_total",
		Help: "Resume analysis jobs processed by the worker, partitioned by final status.",
	}, []string{"status"})
)
