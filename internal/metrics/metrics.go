// Package metrics concentra os coletores Prometheus da aplicação
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trendwise"

var (
	// HTTPRequests conta requisições por método, rota (padrão registrado) e status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP recebidas",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"route"},
	)

	// ContentScored conta conteúdos pontuados por plataforma
	ContentScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_scored_total",
			Help:      "Total de conteúdos pontuados",
		},
		[]string{"platform"},
	)

	// SchedulesGenerated conta gerações de agenda por resultado (success, error)
	SchedulesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedules_generated_total",
			Help:      "Total de agendas de publicação geradas",
		},
		[]string{"outcome"},
	)

	PostsDispatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduled_posts_dispatched_total",
			Help:      "Total de posts agendados marcados como publicados",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Total de requisições recusadas pelo limitador de taxa",
		},
	)
)
