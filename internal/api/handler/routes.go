package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/trendwise-api/internal/api/handler/router"
	"github.com/vfg2006/trendwise-api/internal/usecases/analyzing"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/internal/usecases/scoring"
)

func Healthcheck(optimizer scheduling.Optimizer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(optimizer),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Content(scorer scoring.Scorer, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content/score",
			Method:  http.MethodPost,
			Handler: ScoreContent(scorer),
		},
		{
			Path:    "/v1/content/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeContent(analyzer),
		},
	}
}

func Schedule(optimizer scheduling.Optimizer, defaultTimezone string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/schedule",
			Method:  http.MethodGet,
			Handler: GetSchedule(optimizer),
		},
		{
			Path:    "/v1/schedule/optimize",
			Method:  http.MethodGet,
			Handler: OptimizeSchedule(optimizer, defaultTimezone),
		},
	}
}

func ScheduledPosts(service posting.PostingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posting-insights",
			Method:  http.MethodGet,
			Handler: GetPostingInsights(service),
		},
		{
			Path:    "/v1/scheduled-posts",
			Method:  http.MethodPost,
			Handler: CreateScheduledPost(service),
		},
		{
			Path:    "/v1/scheduled-posts",
			Method:  http.MethodGet,
			Handler: ListScheduledPosts(service),
		},
		{
			Path:    "/v1/scheduled-posts/:id",
			Method:  http.MethodPut,
			Handler: UpdateScheduledPost(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
