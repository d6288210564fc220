package handler

import (
	"net/http"

	"github.com/vfg2006/media-planner-api/internal/api/handler/router"
	"github.com/vfg2006/media-planner-api/internal/usecases/executing"
	"github.com/vfg2006/media-planner-api/internal/usecases/planning"
	"github.com/vfg2006/media-planner-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Plans(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:    "/api/plans/generate",
			Method:  http.MethodPost,
			Handler: GeneratePlan(service),
		},
	}
}

func Campaigns(executor executing.Executor, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns/execute",
			Method:  http.MethodPost,
			Handler: ExecutePlan(executor),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(reporter),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(reporter),
		},
	}
}

func Metrics(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(reporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
