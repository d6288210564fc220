package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeMetrics = "metrics"
	CronJobTypeAll     = "all"
)

//go:generate mockgen -source=cron.go -destination=mocks/cron_mock.go -package=mocks
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser disparados pela API
type CronJobServices struct {
	MetricsSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeMetrics, CronJobTypeAll:
			if services.MetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Metrics sync service is not available", nil)
				return
			}

			triggered := services.MetricsSyncService.TriggerManualSync()
			logger.WithField("triggered", triggered).Info("cron: manual metrics sync requested")

			message := "Cron job started"
			if !triggered {
				message = "Cron job already running"
			}

			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message":   message,
				"type":      cronType,
				"triggered": triggered,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: metrics, all", nil)
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MetricsSyncService != nil {
			status[CronJobTypeMetrics] = services.MetricsSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
