package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/media-planner-api/internal/usecases/reporting"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
)

// GetMetrics sem campaign_id devolve um agregado por campanha; com ele, as linhas diárias
func GetMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, ok := parseDays(r)
		if !ok {
			writeInvalidDays(w)
			return
		}

		rawID := r.URL.Query().Get("campaign_id")
		if rawID == "" {
			aggregates, err := service.AggregateMetrics(r.Context(), days)
			if err != nil {
				writeReportingError(w, r, err)
				return
			}
			writeJSON(w, r, http.StatusOK, aggregates)
			return
		}

		campaignID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid campaign_id: "+rawID, nil)
			return
		}

		metrics, err := service.DailyMetrics(r.Context(), campaignID, days)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	})
}
