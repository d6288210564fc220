package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/internal/usecases/executing"
	"github.com/vfg2006/media-planner-api/internal/usecases/reporting"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

const totalFailureMessage = "Failed to create any campaigns. All platforms failed."

// ExecuteResponse é o corpo de resposta da execução de um plano
type ExecuteResponse struct {
	Message     string                     `json:"message"`
	Campaigns   []*domain.CampaignResponse `json:"campaigns"`
	Errors      []string                   `json:"errors"`
	ExecutionID string                     `json:"executionId"`
}

func ExecutePlan(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var plan domain.GeneratedPlan
		if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
			logger.WithError(err).Warn("campaigns: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}

		outcome, err := service.ExecutePlan(r.Context(), &plan)
		if err != nil {
			var execErr *executing.ExecutionError
			if errors.As(err, &execErr) && execErr.Code == apiErrors.ErrInvalidRequest {
				logger.WithError(err).Warn("campaigns: invalid plan")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, execErr.Details, nil)
				return
			}

			writeInternalError(w, r, apiErrors.ErrInternalServer, "Failed to execute plan", err)
			return
		}

		if outcome.TotalFailure() {
			logger.WithFields(log.Fields{
				"execution_id": outcome.ExecutionID,
				"errors":       outcome.Errors(),
			}).Error("campaigns: every platform failed")

			apiErrors.WriteError(w, apiErrors.ErrExecutionFailed, totalFailureMessage, map[string]any{
				"errors":      outcome.Errors(),
				"executionId": outcome.ExecutionID,
			})
			return
		}

		writeJSON(w, r, http.StatusCreated, ExecuteResponse{
			Message:     outcome.Message(),
			Campaigns:   outcome.Created(),
			Errors:      outcome.Errors(),
			ExecutionID: outcome.ExecutionID,
		})
	})
}

func ListCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		var filters domain.CampaignFilters

		if raw := query.Get("platform"); raw != "" {
			platform, err := domain.ParsePlatform(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Invalid platform: "+raw+". Must be one of: google, meta, amazon", nil)
				return
			}
			filters.Platform = &platform
		}

		if raw := query.Get("status"); raw != "" {
			status, err := domain.ParseCampaignStatus(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Invalid status: "+raw+". Must be one of: created, pending, active, failed", nil)
				return
			}
			filters.Status = &status
		}

		days, ok := parseDays(r)
		if !ok {
			writeInvalidDays(w)
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), filters, days)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		logger.WithField("campaigns", len(campaigns)).Debug("campaigns: listed campaigns with metrics")
		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func GetCampaign(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid campaign id: "+rawID, nil)
			return
		}

		days, ok := parseDays(r)
		if !ok {
			writeInvalidDays(w)
			return
		}

		campaign, err := service.GetCampaign(r.Context(), id, days)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, campaign)
	})
}

func writeReportingError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *reporting.CampaignNotFoundError
	if errors.As(err, &notFound) {
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, notFound.Error(), nil)
		return
	}

	var reportErr *reporting.ReportingError
	if errors.As(err, &reportErr) {
		if apiErrors.StatusFor(reportErr.Code) < http.StatusInternalServerError {
			apiErrors.WriteError(w, reportErr.Code, reportErr.Details, nil)
			return
		}
		writeInternalError(w, r, reportErr.Code, reportErr.Details, err)
		return
	}

	writeInternalError(w, r, apiErrors.ErrInternalServer, "Internal server error", err)
}
