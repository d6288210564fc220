package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/internal/usecases/planning"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

func GeneratePlan(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.PlanInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("plans: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}

		plan, err := service.Generate(r.Context(), &input)
		if err != nil {
			var planErr *planning.PlanGenerationError
			if errors.As(err, &planErr) && planErr.Code == apiErrors.ErrInvalidRequest {
				logger.WithError(err).Warn("plans: invalid plan input")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, planErr.Message, nil)
				return
			}

			writeInternalError(w, r, apiErrors.ErrPlanGeneration, "Failed to generate plan: "+err.Error(), err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_objective": plan.Objective,
			"campaign_budget":    plan.DailyBudget,
		}).Info("plans: media plan generated")

		writeJSON(w, r, http.StatusOK, plan)
	})
}
