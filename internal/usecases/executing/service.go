package executing

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/media-planner-api/infrastructure/integrator"
	"github.com/vfg2006/media-planner-api/infrastructure/repository"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
	"github.com/vfg2006/media-planner-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Executor interface {
	ExecutePlan(ctx context.Context, plan *domain.GeneratedPlan) (*Outcome, error)
}

type Service struct {
	creators           []integrator.CampaignCreator
	campaignRepository repository.CampaignRepository
	metricRepository   repository.MetricRepository
	seedDays           int
	parallel           bool
	newID              func() (string, error)
}

func NewService(
	creators []integrator.CampaignCreator,
	campaignRepository repository.CampaignRepository,
	metricRepository repository.MetricRepository,
	cfg *config.Config,
) Executor {
	return &Service{
		creators:           creators,
		campaignRepository: campaignRepository,
		metricRepository:   metricRepository,
		seedDays:           cfg.MetricsSync.SeedDays,
		parallel:           cfg.Platforms.ParallelExecution,
		newID:              utils.NewExecutionID,
	}
}

// ExecutePlan cria a campanha do plano em cada plataforma. Falhas de uma plataforma
// não interrompem as demais e nada é desfeito.
func (s *Service) ExecutePlan(ctx context.Context, plan *domain.GeneratedPlan) (*Outcome, error) {
	if plan == nil {
		return nil, NewExecutionError(ErrInvalidPlan, apiErrors.ErrInvalidRequest, "plan is required")
	}

	if err := plan.Validate(); err != nil {
		return nil, NewExecutionError(ErrInvalidPlan, apiErrors.ErrInvalidRequest, err.Error())
	}

	if len(s.creators) == 0 {
		return nil, NewExecutionError(ErrNoCampaignCreators, apiErrors.ErrInternalServer, "")
	}

	executionID, err := s.newID()
	if err != nil {
		return nil, NewExecutionError(ErrGenerateExecutionID, apiErrors.ErrInternalServer, err.Error())
	}

	logger := log.ForContext(ctx).WithField("execution_id", executionID)
	logger.WithFields(log.Fields{
		"campaign_objective": plan.Objective,
		"parallel":           s.parallel,
	}).Info("campaigns: executing media plan")

	results := make([]PlatformResult, len(s.creators))
	if s.parallel {
		var g errgroup.Group
		for i, creator := range s.creators {
			g.Go(func() error {
				results[i] = s.executeOnPlatform(ctx, executionID, plan, creator)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, creator := range s.creators {
			results[i] = s.executeOnPlatform(ctx, executionID, plan, creator)
		}
	}

	outcome := &Outcome{
		ExecutionID: executionID,
		Results:     results,
	}

	logger.WithFields(log.Fields{
		"created": len(outcome.Created()),
		"failed":  len(outcome.Errors()),
	}).Info("campaigns: media plan execution finished")

	return outcome, nil
}

func (s *Service) executeOnPlatform(
	ctx context.Context,
	executionID string,
	plan *domain.GeneratedPlan,
	creator integrator.CampaignCreator,
) (result PlatformResult) {
	platform := creator.Platform()
	result = PlatformResult{
		Platform:     platform,
		CampaignType: creator.CampaignType(),
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"execution_id": executionID,
		"platform":     platform,
	})

	fail := func(err error) PlatformResult {
		result.Campaign = nil
		result.Err = errors.Wrapf(err, "Failed to create %s campaign", platform)
		logger.WithError(err).Error("campaigns: platform campaign creation failed")
		return result
	}

	// um panic no integrador vira falha da plataforma; as demais seguem
	defer func() {
		if recovered := recover(); recovered != nil {
			result = fail(errors.Errorf("panic: %v", recovered))
		}
	}()

	created, err := creator.CreateCampaign(ctx, plan)
	if err != nil {
		return fail(err)
	}
	if created == nil {
		return fail(errors.New("platform returned no campaign"))
	}

	externalID := created.ExternalCampaignID
	campaign, err := s.campaignRepository.Create(ctx, &domain.Campaign{
		Name:               created.Name,
		Platform:           created.Platform,
		CampaignType:       created.CampaignType,
		Status:             domain.CampaignStatusCreated,
		Objective:          plan.Objective,
		DailyBudget:        created.DailyBudget,
		ProductCategories:  plan.ProductCategories,
		ExternalCampaignID: &externalID,
	})
	if err != nil {
		return fail(errors.Wrap(err, "persist campaign"))
	}

	if _, err := s.metricRepository.GenerateMockMetrics(ctx, campaign.ID, s.seedDays); err != nil {
		return fail(errors.Wrap(err, "seed campaign metrics"))
	}

	logger.WithFields(log.Fields{
		"campaign_id":          campaign.ID,
		"external_campaign_id": externalID,
	}).Info("campaigns: platform campaign created")

	result.Campaign = campaign.ToResponse()
	return result
}
