package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/media-planner-api/infrastructure/repository"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

const (
	DefaultDays = 7
	MinDays     = 1
	MaxDays     = 90
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Reporter interface {
	ListCampaigns(ctx context.Context, filters domain.CampaignFilters, days int) ([]*domain.CampaignWithMetricsResponse, error)
	AggregateMetrics(ctx context.Context, days int) ([]*domain.CampaignMetricsResponse, error)
	DailyMetrics(ctx context.Context, campaignID int64, days int) ([]*domain.MetricResponse, error)
	GetCampaign(ctx context.Context, id int64, days int) (*domain.CampaignWithMetricsResponse, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	metricRepository   repository.MetricRepository
	now                func() time.Time
}

func NewService(
	campaignRepository repository.CampaignRepository,
	metricRepository repository.MetricRepository,
	now func() time.Time,
) Reporter {
	if now == nil {
		now = time.Now
	}

	return &Service{
		campaignRepository: campaignRepository,
		metricRepository:   metricRepository,
		now:                now,
	}
}

// ValidateDays garante que a janela está entre 1 e 90 dias
func ValidateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return NewReportingError(ErrInvalidDays, apiErrors.ErrInvalidFilter,
			fmt.Sprintf("days must be between %d and %d", MinDays, MaxDays))
	}
	return nil
}

func (s *Service) ListCampaigns(
	ctx context.Context,
	filters domain.CampaignFilters,
	days int,
) ([]*domain.CampaignWithMetricsResponse, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	window := domain.NewTrailingWindow(s.now(), days)
	campaigns, err := s.campaignRepository.ListWithMetrics(ctx, filters, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reports: failed to list campaigns with metrics")
		return nil, NewReportingError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas no banco de dados")
	}

	response := make([]*domain.CampaignWithMetricsResponse, 0, len(campaigns))
	for _, c := range campaigns {
		response = append(response, c.ToResponse())
	}

	return response, nil
}

// AggregateMetrics retorna um agregado por campanha, incluindo campanhas sem métricas na janela
func (s *Service) AggregateMetrics(ctx context.Context, days int) ([]*domain.CampaignMetricsResponse, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	window := domain.NewTrailingWindow(s.now(), days)
	campaigns, err := s.campaignRepository.ListWithMetrics(ctx, domain.CampaignFilters{}, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reports: failed to aggregate metrics")
		return nil, NewReportingError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao agregar métricas no banco de dados")
	}

	response := make([]*domain.CampaignMetricsResponse, 0, len(campaigns))
	for _, c := range campaigns {
		aggregate := domain.CampaignMetrics{
			CampaignID:   c.Campaign.ID,
			CampaignName: c.Campaign.Name,
			Totals:       c.Totals,
		}
		response = append(response, aggregate.ToResponse())
	}

	return response, nil
}

// DailyMetrics retorna as linhas diárias da campanha, da mais recente para a mais antiga
func (s *Service) DailyMetrics(ctx context.Context, campaignID int64, days int) ([]*domain.MetricResponse, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	window := domain.NewTrailingWindow(s.now(), days)
	metrics, err := s.metricRepository.ListByCampaign(ctx, campaignID, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).
			Error("reports: failed to list campaign metrics")
		return nil, NewReportingError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas no banco de dados")
	}

	response := make([]*domain.MetricResponse, 0, len(metrics))
	for _, m := range metrics {
		response = append(response, m.ToResponse())
	}

	return response, nil
}

func (s *Service) GetCampaign(ctx context.Context, id int64, days int) (*domain.CampaignWithMetricsResponse, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepository.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", id).Error("reports: failed to get campaign")
		return nil, NewReportingError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, "Falha ao buscar campanha no banco de dados")
	}
	if campaign == nil {
		return nil, &CampaignNotFoundError{CampaignID: id}
	}

	totals, err := s.metricRepository.Aggregate(ctx, id, domain.NewTrailingWindow(s.now(), days))
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", id).Error("reports: failed to aggregate campaign metrics")
		return nil, NewReportingError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao agregar métricas no banco de dados")
	}

	withTotals := &domain.CampaignWithTotals{Campaign: campaign, Totals: totals}
	return withTotals.ToResponse(), nil
}
