package google

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	googledomain "github.com/vfg2006/media-planner-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/log"
	"github.com/vfg2006/media-planner-api/pkg/utils"
)

const (
	BudgetShare = 0.4

	maxHeadlines    = 15
	maxDescriptions = 4
	maxImages       = 20
	maxAudiences    = 10
	maxKeywords     = 10

	defaultCategory = "Products"
	finalURL        = "https://example.com/products"
)

// MockIntegrator monta o payload Performance Max e devolve um id simulado, sem chamar a API
type MockIntegrator struct {
	now func() time.Time
}

func NewMock(now func() time.Time) *MockIntegrator {
	if now == nil {
		now = time.Now
	}
	return &MockIntegrator{now: now}
}

func (s *MockIntegrator) Platform() domain.Platform { return domain.PlatformGoogle }

func (s *MockIntegrator) CampaignType() domain.CampaignType { return domain.CampaignTypePMax }

func (s *MockIntegrator) CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error) {
	now := s.now()
	budget := plan.AllocateBudget(BudgetShare)
	payload := BuildPayload(plan, budget, now)

	logger := log.ForContext(ctx).WithField("platform", domain.PlatformGoogle)
	logger.WithFields(log.Fields{
		"campaign_name":    payload.Campaign.Name,
		"daily_budget":     budget.StringFixed(2),
		"bidding_strategy": plan.BiddingStrategy,
		"headlines":        len(payload.AssetGroup.Headlines),
		"descriptions":     len(payload.AssetGroup.Descriptions),
	}).Info("campaigns: [MOCK] google ads campaign creation request")
	if log.DebugEnabled() {
		logger.Debugf("campaigns: google payload %s", utils.PrettyJson(payload))
	}

	return &domain.PlatformCampaign{
		Platform:           domain.PlatformGoogle,
		CampaignType:       domain.CampaignTypePMax,
		Name:               payload.Campaign.Name,
		DailyBudget:        budget,
		ExternalCampaignID: domain.NewExternalCampaignID(domain.PlatformGoogle, now),
		Status:             domain.CampaignStatusCreated,
		Payload:            payload,
	}, nil
}

// LiveIntegrator seria a integração real com a Google Ads API; falha sempre até existir
type LiveIntegrator struct {
	cfg config.Google
	now func() time.Time
}

func NewLive(cfg config.Google, now func() time.Time) *LiveIntegrator {
	if now == nil {
		now = time.Now
	}
	return &LiveIntegrator{cfg: cfg, now: now}
}

func (s *LiveIntegrator) Platform() domain.Platform { return domain.PlatformGoogle }

func (s *LiveIntegrator) CampaignType() domain.CampaignType { return domain.CampaignTypePMax }

func (s *LiveIntegrator) CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error) {
	payload := BuildPayload(plan, plan.AllocateBudget(BudgetShare), s.now())

	log.ForContext(ctx).WithFields(log.Fields{
		"platform":      domain.PlatformGoogle,
		"campaign_name": payload.Campaign.Name,
		"customer_id":   s.cfg.CustomerID,
	}).Warn("campaigns: google ads api integration not implemented")

	return nil, domain.NewPlatformServiceError(
		domain.PlatformGoogle,
		"Google Ads API integration not implemented",
		domain.ErrLiveIntegrationNotImplemented,
	)
}

// BuildPayload converte o plano no corpo de criação da campanha Performance Max
func BuildPayload(plan *domain.GeneratedPlan, budget decimal.Decimal, now time.Time) *googledomain.CampaignPayload {
	category := plan.PrimaryCategory(defaultCategory)
	today := now.UTC().Format(time.DateOnly)

	bidding := "MAXIMIZE_CONVERSIONS"
	if plan.BiddingStrategy == domain.BiddingMaximizeConversionValue {
		bidding = "MAXIMIZE_CONVERSION_VALUE"
	}

	images := make([]googledomain.Asset, 0, maxImages)
	for _, url := range utils.Head(plan.CreativePack.ImageURLs, maxImages) {
		images = append(images, googledomain.Asset{URL: url, Type: "IMAGE"})
	}

	var logo *googledomain.Asset
	if plan.CreativePack.LogoURL != nil && *plan.CreativePack.LogoURL != "" {
		logo = &googledomain.Asset{URL: *plan.CreativePack.LogoURL}
	}

	return &googledomain.CampaignPayload{
		Campaign: googledomain.Campaign{
			Name:                   "PMax - " + category + " - " + today,
			AdvertisingChannelType: "PERFORMANCE_MAX",
			Status:                 "PAUSED",
			CampaignBudget: googledomain.CampaignBudget{
				AmountMicros:   budget.Mul(decimal.NewFromInt(1_000_000)).IntPart(),
				DeliveryMethod: "STANDARD",
			},
			BiddingStrategy: googledomain.BiddingStrategy{Type: bidding},
			StartDate:       today,
		},
		AssetGroup: googledomain.AssetGroup{
			Name:         "Asset Group - " + category,
			Headlines:    utils.Head(plan.CreativePack.Headlines, maxHeadlines),
			Descriptions: utils.Head(plan.CreativePack.Descriptions, maxDescriptions),
			Images:       images,
			Logo:         logo,
			FinalURLs:    []string{finalURL},
		},
		Targeting: googledomain.Targeting{
			GeoTargets:      plan.Geo,
			LanguageTargets: plan.Lang,
			AudienceTargets: utils.Head(plan.TargetingHints.Audiences, maxAudiences),
		},
		Keywords: utils.Head(plan.TargetingHints.Keywords, maxKeywords),
	}
}
