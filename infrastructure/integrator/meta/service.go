package meta

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	metadomain "github.com/vfg2006/media-planner-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/log"
	"github.com/vfg2006/media-planner-api/pkg/utils"
)

const (
	BudgetShare = 0.4

	defaultCategory = "Products"
	pagePlaceholder = "your_page_id"
)

type MockIntegrator struct {
	now func() time.Time
}

func NewMock(now func() time.Time) *MockIntegrator {
	if now == nil {
		now = time.Now
	}
	return &MockIntegrator{now: now}
}

func (s *MockIntegrator) Platform() domain.Platform { return domain.PlatformMeta }

func (s *MockIntegrator) CampaignType() domain.CampaignType { return domain.CampaignTypeShopping }

func (s *MockIntegrator) CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error) {
	budget := plan.AllocateBudget(BudgetShare)

	payload, err := BuildPayload(plan, budget)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("platform", domain.PlatformMeta).
			Error("campaigns: failed to build meta payload")
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("platform", domain.PlatformMeta)
	logger.WithFields(log.Fields{
		"campaign_name": payload.Campaign.Name,
		"daily_budget":  budget.StringFixed(2),
		"objective":     payload.Campaign.Objective,
		"countries":     payload.AdSet.Targeting.GeoLocations.Countries,
	}).Info("campaigns: [MOCK] meta ads campaign creation request")
	if log.DebugEnabled() {
		logger.Debugf("campaigns: meta payload %s", utils.PrettyJson(payload))
	}

	return &domain.PlatformCampaign{
		Platform:           domain.PlatformMeta,
		CampaignType:       domain.CampaignTypeShopping,
		Name:               payload.Campaign.Name,
		DailyBudget:        budget,
		ExternalCampaignID: domain.NewExternalCampaignID(domain.PlatformMeta, s.now()),
		Status:             domain.CampaignStatusCreated,
		Payload:            payload,
	}, nil
}

// LiveIntegrator representa a Marketing API; sem implementação, falha em vez de simular
type LiveIntegrator struct {
	cfg config.Meta
}

func NewLive(cfg config.Meta) *LiveIntegrator {
	return &LiveIntegrator{cfg: cfg}
}

func (s *LiveIntegrator) Platform() domain.Platform { return domain.PlatformMeta }

func (s *LiveIntegrator) CampaignType() domain.CampaignType { return domain.CampaignTypeShopping }

func (s *LiveIntegrator) CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error) {
	if _, err := BuildPayload(plan, plan.AllocateBudget(BudgetShare)); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"platform":      domain.PlatformMeta,
		"ad_account_id": s.cfg.AdAccountID,
	}).Warn("campaigns: meta ads api integration not implemented")

	return nil, domain.NewPlatformServiceError(
		domain.PlatformMeta,
		"Meta Ads API integration not implemented",
		domain.ErrLiveIntegrationNotImplemented,
	)
}

// BuildPayload converte o plano nas três entidades de criação do Meta
func BuildPayload(plan *domain.GeneratedPlan, budget decimal.Decimal) (*metadomain.CampaignPayload, error) {
	creative := plan.CreativePack
	if len(creative.Headlines) == 0 {
		return nil, domain.NewPlatformServiceError(domain.PlatformMeta, "plan has no headlines", domain.ErrMissingCreative)
	}

	var message string
	switch {
	case len(creative.PrimaryTexts) > 0:
		message = creative.PrimaryTexts[0]
	case len(creative.Descriptions) > 0:
		message = creative.Descriptions[0]
	default:
		return nil, domain.NewPlatformServiceError(domain.PlatformMeta, "plan has no primary texts or descriptions", domain.ErrMissingCreative)
	}

	var imageURL *string
	if len(creative.ImageURLs) > 0 {
		imageURL = &creative.ImageURLs[0]
	}

	category := plan.PrimaryCategory(defaultCategory)
	countries := plan.Geo
	if countries == nil {
		countries = []string{}
	}

	return &metadomain.CampaignPayload{
		Campaign: metadomain.Campaign{
			Name:                "Advantage+ Shopping - " + category,
			Objective:           "CATALOG_SALES",
			Status:              "PAUSED",
			SpecialAdCategories: []string{},
		},
		AdSet: metadomain.AdSet{
			Name:             "Ad Set - " + category,
			BillingEvent:     "IMPRESSIONS",
			OptimizationGoal: "OFFSITE_CONVERSIONS",
			BidStrategy:      "LOWEST_COST_WITHOUT_CAP",
			DailyBudget:      budget.Mul(decimal.NewFromInt(100)).IntPart(),
			Targeting: metadomain.Targeting{
				GeoLocations:       metadomain.GeoLocations{Countries: countries},
				AgeMin:             18,
				AgeMax:             65,
				Genders:            []int{1, 2},
				PublisherPlatforms: []string{"facebook", "instagram"},
				DevicePlatforms:    []string{"mobile", "desktop"},
			},
			PromotedObject: metadomain.PromotedObject{ProductSetID: "default"},
		},
		Ad: metadomain.Ad{
			Name: "Ad - " + category,
			Creative: metadomain.Creative{
				ObjectStorySpec: metadomain.ObjectStorySpec{
					PageID: pagePlaceholder,
					LinkData: metadomain.LinkData{
						ImageURL:     imageURL,
						Message:      message,
						Headline:     creative.Headlines[0],
						CallToAction: metadomain.CallToAction{Type: "SHOP_NOW"},
					},
				},
			},
			Status: "PAUSED",
		},
	}, nil
}
