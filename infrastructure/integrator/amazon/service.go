package amazon

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	amazondomain "github.com/vfg2006/media-planner-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/log"
	"github.com/vfg2006/media-planner-api/pkg/utils"
)

const (
	BudgetShare = 0.2

	maxKeywords     = 10
	defaultCategory = "Products"
	defaultBrand    = "Brand"
	landingPageURL  = "https://example.com/products"
	currency        = "USD"
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

func (s *MockIntegrator) Platform() domain.Platform { return domain.PlatformAmazon }

func (s *MockIntegrator) CampaignType() domain.CampaignType {
	return domain.CampaignTypeSponsoredBrands
}

func (s *MockIntegrator) CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error) {
	now := s.now()
	budget := plan.AllocateBudget(BudgetShare)

	payload, err := BuildPayload(plan, budget, now)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("platform", domain.PlatformAmazon).
			Error("campaigns: failed to build amazon payload")
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("platform", domain.PlatformAmazon)
	logger.WithFields(log.Fields{
		"campaign_name": payload.Campaign.Name,
		"daily_budget":  budget.StringFixed(2),
		"campaign_type": payload.Campaign.CampaignType,
		"keywords":      len(payload.AdGroup.Keywords),
	}).Info("campaigns: [MOCK] amazon ads campaign creation request")
	if log.DebugEnabled() {
		logger.Debugf("campaigns: amazon payload %s", utils.PrettyJson(payload))
	}

	return &domain.PlatformCampaign{
		Platform:           domain.PlatformAmazon,
		CampaignType:       domain.CampaignTypeSponsoredBrands,
		Name:               payload.Campaign.Name,
		DailyBudget:        budget,
		ExternalCampaignID: domain.NewExternalCampaignID(domain.PlatformAmazon, now),
		Status:             domain.CampaignStatusCreated,
		Payload:            payload,
	}, nil
}

type LiveIntegrator struct {
	cfg config.Amazon
	now func() time.Time
}

func NewLive(cfg config.Amazon, now func() time.Time) *LiveIntegrator {
	if now == nil {
		now = time.Now
	}
	return &LiveIntegrator{cfg: cfg, now: now}
}

func (s *LiveIntegrator) Platform() domain.Platform { return domain.PlatformAmazon }

func (s *LiveIntegrator) CampaignType() domain.CampaignType {
	return domain.CampaignTypeSponsoredBrands
}

func (s *LiveIntegrator) CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error) {
	if _, err := BuildPayload(plan, plan.AllocateBudget(BudgetShare), s.now()); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"platform":  domain.PlatformAmazon,
		"client_id": s.cfg.ClientID,
	}).Warn("campaigns: amazon ads api integration not implemented")

	return nil, domain.NewPlatformServiceError(
		domain.PlatformAmazon,
		"Amazon Ads API integration not implemented",
		domain.ErrLiveIntegrationNotImplemented,
	)
}

// BuildPayload converte o plano em campanha, grupo de anúncios e criativo Sponsored Brands
func BuildPayload(plan *domain.GeneratedPlan, budget decimal.Decimal, now time.Time) (*amazondomain.CampaignPayload, error) {
	creative := plan.CreativePack
	if len(creative.Headlines) == 0 {
		return nil, domain.NewPlatformServiceError(domain.PlatformAmazon, "plan has no headlines", domain.ErrMissingCreative)
	}

	keywords := make([]amazondomain.Keyword, 0, maxKeywords)
	for _, keyword := range utils.Head(plan.TargetingHints.Keywords, maxKeywords) {
		keywords = append(keywords, amazondomain.Keyword{KeywordText: keyword, MatchType: "broad"})
	}

	var logoURL *string
	switch {
	case creative.LogoURL != nil && *creative.LogoURL != "":
		logoURL = creative.LogoURL
	case len(creative.ImageURLs) > 0:
		logoURL = &creative.ImageURLs[0]
	}

	category := plan.PrimaryCategory(defaultCategory)

	return &amazondomain.CampaignPayload{
		Campaign: amazondomain.Campaign{
			Name:          "SB - " + category,
			CampaignType:  "SPONSORED_BRANDS",
			TargetingType: "MANUAL",
			State:         "draft",
			DailyBudget: amazondomain.Money{
				Amount:       budget.InexactFloat64(),
				CurrencyCode: currency,
			},
			StartDate: now.UTC().Format(time.DateOnly),
			Bidding:   amazondomain.Bidding{Strategy: "dynamicDownOnly"},
		},
		AdGroup: amazondomain.AdGroup{
			Name: "Ad Group - " + category,
			DefaultBid: amazondomain.Money{
				Amount:       budget.Div(decimal.NewFromInt(10)).InexactFloat64(),
				CurrencyCode: currency,
			},
			Keywords: keywords,
		},
		Creative: amazondomain.Creative{
			BrandName:   plan.PrimaryCategory(defaultBrand),
			Headline:    creative.Headlines[0],
			Logo:        amazondomain.Logo{ImageURL: logoURL},
			LandingPage: amazondomain.LandingPage{URL: landingPageURL},
		},
	}, nil
}
