package amazon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 14, 5, 9, 0, time.UTC)
}

func samplePlan() *domain.GeneratedPlan {
	return &domain.GeneratedPlan{
		Objective:         "sales",
		DailyBudget:       150,
		Geo:               []string{"US"},
		Lang:              []string{"en"},
		ProductCategories: []string{"Running Shoes"},
		CreativePack: domain.CreativePack{
			Headlines:    []string{"Best Running Shoes Deals"},
			Descriptions: []string{"Free shipping"},
			ImageURLs:    []string{"https://img/hero", "https://img/lifestyle"},
		},
		TargetingHints: domain.TargetingHints{
			Keywords: []string{"Running Shoes reviews", "buy running shoes"},
		},
	}
}

func TestMockIntegrator_CreateCampaign(t *testing.T) {
	result, err := NewMock(fixedNow).CreateCampaign(context.Background(), samplePlan())
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformAmazon, result.Platform)
	assert.Equal(t, domain.CampaignTypeSponsoredBrands, result.CampaignType)
	assert.Equal(t, "SB - Running Shoes", result.Name)
	assert.Equal(t, "30.00", result.DailyBudget.StringFixed(2))
	assert.Equal(t, "amazon_20250601140509", result.ExternalCampaignID)
}

func TestBuildPayload(t *testing.T) {
	plan := samplePlan()

	payload, err := BuildPayload(plan, plan.AllocateBudget(BudgetShare), fixedNow())
	require.NoError(t, err)

	assert.Equal(t, 30.0, payload.Campaign.DailyBudget.Amount)
	assert.Equal(t, 3.0, payload.AdGroup.DefaultBid.Amount)
	assert.Equal(t, "dynamicDownOnly", payload.Campaign.Bidding.Strategy)
	assert.Equal(t, "draft", payload.Campaign.State)
	assert.Equal(t, "2025-06-01", payload.Campaign.StartDate)
	assert.Len(t, payload.AdGroup.Keywords, 2)
	assert.Equal(t, "broad", payload.AdGroup.Keywords[0].MatchType)
	assert.Equal(t, "Running Shoes", payload.Creative.BrandName)
	require.NotNil(t, payload.Creative.Logo.ImageURL)
	assert.Equal(t, "https://img/hero", *payload.Creative.Logo.ImageURL)

	logo := "https://img/logo"
	plan.CreativePack.LogoURL = &logo
	plan.ProductCategories = nil
	payload, err = BuildPayload(plan, plan.AllocateBudget(BudgetShare), fixedNow())
	require.NoError(t, err)
	assert.Equal(t, "https://img/logo", *payload.Creative.Logo.ImageURL)
	assert.Equal(t, "Brand", payload.Creative.BrandName)
	assert.Equal(t, "SB - Products", payload.Campaign.Name)
}

func TestBuildPayload_MissingHeadlines(t *testing.T) {
	plan := samplePlan()
	plan.CreativePack.Headlines = nil

	_, err := BuildPayload(plan, plan.AllocateBudget(BudgetShare), fixedNow())
	require.Error(t, err)

	var serviceErr *domain.PlatformServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, domain.PlatformAmazon, serviceErr.Platform)
}

func TestLiveIntegrator_FailsClosed(t *testing.T) {
	_, err := NewLive(config.Amazon{ClientID: "id"}, fixedNow).CreateCampaign(context.Background(), samplePlan())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLiveIntegrationNotImplemented))
}

func TestMockIntegrator_CreateCampaignWithDebugPayload(t *testing.T) {
	log.SetupTestLogger()
	defer logrus.SetLevel(logrus.InfoLevel)

	var err error
	assert.NotPanics(t, func() {
		_, err = NewMock(fixedNow).CreateCampaign(context.Background(), samplePlan())
	})
	assert.NoError(t, err)
}
