package google

import (
	"context"
	"errors"
	"fmt"
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
	logo := "https://placehold.co/200x200/000000/white?text=Logo"

	keywords := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		keywords = append(keywords, fmt.Sprintf("keyword %d", i))
	}

	return &domain.GeneratedPlan{
		Objective:         "sales",
		DailyBudget:       150,
		Geo:               []string{"US"},
		Lang:              []string{"en"},
		ProductCategories: []string{"Running Shoes", "Trail Gear"},
		CreativePack: domain.CreativePack{
			Headlines:    []string{"Best Running Shoes Deals", "Shop Top Running Shoes Brands"},
			Descriptions: []string{"Free shipping", "Discover", "Get", "More", "Extra"},
			ImageURLs:    []string{"https://img/1", "https://img/2"},
			LogoURL:      &logo,
		},
		TargetingHints: domain.TargetingHints{
			Keywords:  keywords,
			Audiences: []string{"Shoppers", "Online buyers"},
		},
		BiddingStrategy: domain.BiddingMaximizeConversionValue,
	}
}

func TestMockIntegrator_CreateCampaign(t *testing.T) {
	integrator := NewMock(fixedNow)

	result, err := integrator.CreateCampaign(context.Background(), samplePlan())
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformGoogle, result.Platform)
	assert.Equal(t, domain.CampaignTypePMax, result.CampaignType)
	assert.Equal(t, "PMax - Running Shoes - 2025-06-01", result.Name)
	assert.Equal(t, "60.00", result.DailyBudget.StringFixed(2))
	assert.Equal(t, "google_20250601140509", result.ExternalCampaignID)
	assert.Equal(t, domain.CampaignStatusCreated, result.Status)
	assert.NotNil(t, result.Payload)
}

func TestBuildPayload(t *testing.T) {
	plan := samplePlan()
	payload := BuildPayload(plan, plan.AllocateBudget(BudgetShare), fixedNow())

	assert.Equal(t, int64(60_000_000), payload.Campaign.CampaignBudget.AmountMicros)
	assert.Equal(t, "MAXIMIZE_CONVERSION_VALUE", payload.Campaign.BiddingStrategy.Type)
	assert.Equal(t, "PERFORMANCE_MAX", payload.Campaign.AdvertisingChannelType)
	assert.Equal(t, "PAUSED", payload.Campaign.Status)
	assert.Equal(t, "Asset Group - Running Shoes", payload.AssetGroup.Name)
	assert.Len(t, payload.AssetGroup.Descriptions, maxDescriptions)
	assert.Len(t, payload.AssetGroup.Images, 2)
	assert.Equal(t, "IMAGE", payload.AssetGroup.Images[0].Type)
	require.NotNil(t, payload.AssetGroup.Logo)
	assert.Len(t, payload.Keywords, maxKeywords)
	assert.Equal(t, []string{"US"}, payload.Targeting.GeoTargets)

	plan.BiddingStrategy = domain.BiddingMaximizeConversions
	plan.ProductCategories = nil
	plan.CreativePack.LogoURL = nil
	payload = BuildPayload(plan, plan.AllocateBudget(BudgetShare), fixedNow())
	assert.Equal(t, "MAXIMIZE_CONVERSIONS", payload.Campaign.BiddingStrategy.Type)
	assert.Equal(t, "PMax - Products - 2025-06-01", payload.Campaign.Name)
	assert.Nil(t, payload.AssetGroup.Logo)
}

func TestLiveIntegrator_FailsClosed(t *testing.T) {
	integrator := NewLive(config.Google{APIKey: "key", CustomerID: "123"}, fixedNow)

	result, err := integrator.CreateCampaign(context.Background(), samplePlan())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrLiveIntegrationNotImplemented))

	var serviceErr *domain.PlatformServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, domain.PlatformGoogle, serviceErr.Platform)
	assert.Contains(t, err.Error(), "google service error")
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
