package meta

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
		Geo:               []string{"BR"},
		Lang:              []string{"pt"},
		ProductCategories: []string{"Running Shoes"},
		CreativePack: domain.CreativePack{
			Headlines:    []string{"Best Running Shoes Deals"},
			Descriptions: []string{"Free shipping on all orders over $50. Shop now!"},
			ImageURLs:    []string{"https://img/hero"},
			PrimaryTexts: []string{"Explore our curated collection of running shoes."},
		},
		BiddingStrategy: domain.BiddingMaximizeConversionValue,
	}
}

func TestMockIntegrator_CreateCampaign(t *testing.T) {
	integrator := NewMock(fixedNow)

	result, err := integrator.CreateCampaign(context.Background(), samplePlan())
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformMeta, result.Platform)
	assert.Equal(t, domain.CampaignTypeShopping, result.CampaignType)
	assert.Equal(t, "Advantage+ Shopping - Running Shoes", result.Name)
	assert.Equal(t, "60.00", result.DailyBudget.StringFixed(2))
	assert.Equal(t, "meta_20250601140509", result.ExternalCampaignID)
}

func TestBuildPayload(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(plan *domain.GeneratedPlan)
		wantMessage string
		wantErr     bool
	}{
		{
			name:        "usa o primeiro texto principal",
			mutate:      func(plan *domain.GeneratedPlan) {},
			wantMessage: "Explore our curated collection of running shoes.",
		},
		{
			name: "sem textos principais usa a primeira descrição",
			mutate: func(plan *domain.GeneratedPlan) {
				plan.CreativePack.PrimaryTexts = nil
			},
			wantMessage: "Free shipping on all orders over $50. Shop now!",
		},
		{
			name: "sem headlines retorna erro da plataforma",
			mutate: func(plan *domain.GeneratedPlan) {
				plan.CreativePack.Headlines = nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := samplePlan()
			tt.mutate(plan)

			payload, err := BuildPayload(plan, plan.AllocateBudget(BudgetShare))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrMissingCreative))
				assert.Nil(t, payload)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, payload.Ad.Creative.ObjectStorySpec.LinkData.Message)
			assert.Equal(t, "Best Running Shoes Deals", payload.Ad.Creative.ObjectStorySpec.LinkData.Headline)
			assert.Equal(t, "SHOP_NOW", payload.Ad.Creative.ObjectStorySpec.LinkData.CallToAction.Type)
			assert.Equal(t, int64(6000), payload.AdSet.DailyBudget)
			assert.Equal(t, []string{"BR"}, payload.AdSet.Targeting.GeoLocations.Countries)
			assert.Equal(t, 18, payload.AdSet.Targeting.AgeMin)
			assert.Equal(t, 65, payload.AdSet.Targeting.AgeMax)
			assert.Equal(t, "CATALOG_SALES", payload.Campaign.Objective)
		})
	}
}

func TestMockIntegrator_MissingHeadlines(t *testing.T) {
	plan := samplePlan()
	plan.CreativePack.Headlines = []string{}

	_, err := NewMock(fixedNow).CreateCampaign(context.Background(), plan)
	require.Error(t, err)
	assert.Equal(t, "meta service error: plan has no headlines", err.Error())
}

func TestLiveIntegrator_FailsClosed(t *testing.T) {
	integrator := NewLive(config.Meta{AccessToken: "token"})

	_, err := integrator.CreateCampaign(context.Background(), samplePlan())
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
