package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/media-planner-api/internal/domain"
)

func TestApplyCampaignFilters(t *testing.T) {
	google := domain.PlatformGoogle
	created := domain.CampaignStatusCreated

	tests := []struct {
		name      string
		filters   domain.CampaignFilters
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:     "sem filtros",
			filters:  domain.CampaignFilters{},
			wantArgs: nil,
		},
		{
			name:      "filtro por plataforma",
			filters:   domain.CampaignFilters{Platform: &google},
			wantWhere: "WHERE c.platform = $1",
			wantArgs:  []interface{}{"google"},
		},
		{
			name:      "filtro por plataforma e status",
			filters:   domain.CampaignFilters{Platform: &google, Status: &created},
			wantWhere: "WHERE c.platform = $1 AND c.status = $2",
			wantArgs:  []interface{}{"google", "created"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := squirrel.Select("c.id").From(campaignsTable)

			query, args, err := applyCampaignFilters(builder, tt.filters).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			require.NoError(t, err)

			if tt.wantWhere == "" {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Contains(t, query, tt.wantWhere)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCampaignRow_ToDomain(t *testing.T) {
	row := campaignRow{
		id:           1,
		name:         "SB - Shoes",
		platform:     "amazon",
		campaignType: "sponsored_brands",
		status:       "created",
		objective:    "sales",
	}
	row.externalCampaignID.String = "amazon_20250101120000"
	row.externalCampaignID.Valid = true

	campaign := row.toDomain()
	assert.Equal(t, domain.PlatformAmazon, campaign.Platform)
	assert.Equal(t, domain.CampaignTypeSponsoredBrands, campaign.CampaignType)
	assert.Equal(t, []string{}, campaign.ProductCategories)
	require.NotNil(t, campaign.ExternalCampaignID)
	assert.Equal(t, "amazon_20250101120000", *campaign.ExternalCampaignID)
}
