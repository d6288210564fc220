package integrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
)

func TestNewCampaignCreators(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		cfg      *config.Config
		wantMock []bool
	}{
		{
			name: "modo mock ignora credenciais",
			cfg: &config.Config{
				Platforms: config.Platforms{MockMode: true},
				Google:    config.Google{APIKey: "key"},
				Meta:      config.Meta{AccessToken: "token"},
				Amazon:    config.Amazon{ClientID: "id"},
			},
			wantMock: []bool{true, true, true},
		},
		{
			name:     "sem credenciais usa mock",
			cfg:      &config.Config{},
			wantMock: []bool{true, true, true},
		},
		{
			name: "credenciais parciais escolhem por plataforma",
			cfg: &config.Config{
				Meta: config.Meta{AccessToken: "token"},
			},
			wantMock: []bool{true, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creators := NewCampaignCreators(tt.cfg, now)
			require.Len(t, creators, 3)

			assert.Equal(t, domain.PlatformGoogle, creators[0].Platform())
			assert.Equal(t, domain.PlatformMeta, creators[1].Platform())
			assert.Equal(t, domain.PlatformAmazon, creators[2].Platform())
			assert.Equal(t, domain.CampaignTypePMax, creators[0].CampaignType())
			assert.Equal(t, domain.CampaignTypeShopping, creators[1].CampaignType())
			assert.Equal(t, domain.CampaignTypeSponsoredBrands, creators[2].CampaignType())

			for i, creator := range creators {
				assert.Equal(t, tt.wantMock[i], IsMock(creator), "plataforma %s", creator.Platform())
			}
		})
	}
}
