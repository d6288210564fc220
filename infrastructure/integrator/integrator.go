package integrator

import (
	"context"
	"time"

	"github.com/vfg2006/media-planner-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/media-planner-api/infrastructure/integrator/google"
	"github.com/vfg2006/media-planner-api/infrastructure/integrator/meta"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

// CampaignCreator cria a campanha de um plano em uma plataforma de anúncios
//
//go:generate mockgen -source=integrator.go -destination=mocks/integrator_mock.go -package=mocks
type CampaignCreator interface {
	Platform() domain.Platform
	CampaignType() domain.CampaignType
	CreateCampaign(ctx context.Context, plan *domain.GeneratedPlan) (*domain.PlatformCampaign, error)
}

// NewCampaignCreators devolve os criadores na ordem fixa google, meta, amazon.
// Cada plataforma usa a variante simulada quando o modo mock está ativo ou faltam credenciais.
func NewCampaignCreators(cfg *config.Config, now func() time.Time) []CampaignCreator {
	if now == nil {
		now = time.Now
	}

	mockMode := cfg.Platforms.MockMode
	creators := make([]CampaignCreator, 0, len(domain.Platforms))

	if mockMode || !cfg.Google.HasCredentials() {
		creators = append(creators, google.NewMock(now))
	} else {
		creators = append(creators, google.NewLive(cfg.Google, now))
	}

	if mockMode || !cfg.Meta.HasCredentials() {
		creators = append(creators, meta.NewMock(now))
	} else {
		creators = append(creators, meta.NewLive(cfg.Meta))
	}

	if mockMode || !cfg.Amazon.HasCredentials() {
		creators = append(creators, amazon.NewMock(now))
	} else {
		creators = append(creators, amazon.NewLive(cfg.Amazon, now))
	}

	for _, creator := range creators {
		log.L.WithFields(log.Fields{
			"platform": creator.Platform(),
			"mode":     modeOf(creator),
		}).Info("Integração de plataforma configurada")
	}

	return creators
}

// IsMock informa se o criador é a variante simulada
func IsMock(creator CampaignCreator) bool {
	switch creator.(type) {
	case *google.MockIntegrator, *meta.MockIntegrator, *amazon.MockIntegrator:
		return true
	default:
		return false
	}
}

func modeOf(creator CampaignCreator) string {
	if IsMock(creator) {
		return "mock"
	}
	return "live"
}
