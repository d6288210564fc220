package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/media-planner-api/pkg/utils"
)

// PlatformCampaign é o resultado da criação de uma campanha em uma plataforma
type PlatformCampaign struct {
	Platform           Platform
	CampaignType       CampaignType
	Name               string
	DailyBudget        decimal.Decimal
	ExternalCampaignID string
	Status             CampaignStatus
	Payload            any
}

// NewExternalCampaignID monta o id simulado <plataforma>_<yyyyMMddHHmmss UTC>
func NewExternalCampaignID(platform Platform, at time.Time) string {
	return fmt.Sprintf("%s_%s", platform, utils.TimestampID(at))
}
