package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Platform identifica uma das plataformas de anúncio simuladas
type Platform string

const (
	PlatformGoogle Platform = "google" // busca/shopping
	PlatformMeta   Platform = "meta"   // social
	PlatformAmazon Platform = "amazon" // marketplace
)

// Platforms lista as plataformas na ordem fixa de execução
var Platforms = []Platform{PlatformGoogle, PlatformMeta, PlatformAmazon}

type CampaignType string

const (
	CampaignTypePMax            CampaignType = "pmax"
	CampaignTypeShopping        CampaignType = "shopping"
	CampaignTypeSponsoredBrands CampaignType = "sponsored_brands"
)

// CampaignStatus só assume "created" hoje; os demais valores existem mas nenhuma transição os define
type CampaignStatus string

const (
	CampaignStatusCreated CampaignStatus = "created"
	CampaignStatusPending CampaignStatus = "pending"
	CampaignStatusActive  CampaignStatus = "active"
	CampaignStatusFailed  CampaignStatus = "failed"
)

var CampaignStatuses = []CampaignStatus{
	CampaignStatusCreated,
	CampaignStatusPending,
	CampaignStatusActive,
	CampaignStatusFailed,
}

var (
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidStatus   = errors.New("invalid status")
)

// ParsePlatform converte o token recebido (sem diferenciar maiúsculas) em Platform
func ParsePlatform(value string) (Platform, error) {
	normalized := Platform(strings.ToLower(strings.TrimSpace(value)))
	for _, p := range Platforms {
		if p == normalized {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s. Must be one of: %s", ErrInvalidPlatform, value, joinTokens(Platforms))
}

// ParseCampaignStatus converte o token recebido (sem diferenciar maiúsculas) em CampaignStatus
func ParseCampaignStatus(value string) (CampaignStatus, error) {
	normalized := CampaignStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range CampaignStatuses {
		if s == normalized {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %s. Must be one of: %s", ErrInvalidStatus, value, joinTokens(CampaignStatuses))
}

func joinTokens[T ~string](values []T) string {
	tokens := make([]string, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, string(v))
	}
	return strings.Join(tokens, ", ")
}

// Campaign representa uma campanha criada em uma plataforma
type Campaign struct {
	ID                 int64
	Name               string
	Platform           Platform
	CampaignType       CampaignType
	Status             CampaignStatus
	Objective          string
	DailyBudget        decimal.Decimal
	ProductCategories  []string
	ExternalCampaignID *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CampaignFilters filtros opcionais por igualdade
type CampaignFilters struct {
	Platform *Platform
	Status   *CampaignStatus
}

// CampaignResponse é o resumo de campanha exposto pela API
type CampaignResponse struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Platform          string   `json:"platform"`
	Type              string   `json:"type"`
	Status            string   `json:"status"`
	Objective         string   `json:"objective"`
	DailyBudget       string   `json:"dailyBudget"`
	ProductCategories []string `json:"productCategories"`
	CreatedAt         *string  `json:"createdAt"`
}

// CampaignWithMetricsResponse agrega as métricas do período ao resumo da campanha
type CampaignWithMetricsResponse struct {
	CampaignResponse
	TotalSpend           float64 `json:"totalSpend"`
	TotalImpressions     int64   `json:"totalImpressions"`
	TotalClicks          int64   `json:"totalClicks"`
	TotalConversions     int64   `json:"totalConversions"`
	TotalConversionValue float64 `json:"totalConversionValue"`
	CTR                  float64 `json:"ctr"`
	ROAS                 float64 `json:"roas"`
}

// CampaignWithTotals é a linha retornada pelo repositório: campanha e somatórios no período
type CampaignWithTotals struct {
	Campaign *Campaign
	Totals   MetricTotals
}

func (c *Campaign) ToResponse() *CampaignResponse {
	categories := c.ProductCategories
	if categories == nil {
		categories = []string{}
	}

	var createdAt *string
	if !c.CreatedAt.IsZero() {
		formatted := c.CreatedAt.UTC().Format(time.RFC3339)
		createdAt = &formatted
	}

	return &CampaignResponse{
		ID:                c.ID,
		Name:              c.Name,
		Platform:          string(c.Platform),
		Type:              string(c.CampaignType),
		Status:            string(c.Status),
		Objective:         c.Objective,
		DailyBudget:       c.DailyBudget.StringFixed(2),
		ProductCategories: categories,
		CreatedAt:         createdAt,
	}
}

func (c *CampaignWithTotals) ToResponse() *CampaignWithMetricsResponse {
	return &CampaignWithMetricsResponse{
		CampaignResponse:     *c.Campaign.ToResponse(),
		TotalSpend:           c.Totals.Spend,
		TotalImpressions:     c.Totals.Impressions,
		TotalClicks:          c.Totals.Clicks,
		TotalConversions:     c.Totals.Conversions,
		TotalConversionValue: c.Totals.ConversionValue,
		CTR:                  c.Totals.CTR(),
		ROAS:                 c.Totals.ROAS(),
	}
}
