package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type BiddingStrategy string

const (
	BiddingMaximizeConversionValue BiddingStrategy = "maximize_conversion_value"
	BiddingMaximizeConversions     BiddingStrategy = "maximize_conversions"
)

// ErrInvalidPlan indica dados de entrada ou plano inválidos
var ErrInvalidPlan = errors.New("invalid plan")

// PlanInput é o briefing enviado pelo anunciante
type PlanInput struct {
	Objective         string  `json:"objective"`
	DailyBudget       float64 `json:"dailyBudget"`
	ProductCategories string  `json:"productCategories"`
	Country           *string `json:"country,omitempty"`
	Language          *string `json:"language,omitempty"`
}

func (p *PlanInput) Validate() error {
	if strings.TrimSpace(p.Objective) == "" {
		return newValidationError("objective is required")
	}
	if p.DailyBudget <= 0 {
		return newValidationError("dailyBudget must be greater than 0")
	}
	return nil
}

type CreativePack struct {
	Headlines     []string `json:"headlines"`
	Descriptions  []string `json:"descriptions"`
	ImageURLs     []string `json:"image_urls"`
	LongHeadlines []string `json:"long_headlines"`
	PrimaryTexts  []string `json:"primary_texts"`
	Callouts      []string `json:"callouts"`
	LogoURL       *string  `json:"logo_url"`
}

type TargetingHints struct {
	Keywords   []string `json:"keywords"`
	Audiences  []string `json:"audiences"`
	Placements []string `json:"placements"`
}

// GeneratedPlan é o plano de mídia agnóstico de plataforma, nunca persistido
type GeneratedPlan struct {
	Objective         string          `json:"objective"`
	DailyBudget       float64         `json:"daily_budget"`
	Geo               []string        `json:"geo"`
	Lang              []string        `json:"lang"`
	ProductCategories []string        `json:"product_categories"`
	CreativePack      CreativePack    `json:"creative_pack"`
	TargetingHints    TargetingHints  `json:"targeting_hints"`
	BiddingStrategy   BiddingStrategy `json:"bidding_strategy"`
}

// Validate checa o mínimo necessário para executar o plano nas plataformas
func (p *GeneratedPlan) Validate() error {
	if p.DailyBudget <= 0 {
		return newValidationError("daily_budget must be greater than 0")
	}
	if len(p.CreativePack.Headlines) == 0 {
		return newValidationError("creative_pack.headlines must have at least one item")
	}
	if len(p.CreativePack.Descriptions) == 0 {
		return newValidationError("creative_pack.descriptions must have at least one item")
	}
	return nil
}

// PrimaryCategory retorna a primeira categoria ou o valor padrão
func (p *GeneratedPlan) PrimaryCategory(fallback string) string {
	if len(p.ProductCategories) == 0 || p.ProductCategories[0] == "" {
		return fallback
	}
	return p.ProductCategories[0]
}

// AllocateBudget aplica a fração da plataforma ao orçamento diário, com duas casas decimais
func (p *GeneratedPlan) AllocateBudget(fraction float64) decimal.Decimal {
	return decimal.NewFromFloat(p.DailyBudget).Mul(decimal.NewFromFloat(fraction)).Round(2)
}

// ValidationError descreve um campo inválido no plano ou na entrada
type ValidationError struct {
	Message string
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPlan
}
