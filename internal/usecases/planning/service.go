package planning

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

const (
	defaultCategory = "Products"
	defaultCountry  = "US"
	defaultLanguage = "en"

	maxHeadlines           = 3
	maxDescriptions        = 2
	maxKeywords            = 10
	maxCategoryAudiences   = 2
	salesObjective         = "sales"
	logoPlaceholder        = "https://placehold.co/200x200/000000/white?text=Logo"
	heroImageTemplate      = "https://placehold.co/600x400/2563eb/white?text=%s+Hero"
	lifestyleImageTemplate = "https://placehold.co/600x400/16a34a/white?text=%s+Lifestyle"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Planner interface {
	Generate(ctx context.Context, input *domain.PlanInput) (*domain.GeneratedPlan, error)
}

type Service struct{}

func NewService() Planner {
	return &Service{}
}

// Generate monta o plano de mídia de forma determinística a partir do briefing
func (s *Service) Generate(ctx context.Context, input *domain.PlanInput) (*domain.GeneratedPlan, error) {
	if input == nil {
		return nil, NewPlanGenerationError(ErrNilInput)
	}

	if err := input.Validate(); err != nil {
		return nil, NewPlanGenerationError(err)
	}

	categories := ParseCategories(input.ProductCategories)
	if len(categories) == 0 {
		categories = []string{defaultCategory}
	}

	plan := &domain.GeneratedPlan{
		Objective:         input.Objective,
		DailyBudget:       input.DailyBudget,
		Geo:               []string{valueOr(input.Country, defaultCountry)},
		Lang:              []string{valueOr(input.Language, defaultLanguage)},
		ProductCategories: categories,
		CreativePack:      generateCreatives(categories),
		TargetingHints:    generateTargetingHints(categories, input.Objective),
		BiddingStrategy:   biddingStrategyFor(input.Objective),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_objective":  plan.Objective,
		"campaign_categories": len(categories),
	}).Debug("plans: media plan generated")

	return plan, nil
}

// ParseCategories separa por vírgula, remove espaços e itens vazios, mantendo ordem e duplicatas
func ParseCategories(raw string) []string {
	categories := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if category := strings.TrimSpace(part); category != "" {
			categories = append(categories, category)
		}
	}
	return categories
}

func isSales(objective string) bool {
	return strings.EqualFold(objective, salesObjective)
}

func biddingStrategyFor(objective string) domain.BiddingStrategy {
	if isSales(objective) {
		return domain.BiddingMaximizeConversionValue
	}
	return domain.BiddingMaximizeConversions
}

func generateCreatives(categories []string) domain.CreativePack {
	first := categories[0]
	lower := strings.ToLower(first)
	encoded := url.QueryEscape(first)
	logo := logoPlaceholder

	headlines := []string{
		fmt.Sprintf("Best %s Deals", first),
		fmt.Sprintf("Shop Top %s Brands", first),
		fmt.Sprintf("Limited Time %s Offers", first),
		fmt.Sprintf("Premium %s Collection", first),
	}

	descriptions := []string{
		"Free shipping on all orders over $50. Shop now!",
		fmt.Sprintf("Discover the best selection of high-quality %s.", lower),
		fmt.Sprintf("Get the latest %s at unbeatable prices.", lower),
	}

	return domain.CreativePack{
		Headlines:    headlines[:maxHeadlines],
		Descriptions: descriptions[:maxDescriptions],
		ImageURLs: []string{
			fmt.Sprintf(heroImageTemplate, encoded),
			fmt.Sprintf(lifestyleImageTemplate, encoded),
		},
		LongHeadlines: []string{},
		PrimaryTexts: []string{
			fmt.Sprintf("Explore our curated collection of %s.", lower),
			fmt.Sprintf("Find everything you need for %s.", lower),
		},
		Callouts: []string{"Free returns", "Fast shipping", "Secure checkout", "24/7 support"},
		LogoURL:  &logo,
	}
}

func generateTargetingHints(categories []string, objective string) domain.TargetingHints {
	keywords := make([]string, 0, len(categories)*4)
	for _, category := range categories {
		lower := strings.ToLower(category)
		keywords = append(keywords,
			category+" reviews",
			"buy "+lower,
			"best "+lower,
			lower+" deals",
		)
	}
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	var audiences []string
	if isSales(objective) {
		audiences = []string{"Shoppers", "Online buyers", "Deal seekers"}
	} else {
		audiences = []string{"Interested prospects", "Engaged users", "Potential customers"}
	}

	for i, category := range categories {
		if i >= maxCategoryAudiences {
			break
		}
		audiences = append(audiences, category+" enthusiasts")
	}

	return domain.TargetingHints{
		Keywords:   keywords,
		Audiences:  audiences,
		Placements: []string{"shopping surfaces", "search results", "display networks"},
	}
}

func valueOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
