package planning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_Generate(t *testing.T) {
	service := NewService()
	ctx := context.Background()

	tests := []struct {
		name     string
		input    *domain.PlanInput
		validate func(t *testing.T, plan *domain.GeneratedPlan)
	}{
		{
			name: "objetivo de vendas com duas categorias",
			input: &domain.PlanInput{
				Objective:         "Sales",
				DailyBudget:       150,
				ProductCategories: "running shoes, trail gear",
			},
			validate: func(t *testing.T, plan *domain.GeneratedPlan) {
				assert.Equal(t, []string{"US"}, plan.Geo)
				assert.Equal(t, []string{"en"}, plan.Lang)
				assert.Equal(t, domain.BiddingMaximizeConversionValue, plan.BiddingStrategy)
				assert.Equal(t, []string{"running shoes", "trail gear"}, plan.ProductCategories)
				assert.Equal(t, 150.0, plan.DailyBudget)
				assert.Equal(t, "Sales", plan.Objective)

				assert.Equal(t, []string{
					"Best running shoes Deals",
					"Shop Top running shoes Brands",
					"Limited Time running shoes Offers",
				}, plan.CreativePack.Headlines)
				assert.Equal(t, []string{
					"Free shipping on all orders over $50. Shop now!",
					"Discover the best selection of high-quality running shoes.",
				}, plan.CreativePack.Descriptions)
				assert.Equal(t, "https://placehold.co/600x400/2563eb/white?text=running+shoes+Hero", plan.CreativePack.ImageURLs[0])
				assert.Equal(t, "https://placehold.co/600x400/16a34a/white?text=running+shoes+Lifestyle", plan.CreativePack.ImageURLs[1])
				require.NotNil(t, plan.CreativePack.LogoURL)
				assert.Len(t, plan.CreativePack.Callouts, 4)
				assert.Empty(t, plan.CreativePack.LongHeadlines)

				assert.Equal(t, []string{
					"running shoes reviews", "buy running shoes", "best running shoes", "running shoes deals",
					"trail gear reviews", "buy trail gear", "best trail gear", "trail gear deals",
				}, plan.TargetingHints.Keywords)
				assert.Equal(t, []string{
					"Shoppers", "Online buyers", "Deal seekers",
					"running shoes enthusiasts", "trail gear enthusiasts",
				}, plan.TargetingHints.Audiences)
				assert.Equal(t, []string{"shopping surfaces", "search results", "display networks"}, plan.TargetingHints.Placements)
			},
		},
		{
			name: "objetivo de leads com país e idioma",
			input: &domain.PlanInput{
				Objective:         "Leads",
				DailyBudget:       50,
				ProductCategories: "Sofas",
				Country:           stringPtr("BR"),
				Language:          stringPtr("pt"),
			},
			validate: func(t *testing.T, plan *domain.GeneratedPlan) {
				assert.Equal(t, []string{"BR"}, plan.Geo)
				assert.Equal(t, []string{"pt"}, plan.Lang)
				assert.Equal(t, domain.BiddingMaximizeConversions, plan.BiddingStrategy)
				assert.Equal(t, []string{
					"Interested prospects", "Engaged users", "Potential customers", "Sofas enthusiasts",
				}, plan.TargetingHints.Audiences)
				assert.Equal(t, "Explore our curated collection of sofas.", plan.CreativePack.PrimaryTexts[0])
			},
		},
		{
			name: "categorias vazias usam Products",
			input: &domain.PlanInput{
				Objective:         "sales",
				DailyBudget:       10,
				ProductCategories: " , ,",
			},
			validate: func(t *testing.T, plan *domain.GeneratedPlan) {
				assert.Equal(t, []string{"Products"}, plan.ProductCategories)
				assert.Equal(t, "Best Products Deals", plan.CreativePack.Headlines[0])
			},
		},
		{
			name: "palavras-chave limitadas a dez",
			input: &domain.PlanInput{
				Objective:         "sales",
				DailyBudget:       10,
				ProductCategories: "A, B, C, A",
			},
			validate: func(t *testing.T, plan *domain.GeneratedPlan) {
				assert.Equal(t, []string{"A", "B", "C", "A"}, plan.ProductCategories)
				assert.Len(t, plan.TargetingHints.Keywords, 10)
				assert.Len(t, plan.TargetingHints.Audiences, 5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := service.Generate(ctx, tt.input)
			require.NoError(t, err)
			tt.validate(t, plan)
		})
	}
}

func TestService_GenerateIsDeterministic(t *testing.T) {
	service := NewService()
	input := &domain.PlanInput{Objective: "sales", DailyBudget: 99.9, ProductCategories: "hats"}

	first, err := service.Generate(context.Background(), input)
	require.NoError(t, err)
	second, err := service.Generate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_GenerateMatchesObjectiveWithoutTrimming(t *testing.T) {
	service := NewService()

	tests := []struct {
		objective string
		want      domain.BiddingStrategy
	}{
		{objective: "SALES", want: domain.BiddingMaximizeConversionValue},
		{objective: "sAlEs", want: domain.BiddingMaximizeConversionValue},
		{objective: " sales ", want: domain.BiddingMaximizeConversions},
		{objective: "Leads", want: domain.BiddingMaximizeConversions},
	}

	for _, tt := range tests {
		t.Run(tt.objective, func(t *testing.T) {
			plan, err := service.Generate(context.Background(), &domain.PlanInput{
				Objective:         tt.objective,
				DailyBudget:       10,
				ProductCategories: "hats",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.BiddingStrategy)
		})
	}
}

func TestService_GenerateLocaleFallback(t *testing.T) {
	service := NewService()

	plan, err := service.Generate(context.Background(), &domain.PlanInput{
		Objective:         "sales",
		DailyBudget:       10,
		ProductCategories: "hats",
		Country:           stringPtr(""),
		Language:          stringPtr(" "),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"US"}, plan.Geo)
	assert.Equal(t, []string{" "}, plan.Lang)
}

func TestService_GenerateInvalidInput(t *testing.T) {
	service := NewService()

	tests := []struct {
		name  string
		input *domain.PlanInput
	}{
		{name: "orçamento zero", input: &domain.PlanInput{Objective: "sales", DailyBudget: 0, ProductCategories: "x"}},
		{name: "orçamento negativo", input: &domain.PlanInput{Objective: "sales", DailyBudget: -5, ProductCategories: "x"}},
		{name: "objetivo vazio", input: &domain.PlanInput{Objective: " ", DailyBudget: 10, ProductCategories: "x"}},
		{name: "entrada nula", input: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := service.Generate(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, plan)

			var planErr *PlanGenerationError
			require.True(t, errors.As(err, &planErr))
			assert.Equal(t, apiErrors.ErrInvalidRequest, planErr.Code)
			assert.Contains(t, err.Error(), "Plan generation error:")
		})
	}
}

func TestParseCategories(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseCategories(" a ,b,, "))
	assert.Empty(t, ParseCategories(""))
}
