package repository

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/media-planner-api/internal/domain"
	"github.com/vfg2006/media-planner-api/pkg/utils"
)

// MetricGenerator produz métricas diárias simuladas para campanhas recém criadas
type MetricGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewMetricGenerator(seed int64, now func() time.Time) *MetricGenerator {
	if now == nil {
		now = time.Now
	}

	return &MetricGenerator{
		rnd: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate cria uma linha para hoje (UTC) e para cada um dos days-1 dias anteriores
func (g *MetricGenerator) Generate(campaignID int64, days int) []*domain.Metric {
	if days <= 0 {
		return []*domain.Metric{}
	}

	today := utils.TruncateToDay(g.now())
	metrics := make([]*domain.Metric, 0, days)
	for i := 0; i < days; i++ {
		metrics = append(metrics, g.ForDate(campaignID, today.AddDate(0, 0, -i)))
	}

	return metrics
}

// ForDate gera uma linha de métricas simulada para a data informada
func (g *MetricGenerator) ForDate(campaignID int64, date time.Time) *domain.Metric {
	g.mu.Lock()
	defer g.mu.Unlock()

	impressions := int64(500 + g.rnd.Intn(4501))
	ctr := g.uniform(0.01, 0.06)
	clicks := int64(math.Floor(float64(impressions) * ctr))
	spend := utils.Money(g.uniform(0.5, 2.0) * float64(clicks))
	conversions := int64(math.Floor(float64(clicks) * g.uniform(0, 0.1)))

	metric := &domain.Metric{
		CampaignID:  campaignID,
		Date:        utils.TruncateToDay(date),
		Spend:       spend,
		Impressions: impressions,
		Clicks:      clicks,
		Currency:    domain.DefaultCurrency,
	}

	if conversions > 0 {
		metric.Conversions = &conversions
		value := utils.Money(float64(conversions) * g.uniform(20, 70))
		if value.GreaterThan(decimal.Zero) {
			metric.ConversionValue = decimal.NewNullDecimal(value)
		}
	}

	return metric
}

func (g *MetricGenerator) uniform(low, high float64) float64 {
	return low + g.rnd.Float64()*(high-low)
}
