package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/media-planner-api/internal/domain"
)

func TestMetricGenerator_Generate(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 30, 0, 0, time.UTC)
	generator := NewMetricGenerator(42, func() time.Time { return now })

	metrics := generator.Generate(10, 7)
	require.Len(t, metrics, 7)

	for i, m := range metrics {
		expectedDate := time.Date(2025, 5, 20-i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expectedDate, m.Date, "linha %d", i)
		assert.Equal(t, int64(10), m.CampaignID)
		assert.Equal(t, domain.DefaultCurrency, m.Currency)

		assert.GreaterOrEqual(t, m.Impressions, int64(500))
		assert.LessOrEqual(t, m.Impressions, int64(5000))
		assert.LessOrEqual(t, m.Clicks, m.Impressions)
		assert.GreaterOrEqual(t, m.Clicks, m.Impressions/100)
		assert.LessOrEqual(t, m.Clicks, m.Impressions*6/100)
		assert.False(t, m.Spend.IsNegative())
		assert.Equal(t, m.Spend, m.Spend.Round(2))

		if m.Conversions == nil {
			assert.False(t, m.ConversionValue.Valid)
			continue
		}
		assert.Greater(t, *m.Conversions, int64(0))
		assert.LessOrEqual(t, float64(*m.Conversions), float64(m.Clicks)*0.1)
		require.True(t, m.ConversionValue.Valid)
		assert.True(t, m.ConversionValue.Decimal.IsPositive())
	}
}

func TestMetricGenerator_GenerateWithoutDays(t *testing.T) {
	generator := NewMetricGenerator(1, nil)

	assert.Empty(t, generator.Generate(1, 0))
	assert.Empty(t, generator.Generate(1, -3))
}

func TestMetricGenerator_ForDateTruncatesToDay(t *testing.T) {
	generator := NewMetricGenerator(7, nil)

	metric := generator.ForDate(3, time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), metric.Date)
}
