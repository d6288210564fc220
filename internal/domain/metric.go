package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/media-planner-api/pkg/utils"
)

const DefaultCurrency = "USD"

// Metric representa o desempenho diário de uma campanha
type Metric struct {
	ID              int64
	CampaignID      int64
	Date            time.Time
	Spend           decimal.Decimal
	Impressions     int64
	Clicks          int64
	Conversions     *int64
	ConversionValue decimal.NullDecimal
	Currency        string
	CreatedAt       time.Time
}

type MetricResponse struct {
	ID              int64    `json:"id"`
	CampaignID      int64    `json:"campaign_id"`
	Date            string   `json:"date"`
	Spend           float64  `json:"spend"`
	Impressions     int64    `json:"impressions"`
	Clicks          int64    `json:"clicks"`
	Conversions     *int64   `json:"conversions"`
	ConversionValue *float64 `json:"conversion_value"`
	Currency        string   `json:"currency"`
}

func (m *Metric) ToResponse() *MetricResponse {
	var conversionValue *float64
	if m.ConversionValue.Valid {
		v := m.ConversionValue.Decimal.InexactFloat64()
		conversionValue = &v
	}

	return &MetricResponse{
		ID:              m.ID,
		CampaignID:      m.CampaignID,
		Date:            m.Date.Format(time.DateOnly),
		Spend:           m.Spend.InexactFloat64(),
		Impressions:     m.Impressions,
		Clicks:          m.Clicks,
		Conversions:     m.Conversions,
		ConversionValue: conversionValue,
		Currency:        m.Currency,
	}
}

// MetricTotals soma as métricas de uma campanha em um período
type MetricTotals struct {
	Spend           float64
	Impressions     int64
	Clicks          int64
	Conversions     int64
	ConversionValue float64
}

// CTR em percentual, 0 quando não há impressões
func (t MetricTotals) CTR() float64 {
	return utils.RoundWithTwoDecimalPlace(utils.SafeRatio(float64(t.Clicks), float64(t.Impressions)) * 100)
}

// ROAS é o retorno sobre o investimento, 0 quando não há gasto
func (t MetricTotals) ROAS() float64 {
	return utils.RoundWithTwoDecimalPlace(utils.SafeRatio(t.ConversionValue, t.Spend))
}

// CampaignMetrics é o agregado de métricas de uma campanha no período
type CampaignMetrics struct {
	CampaignID   int64
	CampaignName string
	Totals       MetricTotals
}

type CampaignMetricsResponse struct {
	CampaignID           int64   `json:"campaign_id"`
	CampaignName         string  `json:"campaign_name"`
	TotalSpend           float64 `json:"total_spend"`
	TotalImpressions     int64   `json:"total_impressions"`
	TotalClicks          int64   `json:"total_clicks"`
	TotalConversions     int64   `json:"total_conversions"`
	TotalConversionValue float64 `json:"total_conversion_value"`
	CTR                  float64 `json:"ctr"`
	ROAS                 float64 `json:"roas"`
}

func (c *CampaignMetrics) ToResponse() *CampaignMetricsResponse {
	return &CampaignMetricsResponse{
		CampaignID:           c.CampaignID,
		CampaignName:         c.CampaignName,
		TotalSpend:           utils.RoundWithTwoDecimalPlace(c.Totals.Spend),
		TotalImpressions:     c.Totals.Impressions,
		TotalClicks:          c.Totals.Clicks,
		TotalConversions:     c.Totals.Conversions,
		TotalConversionValue: utils.RoundWithTwoDecimalPlace(c.Totals.ConversionValue),
		CTR:                  c.Totals.CTR(),
		ROAS:                 c.Totals.ROAS(),
	}
}

// DateWindow intervalo de datas inclusivo nas duas pontas
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewTrailingWindow termina no dia corrente (UTC) e começa days dias antes
func NewTrailingWindow(now time.Time, days int) DateWindow {
	end := utils.TruncateToDay(now)
	return DateWindow{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// Contains informa se o dia da data está dentro da janela, com as duas pontas inclusivas
func (w DateWindow) Contains(date time.Time) bool {
	day := utils.TruncateToDay(date)
	return !day.Before(w.Start) && !day.After(w.End)
}
