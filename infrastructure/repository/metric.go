package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/media-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/media-planner-api/internal/domain"
)

const (
	campaignMetricsTable = "campaign_metrics m"

	metricColumns = "m.id, m.campaign_id, m.date, m.spend, m.impressions, m.clicks, " +
		"m.conversions, m.conversion_value, m.currency, m.created_at"
)

//go:generate mockgen -source=metric.go -destination=mocks/metric_mock.go -package=mocks
type MetricRepository interface {
	CreateBulk(ctx context.Context, metrics []*domain.Metric) error
	GenerateMockMetrics(ctx context.Context, campaignID int64, days int) ([]*domain.Metric, error)
	GenerateMockMetricsForDate(ctx context.Context, date time.Time) (int, error)
	ListByCampaign(ctx context.Context, campaignID int64, window domain.DateWindow) ([]*domain.Metric, error)
	Aggregate(ctx context.Context, campaignID int64, window domain.DateWindow) (domain.MetricTotals, error)
}

type metricRepository struct {
	conn      postgres.Conn
	generator *MetricGenerator
}

func NewMetricRepository(conn postgres.Conn, generator *MetricGenerator) MetricRepository {
	return &metricRepository{
		conn:      conn,
		generator: generator,
	}
}

// CreateBulk insere todas as linhas em uma única transação
func (r *metricRepository) CreateBulk(ctx context.Context, metrics []*domain.Metric) error {
	if len(metrics) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("campaign_metrics").
		Columns(
			"campaign_id",
			"date",
			"spend",
			"impressions",
			"clicks",
			"conversions",
			"conversion_value",
			"currency",
		)

	for _, m := range metrics {
		currency := m.Currency
		if currency == "" {
			currency = domain.DefaultCurrency
		}

		builder = builder.Values(
			m.CampaignID,
			m.Date.Format("2006-01-02"),
			m.Spend,
			m.Impressions,
			m.Clicks,
			m.Conversions,
			m.ConversionValue,
			currency,
		)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir métricas: %w", err)
		}
		return nil
	})
}

func (r *metricRepository) GenerateMockMetrics(ctx context.Context, campaignID int64, days int) ([]*domain.Metric, error) {
	metrics := r.generator.Generate(campaignID, days)
	if err := r.CreateBulk(ctx, metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// GenerateMockMetricsForDate insere uma linha simulada para cada campanha que ainda não tem métricas na data
func (r *metricRepository) GenerateMockMetricsForDate(ctx context.Context, date time.Time) (int, error) {
	day := date.Format("2006-01-02")

	query, args, err := squirrel.
		Select("c.id").
		From(campaignsTable).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM campaign_metrics m WHERE m.campaign_id = c.id AND m.date = ?)", day,
		)).
		OrderBy("c.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.Metric, 0)
	for rows.Next() {
		var campaignID int64
		if err := rows.Scan(&campaignID); err != nil {
			return 0, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		metrics = append(metrics, r.generator.ForDate(campaignID, date))
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := r.CreateBulk(ctx, metrics); err != nil {
		return 0, err
	}

	return len(metrics), nil
}

func (r *metricRepository) ListByCampaign(ctx context.Context, campaignID int64, window domain.DateWindow) ([]*domain.Metric, error) {
	query, args, err := squirrel.
		Select(metricColumns).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"m.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"m.date": window.Start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"m.date": window.End.Format("2006-01-02")}).
		OrderBy("m.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.Metric, 0)
	for rows.Next() {
		var (
			metric      domain.Metric
			conversions sql.NullInt64
		)

		err := rows.Scan(
			&metric.ID,
			&metric.CampaignID,
			&metric.Date,
			&metric.Spend,
			&metric.Impressions,
			&metric.Clicks,
			&conversions,
			&metric.ConversionValue,
			&metric.Currency,
			&metric.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}

		if conversions.Valid {
			value := conversions.Int64
			metric.Conversions = &value
		}

		metrics = append(metrics, &metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *metricRepository) Aggregate(ctx context.Context, campaignID int64, window domain.DateWindow) (domain.MetricTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(m.spend), 0)",
			"COALESCE(SUM(m.impressions), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(SUM(m.conversions), 0)",
			"COALESCE(SUM(m.conversion_value), 0)",
		).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"m.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"m.date": window.Start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"m.date": window.End.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.MetricTotals{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		totals          domain.MetricTotals
		spend           decimal.Decimal
		conversionValue decimal.Decimal
	)

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&spend,
		&totals.Impressions,
		&totals.Clicks,
		&totals.Conversions,
		&conversionValue,
	)
	if err != nil {
		return domain.MetricTotals{}, fmt.Errorf("erro ao agregar métricas: %w", err)
	}

	totals.Spend = spend.InexactFloat64()
	totals.ConversionValue = conversionValue.InexactFloat64()

	return totals, nil
}
