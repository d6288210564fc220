package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/media-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/media-planner-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"

	campaignColumns = "c.id, c.name, c.platform, c.campaign_type, c.status, c.objective, c.daily_budget, " +
		"c.product_categories, c.external_campaign_id, c.created_at, c.updated_at"
)

//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	ListWithMetrics(ctx context.Context, filters domain.CampaignFilters, window domain.DateWindow) ([]*domain.CampaignWithTotals, error)
}

type campaignRepository struct {
	conn postgres.Conn
}

func NewCampaignRepository(conn postgres.Conn) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	status := campaign.Status
	if status == "" {
		status = domain.CampaignStatusCreated
	}

	categories := campaign.ProductCategories
	if categories == nil {
		categories = []string{}
	}

	query, args, err := squirrel.
		Insert("campaigns").
		Columns(
			"name",
			"platform",
			"campaign_type",
			"status",
			"objective",
			"daily_budget",
			"product_categories",
			"external_campaign_id",
		).
		Values(
			campaign.Name,
			string(campaign.Platform),
			string(campaign.CampaignType),
			string(status),
			campaign.Objective,
			campaign.DailyBudget,
			pq.Array(categories),
			campaign.ExternalCampaignID,
		).
		Suffix("RETURNING id, status, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created := *campaign
	created.ProductCategories = categories

	var statusValue string
	err = r.conn.QueryRow(ctx, query, args...).Scan(&created.ID, &statusValue, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23514" {
			return nil, fmt.Errorf("campanha viola restrição %s: %w", pqErr.Constraint, err)
		}
		return nil, fmt.Errorf("erro ao inserir campanha: %w", err)
	}
	created.Status = domain.CampaignStatus(statusValue)

	return &created, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

// ListWithMetrics retorna as campanhas com os somatórios de métricas da janela; campanhas sem métricas vêm zeradas
func (r *campaignRepository) ListWithMetrics(
	ctx context.Context,
	filters domain.CampaignFilters,
	window domain.DateWindow,
) ([]*domain.CampaignWithTotals, error) {
	builder := squirrel.
		Select(
			campaignColumns,
			"COALESCE(SUM(m.spend), 0)",
			"COALESCE(SUM(m.impressions), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(SUM(m.conversions), 0)",
			"COALESCE(SUM(m.conversion_value), 0)",
		).
		From(campaignsTable).
		LeftJoin(
			"campaign_metrics m ON m.campaign_id = c.id AND m.date >= ? AND m.date <= ?",
			window.Start.Format("2006-01-02"),
			window.End.Format("2006-01-02"),
		).
		GroupBy("c.id").
		OrderBy("c.created_at DESC")

	query, args, err := applyCampaignFilters(builder, filters).
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

	result := make([]*domain.CampaignWithTotals, 0)
	for rows.Next() {
		var (
			campaign        campaignRow
			spend           decimal.Decimal
			conversionValue decimal.Decimal
			totals          domain.MetricTotals
		)

		dest := append(campaign.dest(),
			&spend,
			&totals.Impressions,
			&totals.Clicks,
			&totals.Conversions,
			&conversionValue,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas com métricas: %w", err)
		}

		totals.Spend = spend.InexactFloat64()
		totals.ConversionValue = conversionValue.InexactFloat64()

		result = append(result, &domain.CampaignWithTotals{
			Campaign: campaign.toDomain(),
			Totals:   totals,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func applyCampaignFilters(builder squirrel.SelectBuilder, filters domain.CampaignFilters) squirrel.SelectBuilder {
	if filters.Platform != nil {
		builder = builder.Where(squirrel.Eq{"c.platform": string(*filters.Platform)})
	}
	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"c.status": string(*filters.Status)})
	}
	return builder
}

type scanner interface {
	Scan(dest ...any) error
}

type campaignRow struct {
	id                 int64
	name               string
	platform           string
	campaignType       string
	status             string
	objective          string
	dailyBudget        decimal.Decimal
	productCategories  pq.StringArray
	externalCampaignID sql.NullString
	campaign           domain.Campaign
}

func (c *campaignRow) dest() []any {
	return []any{
		&c.id,
		&c.name,
		&c.platform,
		&c.campaignType,
		&c.status,
		&c.objective,
		&c.dailyBudget,
		&c.productCategories,
		&c.externalCampaignID,
		&c.campaign.CreatedAt,
		&c.campaign.UpdatedAt,
	}
}

func (c *campaignRow) toDomain() *domain.Campaign {
	campaign := c.campaign
	campaign.ID = c.id
	campaign.Name = c.name
	campaign.Platform = domain.Platform(c.platform)
	campaign.CampaignType = domain.CampaignType(c.campaignType)
	campaign.Status = domain.CampaignStatus(c.status)
	campaign.Objective = c.objective
	campaign.DailyBudget = c.dailyBudget
	campaign.ProductCategories = []string(c.productCategories)
	if campaign.ProductCategories == nil {
		campaign.ProductCategories = []string{}
	}
	if c.externalCampaignID.Valid {
		externalID := c.externalCampaignID.String
		campaign.ExternalCampaignID = &externalID
	}
	return &campaign
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var campaign campaignRow
	if err := row.Scan(campaign.dest()...); err != nil {
		return nil, err
	}
	return campaign.toDomain(), nil
}
