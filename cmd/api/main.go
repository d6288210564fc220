package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/media-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/media-planner-api/infrastructure/integrator"
	"github.com/vfg2006/media-planner-api/infrastructure/repository"
	"github.com/vfg2006/media-planner-api/internal/api"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/internal/scheduler"
	"github.com/vfg2006/media-planner-api/internal/usecases/executing"
	"github.com/vfg2006/media-planner-api/internal/usecases/planning"
	"github.com/vfg2006/media-planner-api/internal/usecases/reporting"
	"github.com/vfg2006/media-planner-api/pkg/log"
	"github.com/vfg2006/media-planner-api/pkg/retry"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.SetEnvironment(cfg.App.Environment)

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	metricGenerator := repository.NewMetricGenerator(time.Now().UnixNano(), time.Now)

	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn, metricGenerator)

	creators := integrator.NewCampaignCreators(cfg, time.Now)

	planner := planning.NewService()
	executor := executing.NewService(creators, campaignRepo, metricRepo, cfg)
	reporter := reporting.NewService(campaignRepo, metricRepo, time.Now)

	metricsSyncService := scheduler.NewMetricsSyncService(metricRepo, cfg)

	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	server, err := api.New(cfg, planner, executor, reporter, metricsSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados, tentando novamente enquanto o banco sobe
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	opts := retry.DefaultOptions
	opts.MaxRetries = dbConfig.ConnectRetries

	var conn *postgres.Connection
	err := retry.WithBackoff(ctx, opts, "conexão com PostgreSQL", func(ctx context.Context) error {
		var err error
		conn, err = postgres.NewConnection(ctx, dbConfig)
		return err
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
