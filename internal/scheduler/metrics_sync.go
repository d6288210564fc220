package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/media-planner-api/infrastructure/repository"
	"github.com/vfg2006/media-planner-api/internal/config"
	"github.com/vfg2006/media-planner-api/pkg/utils"
)

// MetricsSyncConfig representa a configuração do agendador de métricas simuladas
type MetricsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MetricsSyncService agenda a geração diária de métricas simuladas para todas as campanhas
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSyncConfig
	metricRepo          repository.MetricRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncInserted    int
	lastSyncError       string
}

// NewMetricsSyncService cria uma nova instância do serviço de sincronização de métricas
func NewMetricsSyncService(
	metricRepo repository.MetricRepository,
	appConfig *config.Config,
) *MetricsSyncService {
	syncConfig := MetricsSyncConfig{
		CronSchedule: appConfig.MetricsSync.CronSchedule,
		SyncEnabled:  appConfig.MetricsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas carregada")

	return &MetricsSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		metricRepo: metricRepo,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMetrics(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMetrics gera a linha do dia para cada campanha que ainda não a tem; execuções sobrepostas são ignoradas
func (s *MetricsSyncService) syncMetrics(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	var (
		inserted int
		err      error
	)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncInserted = inserted
		s.lastSyncError = ""
		if err != nil {
			s.lastSyncError = err.Error()
		}
		s.syncMutex.Unlock()
	}()

	today := utils.TruncateToDay(startTime)
	logrus.WithField("date", today.Format(time.DateOnly)).Info("Iniciando sincronização de métricas")

	inserted, err = s.metricRepo.GenerateMockMetricsForDate(ctx, today)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar métricas do dia")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":     today.Format(time.DateOnly),
		"inserted": inserted,
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização de métricas concluída")
}

// TriggerManualSync inicia manualmente uma sincronização; retorna falso se já houver uma em andamento
func (s *MetricsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas")
	go s.syncMetrics(context.Background())
	return true
}

// IsRunning informa se há uma sincronização em andamento
func (s *MetricsSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_inserted":     s.lastSyncInserted,
		"last_sync_error":        s.lastSyncError,
	}
}
