package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/media-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/media-planner-api/internal/config"
)

func newTestMetricsSyncService(t *testing.T, repo *mocks.MockMetricRepository, now time.Time) *MetricsSyncService {
	t.Helper()

	service := NewMetricsSyncService(repo, &config.Config{
		MetricsSync: config.MetricsSync{CronSchedule: "30 0 * * *"},
	})
	service.now = func() time.Time { return now }
	return service
}

func TestMetricsSyncService_syncMetrics(t *testing.T) {
	now := time.Date(2025, 2, 3, 0, 30, 15, 0, time.UTC)
	today := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setup         func(repo *mocks.MockMetricRepository)
		wantInserted  int
		wantLastError string
	}{
		{
			name: "Gera métricas do dia para as campanhas sem linha",
			setup: func(repo *mocks.MockMetricRepository) {
				repo.EXPECT().GenerateMockMetricsForDate(gomock.Any(), today).Return(3, nil)
			},
			wantInserted: 3,
		},
		{
			name: "Erro do repositório fica registrado no status",
			setup: func(repo *mocks.MockMetricRepository) {
				repo.EXPECT().GenerateMockMetricsForDate(gomock.Any(), today).Return(0, errors.New("db down"))
			},
			wantLastError: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockMetricRepository(ctrl)
			tt.setup(repo)

			service := newTestMetricsSyncService(t, repo, now)
			service.syncMetrics(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantInserted, status["last_sync_inserted"])
			assert.Equal(t, tt.wantLastError, status["last_sync_error"])
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, now, status["last_sync_started_at"])
		})
	}
}

func TestMetricsSyncService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada
	repo := mocks.NewMockMetricRepository(ctrl)
	service := newTestMetricsSyncService(t, repo, time.Now())

	service.syncRunning = true
	service.syncMetrics(context.Background())
	assert.False(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())
}

func TestMetricsSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	repo := mocks.NewMockMetricRepository(ctrl)
	repo.EXPECT().
		GenerateMockMetricsForDate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int, error) {
			close(done)
			return 1, nil
		})

	service := newTestMetricsSyncService(t, repo, time.Now())
	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	assert.Eventually(t, func() bool { return !service.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestMetricsSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestMetricsSyncService(t, mocks.NewMockMetricRepository(ctrl), time.Now())
	assert.NoError(t, service.Start(context.Background()))
}
