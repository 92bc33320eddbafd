package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trendwise-api/internal/config"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting/mocks"
	"go.uber.org/mock/gomock"
)

func newDispatchService(t *testing.T, enabled bool, cron string) (*PostDispatchService, *mocks.MockPostingService) {
	ctrl := gomock.NewController(t)
	mockPosting := mocks.NewMockPostingService(ctrl)

	cfg := &config.Config{PostDispatch: config.PostDispatch{CronSchedule: cron, Enabled: enabled}}
	service := NewPostDispatchService(mockPosting, cfg)

	return service, mockPosting
}

func TestPostDispatchService_Dispatch(t *testing.T) {
	fixed := time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(m *mocks.MockPostingService)
		expectErr bool
		wantLast  int
		wantTotal int
		runs      int
	}{
		{
			name: "Publica os posts vencidos e acumula o total",
			setup: func(m *mocks.MockPostingService) {
				m.EXPECT().DispatchDue(fixed).Return(2, nil)
				m.EXPECT().DispatchDue(fixed).Return(1, nil)
			},
			runs:      2,
			wantLast:  1,
			wantTotal: 3,
		},
		{
			name: "Erro do repositório é propagado sem alterar contadores",
			setup: func(m *mocks.MockPostingService) {
				m.EXPECT().DispatchDue(fixed).Return(0, errors.New("falha"))
			},
			runs:      1,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockPosting := newDispatchService(t, true, "*/1 * * * *")
			service.now = func() time.Time { return fixed }
			tt.setup(mockPosting)

			var err error
			for i := 0; i < tt.runs; i++ {
				err = service.Dispatch()
			}

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, tt.wantLast, status["last_dispatched"])
			assert.Equal(t, tt.wantTotal, status["total_dispatched"])
			assert.Equal(t, false, status["running"])
			assert.Equal(t, fixed, status["last_run_completed_at"])
		})
	}
}

func TestPostDispatchService_DispatchIgnoradoQuandoEmExecucao(t *testing.T) {
	service, _ := newDispatchService(t, true, "*/1 * * * *")
	service.runRunning = true

	// Nenhuma chamada ao mock é esperada
	assert.NoError(t, service.Dispatch())
}

func TestPostDispatchService_TriggerManualRun(t *testing.T) {
	service, mockPosting := newDispatchService(t, true, "*/1 * * * *")

	done := make(chan struct{})
	mockPosting.EXPECT().DispatchDue(gomock.Any()).DoAndReturn(func(time.Time) (int, error) {
		close(done)
		return 1, nil
	})

	service.TriggerManualRun()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publicação manual não foi executada")
	}
}

func TestPostDispatchService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _ := newDispatchService(t, false, "*/1 * * * *")
		assert.NoError(t, service.Start(context.Background()))
		assert.Equal(t, 0, service.scheduler.Len())
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		service, _ := newDispatchService(t, true, "not a cron")
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda o job e para com o contexto", func(t *testing.T) {
		service, mockPosting := newDispatchService(t, true, "0 0 1 1 *")
		mockPosting.EXPECT().DispatchDue(gomock.Any()).Return(0, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, 2*time.Second, 10*time.Millisecond)
	})
}
