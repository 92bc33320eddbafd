// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/config"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
)

type PostDispatchConfig struct {
	CronSchedule string
	Enabled      bool
}

// PostDispatchService publica periodicamente os posts da fila cujo horário chegou
type PostDispatchService struct {
	scheduler          *gocron.Scheduler
	posting            posting.PostingService
	config             PostDispatchConfig
	now                func() time.Time
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDispatched     int
	totalDispatched    int
}

func NewPostDispatchService(postingService posting.PostingService, cfg *config.Config) *PostDispatchService {
	dispatchConfig := PostDispatchConfig{
		CronSchedule: cfg.PostDispatch.CronSchedule, // Default: a cada minuto
		Enabled:      cfg.PostDispatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": dispatchConfig.CronSchedule,
		"enabled":       dispatchConfig.Enabled,
	}).Info("Configuração do agendador de publicação de posts carregada")

	return &PostDispatchService{
		scheduler: gocron.NewScheduler(time.UTC),
		posting:   postingService,
		config:    dispatchConfig,
		now:       time.Now,
	}
}

func (s *PostDispatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de publicação de posts desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de publicação de posts")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Dispatch(); err != nil {
			logrus.WithError(err).Error("Erro na publicação de posts agendados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar publicação de posts: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de publicação de posts")
		s.scheduler.Stop()
	}()

	return nil
}

// Dispatch executa uma rodada de publicação. Rodadas simultâneas são ignoradas.
func (s *PostDispatchService) Dispatch() error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Warn("Publicação de posts já está em execução")
		return nil
	}
	s.runRunning = true
	s.lastRunStartedAt = s.now()
	s.runMutex.Unlock()

	count, err := s.posting.DispatchDue(s.now())

	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.runRunning = false
	s.lastRunCompletedAt = s.now()
	if err != nil {
		return err
	}

	s.lastDispatched = count
	s.totalDispatched += count

	if count > 0 {
		logrus.WithField("dispatched", count).Info("Posts agendados publicados")
	}

	return nil
}

// TriggerManualRun inicia uma rodada de publicação fora do agendamento
func (s *PostDispatchService) TriggerManualRun() {
	s.runMutex.Lock()
	running := s.runRunning
	s.runMutex.Unlock()

	if running {
		logrus.Info("Publicação de posts já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando publicação manual de posts")
	go func() {
		if err := s.Dispatch(); err != nil {
			logrus.WithError(err).Error("Erro na publicação manual de posts")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PostDispatchService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.runRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_dispatched":       s.lastDispatched,
		"total_dispatched":      s.totalDispatched,
	}
}
