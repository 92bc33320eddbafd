package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/config"
	"github.com/vfg2006/trendwise-api/pkg/cache"
)

// VisitorCleaner descarta estado de clientes inativos, como o limitador de taxa
type VisitorCleaner interface {
	Cleanup() int
}

type CacheJanitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheJanitorService remove periodicamente as entradas expiradas do cache de insights
type CacheJanitorService struct {
	scheduler          *gocron.Scheduler
	cache              *cache.Cache
	visitors           VisitorCleaner
	config             CacheJanitorConfig
	runMutex           sync.Mutex
	lastRunCompletedAt time.Time
	lastEvicted        int
	lastVisitorsFreed  int
}

func NewCacheJanitorService(c *cache.Cache, cfg *config.Config) *CacheJanitorService {
	return &CacheJanitorService{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     c,
		config: CacheJanitorConfig{
			CronSchedule: cfg.CacheJanitor.CronSchedule, // Default: a cada 10 minutos
			Enabled:      cfg.CacheJanitor.Enabled,
		},
	}
}

// WithVisitorCleaner inclui a limpeza de clientes inativos em cada rodada
func (s *CacheJanitorService) WithVisitorCleaner(v VisitorCleaner) *CacheJanitorService {
	s.visitors = v
	return s
}

func (s *CacheJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de cache desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() { s.Sweep() })
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep remove as entradas expiradas e retorna quantas saíram
func (s *CacheJanitorService) Sweep() int {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	evicted := s.cache.EvictExpired()
	s.lastEvicted = evicted
	if s.visitors != nil {
		s.lastVisitorsFreed = s.visitors.Cleanup()
	}
	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"evicted":        evicted,
		"remaining":      s.cache.Len(),
		"visitors_freed": s.lastVisitorsFreed,
	}).Debug("Limpeza de cache concluída")

	return evicted
}

func (s *CacheJanitorService) TriggerManualRun() {
	logrus.Info("Iniciando limpeza manual de cache")
	go s.Sweep()
}

func (s *CacheJanitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_evicted":          s.lastEvicted,
		"last_visitors_freed":   s.lastVisitorsFreed,
		"cache":                 s.cache.Stats(),
	}
}
