package main

import (
	"context"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/infrastructure/repository"
	"github.com/vfg2006/trendwise-api/internal/api"
	"github.com/vfg2006/trendwise-api/internal/api/handler"
	"github.com/vfg2006/trendwise-api/internal/config"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/scheduler"
	"github.com/vfg2006/trendwise-api/internal/usecases/analyzing"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/internal/usecases/scoring"
	"github.com/vfg2006/trendwise-api/pkg/cache"
	"github.com/vfg2006/trendwise-api/pkg/log"
	"github.com/vfg2006/trendwise-api/pkg/middleware"
	"github.com/vfg2006/trendwise-api/pkg/random"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catálogo imutável compartilhado por todos os serviços
	catalog := domain.DefaultCatalog()
	rng := random.New(cfg.Scheduling.RandomSeed)

	scorer := scoring.NewService(rng)
	optimizer := scheduling.NewService(catalog, rng, nil)
	analyzer := analyzing.NewService(scorer, optimizer)

	insightsCache := cache.New(cfg.Insights.CacheTTL)
	postRepo := repository.NewScheduledPostRepository()
	postingService := posting.NewService(postRepo, optimizer, insightsCache, rng, cfg.Scheduling.DefaultTimezone)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	postDispatchService := scheduler.NewPostDispatchService(postingService, cfg)
	cacheJanitorService := scheduler.NewCacheJanitorService(insightsCache, cfg)
	if limiter != nil {
		cacheJanitorService.WithVisitorCleaner(limiter)
	}

	if err := postDispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de publicação de posts")
	} else {
		logrus.Info("Agendador de publicação de posts iniciado com sucesso")
	}

	if err := cacheJanitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de cache")
	} else {
		logrus.Info("Agendador de limpeza de cache iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Scorer:    scorer,
		Optimizer: optimizer,
		Analyzer:  analyzer,
		Posting:   postingService,
		CronJobs: handler.CronJobServices{
			PostDispatch: postDispatchService,
			CacheJanitor: cacheJanitorService,
		},
	}, limiter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
