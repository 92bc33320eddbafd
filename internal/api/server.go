package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/api/handler"
	"github.com/vfg2006/trendwise-api/internal/api/handler/router"
	"github.com/vfg2006/trendwise-api/internal/config"
	"github.com/vfg2006/trendwise-api/internal/usecases/analyzing"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/internal/usecases/scoring"
	"github.com/vfg2006/trendwise-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Services struct {
	Scorer    scoring.Scorer
	Optimizer scheduling.Optimizer
	Analyzer  analyzing.Analyzer
	Posting   posting.PostingService
	CronJobs  handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

// New monta o roteador e a cadeia de middlewares. limiter pode ser nil quando o
// limite de requisições está desabilitado.
func New(cfg *config.Config, services Services, limiter *middleware.RateLimiter) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services, limiter),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func NewHandler(cfg *config.Config, services Services, limiter *middleware.RateLimiter) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Optimizer)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Content(services.Scorer, services.Analyzer)...),
		router.WithRoutes(handler.Schedule(services.Optimizer, cfg.Scheduling.DefaultTimezone)...),
		router.WithRoutes(handler.ScheduledPosts(services.Posting)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CORSAllowedOrigins),
	}
	if limiter != nil {
		middlewares = append(middlewares, limiter.Middleware())
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
