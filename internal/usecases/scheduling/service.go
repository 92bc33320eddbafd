// Package scheduling gera agendas de publicação a partir dos arquétipos de público e plataforma
package scheduling

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/metrics"
	"github.com/vfg2006/trendwise-api/pkg/random"
)

//go:generate mockgen -source=service.go -destination=mocks/optimizer.go -package=mocks

// Optimizer define a interface do otimizador de agenda
type Optimizer interface {
	// GenerateSchedule monta agenda semanal, visão mensal, horários ótimos, recomendações e impacto
	GenerateSchedule(contentType, audience, platform string) (*domain.ScheduleResult, error)
	// Optimize achata a agenda semanal em sugestões com data absoluta. Nunca falha:
	// em caso de erro retorna lista vazia.
	Optimize(contentType, audience, timezone string, numSuggestions int) []domain.Suggestion
	IsReady() bool
}

type Service struct {
	catalog *domain.Catalog
	rng     random.Source
	now     func() time.Time
}

// NewService cria o otimizador. now pode ser nil, nesse caso o relógio do sistema é usado.
func NewService(catalog *domain.Catalog, rng random.Source, now func() time.Time) Optimizer {
	if now == nil {
		now = time.Now
	}

	return &Service{
		catalog: catalog,
		rng:     rng,
		now:     now,
	}
}

func (s *Service) IsReady() bool {
	return s.catalog.IsReady()
}

func (s *Service) GenerateSchedule(contentType, audience, platform string) (*domain.ScheduleResult, error) {
	result, err := s.generate(contentType, audience, platform)
	if err != nil {
		metrics.SchedulesGenerated.WithLabelValues("error").Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"content_type": contentType,
			"audience":     audience,
			"platform":     platform,
		}).Error("scheduling: erro ao gerar agenda")
		return nil, err
	}

	metrics.SchedulesGenerated.WithLabelValues("success").Inc()
	return result, nil
}

func (s *Service) generate(contentType, audience, platform string) (*domain.ScheduleResult, error) {
	if !s.IsReady() {
		return nil, NewScheduleError(ErrCatalogNotReady, audience, platform)
	}

	pattern, audienceKey, audienceFallback := s.catalog.Pattern(audience)
	profile, platformKey, platformFallback := s.catalog.Platform(platform)

	if audienceFallback {
		logrus.WithField("audience", audience).Debugf("scheduling: público desconhecido, usando %q", audienceKey)
	}
	if platformFallback {
		logrus.WithField("platform", platform).Debugf("scheduling: plataforma desconhecida, usando %q", platformKey)
	}

	if len(pattern.PeakDays) == 0 {
		return nil, NewScheduleError(errors.Wrapf(ErrInvalidPattern, "%s sem peak_days", audienceKey), audience, platform)
	}
	if profile.PostsPerWeek <= 0 {
		return nil, NewScheduleError(errors.Wrapf(ErrInvalidPlatform, "%s com posts_per_week=%d", platformKey, profile.PostsPerWeek), audience, platform)
	}

	weekly := s.weeklySchedule(pattern, profile)

	result := &domain.ScheduleResult{
		WeeklySchedule:   weekly,
		MonthlyOverview:  monthlyOverview(pattern, profile, s.now()),
		OptimalTimes:     s.optimalTimes(pattern),
		Recommendations:  recommendations(pattern, profile, contentType),
		ExpectedImpact:   s.expectedImpact(pattern, weekly),
		PlatformInsights: profile,
	}

	logrus.WithFields(logrus.Fields{
		"audience": audienceKey,
		"platform": platformKey,
		"posts":    result.TotalPosts(),
	}).Debug("scheduling: agenda gerada")

	return result, nil
}
