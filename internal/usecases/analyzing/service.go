// Package analyzing combina a pontuação do conteúdo com a sugestão de agenda em uma única análise
package analyzing

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/internal/usecases/scoring"
)

const (
	defaultPlatform    = "website"
	defaultContentType = "blog"
	defaultAudience    = "general"

	extractedKeywords = 10
	scheduleTimezone  = "UTC"
	scheduleSlots     = 3
)

var (
	ErrContentRequired    = errors.New("content is required")
	ErrScoringUnavailable = errors.New("scoring returned no result")
)

//go:generate mockgen -source=service.go -destination=mocks/analyzer.go -package=mocks

type Analyzer interface {
	Analyze(req *domain.AnalyzeRequest) (*domain.AnalysisResult, error)
}

type Service struct {
	scorer    scoring.Scorer
	optimizer scheduling.Optimizer
}

func NewService(scorer scoring.Scorer, optimizer scheduling.Optimizer) Analyzer {
	return &Service{
		scorer:    scorer,
		optimizer: optimizer,
	}
}

func (s *Service) Analyze(req *domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	platform := withDefault(req.Platform, defaultPlatform)
	contentType := withDefault(req.ContentType, defaultContentType)
	audience := withDefault(req.TargetAudience, defaultAudience)

	keywords := cleanKeywords(req.Keywords)
	extracted := false
	if len(keywords) == 0 {
		keywords = scoring.ExtractKeywords(req.Content, extractedKeywords)
		extracted = true
	}

	bundle := s.scorer.Score(req.Content, keywords, platform)
	if bundle == nil {
		return nil, ErrScoringUnavailable
	}

	suggestions := s.optimizer.Optimize(contentType, audience, scheduleTimezone, scheduleSlots)

	logrus.WithFields(logrus.Fields{
		"platform":     platform,
		"content_type": contentType,
		"keywords":     len(keywords),
		"extracted":    extracted,
		"suggestions":  len(suggestions),
	}).Debug("analyzing: análise concluída")

	return &domain.AnalysisResult{
		Keywords:          keywords,
		KeywordsExtracted: extracted,
		SEO:               bundle,
		Validation:        scoring.ValidateContent(req.Content, keywords),
		MetaDescription:   scoring.MetaDescription(req.Content, scoring.DefaultMetaLength),
		SEOImprovements:   scoring.SEOImprovements(bundle.SEOScore, scoring.DefaultTargetSEOScore),
		SuggestedSchedule: suggestions,
	}, nil
}

func cleanKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return cleaned
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
