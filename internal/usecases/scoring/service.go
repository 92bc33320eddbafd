// Package scoring calcula a pontuação heurística de SEO/engajamento de um conteúdo
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/metrics"
	"github.com/vfg2006/trendwise-api/pkg/random"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/scorer.go -package=mocks

// Scorer define a interface do motor de pontuação
type Scorer interface {
	// Score nunca falha e sempre devolve um bundle não nulo: entradas degeneradas produzem valores neutros
	Score(content string, keywords []string, platform string) *domain.ScoreBundle
}

// Weights são os pesos fixos da nota composta (somam 1.0)
var Weights = domain.SubScores{
	KeywordDensity:    0.25,
	Readability:       0.20,
	ContentLength:     0.15,
	KeywordPlacement:  0.20,
	SemanticRelevance: 0.20,
}

var platformMultipliers = map[string]float64{
	"website":      1.0,
	"social_media": 1.5,
	"email":        1.2,
}

type Service struct {
	rng random.Source
}

func NewService(rng random.Source) Scorer {
	return &Service{
		rng: rng,
	}
}

func (s *Service) Score(content string, keywords []string, platform string) *domain.ScoreBundle {
	keywords = normalizeKeywords(keywords)
	words := strings.Fields(content)

	scores := domain.SubScores{
		KeywordDensity:    KeywordDensityScore(content, keywords),
		Readability:       ReadabilityScore(content),
		ContentLength:     ContentLengthScore(content),
		KeywordPlacement:  PlacementScore(content, keywords),
		SemanticRelevance: SemanticRelevanceScore(content, keywords),
	}

	seoScore := Composite(scores)
	ranking := s.predictRanking(seoScore)

	logrus.WithFields(logrus.Fields{
		"platform":  platform,
		"words":     len(words),
		"keywords":  len(keywords),
		"seo_score": utils.RoundWithTwoDecimalPlace(seoScore),
		"ranking":   ranking,
	}).Debug("scoring: conteúdo pontuado")

	metrics.ContentScored.WithLabelValues(platformLabel(platform)).Inc()

	return &domain.ScoreBundle{
		SEOScore:         utils.RoundWithTwoDecimalPlace(seoScore),
		PredictedRanking: ranking,
		EstimatedTraffic: EstimateTraffic(seoScore, ranking),
		ReadabilityScore: utils.RoundWithTwoDecimalPlace(scores.Readability),
		Scores: domain.SubScores{
			KeywordDensity:    utils.RoundWithTwoDecimalPlace(scores.KeywordDensity),
			Readability:       utils.RoundWithTwoDecimalPlace(scores.Readability),
			ContentLength:     utils.RoundWithTwoDecimalPlace(scores.ContentLength),
			KeywordPlacement:  utils.RoundWithTwoDecimalPlace(scores.KeywordPlacement),
			SemanticRelevance: utils.RoundWithTwoDecimalPlace(scores.SemanticRelevance),
		},
		EngagementMetrics: domain.EngagementMetrics{
			EngagementRate:   utils.RoundWithTwoDecimalPlace(EngagementRate(seoScore, scores.Readability, platform)),
			ClickThroughRate: utils.RoundWithTwoDecimalPlace(ClickThroughRate(seoScore, ranking)),
			BounceRate:       utils.RoundWithTwoDecimalPlace(BounceRate(scores.Readability, scores.ContentLength)),
			AvgTimeOnPage:    TimeOnPage(len(words)),
		},
		ContentMetrics:         Metrics(content),
		ImprovementSuggestions: Suggestions(seoScore, scores.Readability, scores.KeywordDensity, scores.ContentLength),
	}
}

// Composite combina as notas com os pesos fixos
func Composite(s domain.SubScores) float64 {
	return s.KeywordDensity*Weights.KeywordDensity +
		s.Readability*Weights.Readability +
		s.ContentLength*Weights.ContentLength +
		s.KeywordPlacement*Weights.KeywordPlacement +
		s.SemanticRelevance*Weights.SemanticRelevance
}

// predictRanking sorteia uma posição dentro da faixa correspondente à nota
func (s *Service) predictRanking(seoScore float64) int {
	lo, hi := RankingBucket(seoScore)
	return s.rng.IntRange(lo, hi)
}

// RankingBucket retorna a faixa [lo, hi) de posições para a nota
func RankingBucket(seoScore float64) (int, int) {
	switch {
	case seoScore >= 90:
		return 1, 5
	case seoScore >= 80:
		return 5, 15
	case seoScore >= 70:
		return 15, 30
	case seoScore >= 60:
		return 30, 50
	default:
		return 50, 100
	}
}

// EstimateTraffic estima o tráfego mensal; decai exponencialmente com a posição
func EstimateTraffic(seoScore float64, ranking int) int {
	estimated := math.Round(10000 * math.Exp(-0.1*float64(ranking)) * seoScore / 100)
	return int(math.Max(100, estimated))
}

func EngagementRate(seoScore, readability float64, platform string) float64 {
	multiplier, ok := platformMultipliers[strings.ToLower(strings.TrimSpace(platform))]
	if !ok {
		multiplier = 1.0
	}

	return 2.5 * ((seoScore + readability) / 200) * multiplier
}

func ClickThroughRate(seoScore float64, ranking int) float64 {
	var base float64
	switch {
	case ranking <= 3:
		base = 30
	case ranking <= 10:
		base = 10
	case ranking <= 20:
		base = 3
	default:
		base = 1
	}

	return math.Min(35, base*seoScore/100)
}

func BounceRate(readability, lengthScore float64) float64 {
	quality := (readability + lengthScore) / 2
	return utils.Clamp(40+(100-quality)*0.2, 25, 90)
}

// TimeOnPage considera leitura média de 225 palavras por minuto
func TimeOnPage(wordCount int) string {
	minutes := float64(wordCount) / 225
	if minutes < 1 {
		return fmt.Sprintf("%ds", int(minutes*60))
	}
	return fmt.Sprintf("%.1fm", minutes)
}

const wellOptimizedMessage = "Content is well-optimized! Consider adding more internal links and updating regularly."

// Suggestions gera as dicas de melhoria a partir das notas
func Suggestions(seoScore, readability, keywordScore, lengthScore float64) []string {
	suggestions := make([]string, 0, 4)

	if seoScore < 70 {
		suggestions = append(suggestions, "Overall SEO score needs improvement. Focus on keyword optimization and content quality.")
	}

	if readability < 60 {
		suggestions = append(suggestions, "Improve readability by using shorter sentences and simpler words.")
	}

	if keywordScore < 50 {
		suggestions = append(suggestions, "Increase keyword density to 1-3% for better SEO performance.")
	} else if keywordScore > 80 {
		suggestions = append(suggestions, "Reduce keyword density to avoid over-optimization.")
	}

	if lengthScore < 70 {
		suggestions = append(suggestions, "Content length is not optimal. Aim for 1500-2500 words for better ranking.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, wellOptimizedMessage)
	}

	return suggestions
}

func platformLabel(platform string) string {
	p := strings.ToLower(strings.TrimSpace(platform))
	if _, ok := platformMultipliers[p]; ok {
		return p
	}
	return "other"
}
