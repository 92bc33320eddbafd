package posting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
)

const (
	insightsSuggestions = 5
	insightsTimezone    = "UTC"
	bestDaysCount       = 2
)

func (s *Service) Insights(contentType, audience string) (*domain.PostingInsights, error) {
	key := insightsCacheKey(contentType, audience)

	if s.insightsCache != nil {
		if cached, ok := s.insightsCache.Get(key); ok {
			if insights, ok := cached.(*domain.PostingInsights); ok {
				logrus.WithField("key", key).Debug("posting: insights servidos do cache")
				return copyInsights(insights), nil
			}
		}
	}

	suggestions := s.optimizer.Optimize(contentType, audience, insightsTimezone, insightsSuggestions)
	if len(suggestions) == 0 {
		return nil, NewPostError(ErrNoSuggestions, apiErrors.ErrScheduleFailed, key)
	}

	bestTime := bestTimeWindow(suggestions)
	bestDays := bestDays(suggestions)

	insights := &domain.PostingInsights{
		BestTime:      bestTime,
		BestDays:      bestDays,
		AvgEngagement: fmt.Sprintf("%d%%", s.rng.IntRange(75, 95)),
		Recommendations: []domain.InsightCard{
			{
				Icon:        "schedule",
				Title:       fmt.Sprintf("Post between %s for best reach", bestTime),
				Description: "Your audience is most active during evening hours, resulting in 2.5x higher engagement rates.",
				Color:       "blue",
			},
			{
				Icon:        "calendar",
				Title:       fmt.Sprintf("Focus on %s", strings.Join(bestDays, " and ")),
				Description: "Mid-week posts perform 40% better than weekend content for your audience.",
				Color:       "purple",
			},
			{
				Icon:        "trending_up",
				Title:       "Use trending hashtags strategically",
				Description: "Content with 3-5 trending hashtags receives 35% more engagement on average.",
				Color:       "green",
			},
		},
	}

	if s.insightsCache != nil {
		s.insightsCache.Set(key, copyInsights(insights))
	}

	return insights, nil
}

// bestTimeWindow escolhe a hora mais frequente; no empate vence a primeira vista
func bestTimeWindow(suggestions []domain.Suggestion) string {
	counts := make(map[int]int)
	order := make([]int, 0)

	for _, s := range suggestions {
		hour, err := strconv.Atoi(strings.SplitN(s.Time, ":", 2)[0])
		if err != nil {
			continue
		}
		if _, seen := counts[hour]; !seen {
			order = append(order, hour)
		}
		counts[hour]++
	}

	if len(order) == 0 {
		return ""
	}

	best := order[0]
	for _, hour := range order[1:] {
		if counts[hour] > counts[best] {
			best = hour
		}
	}

	if best >= 12 {
		return fmt.Sprintf("%d-%d PM", best, best+2)
	}
	return fmt.Sprintf("%d-%d AM", best, best+2)
}

// bestDays retorna as abreviações (Mon, Tue...) dos dois dias mais frequentes
func bestDays(suggestions []domain.Suggestion) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, s := range suggestions {
		day := s.DayOfWeek
		if len(day) > 3 {
			day = day[:3]
		}
		if _, seen := counts[day]; !seen {
			order = append(order, day)
		}
		counts[day]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > bestDaysCount {
		order = order[:bestDaysCount]
	}

	return order
}

func insightsCacheKey(contentType, audience string) string {
	return "insights:" + strings.ToLower(strings.TrimSpace(contentType)) + ":" + strings.ToLower(strings.TrimSpace(audience))
}

func copyInsights(in *domain.PostingInsights) *domain.PostingInsights {
	out := *in
	out.BestDays = append([]string(nil), in.BestDays...)
	out.Recommendations = append([]domain.InsightCard(nil), in.Recommendations...)
	return &out
}
