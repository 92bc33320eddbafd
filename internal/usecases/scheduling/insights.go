package scheduling

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

const maxOptimalTimes = 10

// optimalTimes cruza os 5 primeiros dias de pico com as 3 primeiras horas de pico.
// É independente da agenda semanal.
func (s *Service) optimalTimes(pattern domain.EngagementPattern) []domain.OptimalTime {
	days := pattern.PeakDays[:min(5, len(pattern.PeakDays))]
	hours := pattern.PeakHours[:min(3, len(pattern.PeakHours))]

	times := make([]domain.OptimalTime, 0, len(days)*len(hours))
	for _, day := range days {
		for _, hour := range hours {
			times = append(times, domain.OptimalTime{
				Day:                 utils.WeekdayName(day),
				Time:                fmt.Sprintf("%02d:00", hour),
				EngagementPotential: s.rng.IntRange(80, 96),
			})
		}
	}

	sort.SliceStable(times, func(i, j int) bool {
		return times[i].EngagementPotential > times[j].EngagementPotential
	})

	if len(times) > maxOptimalTimes {
		times = times[:maxOptimalTimes]
	}

	return times
}

func recommendations(pattern domain.EngagementPattern, profile domain.PlatformProfile, contentType string) []domain.Recommendation {
	recs := []domain.Recommendation{
		{
			Category:       "Frequency",
			Priority:       domain.PriorityHigh,
			Recommendation: fmt.Sprintf("Post %s for optimal engagement", profile.OptimalFrequency),
			Reasoning:      "This frequency aligns with platform best practices and audience behavior",
		},
	}

	if len(pattern.PeakHours) > 0 {
		recs = append(recs, domain.Recommendation{
			Category:       "Timing",
			Priority:       domain.PriorityHigh,
			Recommendation: fmt.Sprintf("Schedule posts between %d:00 and %d:00", pattern.PeakHours[0], pattern.PeakHours[len(pattern.PeakHours)-1]),
			Reasoning:      "These hours show highest engagement rates for your target audience",
		})
	}

	bestDays := make([]string, 0, 3)
	for _, day := range pattern.PeakDays[:min(3, len(pattern.PeakDays))] {
		bestDays = append(bestDays, utils.WeekdayName(day))
	}
	recs = append(recs, domain.Recommendation{
		Category:       "Days",
		Priority:       domain.PriorityMedium,
		Recommendation: fmt.Sprintf("Focus on %s for maximum reach", strings.Join(bestDays, ", ")),
		Reasoning:      "These days show consistently higher engagement metrics",
	})

	contentLower := strings.ToLower(contentType)
	switch {
	case strings.Contains(contentLower, "blog"):
		recs = append(recs, domain.Recommendation{
			Category:       "Content Strategy",
			Priority:       domain.PriorityMedium,
			Recommendation: "Publish long-form content early in the week",
			Reasoning:      "Blog posts gain traction over several days, starting early maximizes exposure",
		})
	case strings.Contains(contentLower, "landing"), strings.Contains(contentLower, "page"):
		recs = append(recs, domain.Recommendation{
			Category:       "Content Strategy",
			Priority:       domain.PriorityHigh,
			Recommendation: "Update landing pages during off-peak hours",
			Reasoning:      "Minimize disruption to live traffic and allow time for testing",
		})
	}

	recs = append(recs, domain.Recommendation{
		Category:       "Consistency",
		Priority:       domain.PriorityHigh,
		Recommendation: "Maintain a consistent posting schedule",
		Reasoning:      "Regular posting builds audience expectations and improves algorithmic favorability",
	})

	return recs
}
