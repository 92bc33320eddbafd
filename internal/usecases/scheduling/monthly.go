package scheduling

import (
	"time"

	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

const weeksPerMonth = 4

// monthlyOverview monta 4 semanas a partir do dia 1 do mês corrente
func monthlyOverview(pattern domain.EngagementPattern, profile domain.PlatformProfile, now time.Time) domain.MonthlyOverview {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	weeks := make([]domain.WeekOverview, 0, weeksPerMonth)
	for w := 0; w < weeksPerMonth; w++ {
		weekStart := start.AddDate(0, 0, 7*w)

		highPriority := make([]string, 0, len(pattern.PeakDays))
		for offset := 0; offset < 7; offset++ {
			date := weekStart.AddDate(0, 0, offset)
			if pattern.IsPeakDay(utils.WeekdayIndex(date)) {
				highPriority = append(highPriority, date.Weekday().String())
			}
		}

		weeks = append(weeks, domain.WeekOverview{
			Week:             w + 1,
			StartDate:        weekStart.Format(time.DateOnly),
			TotalPosts:       profile.PostsPerWeek,
			HighPriorityDays: highPriority,
		})
	}

	return domain.MonthlyOverview{
		TotalPostsPerMonth:   profile.PostsPerWeek * weeksPerMonth,
		Weeks:                weeks,
		RecommendedFrequency: profile.OptimalFrequency,
	}
}
