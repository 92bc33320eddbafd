package scheduling

import (
	"fmt"
	"sort"

	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

const (
	baseEngagementScore = 50.0
	peakDayBonus        = 20.0
	peakHourBonus       = 25.0
	scoreNoise          = 3.0
	recommendedAbove    = 75.0

	// Faixa [9,18) para dias sem horário de pico definido
	offPeakFirstHour = 9
	offPeakLastHour  = 18
)

// weeklySchedule distribui os posts da semana em rodízio pelos dias de pico
func (s *Service) weeklySchedule(pattern domain.EngagementPattern, profile domain.PlatformProfile) []domain.DaySchedule {
	postsPerDay := make([]int, 7)
	for i := 0; i < profile.PostsPerWeek; i++ {
		postsPerDay[pattern.PeakDays[i%len(pattern.PeakDays)]]++
	}

	schedule := make([]domain.DaySchedule, 0, 7)
	for dayIdx, dayName := range utils.WeekdayNames() {
		isPeakDay := pattern.IsPeakDay(dayIdx)

		posts := make([]domain.PostingSlot, 0, postsPerDay[dayIdx])
		for i := 0; i < postsPerDay[dayIdx]; i++ {
			var hour int
			if isPeakDay && len(pattern.PeakHours) > 0 {
				hour = pattern.PeakHours[i%len(pattern.PeakHours)]
			} else {
				hour = s.rng.IntRange(offPeakFirstHour, offPeakLastHour)
			}

			score := s.engagementScore(dayIdx, hour, pattern)

			// A nota exibida é arredondada; alcance e recomendação usam o valor bruto
			posts = append(posts, domain.PostingSlot{
				Time:            fmt.Sprintf("%02d:00", hour),
				EngagementScore: utils.RoundWithOneDecimalPlace(score),
				ExpectedReach:   domain.ReachFor(score),
				Recommended:     score > recommendedAbove,
			})
		}

		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Time < posts[j].Time
		})

		schedule = append(schedule, domain.DaySchedule{
			Day:       dayName,
			IsPeakDay: isPeakDay,
			Posts:     posts,
		})
	}

	return schedule
}

func (s *Service) engagementScore(dayIdx, hour int, pattern domain.EngagementPattern) float64 {
	score := baseEngagementScore

	if pattern.IsPeakDay(dayIdx) {
		score += peakDayBonus
	}
	if pattern.IsPeakHour(hour) {
		score += peakHourBonus
	}

	score += s.rng.Uniform(-scoreNoise, scoreNoise)
	score *= pattern.EngagementMultiplier

	return utils.Clamp(score, 0, 100)
}
