package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

const neutralAverageScore = 50.0

type impactTier struct {
	minScore float64
	reach    string
	lo, hi   int // Percentual de aumento de tráfego, inclusivo
}

var impactTiers = []impactTier{
	{minScore: 80, reach: "50K-100K", lo: 40, hi: 70},
	{minScore: 60, reach: "20K-50K", lo: 25, hi: 45},
	{minScore: 0, reach: "5K-20K", lo: 10, hi: 30},
}

func (s *Service) expectedImpact(pattern domain.EngagementPattern, schedule []domain.DaySchedule) domain.ExpectedImpact {
	total := 0
	sum := 0.0
	for _, day := range schedule {
		for _, post := range day.Posts {
			total++
			sum += post.EngagementScore
		}
	}

	avg := neutralAverageScore
	if total > 0 {
		avg = sum / float64(total)
	}

	tier := impactTiers[len(impactTiers)-1]
	for _, t := range impactTiers {
		if avg >= t.minScore {
			tier = t
			break
		}
	}

	return domain.ExpectedImpact{
		AverageEngagementScore:    utils.RoundWithOneDecimalPlace(avg),
		EstimatedWeeklyReach:      tier.reach,
		ExpectedTrafficIncrease:   fmt.Sprintf("%d%%", s.rng.IntRange(tier.lo, tier.hi+1)),
		ConversionPotential:       utils.RoundWithTwoDecimalPlace(avg * 0.05),
		OptimalScheduleCompliance: Compliance(schedule, pattern),
	}
}

// Compliance é o percentual de slots em dia de pico e hora de pico. O dia é a
// posição na agenda (segunda-feira = 0). Agenda vazia resulta em 0.
func Compliance(schedule []domain.DaySchedule, pattern domain.EngagementPattern) float64 {
	total := 0
	optimal := 0

	for dayIdx, day := range schedule {
		for _, post := range day.Posts {
			total++
			if pattern.IsPeakDay(dayIdx) && pattern.IsPeakHour(slotHour(post.Time)) {
				optimal++
			}
		}
	}

	if total == 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(float64(optimal) / float64(total) * 100)
}

// slotHour extrai a hora de "HH:00"; formato inválido conta como 12h
func slotHour(slot string) int {
	hour, err := strconv.Atoi(strings.SplitN(slot, ":", 2)[0])
	if err != nil {
		return 12
	}
	return hour
}
