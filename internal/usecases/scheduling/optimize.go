package scheduling

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

const (
	suggestionCompetition = "medium"
	suggestionReasoning   = "Auto-generated suggestion from schedule optimizer."
)

func (s *Service) Optimize(contentType, audience, timezone string, numSuggestions int) (suggestions []domain.Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("scheduling: pânico ao otimizar agenda")
			suggestions = []domain.Suggestion{}
		}
	}()

	if numSuggestions <= 0 {
		return []domain.Suggestion{}
	}

	// O tipo de conteúdo também seleciona o perfil de plataforma
	result, err := s.GenerateSchedule(contentType, audience, contentType)
	if err != nil {
		logrus.WithError(err).Warn("scheduling: otimização sem sugestões")
		return []domain.Suggestion{}
	}

	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.WithField("timezone", timezone).Debug("scheduling: fuso horário desconhecido, usando UTC")
		loc = time.UTC
	}

	now := s.now().In(loc)

	suggestions = make([]domain.Suggestion, 0, result.TotalPosts())
	for dayIdx, day := range result.WeeklySchedule {
		date := nextWeekday(now, dayIdx)

		for _, post := range day.Posts {
			scheduled := time.Date(date.Year(), date.Month(), date.Day(), slotHour(post.Time), 0, 0, 0, loc)

			suggestions = append(suggestions, domain.Suggestion{
				Datetime:         scheduled.Format(time.RFC3339),
				Date:             scheduled.Format(time.DateOnly),
				Time:             scheduled.Format("15:04"),
				DayOfWeek:        day.Day,
				Timezone:         timezone,
				EngagementScore:  post.EngagementScore,
				CompetitionLevel: suggestionCompetition,
				ExpectedReach:    post.ExpectedReach,
				Priority:         post.EngagementScore,
				Reasoning:        suggestionReasoning,
			})
		}
	}

	// Priority é cópia de EngagementScore; a chave dupla é mantida de propósito
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Priority != suggestions[j].Priority {
			return suggestions[i].Priority > suggestions[j].Priority
		}
		return suggestions[i].EngagementScore > suggestions[j].EngagementScore
	})

	if len(suggestions) > numSuggestions {
		suggestions = suggestions[:numSuggestions]
	}

	return suggestions
}

// nextWeekday retorna a próxima ocorrência do dia (segunda-feira = 0), sempre no futuro:
// o mesmo dia da semana de hoje resolve para daqui a 7 dias.
func nextWeekday(now time.Time, dayIdx int) time.Time {
	daysAhead := (dayIdx - utils.WeekdayIndex(now) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return now.AddDate(0, 0, daysAhead)
}
