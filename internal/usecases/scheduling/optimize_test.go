package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trendwise-api/internal/domain"
)

func TestService_Optimize(t *testing.T) {
	t.Run("uma sugestão com data absoluta", func(t *testing.T) {
		service := newTestService(midRandom{})

		suggestions := service.Optimize("blog", "tech", "UTC", 1)
		require.Len(t, suggestions, 1)

		s := suggestions[0]
		assert.Equal(t, "2026-10-20T08:00:00Z", s.Datetime)
		assert.Equal(t, "2026-10-20", s.Date)
		assert.Equal(t, "08:00", s.Time)
		assert.Equal(t, "Tuesday", s.DayOfWeek)
		assert.Equal(t, "UTC", s.Timezone)
		assert.Equal(t, 100.0, s.EngagementScore)
		assert.Equal(t, "medium", s.CompetitionLevel)
		assert.Equal(t, domain.ReachHigh, s.ExpectedReach)
		assert.Equal(t, suggestionReasoning, s.Reasoning)
	})

	t.Run("mesmo dia da semana vai para a semana seguinte", func(t *testing.T) {
		service := newTestService(midRandom{})

		suggestions := service.Optimize("website", "general", "UTC", 5)
		require.Len(t, suggestions, 5)

		dates := make(map[string]string, len(suggestions))
		for _, s := range suggestions {
			dates[s.DayOfWeek] = s.Date
		}
		assert.Equal(t, "2026-10-19", dates["Monday"])
		assert.Equal(t, "2026-10-22", dates["Thursday"])
		assert.Equal(t, "2026-10-23", dates["Friday"], "hoje é sexta: próxima ocorrência em 7 dias")
	})

	t.Run("ordenação decrescente com prioridade igual à nota", func(t *testing.T) {
		// Ruídos para segunda a sexta: 92, 98, 95, 96, 94
		service := newTestService(&seqRandom{noises: []float64{-3, 3, 0, 1, -1}})

		suggestions := service.Optimize("website", "general", "UTC", 10)
		require.Len(t, suggestions, 5)

		// Priority duplica EngagementScore intencionalmente; a ordem é a da nota
		order := make([]string, 0, len(suggestions))
		for i, s := range suggestions {
			assert.Equal(t, s.EngagementScore, s.Priority)
			if i > 0 {
				assert.GreaterOrEqual(t, suggestions[i-1].Priority, s.Priority)
			}
			order = append(order, s.DayOfWeek)
		}
		assert.Equal(t, []string{"Tuesday", "Thursday", "Wednesday", "Friday", "Monday"}, order)
	})

	t.Run("empates mantêm a ordem da agenda", func(t *testing.T) {
		service := newTestService(midRandom{})

		suggestions := service.Optimize("website", "general", "UTC", 5)
		require.Len(t, suggestions, 5)
		assert.Equal(t, "Monday", suggestions[0].DayOfWeek)
		assert.Equal(t, "Friday", suggestions[4].DayOfWeek)
	})

	t.Run("fuso desconhecido usa UTC e mantém o rótulo", func(t *testing.T) {
		service := newTestService(midRandom{})

		suggestions := service.Optimize("blog", "tech", "Mars/Olympus", 1)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "Mars/Olympus", suggestions[0].Timezone)
		assert.Equal(t, "2026-10-20T08:00:00Z", suggestions[0].Datetime)
	})

	t.Run("fuso vazio vira UTC", func(t *testing.T) {
		service := newTestService(midRandom{})

		suggestions := service.Optimize("blog", "tech", "", 1)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "UTC", suggestions[0].Timezone)
	})

	t.Run("quantidade zero ou negativa retorna lista vazia", func(t *testing.T) {
		service := newTestService(midRandom{})

		assert.Empty(t, service.Optimize("blog", "tech", "UTC", 0))
		assert.Empty(t, service.Optimize("blog", "tech", "UTC", -3))
	})

	t.Run("falha na geração retorna lista vazia", func(t *testing.T) {
		service := NewService(&domain.Catalog{}, midRandom{}, fixedClock)

		suggestions := service.Optimize("blog", "tech", "UTC", 3)
		assert.NotNil(t, suggestions)
		assert.Empty(t, suggestions)
	})
}
