package scheduling

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/pkg/random"
)

// midRandom sorteia sempre o mínimo dos inteiros e o ponto médio dos floats (ruído zero)
type midRandom struct{}

func (midRandom) IntRange(min, max int) int { return min }

func (midRandom) Uniform(min, max float64) float64 { return (min + max) / 2 }

// seqRandom devolve os ruídos informados em sequência
type seqRandom struct {
	noises []float64
	next   int
}

func (r *seqRandom) IntRange(min, max int) int { return min }

func (r *seqRandom) Uniform(min, max float64) float64 {
	v := r.noises[r.next%len(r.noises)]
	r.next++
	return v
}

// Sexta-feira, 16 de outubro de 2026
var fixedNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestService(rng random.Source) *Service {
	return NewService(domain.DefaultCatalog(), rng, fixedClock).(*Service)
}

var slotTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):00$`)

func TestService_GenerateSchedule(t *testing.T) {
	t.Run("blog para público tech gera 3 posts em 7 dias", func(t *testing.T) {
		service := newTestService(midRandom{})

		result, err := service.GenerateSchedule("blog", "tech", "blog")
		require.NoError(t, err)

		require.Len(t, result.WeeklySchedule, 7)
		assert.Equal(t, 3, result.TotalPosts())

		expectedDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
		for i, day := range result.WeeklySchedule {
			assert.Equal(t, expectedDays[i], day.Day)
			for _, post := range day.Posts {
				assert.Regexp(t, slotTimePattern, post.Time)
				assert.GreaterOrEqual(t, post.EngagementScore, 0.0)
				assert.LessOrEqual(t, post.EngagementScore, 100.0)
			}
		}

		// Rodízio pelos dias de pico [1,2,3,4]: terça, quarta e quinta
		assert.Empty(t, result.WeeklySchedule[0].Posts)
		assert.Len(t, result.WeeklySchedule[1].Posts, 1)
		assert.Len(t, result.WeeklySchedule[2].Posts, 1)
		assert.Len(t, result.WeeklySchedule[3].Posts, 1)
		assert.Empty(t, result.WeeklySchedule[4].Posts)
		assert.False(t, result.WeeklySchedule[0].IsPeakDay)
		assert.True(t, result.WeeklySchedule[4].IsPeakDay)

		slot := result.WeeklySchedule[1].Posts[0]
		assert.Equal(t, "08:00", slot.Time)
		assert.Equal(t, 100.0, slot.EngagementScore, "(50+20+25)*1.2 satura em 100")
		assert.Equal(t, domain.ReachHigh, slot.ExpectedReach)
		assert.True(t, slot.Recommended)

		assert.Equal(t, 3, result.PlatformInsights.PostsPerWeek)
		assert.Equal(t, "2-3 times per week", result.PlatformInsights.OptimalFrequency)

		impact := result.ExpectedImpact
		assert.Equal(t, 100.0, impact.AverageEngagementScore)
		assert.Equal(t, "50K-100K", impact.EstimatedWeeklyReach)
		assert.Equal(t, "40%", impact.ExpectedTrafficIncrease)
		assert.Equal(t, 5.0, impact.ConversionPotential)
		assert.Equal(t, 100.0, impact.OptimalScheduleCompliance)
	})

	t.Run("público desconhecido usa o padrão general", func(t *testing.T) {
		service := newTestService(midRandom{})

		result, err := service.GenerateSchedule("video", "martian", "website")
		require.NoError(t, err)

		assert.Equal(t, 5, result.TotalPosts())
		for i := 0; i < 5; i++ {
			require.Len(t, result.WeeklySchedule[i].Posts, 1)
			assert.Equal(t, "10:00", result.WeeklySchedule[i].Posts[0].Time)
			assert.Equal(t, 95.0, result.WeeklySchedule[i].Posts[0].EngagementScore)
		}
		assert.False(t, result.WeeklySchedule[5].IsPeakDay)
		assert.False(t, result.WeeklySchedule[6].IsPeakDay)
	})

	t.Run("plataforma desconhecida usa website e chaves ignoram maiúsculas", func(t *testing.T) {
		service := newTestService(midRandom{})

		result, err := service.GenerateSchedule("video", "TECH", "Pinterest")
		require.NoError(t, err)

		assert.Equal(t, 5, result.TotalPosts())
		assert.Equal(t, "daily", result.MonthlyOverview.RecommendedFrequency)
		// tech tem 4 dias de pico: terça recebe 2 posts
		require.Len(t, result.WeeklySchedule[1].Posts, 2)
		assert.Equal(t, "08:00", result.WeeklySchedule[1].Posts[0].Time)
		assert.Equal(t, "09:00", result.WeeklySchedule[1].Posts[1].Time)
	})

	t.Run("várias publicações por dia ficam ordenadas por horário", func(t *testing.T) {
		service := newTestService(midRandom{})

		result, err := service.GenerateSchedule("social", "tech", "social_media")
		require.NoError(t, err)

		assert.Equal(t, 14, result.TotalPosts())
		tuesday := result.WeeklySchedule[1].Posts
		require.Len(t, tuesday, 4)
		assert.Equal(t, []string{"08:00", "09:00", "14:00", "15:00"}, []string{tuesday[0].Time, tuesday[1].Time, tuesday[2].Time, tuesday[3].Time})
		assert.Len(t, result.WeeklySchedule[3].Posts, 3)
	})

	t.Run("catálogo não carregado retorna erro", func(t *testing.T) {
		service := NewService(&domain.Catalog{}, midRandom{}, fixedClock)

		result, err := service.GenerateSchedule("blog", "tech", "blog")
		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCatalogNotReady)

		var scheduleErr *ScheduleError
		require.ErrorAs(t, err, &scheduleErr)
		assert.Equal(t, CodeScheduleFailure, scheduleErr.Code)
		assert.Equal(t, "tech", scheduleErr.Audience)
	})

	t.Run("chamadas repetidas mantêm a estrutura", func(t *testing.T) {
		service := NewService(domain.DefaultCatalog(), random.New(7), fixedClock)

		first, err := service.GenerateSchedule("blog", "general", "website")
		require.NoError(t, err)
		second, err := service.GenerateSchedule("blog", "general", "website")
		require.NoError(t, err)

		require.Len(t, second.WeeklySchedule, len(first.WeeklySchedule))
		for i := range first.WeeklySchedule {
			a, b := first.WeeklySchedule[i], second.WeeklySchedule[i]
			assert.Equal(t, a.Day, b.Day)
			assert.Equal(t, a.IsPeakDay, b.IsPeakDay)
			require.Len(t, b.Posts, len(a.Posts))
			for j := range a.Posts {
				assert.Equal(t, a.Posts[j].Time, b.Posts[j].Time)
				assert.Equal(t, a.Posts[j].Recommended, b.Posts[j].Recommended)
				assert.Equal(t, a.Posts[j].ExpectedReach, b.Posts[j].ExpectedReach)
				assert.InDelta(t, 95.0, b.Posts[j].EngagementScore, 3.0)
			}
		}

		assert.Equal(t, first.ExpectedImpact.EstimatedWeeklyReach, second.ExpectedImpact.EstimatedWeeklyReach)
		assert.Equal(t, first.MonthlyOverview, second.MonthlyOverview)
	})
}

func TestMonthlyOverview(t *testing.T) {
	pattern, _, _ := domain.DefaultCatalog().Pattern("tech")
	profile, _, _ := domain.DefaultCatalog().Platform("blog")

	overview := monthlyOverview(pattern, profile, fixedNow)

	assert.Equal(t, 12, overview.TotalPostsPerMonth)
	assert.Equal(t, "2-3 times per week", overview.RecommendedFrequency)
	require.Len(t, overview.Weeks, 4)

	assert.Equal(t, 1, overview.Weeks[0].Week)
	assert.Equal(t, "2026-10-01", overview.Weeks[0].StartDate)
	assert.Equal(t, 3, overview.Weeks[0].TotalPosts)
	assert.Equal(t, []string{"Thursday", "Friday", "Tuesday", "Wednesday"}, overview.Weeks[0].HighPriorityDays)

	assert.Equal(t, 4, overview.Weeks[3].Week)
	assert.Equal(t, "2026-10-22", overview.Weeks[3].StartDate)
}

func TestOptimalTimes(t *testing.T) {
	service := newTestService(midRandom{})
	pattern, _, _ := domain.DefaultCatalog().Pattern("tech")

	times := service.optimalTimes(pattern)

	// 4 dias x 3 horas = 12, truncado em 10
	require.Len(t, times, 10)
	assert.Equal(t, domain.OptimalTime{Day: "Tuesday", Time: "08:00", EngagementPotential: 80}, times[0])
	for _, ot := range times {
		assert.GreaterOrEqual(t, ot.EngagementPotential, 80)
		assert.LessOrEqual(t, ot.EngagementPotential, 95)
	}
}

func TestRecommendations(t *testing.T) {
	pattern, _, _ := domain.DefaultCatalog().Pattern("tech")
	profile, _, _ := domain.DefaultCatalog().Platform("blog")

	tests := []struct {
		name        string
		contentType string
		wantLen     int
		strategy    *domain.Recommendation
	}{
		{
			name:        "blog recebe estratégia de conteúdo longo",
			contentType: "Blog Post",
			wantLen:     5,
			strategy:    &domain.Recommendation{Category: "Content Strategy", Priority: domain.PriorityMedium, Recommendation: "Publish long-form content early in the week"},
		},
		{
			name:        "landing page recebe estratégia de atualização",
			contentType: "landing_page",
			wantLen:     5,
			strategy:    &domain.Recommendation{Category: "Content Strategy", Priority: domain.PriorityHigh, Recommendation: "Update landing pages during off-peak hours"},
		},
		{
			name:        "outros tipos não recebem estratégia extra",
			contentType: "video",
			wantLen:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := recommendations(pattern, profile, tt.contentType)
			require.Len(t, recs, tt.wantLen)

			assert.Equal(t, "Post 2-3 times per week for optimal engagement", recs[0].Recommendation)
			assert.Equal(t, "Schedule posts between 8:00 and 16:00", recs[1].Recommendation)
			assert.Equal(t, "Focus on Tuesday, Wednesday, Thursday for maximum reach", recs[2].Recommendation)
			assert.Equal(t, domain.PriorityMedium, recs[2].Priority)

			last := recs[len(recs)-1]
			assert.Equal(t, "Consistency", last.Category)
			assert.Equal(t, domain.PriorityHigh, last.Priority)

			if tt.strategy != nil {
				assert.Equal(t, tt.strategy.Category, recs[3].Category)
				assert.Equal(t, tt.strategy.Priority, recs[3].Priority)
				assert.Equal(t, tt.strategy.Recommendation, recs[3].Recommendation)
				assert.NotEmpty(t, recs[3].Reasoning)
			}
		})
	}
}

func TestCompliance(t *testing.T) {
	pattern, _, _ := domain.DefaultCatalog().Pattern("general")

	t.Run("todos os slots no pico resultam em 100", func(t *testing.T) {
		schedule := []domain.DaySchedule{
			{Day: "Monday", Posts: []domain.PostingSlot{{Time: "10:00"}, {Time: "19:00"}}},
			{Day: "Tuesday", Posts: []domain.PostingSlot{{Time: "12:00"}}},
		}
		assert.Equal(t, 100.0, Compliance(schedule, pattern))
	})

	t.Run("agenda vazia resulta em 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Compliance(nil, pattern))
		assert.Equal(t, 0.0, Compliance(make([]domain.DaySchedule, 7), pattern))
	})

	t.Run("usa a posição do dia na agenda", func(t *testing.T) {
		schedule := make([]domain.DaySchedule, 7)
		schedule[0].Posts = []domain.PostingSlot{{Time: "10:00"}}
		schedule[1].Posts = []domain.PostingSlot{{Time: "03:00"}}
		schedule[5].Posts = []domain.PostingSlot{{Time: "10:00"}}

		assert.Equal(t, 33.3, Compliance(schedule, pattern))
	})
}

func TestExpectedImpact(t *testing.T) {
	service := newTestService(midRandom{})
	pattern, _, _ := domain.DefaultCatalog().Pattern("general")

	t.Run("sem slots usa média neutra", func(t *testing.T) {
		impact := service.expectedImpact(pattern, make([]domain.DaySchedule, 7))

		assert.Equal(t, 50.0, impact.AverageEngagementScore)
		assert.Equal(t, "5K-20K", impact.EstimatedWeeklyReach)
		assert.Equal(t, "10%", impact.ExpectedTrafficIncrease)
		assert.Equal(t, 2.5, impact.ConversionPotential)
		assert.Equal(t, 0.0, impact.OptimalScheduleCompliance)
	})

	t.Run("média intermediária cai na faixa do meio", func(t *testing.T) {
		schedule := []domain.DaySchedule{
			{Day: "Monday", Posts: []domain.PostingSlot{{Time: "10:00", EngagementScore: 70}, {Time: "14:00", EngagementScore: 62}}},
		}
		impact := service.expectedImpact(pattern, schedule)

		assert.Equal(t, 66.0, impact.AverageEngagementScore)
		assert.Equal(t, "20K-50K", impact.EstimatedWeeklyReach)
		assert.Equal(t, "25%", impact.ExpectedTrafficIncrease)
		assert.Equal(t, 3.3, impact.ConversionPotential)
		assert.Equal(t, 50.0, impact.OptimalScheduleCompliance)
	})
}
