package posting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trendwise-api/infrastructure/repository"
	repomocks "github.com/vfg2006/trendwise-api/infrastructure/repository/mocks"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling/mocks"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

// minRandom sempre sorteia o menor valor
type minRandom struct{}

func (minRandom) IntRange(min, max int) int { return min }

func (minRandom) Uniform(min, max float64) float64 { return min }

// Sexta-feira, 16 de outubro de 2026, 10:30 UTC
var fixedNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func newTestService(repo repository.ScheduledPostRepository, optimizer *mocks.MockOptimizer) *Service {
	return NewService(repo, optimizer, cache.New(time.Minute), minRandom{}, "UTC").
		WithClock(func() time.Time { return fixedNow })
}

func requirePostError(t *testing.T, err error, target error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, target)

	var postErr *PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, code, postErr.Code)
}

func TestService_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("horário informado pelo cliente", func(t *testing.T) {
		service := newTestService(repository.NewScheduledPostRepository(), mocks.NewMockOptimizer(ctrl))

		post, err := service.Schedule(&domain.SchedulePostRequest{
			Title:         "  Lançamento  ",
			Content:       "texto",
			Platform:      "LinkedIn",
			ScheduledTime: "2026-10-20T09:00:00Z",
		})
		require.NoError(t, err)

		assert.Len(t, post.ID, 10)
		assert.Equal(t, "Lançamento", post.Title)
		assert.Equal(t, domain.ScheduledPostStatusQueued, post.Status)
		assert.Equal(t, time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), post.ScheduledTime)
		assert.Equal(t, fixedNow, post.CreatedAt)
	})

	t.Run("sem horário usa o momento atual", func(t *testing.T) {
		service := newTestService(repository.NewScheduledPostRepository(), mocks.NewMockOptimizer(ctrl))

		post, err := service.Schedule(&domain.SchedulePostRequest{Title: "Agora", Platform: "Twitter"})
		require.NoError(t, err)
		assert.Equal(t, fixedNow, post.ScheduledTime)
	})

	t.Run("agendamento automático usa a primeira sugestão", func(t *testing.T) {
		optimizer := mocks.NewMockOptimizer(ctrl)
		service := newTestService(repository.NewScheduledPostRepository(), optimizer)

		optimizer.EXPECT().
			Optimize("social_post", "general", "UTC", 1).
			Return([]domain.Suggestion{{Datetime: "2026-10-19T10:00:00Z", DayOfWeek: "Monday"}})

		post, err := service.Schedule(&domain.SchedulePostRequest{
			Title:         "Auto",
			Platform:      "Instagram",
			ScheduledTime: "2030-01-01T00:00:00Z",
			AutoSchedule:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC), post.ScheduledTime)
	})

	t.Run("agendamento automático sem sugestões", func(t *testing.T) {
		optimizer := mocks.NewMockOptimizer(ctrl)
		repo := repomocks.NewMockScheduledPostRepository(ctrl)
		service := newTestService(repo, optimizer)

		optimizer.EXPECT().Optimize(gomock.Any(), gomock.Any(), gomock.Any(), 1).Return([]domain.Suggestion{})

		post, err := service.Schedule(&domain.SchedulePostRequest{Title: "Auto", Platform: "Instagram", AutoSchedule: true})
		assert.Nil(t, post)
		requirePostError(t, err, ErrNoSuggestions, apiErrors.ErrScheduleFailed)
	})

	t.Run("validações de entrada", func(t *testing.T) {
		service := newTestService(repomocks.NewMockScheduledPostRepository(ctrl), mocks.NewMockOptimizer(ctrl))

		_, err := service.Schedule(&domain.SchedulePostRequest{Title: " ", Platform: "Twitter"})
		requirePostError(t, err, ErrTitleRequired, apiErrors.ErrMissingRequiredData)

		_, err = service.Schedule(nil)
		requirePostError(t, err, ErrTitleRequired, apiErrors.ErrMissingRequiredData)

		_, err = service.Schedule(&domain.SchedulePostRequest{Title: "Ok"})
		requirePostError(t, err, ErrPlatformRequired, apiErrors.ErrMissingRequiredData)

		_, err = service.Schedule(&domain.SchedulePostRequest{Title: "Ok", Platform: "Twitter", ScheduledTime: "amanhã"})
		requirePostError(t, err, ErrInvalidScheduledTime, apiErrors.ErrInvalidFormat)
	})

	t.Run("erro do repositório", func(t *testing.T) {
		repo := repomocks.NewMockScheduledPostRepository(ctrl)
		service := newTestService(repo, mocks.NewMockOptimizer(ctrl))

		repo.EXPECT().Save(gomock.Any()).Return(errors.New("falha"))

		_, err := service.Schedule(&domain.SchedulePostRequest{Title: "Ok", Platform: "Twitter"})
		requirePostError(t, err, ErrRepository, apiErrors.ErrInternalServer)
	})
}

func TestService_ListUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewScheduledPostRepository()
	service := newTestService(repo, mocks.NewMockOptimizer(ctrl))

	later := &domain.ScheduledPost{ID: "later", Title: "Depois", Platform: "Twitter", Status: domain.ScheduledPostStatusQueued,
		ScheduledTime: time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC)}
	today := &domain.ScheduledPost{ID: "today", Title: "Hoje", Platform: "LinkedIn", Status: domain.ScheduledPostStatusQueued,
		ScheduledTime: time.Date(2026, 10, 16, 15, 4, 0, 0, time.UTC)}
	tomorrow := &domain.ScheduledPost{ID: "tomorrow", Title: "Amanhã", Platform: "Instagram", Status: domain.ScheduledPostStatusQueued,
		ScheduledTime: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)}
	cancelled := &domain.ScheduledPost{ID: "cancelled", Title: "Cancelado", Platform: "Twitter", Status: domain.ScheduledPostStatusCancelled,
		ScheduledTime: time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)}

	for _, p := range []*domain.ScheduledPost{later, today, tomorrow, cancelled} {
		require.NoError(t, repo.Save(p))
	}

	resp, err := service.ListUpcoming()
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalScheduled)
	require.Len(t, resp.Posts, 3)
	assert.Equal(t, "today", resp.Posts[0].ID)
	assert.Equal(t, "Today, 03:04 PM", resp.Posts[0].ScheduledTime)
	assert.Equal(t, "Tomorrow, 09:00 AM", resp.Posts[1].ScheduledTime)
	assert.Equal(t, "Tue Oct 20, 06:30 PM", resp.Posts[2].ScheduledTime)
	assert.Equal(t, domain.ScheduledPostStatusQueued, resp.Posts[2].Status)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewScheduledPostRepository()
	service := newTestService(repo, mocks.NewMockOptimizer(ctrl))

	post, err := service.Schedule(&domain.SchedulePostRequest{Title: "Post", Platform: "Twitter", ScheduledTime: "2026-10-20T09:00:00Z"})
	require.NoError(t, err)

	t.Run("ação diferente de cancel não altera o post", func(t *testing.T) {
		updated, err := service.Update(post.ID, "edit")
		require.NoError(t, err)
		assert.Equal(t, domain.ScheduledPostStatusQueued, updated.Status)
	})

	t.Run("cancelar remove da fila", func(t *testing.T) {
		updated, err := service.Update(post.ID, "CANCEL")
		require.NoError(t, err)
		assert.Equal(t, domain.ScheduledPostStatusCancelled, updated.Status)

		resp, err := service.ListUpcoming()
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalScheduled)
	})

	t.Run("post inexistente", func(t *testing.T) {
		_, err := service.Update("missing", ActionCancel)
		requirePostError(t, err, ErrPostNotFound, apiErrors.ErrPostNotFound)

		var postErr *PostError
		require.ErrorAs(t, err, &postErr)
		assert.Equal(t, "missing", postErr.PostID)
	})
}

func TestService_DispatchDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("publica apenas posts vencidos", func(t *testing.T) {
		repo := repository.NewScheduledPostRepository()
		service := newTestService(repo, mocks.NewMockOptimizer(ctrl))

		for _, at := range []string{"2026-10-16T09:00:00Z", "2026-10-16T10:30:00Z", "2026-10-17T09:00:00Z"} {
			_, err := service.Schedule(&domain.SchedulePostRequest{Title: "Post", Platform: "Twitter", ScheduledTime: at})
			require.NoError(t, err)
		}

		count, err := service.DispatchDue(fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		published, err := repo.ListByStatus(domain.ScheduledPostStatusPublished)
		require.NoError(t, err)
		assert.Len(t, published, 2)

		resp, err := service.ListUpcoming()
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalScheduled)
	})

	t.Run("erro do repositório é propagado", func(t *testing.T) {
		repo := repomocks.NewMockScheduledPostRepository(ctrl)
		service := newTestService(repo, mocks.NewMockOptimizer(ctrl))

		repo.EXPECT().PublishDue(fixedNow).Return(nil, errors.New("falha"))

		count, err := service.DispatchDue(fixedNow)
		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}
