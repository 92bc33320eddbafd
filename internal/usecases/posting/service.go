// Package posting gerencia a fila de posts agendados e os insights de publicação
package posting

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/infrastructure/repository"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/metrics"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/cache"
	"github.com/vfg2006/trendwise-api/pkg/random"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

const (
	autoScheduleContentType = "social_post"
	autoScheduleAudience    = "general"

	ActionCancel = "cancel"
)

//go:generate mockgen -source=service.go -destination=mocks/posting.go -package=mocks

type PostingService interface {
	// Schedule coloca um post na fila. Com AutoSchedule o horário vem do otimizador.
	Schedule(req *domain.SchedulePostRequest) (*domain.ScheduledPost, error)
	ListUpcoming() (*domain.UpcomingPostsResponse, error)
	// Update aplica a ação ao post; ações diferentes de cancel devolvem o post sem mudanças
	Update(id, action string) (*domain.ScheduledPost, error)
	// DispatchDue publica os posts da fila cujo horário já passou
	DispatchDue(now time.Time) (int, error)
	Insights(contentType, audience string) (*domain.PostingInsights, error)
}

var _ PostingService = (*Service)(nil)

type Service struct {
	repo          repository.ScheduledPostRepository
	optimizer     scheduling.Optimizer
	insightsCache *cache.Cache
	rng           random.Source
	timezone      string
	now           func() time.Time
}

func NewService(
	repo repository.ScheduledPostRepository,
	optimizer scheduling.Optimizer,
	insightsCache *cache.Cache,
	rng random.Source,
	timezone string,
) *Service {
	if timezone == "" {
		timezone = "UTC"
	}

	return &Service{
		repo:          repo,
		optimizer:     optimizer,
		insightsCache: insightsCache,
		rng:           rng,
		timezone:      timezone,
		now:           time.Now,
	}
}

// WithClock troca o relógio do serviço (útil em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Schedule(req *domain.SchedulePostRequest) (*domain.ScheduledPost, error) {
	if req == nil || strings.TrimSpace(req.Title) == "" {
		return nil, validationError(ErrTitleRequired, "")
	}
	if strings.TrimSpace(req.Platform) == "" {
		return nil, validationError(ErrPlatformRequired, "")
	}

	scheduledTime, err := s.resolveScheduledTime(req)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPostError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	post := &domain.ScheduledPost{
		ID:            id,
		Title:         strings.TrimSpace(req.Title),
		Content:       req.Content,
		Platform:      strings.TrimSpace(req.Platform),
		ScheduledTime: scheduledTime,
		Status:        domain.ScheduledPostStatusQueued,
		CreatedAt:     s.now(),
	}

	if err := s.repo.Save(post); err != nil {
		return nil, NewPostErrorWithID(ErrRepository, apiErrors.ErrInternalServer, id, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"post_id":        post.ID,
		"platform":       post.Platform,
		"scheduled_time": post.ScheduledTime.Format(time.RFC3339),
		"auto_schedule":  req.AutoSchedule,
	}).Info("posting: post agendado")

	return post, nil
}

func (s *Service) resolveScheduledTime(req *domain.SchedulePostRequest) (time.Time, error) {
	if req.AutoSchedule {
		suggestions := s.optimizer.Optimize(autoScheduleContentType, autoScheduleAudience, s.timezone, 1)
		if len(suggestions) == 0 {
			return time.Time{}, NewPostError(ErrNoSuggestions, apiErrors.ErrScheduleFailed, "")
		}

		scheduled, err := utils.ParseDateTime(suggestions[0].Datetime)
		if err != nil {
			return time.Time{}, NewPostError(ErrNoSuggestions, apiErrors.ErrScheduleFailed, err.Error())
		}

		logrus.WithField("datetime", suggestions[0].Datetime).Debug("posting: horário escolhido pelo otimizador")
		return scheduled, nil
	}

	if strings.TrimSpace(req.ScheduledTime) == "" {
		return s.now(), nil
	}

	scheduled, err := utils.ParseDateTime(req.ScheduledTime)
	if err != nil {
		return time.Time{}, validationError(ErrInvalidScheduledTime, req.ScheduledTime)
	}

	return scheduled, nil
}

func (s *Service) ListUpcoming() (*domain.UpcomingPostsResponse, error) {
	queued, err := s.repo.ListByStatus(domain.ScheduledPostStatusQueued)
	if err != nil {
		return nil, NewPostError(ErrRepository, apiErrors.ErrInternalServer, err.Error())
	}

	sort.SliceStable(queued, func(i, j int) bool {
		return queued[i].ScheduledTime.Before(queued[j].ScheduledTime)
	})

	loc := s.location()
	now := s.now().In(loc)

	posts := make([]domain.UpcomingPost, 0, len(queued))
	for _, post := range queued {
		posts = append(posts, domain.UpcomingPost{
			ID:            post.ID,
			Title:         post.Title,
			ScheduledTime: upcomingLabel(post.ScheduledTime.In(loc), now),
			Platform:      post.Platform,
			Status:        post.Status,
		})
	}

	return &domain.UpcomingPostsResponse{
		TotalScheduled: len(posts),
		Posts:          posts,
	}, nil
}

// upcomingLabel formata "Today, 03:04 PM", "Tomorrow, 03:04 PM" ou "Mon Jan 2, 03:04 PM"
func upcomingLabel(scheduled, now time.Time) string {
	clock := scheduled.Format("03:04 PM")

	sy, sm, sd := scheduled.Date()
	ty, tm, td := now.Date()
	wy, wm, wd := now.AddDate(0, 0, 1).Date()

	switch {
	case sy == ty && sm == tm && sd == td:
		return "Today, " + clock
	case sy == wy && sm == wm && sd == wd:
		return "Tomorrow, " + clock
	default:
		return scheduled.Format("Mon Jan 2") + ", " + clock
	}
}

func (s *Service) Update(id, action string) (*domain.ScheduledPost, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, NewPostErrorWithID(ErrRepository, apiErrors.ErrInternalServer, id, err.Error())
	}
	if post == nil {
		return nil, NewPostErrorWithID(ErrPostNotFound, apiErrors.ErrPostNotFound, id, "")
	}

	if strings.EqualFold(strings.TrimSpace(action), ActionCancel) {
		post.Status = domain.ScheduledPostStatusCancelled
		if err := s.repo.Save(post); err != nil {
			return nil, NewPostErrorWithID(ErrRepository, apiErrors.ErrInternalServer, id, err.Error())
		}

		logrus.WithField("post_id", id).Info("posting: post cancelado")
	}

	return post, nil
}

func (s *Service) DispatchDue(now time.Time) (int, error) {
	published, err := s.repo.PublishDue(now)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao publicar posts da fila")
	}

	metrics.PostsDispatched.Add(float64(len(published)))

	for _, post := range published {
		logrus.WithFields(logrus.Fields{
			"post_id":  post.ID,
			"platform": post.Platform,
		}).Info("posting: post publicado")
	}

	return len(published), nil
}

func (s *Service) location() *time.Location {
	loc, err := time.LoadLocation(s.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
