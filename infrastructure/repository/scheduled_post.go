// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/trendwise-api/internal/domain"
)

//go:generate mockgen -source=scheduled_post.go -destination=mocks/scheduled_post.go -package=mocks

var ErrInvalidPost = errors.New("post inválido")

type ScheduledPostRepository interface {
	// Save insere ou substitui o post pelo ID
	Save(post *domain.ScheduledPost) error
	// GetByID retorna nil, nil quando o post não existe
	GetByID(id string) (*domain.ScheduledPost, error)
	// ListByStatus retorna os posts na ordem de inserção
	ListByStatus(status domain.ScheduledPostStatus) ([]*domain.ScheduledPost, error)
	// PublishDue marca como publicados os posts na fila com horário <= now
	PublishDue(now time.Time) ([]*domain.ScheduledPost, error)
}

// scheduledPostRepository guarda os posts apenas na memória do processo.
// Todas as leituras devolvem cópias.
type scheduledPostRepository struct {
	mu    sync.RWMutex
	order []string
	posts map[string]*domain.ScheduledPost
}

func NewScheduledPostRepository() ScheduledPostRepository {
	return &scheduledPostRepository{
		order: make([]string, 0),
		posts: make(map[string]*domain.ScheduledPost),
	}
}

func (r *scheduledPostRepository) Save(post *domain.ScheduledPost) error {
	if post == nil || post.ID == "" {
		return errors.Wrap(ErrInvalidPost, "ID obrigatório")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; !exists {
		r.order = append(r.order, post.ID)
	}
	r.posts[post.ID] = copyPost(post)

	return nil
}

func (r *scheduledPostRepository) GetByID(id string) (*domain.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}

	return copyPost(post), nil
}

func (r *scheduledPostRepository) ListByStatus(status domain.ScheduledPostStatus) ([]*domain.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*domain.ScheduledPost, 0)
	for _, id := range r.order {
		if post := r.posts[id]; post.Status == status {
			posts = append(posts, copyPost(post))
		}
	}

	return posts, nil
}

func (r *scheduledPostRepository) PublishDue(now time.Time) ([]*domain.ScheduledPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	published := make([]*domain.ScheduledPost, 0)
	for _, id := range r.order {
		post := r.posts[id]
		if post.Status != domain.ScheduledPostStatusQueued || post.ScheduledTime.After(now) {
			continue
		}

		publishedAt := now
		post.Status = domain.ScheduledPostStatusPublished
		post.PublishedAt = &publishedAt

		published = append(published, copyPost(post))
	}

	return published, nil
}

func copyPost(post *domain.ScheduledPost) *domain.ScheduledPost {
	c := *post
	if post.PublishedAt != nil {
		at := *post.PublishedAt
		c.PublishedAt = &at
	}
	return &c
}
