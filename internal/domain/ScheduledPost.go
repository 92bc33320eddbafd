package domain

import "time"

type ScheduledPostStatus string

const (
	ScheduledPostStatusQueued    ScheduledPostStatus = "queued"
	ScheduledPostStatusPublished ScheduledPostStatus = "published"
	ScheduledPostStatusCancelled ScheduledPostStatus = "cancelled"
)

type ScheduledPost struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Platform      string              `json:"platform"`
	ScheduledTime time.Time           `json:"scheduled_time"`
	Status        ScheduledPostStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	PublishedAt   *time.Time          `json:"published_at,omitempty"`
}

// UpcomingPost é a visão resumida usada na listagem de posts na fila
type UpcomingPost struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	ScheduledTime string              `json:"scheduled_time"` // Ex: "Today, 03:04 PM"
	Platform      string              `json:"platform"`
	Status        ScheduledPostStatus `json:"status"`
}

type UpcomingPostsResponse struct {
	TotalScheduled int            `json:"total_scheduled"`
	Posts          []UpcomingPost `json:"posts"`
}

type SchedulePostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Platform      string `json:"platform"`                 // Twitter, LinkedIn, Instagram
	ScheduledTime string `json:"scheduled_time,omitempty"` // ISO 8601
	AutoSchedule  bool   `json:"auto_schedule"`
}
