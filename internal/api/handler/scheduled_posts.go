package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/log"
)

func CreateScheduledPost(service posting.PostingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SchedulePostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		post, err := service.Schedule(&req)
		if err != nil {
			writePostError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"post_id":  post.ID,
			"platform": post.Platform,
		}).Info("scheduled-posts: post colocado na fila")

		writeJSON(w, r, http.StatusCreated, post)
	})
}

func ListScheduledPosts(service posting.PostingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upcoming, err := service.ListUpcoming()
		if err != nil {
			writePostError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, upcoming)
	})
}

// UpdateScheduledPost aplica a ação do query param `action` (hoje só cancel altera o post)
func UpdateScheduledPost(service posting.PostingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if strings.TrimSpace(id) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Post ID is required", nil)
			return
		}

		action := r.URL.Query().Get("action")
		if action == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "action is required", nil)
			return
		}

		post, err := service.Update(id, action)
		if err != nil {
			writePostError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, post)
	})
}

func GetPostingInsights(service posting.PostingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := queryOrDefault(r, "content_type", defaultContentType)
		audience := queryOrDefault(r, "target_audience", defaultAudience)

		insights, err := service.Insights(contentType, audience)
		if err != nil {
			writePostError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, insights)
	})
}
