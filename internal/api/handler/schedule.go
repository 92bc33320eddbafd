package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/log"
)

const (
	defaultContentType    = "blog"
	defaultAudience       = "general"
	defaultPlatform       = "website"
	defaultNumSuggestions = 5
	maxNumSuggestions     = 50
)

func queryOrDefault(r *http.Request, key, fallback string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return v
	}
	return fallback
}

// GetSchedule gera a agenda completa para o tipo de conteúdo, público e plataforma informados
func GetSchedule(optimizer scheduling.Optimizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := queryOrDefault(r, "content_type", defaultContentType)
		audience := queryOrDefault(r, "target_audience", defaultAudience)
		platform := queryOrDefault(r, "platform", defaultPlatform)

		result, err := optimizer.GenerateSchedule(contentType, audience, platform)
		if err != nil {
			writeScheduleError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"content_type":    contentType,
			"target_audience": audience,
			"platform":        platform,
		}).Info("schedule: agenda gerada")

		writeJSON(w, r, http.StatusOK, result)
	})
}

// OptimizeSchedule devolve as próximas datas sugeridas. Falhas internas viram lista vazia.
func OptimizeSchedule(optimizer scheduling.Optimizer, defaultTimezone string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := queryOrDefault(r, "content_type", defaultContentType)
		audience := queryOrDefault(r, "target_audience", defaultAudience)
		timezone := queryOrDefault(r, "timezone", defaultTimezone)

		n := defaultNumSuggestions
		if raw := r.URL.Query().Get("num_suggestions"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "num_suggestions must be an integer", nil)
				return
			}
			n = min(parsed, maxNumSuggestions)
		}

		suggestions := optimizer.Optimize(contentType, audience, timezone, n)

		writeJSON(w, r, http.StatusOK, map[string]any{
			"content_type":    contentType,
			"target_audience": audience,
			"timezone":        timezone,
			"suggestions":     suggestions,
		})
	})
}
