package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody devolve false depois de escrever VAL_001 quando o corpo não é JSON válido
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return false
	}
	return true
}

func writePostError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var postErr *posting.PostError
	if errors.As(err, &postErr) {
		if apiErrors.StatusFor(postErr.Code) >= http.StatusInternalServerError {
			logger.Error("Erro ao processar post agendado")
		} else {
			logger.Warn("Requisição de post agendado recusada")
		}
		apiErrors.WriteError(w, postErr.Code, postErr.Error(), postIDDetails(postErr.PostID))
		return
	}

	logger.Error("Erro inesperado ao processar post agendado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error processing scheduled post", nil)
}

func postIDDetails(id string) any {
	if id == "" {
		return nil
	}
	return map[string]string{"post_id": id}
}

func writeScheduleError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar agenda")

	var scheduleErr *scheduling.ScheduleError
	if errors.As(err, &scheduleErr) {
		apiErrors.WriteError(w, scheduleErr.Code, scheduleErr.Err.Error(), map[string]string{
			"target_audience": scheduleErr.Audience,
			"platform":        scheduleErr.Platform,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrScheduleFailed, "Error generating schedule", nil)
}
