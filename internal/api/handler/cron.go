package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/log"
)

const (
	CronJobTypeDispatch     = "dispatch"
	CronJobTypeCacheJanitor = "cache-janitor"
	CronJobTypeAll          = "all"
)

// CronJob é o contrato mínimo de um job agendado que pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

type CronJobServices struct {
	PostDispatch CronJob
	CacheJanitor CronJob
}

// RunCronJob dispara manualmente o job indicado em :type
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger := log.ForContext(r.Context()).WithField("type", cronType)

		switch cronType {
		case CronJobTypeDispatch:
			if services.PostDispatch == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Post dispatch job not available", nil)
				return
			}
			services.PostDispatch.TriggerManualRun()

		case CronJobTypeCacheJanitor:
			if services.CacheJanitor == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cache janitor job not available", nil)
				return
			}
			services.CacheJanitor.TriggerManualRun()

		case CronJobTypeAll:
			if services.PostDispatch != nil {
				services.PostDispatch.TriggerManualRun()
			}
			if services.CacheJanitor != nil {
				services.CacheJanitor.TriggerManualRun()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: dispatch, cache-janitor, all", nil)
			return
		}

		logger.Info("cron: job disparado manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status do job em :type, ou de todos com "all"
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		jobs := map[string]CronJob{
			CronJobTypeDispatch:     services.PostDispatch,
			CronJobTypeCacheJanitor: services.CacheJanitor,
		}

		status := map[string]any{}
		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				if job != nil {
					status[name] = job.GetStatus()
				}
			}
		case CronJobTypeDispatch, CronJobTypeCacheJanitor:
			job := jobs[cronType]
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job not available", nil)
				return
			}
			status[cronType] = job.GetStatus()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: dispatch, cache-janitor, all", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
